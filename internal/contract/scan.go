package contract

import (
	"io/fs"
	"path/filepath"
)

// RepoInventory is a lightweight snapshot of repository files and directories.
// Paths are relative to Root and use forward slashes.
type RepoInventory struct {
	Root        string
	Files       []string
	Directories []string
}

// ScanRepo walks the working tree once, skipping .git, and collects
// files and directories for the filesystem detectors.
func ScanRepo(root string) (*RepoInventory, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	inv := &RepoInventory{Root: absRoot}

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped rather than failing the scan
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == absRoot {
			return nil
		}
		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			inv.Directories = append(inv.Directories, rel)
			return nil
		}
		inv.Files = append(inv.Files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// TopLevelDirs returns the names of directories directly under the root.
func (inv *RepoInventory) TopLevelDirs() []string {
	var dirs []string
	for _, dir := range inv.Directories {
		if !filepath.IsAbs(dir) && filepath.Dir(dir) == "." {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// HasFile reports whether the given relative path exists in the inventory.
func (inv *RepoInventory) HasFile(rel string) bool {
	for _, f := range inv.Files {
		if f == rel {
			return true
		}
	}
	return false
}
