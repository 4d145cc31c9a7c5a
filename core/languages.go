package core

import (
	"math"
	"path"
	"sort"
	"strings"

	"github.com/repolens/repolens/schema"
)

// languageByExtension maps file extensions to probable languages.
var languageByExtension = map[string]string{
	".py":     "python",
	".ipynb":  "python",
	".js":     "javascript",
	".ts":     "typescript",
	".tsx":    "typescript",
	".jsx":    "javascript",
	".go":     "go",
	".java":   "java",
	".kt":     "kotlin",
	".cs":     "csharp",
	".rb":     "ruby",
	".php":    "php",
	".rs":     "rust",
	".swift":  "swift",
	".m":      "objective-c",
	".mm":     "objective-c++",
	".c":      "c",
	".h":      "c",
	".cpp":    "cpp",
	".cc":     "cpp",
	".cxx":    "cpp",
	".vue":    "vue",
	".svelte": "svelte",
	".scala":  "scala",
	".sh":     "shell",
	".ps1":    "powershell",
	".dart":   "dart",
	".sql":    "sql",
	".yaml":   "yaml",
	".yml":    "yaml",
}

// detectLanguages counts probable languages inferred from file extensions.
func detectLanguages(files []string) map[string]int {
	counts := make(map[string]int)
	for _, f := range files {
		lang, ok := languageByExtension[strings.ToLower(path.Ext(f))]
		if !ok {
			continue
		}
		counts[lang]++
	}
	return counts
}

// summarizeLanguageUsage converts raw counts into ratio summaries, largest
// share first.
func summarizeLanguageUsage(counts map[string]int) []schema.LanguageUsage {
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		total = 1
	}

	summary := make([]schema.LanguageUsage, 0, len(counts))
	for lang, count := range counts {
		summary = append(summary, schema.LanguageUsage{
			Language: lang,
			Ratio:    math.Round(float64(count)/float64(total)*1000) / 1000,
			Files:    count,
		})
	}
	sort.Slice(summary, func(i, j int) bool {
		if summary[i].Files != summary[j].Files {
			return summary[i].Files > summary[j].Files
		}
		return summary[i].Language < summary[j].Language
	})
	return summary
}
