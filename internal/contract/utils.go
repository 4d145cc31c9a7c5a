package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Confidence label constants.
const (
	StrongValue = "Strong" // Strong evidence
	FairValue   = "Fair"   // Fair evidence
	WeakValue   = "Weak"   // Weak evidence
	NoneValue   = "None"   // No evidence
)

// Color variables for console output.
var (
	StrongColor = color.New(color.FgGreen, color.Bold) // strongColor marks well-supported findings.
	FairColor   = color.New(color.FgYellow)            // fairColor marks partially supported findings.
	WeakColor   = color.New(color.FgMagenta)           // weakColor marks thin evidence.
	NoneColor   = color.New(color.FgCyan)              // noneColor marks absent evidence.
)

// GetPlainLabel returns a plain text label for a confidence score in [0, 1].
// This is the core logic used for JSON, YAML, and table printing.
func GetPlainLabel(confidence float64) string {
	switch {
	case confidence >= 0.75:
		return StrongValue
	case confidence >= 0.5:
		return FairValue
	case confidence > 0:
		return WeakValue
	default:
		return NoneValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(confidence float64) string {
	text := GetPlainLabel(confidence)

	switch text {
	case StrongValue:
		return StrongColor.Sprint(text)
	case FairValue:
		return FairColor.Sprint(text)
	case WeakValue:
		return WeakColor.Sprint(text)
	default: // "None"
		return NoneColor.Sprint(text)
	}
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetRunsDBFilePath returns the path to the SQLite DB file for run tracking.
func GetRunsDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".repolens_runs.db"
	}
	return filepath.Join(homeDir, ".repolens_runs.db")
}

// SelectOutputFile picks the file to write based on the provided output
// file. If it is an empty string, then choose stdout. Otherwise, create
// a file object from the provided string.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncatePath truncates a file path to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 to ensure there's space for both the "..." prefix and at least one character of content.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
