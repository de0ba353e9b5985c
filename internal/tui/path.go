package tui

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

func canonicalize(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err == nil {
			path = abs
		}
	}
	return filepath.Clean(path)
}

// abbreviatePath replaces the home directory prefix of path with "~".
func abbreviatePath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return canonicalize(path)
	}
	return abbreviateUnder(path, home)
}

func abbreviateUnder(path, home string) string {
	path = canonicalize(path)
	home = canonicalize(home)
	if path == "" || home == "" {
		return path
	}
	sep := string(filepath.Separator)
	hasPrefix := strings.HasPrefix
	equal := func(a, b string) bool { return a == b }
	if runtime.GOOS == "windows" {
		hasPrefix = func(s, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
		}
		equal = strings.EqualFold
	}
	switch {
	case equal(path, home):
		return "~"
	case hasPrefix(path, home+sep):
		return "~" + path[len(home):]
	default:
		return path
	}
}
