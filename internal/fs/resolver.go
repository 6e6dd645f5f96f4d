package fs

import (
	"os"
	"path/filepath"
	"strings"
)

// Resolve expands a leading "~" and returns the absolute, symlink-resolved
// form of raw. The result is canonical: suitable as a cache key and for
// equality comparison with other resolved paths.
//
// Resolve touches filesystem metadata (symlink resolution), so callers on
// the interactive loop that cannot tolerate a blocking call must invoke it
// from a worker goroutine.
func Resolve(raw string) (string, error) {
	expanded, err := ExpandHome(raw)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		// The deepest existing ancestor still resolves; a partially typed
		// path keeps its unresolved tail so completion can work on it.
		if os.IsNotExist(err) {
			return filepath.Clean(abs), nil
		}
		return "", err
	}
	return resolved, nil
}

// ExpandHome replaces a leading "~" or "~/" with the current user's home
// directory. Other strings pass through unchanged.
func ExpandHome(raw string) (string, error) {
	if raw != "~" && !strings.HasPrefix(raw, "~"+string(filepath.Separator)) {
		return raw, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if raw == "~" {
		return home, nil
	}
	return filepath.Join(home, raw[2:]), nil
}

// IsDirectory reports whether path currently denotes a directory. It fails
// closed: any stat error reads as "not a directory".
func IsDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
