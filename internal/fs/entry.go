package fs

import (
	"io"
	"os"
	"path/filepath"
	"time"
)

// Entry is one child of a listed directory.
type Entry struct {
	Name      string
	FullPath  string
	IsDir     bool
	IsSymlink bool
	Size      int64
	Modified  time.Time
	Mode      os.FileMode
}

// IsHidden reports whether the entry uses the dotfile convention.
func (e Entry) IsHidden() bool {
	return len(e.Name) > 0 && e.Name[0] == '.'
}

// ReadChildren reads up to limit immediate children of dir, in filesystem
// iteration order (deliberately unsorted; File.ReadDir with a positive n
// preserves directory order). Symlinked directories report IsDir true so
// they can be descended into.
func ReadChildren(dir string, limit int) ([]Entry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	// ReadDir with a positive n reports io.EOF for an empty directory;
	// that is an empty listing, not a failure.
	dirents, err := f.ReadDir(limit)
	if err != nil && err != io.EOF && len(dirents) == 0 {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		info, err := d.Info()
		if err != nil {
			// Entry vanished between readdir and stat; skip it.
			continue
		}

		fullPath := filepath.Join(dir, d.Name())
		isDir := d.IsDir()
		isSymlink := info.Mode()&os.ModeSymlink != 0
		if isSymlink {
			if target, err := os.Stat(fullPath); err == nil {
				isDir = target.IsDir()
			}
		}

		entries = append(entries, Entry{
			Name:      d.Name(),
			FullPath:  fullPath,
			IsDir:     isDir,
			IsSymlink: isSymlink,
			Size:      info.Size(),
			Modified:  info.ModTime(),
			Mode:      info.Mode(),
		})
	}
	return entries, nil
}
