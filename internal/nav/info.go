package nav

import (
	"fmt"
	"os"
	"time"
)

// StatMetadata is the info-bar view of one filesystem entry.
type StatMetadata struct {
	Mode    os.FileMode
	Owner   string
	Group   string
	Size    int64
	ModTime time.Time
	IsDir   bool
}

// Stat collects info-bar metadata for path. Owner and group resolve to
// names where the platform supports it, falling back to numeric IDs.
func Stat(path string) (StatMetadata, error) {
	info, err := os.Stat(path)
	if err != nil {
		return StatMetadata{}, err
	}
	owner, group := ownerGroup(info)
	return StatMetadata{
		Mode:    info.Mode(),
		Owner:   owner,
		Group:   group,
		Size:    info.Size(),
		ModTime: info.ModTime(),
		IsDir:   info.IsDir(),
	}, nil
}

// FormatModTime renders a modification time the way ls -la does: dates in
// the current calendar year as "02 Jan 15:04", older dates as "02 Jan 2006".
func FormatModTime(t, now time.Time) string {
	if t.Year() == now.Year() {
		return t.Format("02 Jan 15:04")
	}
	return t.Format("02 Jan 2006")
}

// FormatSize renders a byte count with decimal units.
func FormatSize(n int64) string {
	if n == 1 {
		return "1 byte"
	}
	if n < 1000 {
		return fmt.Sprintf("%d bytes", n)
	}
	value := float64(n)
	for _, unit := range []string{"kB", "MB", "GB", "TB", "PB"} {
		value /= 1000
		if value < 1000 {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
	}
	return fmt.Sprintf("%.1f EB", value/1000)
}
