//go:build windows

package nav

import "os"

// Windows has no cheap uid/gid notion; the info bar omits owner and group.
func ownerGroup(_ os.FileInfo) (string, string) {
	return "", ""
}
