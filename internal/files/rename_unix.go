//go:build !windows

package files

import "os"

// replaceFile moves the finished temp file over the destination. rename(2)
// is atomic on POSIX filesystems.
func replaceFile(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}
