//go:build windows

package files

import "golang.org/x/sys/windows"

// reparsePoint reports whether the path carries the reparse attribute;
// junctions and symlinks both do, and Lstat alone misses junctions.
func reparsePoint(path string) (bool, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false, err
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return false, err
	}
	return attrs&windows.FILE_ATTRIBUTE_REPARSE_POINT != 0, nil
}
