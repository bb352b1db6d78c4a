//go:build !windows

package files

// Reparse points are a Windows concept; symlink detection via Lstat covers
// the unix side.
func reparsePoint(string) (bool, error) {
	return false, nil
}
