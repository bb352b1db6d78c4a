package files

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func skipWithoutSymlinks(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation not generally permitted on Windows")
	}
}

func TestRejectSymlinkPath(t *testing.T) {
	skipWithoutSymlinks(t)

	t.Run("DirectLink", func(t *testing.T) {
		tmp := t.TempDir()
		target := filepath.Join(tmp, "real_notes.txt")
		if err := os.WriteFile(target, []byte("appunti"), 0o600); err != nil {
			t.Fatalf("write target: %v", err)
		}
		link := filepath.Join(tmp, "note_export.txt")
		if err := os.Symlink(target, link); err != nil {
			t.Fatalf("symlink: %v", err)
		}
		if err := RejectSymlinkPath(link); err == nil {
			t.Fatal("expected rejection of symlinked destination")
		}
	})

	t.Run("LinkedParent", func(t *testing.T) {
		tmp := t.TempDir()
		realDir := filepath.Join(tmp, "real")
		if err := os.MkdirAll(realDir, 0o700); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		linkDir := filepath.Join(tmp, "exports")
		if err := os.Symlink(realDir, linkDir); err != nil {
			t.Fatalf("symlink dir: %v", err)
		}
		if err := RejectSymlinkPath(filepath.Join(linkDir, "note_export.txt")); err == nil {
			t.Fatal("expected rejection of symlinked parent directory")
		}
	})

	t.Run("LinkedAncestor", func(t *testing.T) {
		tmp := t.TempDir()
		realDir := filepath.Join(tmp, "real", "nested")
		if err := os.MkdirAll(realDir, 0o700); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		linkDir := filepath.Join(tmp, "exports")
		if err := os.Symlink(filepath.Join(tmp, "real"), linkDir); err != nil {
			t.Fatalf("symlink dir: %v", err)
		}
		if err := RejectSymlinkPath(filepath.Join(linkDir, "nested", "note_export.txt")); err == nil {
			t.Fatal("expected rejection of symlinked ancestor directory")
		}
	})

	t.Run("MissingComponentsOK", func(t *testing.T) {
		tmp := t.TempDir()
		path := filepath.Join(tmp, "not", "yet", "there.txt")
		if err := RejectSymlinkPath(path); err != nil {
			t.Fatalf("unexpected rejection of nonexistent path: %v", err)
		}
	})
}

func TestAtomicWriteRefusesSymlink(t *testing.T) {
	skipWithoutSymlinks(t)

	tmp := t.TempDir()
	target := filepath.Join(tmp, "real_notes.txt")
	if err := os.WriteFile(target, []byte("appunti"), 0o600); err != nil {
		t.Fatalf("write target: %v", err)
	}
	link := filepath.Join(tmp, "note_export.txt")
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	if err := AtomicWrite(link, []byte("nuovi"), 0o600); err == nil {
		t.Fatal("expected AtomicWrite to refuse the symlinked destination")
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read target: %v", err)
	}
	if string(data) != "appunti" {
		t.Fatalf("target modified through symlink: %q", data)
	}
}
