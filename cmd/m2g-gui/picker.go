package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/google/uuid"

	"github.com/m2g-app/m2g/internal/apperrors"
	"github.com/m2g-app/m2g/internal/files"
	"github.com/m2g-app/m2g/internal/logger"
	"github.com/m2g-app/m2g/internal/settings"
)

// showAvatarPicker lets the user choose a picture. The file is copied into
// the app's own config area so the stored reference survives the source
// being moved or deleted.
func (a *m2gApp) showAvatarPicker() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		// The copy is file I/O; keep it off the UI thread.
		safeGo("ui.avatar.import", func() {
			defer reader.Close()
			stored, copyErr := copyAvatar(reader)
			a.safeDo("ui.avatar.apply", func() {
				if copyErr != nil {
					logger.Error("Avatar import failed", "error", copyErr)
					a.showError(apperrors.Persistence(copyErr))
					return
				}
				a.vm.SetProfileImage(stored)
			})
		})
	}, a.window)

	fd.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg"}))
	fd.Show()
}

func copyAvatar(reader fyne.URIReadCloser) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}

	dir, err := avatarDir()
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(reader.URI().Name()))
	if ext == "" {
		ext = ".png"
	}
	dest := filepath.Join(dir, uuid.NewString()+ext)
	if err := files.AtomicWrite(dest, data, 0o600); err != nil {
		return "", err
	}
	return dest, nil
}

func avatarDir() (string, error) {
	base, err := settings.DefaultDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(filepath.Dir(base), "avatars")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}
