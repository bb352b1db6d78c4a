// Package profile owns the persisted user record: display name, notes,
// font size, theme mode and profile image reference.
package profile

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/m2g-app/m2g/internal/apperrors"
	"github.com/m2g-app/m2g/internal/logger"
	"github.com/m2g-app/m2g/internal/palette"
	"github.com/m2g-app/m2g/internal/settings"
)

const (
	DefaultName     = "Utente"
	DefaultFontSize = 16

	MinFontSize = 12
	MaxFontSize = 30

	// MaxNameLength counts user-perceived characters, not bytes.
	MaxNameLength  = 14
	MaxNotesLength = 10000
)

// Profile is the persisted user record. An empty ImageRef means the default
// avatar token.
type Profile struct {
	DisplayName string
	NotesText   string
	FontSize    float64
	ThemeMode   palette.Mode
	ImageRef    string
}

func Default() Profile {
	return Profile{
		DisplayName: DefaultName,
		NotesText:   "",
		FontSize:    DefaultFontSize,
		ThemeMode:   palette.Light,
		ImageRef:    "",
	}
}

// Manager loads the profile at startup and writes every mutation through to
// the store immediately. Store failures never propagate; the store logs and
// drops them.
type Manager struct {
	store settings.Store
	p     Profile
}

func NewManager(store settings.Store) *Manager {
	m := &Manager{store: store, p: Default()}
	m.load()
	return m
}

func (m *Manager) load() {
	if name, ok := m.store.GetString(settings.KeyUserName); ok && name != "" {
		m.p.DisplayName = name
	}
	if notes, ok := m.store.GetString(settings.KeyUserNotes); ok {
		m.p.NotesText = notes
	}
	if size, ok := m.store.GetFloat(settings.KeyFontSize); ok {
		clamped, changed := ClampFontSize(size)
		if changed {
			logger.Warn("Font size clamped", "requested", size, "effective", clamped)
			m.store.SetFloat(settings.KeyFontSize, clamped)
		}
		m.p.FontSize = clamped
	}
	if dark, ok := m.store.GetBool(settings.KeyDarkMode); ok && dark {
		m.p.ThemeMode = palette.Dark
	}
	if ref, ok := m.store.GetString(settings.KeyProfilePic); ok {
		clean := SanitizeImageRef(ref)
		if clean != ref {
			logger.Warn("Discarding unusable profile image reference")
			m.store.SetString(settings.KeyProfilePic, clean)
		}
		m.p.ImageRef = clean
	}
}

// Current returns a copy of the profile record.
func (m *Manager) Current() Profile {
	return m.p
}

// SetDisplayName rejects names over the length limit and leaves the profile
// unchanged; valid names persist immediately.
func (m *Manager) SetDisplayName(name string) error {
	if n := uniseg.GraphemeClusterCount(name); n > MaxNameLength {
		return apperrors.Validation(fmt.Sprintf("name is %d characters, limit is %d", n, MaxNameLength))
	}
	m.p.DisplayName = name
	m.store.SetString(settings.KeyUserName, name)
	return nil
}

func (m *Manager) SetNotesText(text string) error {
	if n := len([]rune(text)); n > MaxNotesLength {
		return apperrors.Validation(fmt.Sprintf("notes are %d characters, limit is %d", n, MaxNotesLength))
	}
	m.p.NotesText = text
	m.store.SetString(settings.KeyUserNotes, text)
	return nil
}

// SetFontSize clamps out-of-range values instead of rejecting them and
// returns the effective size.
func (m *Manager) SetFontSize(px float64) float64 {
	clamped, changed := ClampFontSize(px)
	if changed {
		logger.Warn("Font size clamped", "requested", px, "effective", clamped)
	}
	m.p.FontSize = clamped
	m.store.SetFloat(settings.KeyFontSize, clamped)
	return clamped
}

func (m *Manager) SetThemeMode(mode palette.Mode) {
	m.p.ThemeMode = mode
	m.store.SetBool(settings.KeyDarkMode, mode == palette.Dark)
}

// SetImageRef stores a resolved image reference. References that carry
// another platform's path convention would never resolve on this device, so
// they fall back to the default avatar.
func (m *Manager) SetImageRef(ref string) string {
	clean := SanitizeImageRef(ref)
	if clean != ref {
		logger.Warn("Rejected foreign-looking profile image reference")
	}
	m.p.ImageRef = clean
	m.store.SetString(settings.KeyProfilePic, clean)
	return clean
}

func ClampFontSize(px float64) (float64, bool) {
	switch {
	case px < MinFontSize:
		return MinFontSize, true
	case px > MaxFontSize:
		return MaxFontSize, true
	default:
		return px, false
	}
}

// SanitizeImageRef drops references carrying the other platform's path
// convention and the legacy default-avatar file name, returning "" for the
// default avatar token. A ref written on Windows (drive letter, backslashes)
// never resolves on unix and vice versa; the host's own convention passes
// through untouched.
func SanitizeImageRef(ref string) string {
	return sanitizeImageRefFor(runtime.GOOS, ref)
}

func sanitizeImageRefFor(goos, ref string) string {
	if ref == "" || ref == catalogDefaultAvatar {
		return ""
	}
	if foreignImageRef(goos, ref) {
		return ""
	}
	return ref
}

func foreignImageRef(goos, ref string) bool {
	if goos == "windows" {
		// Rooted without a volume: a unix absolute path.
		return strings.HasPrefix(ref, "/")
	}
	if strings.Contains(ref, `\`) {
		return true
	}
	return len(ref) >= 2 && ref[1] == ':' && isASCIILetter(ref[0])
}

const catalogDefaultAvatar = "user.svg"

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
