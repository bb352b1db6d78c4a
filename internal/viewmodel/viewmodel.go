// Package viewmodel wires the profile, navigation, audio and catalog into
// the single source of truth the presentation layer consumes. Intents come
// in, exactly one render snapshot goes out.
package viewmodel

import (
	"fmt"

	"github.com/m2g-app/m2g/internal/apperrors"
	"github.com/m2g-app/m2g/internal/audio"
	"github.com/m2g-app/m2g/internal/catalog"
	"github.com/m2g-app/m2g/internal/logger"
	"github.com/m2g-app/m2g/internal/nav"
	"github.com/m2g-app/m2g/internal/palette"
	"github.com/m2g-app/m2g/internal/profile"
	"github.com/m2g-app/m2g/internal/render"
	"github.com/m2g-app/m2g/internal/settings"
)

// Opener hands an external link to the host platform.
type Opener func(link string)

// Listener receives every new render snapshot.
type Listener func(render.Snapshot)

// ViewModel owns all mutable UI-affecting state. Intents run to completion
// one at a time; the single-threaded UI event loop provides the sequencing.
type ViewModel struct {
	profile  *profile.Manager
	nav      *nav.Controller
	audio    *audio.Controller
	catalog  *catalog.Catalog
	listener Listener

	// notesDraft holds unsaved notes edits; it persists on save or when
	// the notes overlay closes.
	notesDraft string
}

func New(store settings.Store, backend audio.Backend, cat *catalog.Catalog, opener Opener) *ViewModel {
	vm := &ViewModel{
		profile: profile.NewManager(store),
		catalog: cat,
	}
	vm.notesDraft = vm.profile.Current().NotesText
	vm.audio = audio.NewController(backend, audioTrack(cat))
	vm.nav = nav.NewController(nav.Hooks{
		NotesClosed: vm.persistNotes,
		ReaderClosed: func(s catalog.Section) {
			if s.Kind == catalog.AudioLyricSheet {
				vm.audio.OnOverlayClosed()
			}
		},
		OpenExternal: func(link string) {
			logger.Info("Handing off external link")
			if opener != nil {
				opener(link)
			}
		},
	})
	return vm
}

func audioTrack(cat *catalog.Catalog) string {
	for _, s := range cat.Sections() {
		if s.Kind == catalog.AudioLyricSheet {
			return s.Track
		}
	}
	return ""
}

// SetListener registers the snapshot consumer and immediately emits the
// current state.
func (vm *ViewModel) SetListener(l Listener) {
	vm.listener = l
	vm.emit()
}

// Render produces a snapshot of the current state.
func (vm *ViewModel) Render() render.Snapshot {
	p := vm.profile.Current()
	p.NotesText = vm.notesDraft
	return render.Build(p, vm.nav.State(), vm.audio.Status(), vm.catalog.Sections())
}

func (vm *ViewModel) emit() {
	if vm.listener != nil {
		vm.listener(vm.Render())
	}
}

// SetDisplayName rejects over-long names and reports the failure; valid
// names persist immediately.
func (vm *ViewModel) SetDisplayName(name string) error {
	err := vm.profile.SetDisplayName(name)
	if err == nil {
		vm.emit()
	}
	return err
}

// SetFontSize clamps to the valid range and returns the effective size.
func (vm *ViewModel) SetFontSize(px float64) float64 {
	effective := vm.profile.SetFontSize(px)
	vm.emit()
	return effective
}

func (vm *ViewModel) SetThemeMode(mode palette.Mode) {
	vm.profile.SetThemeMode(mode)
	vm.emit()
}

// SetProfileImage stores a resolved image reference; unusable references
// fall back to the default avatar. Returns the effective reference.
func (vm *ViewModel) SetProfileImage(ref string) string {
	effective := vm.profile.SetImageRef(ref)
	vm.emit()
	return effective
}

func (vm *ViewModel) SelectView(v nav.PrimaryView) {
	vm.nav.SelectPrimary(v)
	vm.emit()
}

// OpenSection opens the reader for a cataloged section, or hands off an
// external link. Unknown titles cannot happen with the static catalog, but
// the failure mode is defined: an unknown_section error and no state change.
func (vm *ViewModel) OpenSection(title string) error {
	section, err := vm.catalog.Lookup(title)
	if err != nil {
		logger.Error("Section lookup failed", "section", title)
		return err
	}
	if vm.nav.OpenReader(section) && section.Kind != catalog.AudioLyricSheet {
		vm.audio.OnSectionChanged()
	}
	vm.emit()
	return nil
}

func (vm *ViewModel) OpenNotes() {
	vm.nav.OpenNotes()
	vm.emit()
}

// CloseOverlay closes whichever panel is open. Notes drafts persist and
// audio stops through the navigation hooks before the snapshot is built.
func (vm *ViewModel) CloseOverlay() {
	vm.nav.CloseOverlay()
	vm.emit()
}

// EditNotes updates the unsaved notes draft.
func (vm *ViewModel) EditNotes(text string) error {
	if n := len([]rune(text)); n > profile.MaxNotesLength {
		return apperrors.Validation(fmt.Sprintf("notes are %d characters, limit is %d", n, profile.MaxNotesLength))
	}
	vm.notesDraft = text
	vm.emit()
	return nil
}

// SaveNotes persists the current draft.
func (vm *ViewModel) SaveNotes() error {
	err := vm.profile.SetNotesText(vm.notesDraft)
	vm.emit()
	return err
}

func (vm *ViewModel) persistNotes() {
	if err := vm.profile.SetNotesText(vm.notesDraft); err != nil {
		logger.Warn("Notes draft rejected on close", "error", err)
	}
}

// TogglePlayback drives the audio state machine. It only applies while the
// audio reader overlay is open; anywhere else it is a no-op.
func (vm *ViewModel) TogglePlayback() audio.Status {
	if !vm.audioReaderOpen() {
		return vm.audio.Status()
	}
	status := vm.audio.Toggle()
	vm.emit()
	return status
}

// StopPlayback stops and rewinds; a no-op unless the audio reader is open.
func (vm *ViewModel) StopPlayback() audio.Status {
	if !vm.audioReaderOpen() {
		return vm.audio.Status()
	}
	status := vm.audio.Stop()
	vm.emit()
	return status
}

func (vm *ViewModel) audioReaderOpen() bool {
	st := vm.nav.State()
	return st.Overlay == nav.OverlayReader && st.Section.Kind == catalog.AudioLyricSheet
}
