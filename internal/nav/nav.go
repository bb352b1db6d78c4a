// Package nav owns which primary view is active and which overlay panel, if
// any, sits above it.
package nav

import "github.com/m2g-app/m2g/internal/catalog"

type PrimaryView int

const (
	Home PrimaryView = iota
	Profile
)

func (v PrimaryView) String() string {
	if v == Profile {
		return "profile"
	}
	return "home"
}

type OverlayKind int

const (
	OverlayNone OverlayKind = iota
	OverlayNotes
	OverlayReader
)

// State is the full navigation position. Section is meaningful only while
// Overlay is OverlayReader.
type State struct {
	Primary PrimaryView
	Overlay OverlayKind
	Section catalog.Section
}

// Hooks are the coordinated side effects of navigation transitions. Nil
// hooks are skipped.
type Hooks struct {
	// NotesClosed fires when the Notes overlay closes, before the state
	// settles; the ViewModel persists the draft here.
	NotesClosed func()
	// ReaderClosed fires when a Reader overlay closes, carrying the section
	// it was showing.
	ReaderClosed func(catalog.Section)
	// OpenExternal hands an external link to the host platform.
	OpenExternal func(link string)
}

type Controller struct {
	state State
	hooks Hooks
}

func NewController(hooks Hooks) *Controller {
	return &Controller{hooks: hooks}
}

func (c *Controller) State() State {
	return c.state
}

// SelectPrimary switches the view under the overlay; the overlay itself is
// untouched.
func (c *Controller) SelectPrimary(v PrimaryView) {
	c.state.Primary = v
}

// OpenNotes opens the notes overlay. Opening over another overlay is
// rejected so in-flight edits are never lost; reopening Notes is a no-op.
func (c *Controller) OpenNotes() bool {
	switch c.state.Overlay {
	case OverlayNotes:
		return true
	case OverlayNone:
		c.state.Overlay = OverlayNotes
		return true
	default:
		return false
	}
}

// OpenReader opens the reader overlay for a section. External-link sections
// never open an overlay: the link is handed off and the state stays put.
// With any overlay already open the request is rejected outright, external
// links included.
func (c *Controller) OpenReader(section catalog.Section) bool {
	if c.state.Overlay != OverlayNone {
		return false
	}
	if section.Kind == catalog.ExternalLink {
		if c.hooks.OpenExternal != nil {
			c.hooks.OpenExternal(section.Link)
		}
		return true
	}
	c.state.Overlay = OverlayReader
	c.state.Section = section
	return true
}

// CloseOverlay closes whichever overlay is open, firing the matching hook.
// Closing with nothing open is a no-op.
func (c *Controller) CloseOverlay() {
	switch c.state.Overlay {
	case OverlayNotes:
		if c.hooks.NotesClosed != nil {
			c.hooks.NotesClosed()
		}
	case OverlayReader:
		if c.hooks.ReaderClosed != nil {
			c.hooks.ReaderClosed(c.state.Section)
		}
	default:
		return
	}
	c.state.Overlay = OverlayNone
	c.state.Section = catalog.Section{}
}
