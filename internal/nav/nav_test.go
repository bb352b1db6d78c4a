package nav

import (
	"testing"

	"github.com/m2g-app/m2g/internal/catalog"
)

func mustSection(t *testing.T, title string) catalog.Section {
	t.Helper()
	s, err := catalog.Default().Lookup(title)
	if err != nil {
		t.Fatalf("Lookup(%q): %v", title, err)
	}
	return s
}

func TestSelectPrimary_LeavesOverlayAlone(t *testing.T) {
	c := NewController(Hooks{})
	if !c.OpenNotes() {
		t.Fatalf("OpenNotes rejected on empty state")
	}
	c.SelectPrimary(Profile)
	st := c.State()
	if st.Primary != Profile || st.Overlay != OverlayNotes {
		t.Fatalf("state = %+v, want Profile under Notes overlay", st)
	}
}

func TestOverlayMutualExclusion(t *testing.T) {
	c := NewController(Hooks{})
	libretto := mustSection(t, "Libretto")

	if !c.OpenReader(libretto) {
		t.Fatalf("OpenReader rejected on empty state")
	}
	if c.OpenNotes() {
		t.Fatalf("OpenNotes accepted over an open Reader")
	}
	if st := c.State(); st.Overlay != OverlayReader || st.Section.Title != "Libretto" {
		t.Fatalf("reader overlay lost: %+v", st)
	}

	c.CloseOverlay()
	if !c.OpenReader(libretto) {
		t.Fatalf("OpenReader rejected after close")
	}
}

func TestOpenNotes_IdempotentWhileOpen(t *testing.T) {
	c := NewController(Hooks{})
	c.OpenNotes()
	if !c.OpenNotes() {
		t.Fatalf("reopening Notes should be an accepted no-op")
	}
	if c.State().Overlay != OverlayNotes {
		t.Fatalf("overlay = %v, want Notes", c.State().Overlay)
	}
}

func TestOpenReader_ExternalLinkShortCircuits(t *testing.T) {
	var opened string
	c := NewController(Hooks{OpenExternal: func(link string) { opened = link }})
	foto := mustSection(t, "Foto ricordo")

	before := c.State()
	if !c.OpenReader(foto) {
		t.Fatalf("external link handoff reported as rejected")
	}
	if opened != foto.Link {
		t.Fatalf("opener got %q, want %q", opened, foto.Link)
	}
	st := c.State()
	if st.Primary != before.Primary || st.Overlay != before.Overlay || st.Section.Title != before.Section.Title {
		t.Fatalf("navigation state changed on external link: %+v", st)
	}
}

func TestOpenReader_ExternalLinkRejectedUnderOverlay(t *testing.T) {
	var opened string
	c := NewController(Hooks{OpenExternal: func(link string) { opened = link }})
	foto := mustSection(t, "Foto ricordo")

	c.OpenNotes()
	if c.OpenReader(foto) {
		t.Fatalf("external link handoff accepted over an open overlay")
	}
	if opened != "" {
		t.Fatalf("opener fired under an open overlay: %q", opened)
	}
	if st := c.State(); st.Overlay != OverlayNotes {
		t.Fatalf("overlay = %v, want Notes untouched", st.Overlay)
	}
}

func TestCloseOverlay_FiresHooksOnce(t *testing.T) {
	notesClosed := 0
	var readerClosed []string
	c := NewController(Hooks{
		NotesClosed:  func() { notesClosed++ },
		ReaderClosed: func(s catalog.Section) { readerClosed = append(readerClosed, s.Title) },
	})

	c.OpenNotes()
	c.CloseOverlay()
	c.CloseOverlay() // second close is a no-op
	if notesClosed != 1 {
		t.Fatalf("notes hook fired %d times, want 1", notesClosed)
	}
	if c.State().Overlay != OverlayNone {
		t.Fatalf("overlay = %v, want None", c.State().Overlay)
	}

	c.OpenReader(mustSection(t, "Inno"))
	c.CloseOverlay()
	if len(readerClosed) != 1 || readerClosed[0] != "Inno" {
		t.Fatalf("reader hook calls = %v", readerClosed)
	}
}
