package catalog

import (
	"testing"

	"github.com/m2g-app/m2g/internal/apperrors"
)

func TestDefault_OrderAndKinds(t *testing.T) {
	sections := Default().Sections()
	wantTitles := []string{"Lodi Mattutine", "Libretto", "Inno", "Foto ricordo"}
	if len(sections) != len(wantTitles) {
		t.Fatalf("got %d sections, want %d", len(sections), len(wantTitles))
	}
	for i, want := range wantTitles {
		if sections[i].Title != want {
			t.Fatalf("section %d = %q, want %q", i, sections[i].Title, want)
		}
	}
	if sections[0].Kind != PageGallery || len(sections[0].Pages) != 5 {
		t.Fatalf("Lodi Mattutine: kind %v, %d pages", sections[0].Kind, len(sections[0].Pages))
	}
	if sections[2].Kind != AudioLyricSheet || sections[2].Track != "inno.mp3" || sections[2].Lyrics == "" {
		t.Fatalf("Inno section incomplete: %+v", sections[2])
	}
	if sections[3].Kind != ExternalLink || sections[3].Link == "" {
		t.Fatalf("Foto ricordo section incomplete: %+v", sections[3])
	}
}

func TestLookup(t *testing.T) {
	c := Default()

	s, err := c.Lookup("Libretto")
	if err != nil {
		t.Fatalf("Lookup(Libretto): %v", err)
	}
	if s.Icon != "book-open" {
		t.Fatalf("Libretto icon = %q, want book-open", s.Icon)
	}

	_, err = c.Lookup("Salmi")
	if err == nil {
		t.Fatalf("expected error for unknown title")
	}
	if kind, ok := apperrors.KindOf(err); !ok || kind != apperrors.KindUnknownSection {
		t.Fatalf("Lookup error kind = %v, want unknown_section", kind)
	}
}

func TestSections_ReturnsCopy(t *testing.T) {
	c := Default()
	first := c.Sections()
	first[0].Title = "mutated"
	if c.Sections()[0].Title != "Lodi Mattutine" {
		t.Fatalf("catalog mutated through Sections() result")
	}
}

func TestIconFile(t *testing.T) {
	if got := IconFile("music"); got != "music.svg" {
		t.Fatalf("IconFile(music) = %q", got)
	}
	if got := IconFile("no-such-icon"); got != "user.svg" {
		t.Fatalf("IconFile fallback = %q, want user.svg", got)
	}
}
