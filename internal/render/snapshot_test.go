package render

import (
	"testing"

	"github.com/m2g-app/m2g/internal/audio"
	"github.com/m2g-app/m2g/internal/catalog"
	"github.com/m2g-app/m2g/internal/nav"
	"github.com/m2g-app/m2g/internal/palette"
	"github.com/m2g-app/m2g/internal/profile"
)

func section(t *testing.T, title string) catalog.Section {
	t.Helper()
	s, err := catalog.Default().Lookup(title)
	if err != nil {
		t.Fatalf("Lookup(%q): %v", title, err)
	}
	return s
}

func TestBuild_FreshInstall(t *testing.T) {
	snap := Build(profile.Default(), nav.State{}, audio.Stopped, catalog.Default().Sections())

	if snap.ActiveView != nav.Home {
		t.Fatalf("ActiveView = %v, want Home", snap.ActiveView)
	}
	if snap.Mode != palette.Light {
		t.Fatalf("Mode = %v, want Light", snap.Mode)
	}
	if snap.Header.WelcomeText != "Bentornato, Utente" {
		t.Fatalf("WelcomeText = %q", snap.Header.WelcomeText)
	}

	wantTitles := []string{"Lodi Mattutine", "Libretto", "Inno", "Foto ricordo"}
	if len(snap.Cards) != len(wantTitles) {
		t.Fatalf("got %d cards, want %d", len(snap.Cards), len(wantTitles))
	}
	for i, want := range wantTitles {
		if snap.Cards[i].Title != want {
			t.Fatalf("card %d = %q, want %q", i, snap.Cards[i].Title, want)
		}
	}

	if snap.Notes.Visible || snap.Reader.Visible {
		t.Fatalf("overlays visible on fresh install")
	}
	if !snap.Profile.AvatarIsDefault {
		t.Fatalf("fresh install should use the default avatar")
	}
	if snap.NavBar.Profile.AvatarRef != "" {
		t.Fatalf("nav avatar = %q, want default", snap.NavBar.Profile.AvatarRef)
	}
}

func TestBuild_DarkModeRecolorsEverything(t *testing.T) {
	p := profile.Default()
	p.ThemeMode = palette.Dark
	snap := Build(p, nav.State{}, audio.Stopped, catalog.Default().Sections())

	darkBg := palette.Color(palette.Dark, palette.Background)
	if snap.Background != darkBg {
		t.Fatalf("Background = %v, want %v", snap.Background, darkBg)
	}
	darkCard := palette.Color(palette.Dark, palette.CardSurface)
	for _, card := range snap.Cards {
		if card.Surface != darkCard {
			t.Fatalf("card %q surface = %v, want %v", card.Title, card.Surface, darkCard)
		}
	}
	if !snap.Profile.ThemeSwitchOn {
		t.Fatalf("theme switch should reflect dark mode")
	}
	if snap.NavBar.Surface != palette.Color(palette.Dark, palette.NavBarSurface) {
		t.Fatalf("navbar surface not recolored")
	}
	if snap.Notes.PaperSurface != palette.Color(palette.Dark, palette.PaperSurface) {
		t.Fatalf("notes paper not recolored")
	}
}

func TestBuild_NavBarActiveStates(t *testing.T) {
	p := profile.Default()

	homeSnap := Build(p, nav.State{Primary: nav.Home}, audio.Stopped, nil)
	if !homeSnap.NavBar.Home.Active || homeSnap.NavBar.Profile.Active {
		t.Fatalf("home view: active flags %v/%v", homeSnap.NavBar.Home.Active, homeSnap.NavBar.Profile.Active)
	}
	primary := palette.Color(palette.Light, palette.Primary)
	if homeSnap.NavBar.Home.Background != primary {
		t.Fatalf("active button background = %v, want primary", homeSnap.NavBar.Home.Background)
	}

	profSnap := Build(p, nav.State{Primary: nav.Profile}, audio.Stopped, nil)
	if profSnap.NavBar.Home.Active || !profSnap.NavBar.Profile.Active {
		t.Fatalf("profile view: active flags %v/%v", profSnap.NavBar.Home.Active, profSnap.NavBar.Profile.Active)
	}
}

func TestBuild_NavAvatarMirrorsProfile(t *testing.T) {
	p := profile.Default()
	p.ImageRef = "/data/m2g/images/abc.jpg"
	snap := Build(p, nav.State{}, audio.Stopped, nil)

	if snap.Profile.AvatarRef != p.ImageRef || snap.NavBar.Profile.AvatarRef != p.ImageRef {
		t.Fatalf("avatar refs diverged: %q vs %q", snap.Profile.AvatarRef, snap.NavBar.Profile.AvatarRef)
	}
	if snap.Profile.AvatarIsDefault {
		t.Fatalf("custom avatar flagged as default")
	}
}

func TestBuild_ReaderGallery(t *testing.T) {
	st := nav.State{Overlay: nav.OverlayReader, Section: section(t, "Libretto")}
	snap := Build(profile.Default(), st, audio.Stopped, nil)

	if !snap.Reader.Visible {
		t.Fatalf("reader should be visible")
	}
	if snap.Reader.Title != "Libretto" || len(snap.Reader.Pages) != 5 {
		t.Fatalf("reader = %q with %d pages", snap.Reader.Title, len(snap.Reader.Pages))
	}
	if snap.Reader.AudioControls {
		t.Fatalf("gallery section must not show audio controls")
	}
	if snap.Reader.EmptyText != "" {
		t.Fatalf("unexpected empty-state text: %q", snap.Reader.EmptyText)
	}
}

func TestBuild_ReaderEmptyGallery(t *testing.T) {
	empty := catalog.Section{Title: "Vuota", Kind: catalog.PageGallery}
	st := nav.State{Overlay: nav.OverlayReader, Section: empty}
	snap := Build(profile.Default(), st, audio.Stopped, nil)

	if snap.Reader.EmptyText != "Nessuna pagina qui." {
		t.Fatalf("empty-state text = %q", snap.Reader.EmptyText)
	}
}

func TestBuild_AudioReaderPlayButton(t *testing.T) {
	st := nav.State{Overlay: nav.OverlayReader, Section: section(t, "Inno")}
	p := profile.Default()

	cases := []struct {
		status   audio.Status
		icon     string
		label    string
		bgDanger bool
	}{
		{audio.Stopped, "play", "RIPRODUCI", false},
		{audio.Playing, "pause", "PAUSA", true},
		{audio.Paused, "play", "RIPRENDI", false},
	}
	for _, tc := range cases {
		snap := Build(p, st, tc.status, nil)
		if !snap.Reader.AudioControls {
			t.Fatalf("%v: audio controls hidden", tc.status)
		}
		btn := snap.Reader.Play
		if btn.Icon != tc.icon || btn.Label != tc.label {
			t.Fatalf("%v: button = %q/%q, want %q/%q", tc.status, btn.Icon, btn.Label, tc.icon, tc.label)
		}
		wantBg := palette.Color(palette.Light, palette.Primary)
		if tc.bgDanger {
			wantBg = palette.Color(palette.Light, palette.Danger)
		}
		if btn.Background != wantBg {
			t.Fatalf("%v: button background = %v, want %v", tc.status, btn.Background, wantBg)
		}
	}
}

func TestBuild_FontSizeFlowsIntoPanels(t *testing.T) {
	p := profile.Default()
	p.FontSize = 24
	st := nav.State{Overlay: nav.OverlayNotes}
	snap := Build(p, st, audio.Stopped, nil)

	if snap.Notes.TextSize != 24 {
		t.Fatalf("notes text size = %v, want 24", snap.Notes.TextSize)
	}
	if snap.Profile.FontSizeLabel != "Grandezza Testo: 24" {
		t.Fatalf("font label = %q", snap.Profile.FontSizeLabel)
	}
	if snap.Reader.TextSize != 24 {
		t.Fatalf("reader text size = %v, want 24", snap.Reader.TextSize)
	}
}
