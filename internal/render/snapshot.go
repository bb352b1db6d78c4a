// Package render derives the full set of display properties from the
// current application state. A Snapshot is immutable: every change replaces
// it wholesale, and every field is recomputed from scratch so no stale color
// or label can survive a theme or navigation change.
package render

import (
	"fmt"
	"image/color"

	"github.com/m2g-app/m2g/internal/audio"
	"github.com/m2g-app/m2g/internal/catalog"
	"github.com/m2g-app/m2g/internal/nav"
	"github.com/m2g-app/m2g/internal/palette"
	"github.com/m2g-app/m2g/internal/profile"
)

// Fixed accents the original design keeps outside the theme tables.
var (
	onPrimary    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	chevronColor = color.NRGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}
)

const notesRuleLines = 30

type Header struct {
	LogoText       string
	LogoBackground color.NRGBA
	LogoTextColor  color.NRGBA
	WelcomeText    string
	TextColor      color.NRGBA
}

type Card struct {
	Title        string
	Icon         string
	Surface      color.NRGBA
	IconSurface  color.NRGBA
	IconTint     color.NRGBA
	TitleColor   color.NRGBA
	ChevronColor color.NRGBA
}

type ProfileForm struct {
	Title            string
	TitleColor       color.NRGBA
	AvatarRef        string
	AvatarIsDefault  bool
	AvatarTint       color.NRGBA
	AvatarBorder     color.NRGBA
	NameLabel        string
	NameValue        string
	NameLimit        int
	TextColor        color.NRGBA
	InputSurface     color.NRGBA
	NotesButtonLabel string
	ButtonBackground color.NRGBA
	ButtonForeground color.NRGBA
	UploadLabel      string
	SettingsTitle    string
	ThemeLabel       string
	ThemeSwitchOn    bool
	FontSizeLabel    string
	FontSliderValue  float64
	FontSliderMin    float64
	FontSliderMax    float64
	AccentColor      color.NRGBA
}

type NotesPanel struct {
	Visible        bool
	Title          string
	Background     color.NRGBA
	PaperSurface   color.NRGBA
	RuleLineColor  color.NRGBA
	RuleLines      int
	Text           string
	TextColor      color.NRGBA
	TextSize       float64
	TextLimit      int
	CloseIconColor color.NRGBA
	SaveIconColor  color.NRGBA
}

type PlayButton struct {
	Icon       string
	Label      string
	Background color.NRGBA
	Foreground color.NRGBA
}

type ReaderPanel struct {
	Visible        bool
	Title          string
	TitleColor     color.NRGBA
	Background     color.NRGBA
	CloseIconColor color.NRGBA
	Pages          []string
	EmptyText      string
	EmptyTextColor color.NRGBA
	Lyrics         string
	LyricsColor    color.NRGBA
	TextSize       float64
	AudioControls  bool
	Play           PlayButton
	StopLabel      string
	StopColor      color.NRGBA
}

type NavButton struct {
	Label      string
	Icon       string
	AvatarRef  string
	Active     bool
	Background color.NRGBA
	Foreground color.NRGBA
}

type NavBar struct {
	Surface color.NRGBA
	Home    NavButton
	Profile NavButton
}

// Snapshot is the complete, resolved description of what the presentation
// layer should show.
type Snapshot struct {
	Mode       palette.Mode
	Background color.NRGBA
	ActiveView nav.PrimaryView
	Header     Header
	Cards      []Card
	Profile    ProfileForm
	Notes      NotesPanel
	Reader     ReaderPanel
	NavBar     NavBar
}

// Build derives a Snapshot. It is a pure function of its inputs; nothing is
// cached between calls.
func Build(p profile.Profile, navState nav.State, playback audio.Status, sections []catalog.Section) Snapshot {
	mode := p.ThemeMode
	c := func(t palette.Token) color.NRGBA { return palette.Color(mode, t) }

	hasCustomAvatar := p.ImageRef != ""

	snap := Snapshot{
		Mode:       mode,
		Background: c(palette.Background),
		ActiveView: navState.Primary,
		Header: Header{
			LogoText:       "M2G",
			LogoBackground: c(palette.Primary),
			LogoTextColor:  onPrimary,
			WelcomeText:    "Bentornato, " + p.DisplayName,
			TextColor:      c(palette.Text),
		},
	}

	snap.Cards = make([]Card, 0, len(sections))
	for _, s := range sections {
		snap.Cards = append(snap.Cards, Card{
			Title:        s.Title,
			Icon:         s.Icon,
			Surface:      c(palette.CardSurface),
			IconSurface:  c(palette.IconBackground),
			IconTint:     c(palette.Primary),
			TitleColor:   c(palette.Text),
			ChevronColor: chevronColor,
		})
	}

	snap.Profile = ProfileForm{
		Title:            "Il tuo Profilo",
		TitleColor:       c(palette.Text),
		AvatarRef:        p.ImageRef,
		AvatarIsDefault:  !hasCustomAvatar,
		AvatarTint:       c(palette.Primary),
		AvatarBorder:     c(palette.Primary),
		NameLabel:        "Il tuo nome",
		NameValue:        p.DisplayName,
		NameLimit:        profile.MaxNameLength,
		TextColor:        c(palette.Text),
		InputSurface:     c(palette.InputSurface),
		NotesButtonLabel: "APRI LE TUE NOTE",
		ButtonBackground: c(palette.Primary),
		ButtonForeground: onPrimary,
		UploadLabel:      "CARICA DALLA GALLERIA",
		SettingsTitle:    "Impostazioni",
		ThemeLabel:       "Modalità Notte",
		ThemeSwitchOn:    mode == palette.Dark,
		FontSizeLabel:    fmt.Sprintf("Grandezza Testo: %d", int(p.FontSize)),
		FontSliderValue:  p.FontSize,
		FontSliderMin:    profile.MinFontSize,
		FontSliderMax:    profile.MaxFontSize,
		AccentColor:      c(palette.Primary),
	}

	snap.Notes = NotesPanel{
		Visible:        navState.Overlay == nav.OverlayNotes,
		Title:          "Le tue Note",
		Background:     c(palette.Background),
		PaperSurface:   c(palette.PaperSurface),
		RuleLineColor:  c(palette.PaperRuleLine),
		RuleLines:      notesRuleLines,
		Text:           p.NotesText,
		TextColor:      c(palette.Text),
		TextSize:       p.FontSize,
		TextLimit:      profile.MaxNotesLength,
		CloseIconColor: c(palette.Text),
		SaveIconColor:  c(palette.Primary),
	}

	snap.Reader = buildReader(p, navState, playback, c)
	snap.NavBar = buildNavBar(p, navState, c)
	return snap
}

func buildReader(p profile.Profile, navState nav.State, playback audio.Status, c func(palette.Token) color.NRGBA) ReaderPanel {
	panel := ReaderPanel{
		Visible:        navState.Overlay == nav.OverlayReader,
		Background:     c(palette.Background),
		TitleColor:     c(palette.Text),
		CloseIconColor: c(palette.Text),
		TextSize:       p.FontSize,
	}
	if !panel.Visible {
		return panel
	}

	section := navState.Section
	panel.Title = section.Title
	switch section.Kind {
	case catalog.AudioLyricSheet:
		panel.AudioControls = true
		panel.Lyrics = section.Lyrics
		panel.LyricsColor = c(palette.Text)
		panel.Play = playButtonFor(playback, c)
		panel.StopLabel = "STOP"
		panel.StopColor = c(palette.Danger)
	default:
		panel.Pages = append([]string(nil), section.Pages...)
		if len(panel.Pages) == 0 {
			panel.EmptyText = "Nessuna pagina qui."
			panel.EmptyTextColor = c(palette.TextSecondary)
		}
	}
	return panel
}

func playButtonFor(playback audio.Status, c func(palette.Token) color.NRGBA) PlayButton {
	switch playback {
	case audio.Playing:
		return PlayButton{Icon: "pause", Label: "PAUSA", Background: c(palette.Danger), Foreground: onPrimary}
	case audio.Paused:
		return PlayButton{Icon: "play", Label: "RIPRENDI", Background: c(palette.Primary), Foreground: onPrimary}
	default:
		return PlayButton{Icon: "play", Label: "RIPRODUCI", Background: c(palette.Primary), Foreground: onPrimary}
	}
}

func buildNavBar(p profile.Profile, navState nav.State, c func(palette.Token) color.NRGBA) NavBar {
	isHome := navState.Primary == nav.Home

	home := NavButton{Label: "HOME", Icon: "home", Active: isHome}
	prof := NavButton{Label: "PROFILO", Icon: "user", Active: !isHome}
	// The compact nav avatar always mirrors the profile avatar.
	prof.AvatarRef = p.ImageRef

	style := func(b *NavButton) {
		if b.Active {
			b.Background = c(palette.Primary)
			b.Foreground = onPrimary
		} else {
			b.Background = c(palette.NavBarSurface)
			b.Foreground = c(palette.Text)
		}
	}
	style(&home)
	style(&prof)

	return NavBar{
		Surface: c(palette.NavBarSurface),
		Home:    home,
		Profile: prof,
	}
}
