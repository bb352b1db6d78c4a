// Package catalog holds the static registry of navigable content sections.
// Adding or removing a section is a data change here, not a logic change.
package catalog

import "github.com/m2g-app/m2g/internal/apperrors"

type Kind int

const (
	PageGallery Kind = iota
	AudioLyricSheet
	ExternalLink
)

func (k Kind) String() string {
	switch k {
	case AudioLyricSheet:
		return "audio_lyric_sheet"
	case ExternalLink:
		return "external_link"
	default:
		return "page_gallery"
	}
}

// Section is one navigable entry on the home screen. Immutable after startup.
type Section struct {
	Title string
	Kind  Kind
	Icon  string
	// Pages holds asset references for PageGallery sections; may be empty.
	Pages []string
	// Track and Lyrics are set for AudioLyricSheet sections.
	Track  string
	Lyrics string
	// Link is set for ExternalLink sections.
	Link string
}

// Catalog is an ordered, read-only collection of sections.
type Catalog struct {
	sections []Section
	byTitle  map[string]int
}

func New(sections []Section) *Catalog {
	byTitle := make(map[string]int, len(sections))
	for i, s := range sections {
		byTitle[s.Title] = i
	}
	return &Catalog{sections: sections, byTitle: byTitle}
}

// Sections returns the sections in home-screen order. The returned slice is a
// copy; callers cannot mutate the catalog through it.
func (c *Catalog) Sections() []Section {
	out := make([]Section, len(c.sections))
	copy(out, c.sections)
	return out
}

// Lookup finds a section by title.
func (c *Catalog) Lookup(title string) (Section, error) {
	i, ok := c.byTitle[title]
	if !ok {
		return Section{}, apperrors.UnknownSection(title)
	}
	return c.sections[i], nil
}

// IconFile maps an icon token to its bundled asset file.
func IconFile(token string) string {
	if file, ok := featherIcons[token]; ok {
		return file
	}
	return featherIcons["user"]
}

var featherIcons = map[string]string{
	"sunrise":       "sunrise.svg",
	"book-open":     "book-open.svg",
	"music":         "music.svg",
	"camera":        "camera.svg",
	"chevron-right": "chevron-right.svg",
	"home":          "home.svg",
	"user":          "user.svg",
	"arrow-left":    "arrow-left.svg",
	"save":          "save.svg",
	"edit":          "edit.svg",
	"play":          "play-circle.svg",
	"pause":         "pause-circle.svg",
	"stop":          "stop-circle.svg",
}

// Default returns the shipped catalog.
func Default() *Catalog {
	return New([]Section{
		{
			Title: "Lodi Mattutine",
			Kind:  PageGallery,
			Icon:  "sunrise",
			Pages: []string{"lodi1.jpg", "lodi2.jpg", "lodi3.jpg", "lodi4.jpg", "lodi5.jpg"},
		},
		{
			Title: "Libretto",
			Kind:  PageGallery,
			Icon:  "book-open",
			Pages: []string{"lib1.jpg", "lib2.jpg", "lib3.jpg", "lib4.jpg", "lib5.jpg"},
		},
		{
			Title:  "Inno",
			Kind:   AudioLyricSheet,
			Icon:   "music",
			Track:  "inno.mp3",
			Lyrics: hymnText,
		},
		{
			Title: "Foto ricordo",
			Kind:  ExternalLink,
			Icon:  "camera",
			Link:  "https://biografieonline.it/img/bio/gallery/r/Robert_Oppenheimer_1.jpg",
		},
	})
}

const hymnText = `
Sorge il mattino e canta
la luce sopra i monti,
si sveglia la campagna,
si aprono le fonti.

Cammina insieme a noi
la gioia di ogni giorno,
il pane condiviso,
la strada del ritorno.

E quando scende a sera
il cielo si fa d'oro,
rimane nel silenzio
l'eco del nostro coro.
`
