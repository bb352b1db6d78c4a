package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/m2g-app/m2g/internal/palette"
)

// m2gTheme maps the palette onto Fyne's theme slots and scales the base text
// size to the user's preference.
type m2gTheme struct {
	mode     palette.Mode
	textSize float32
}

func newM2gTheme(mode palette.Mode, textSize float64) m2gTheme {
	return m2gTheme{mode: mode, textSize: float32(textSize)}
}

func (t m2gTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	variant := theme.VariantLight
	if t.mode == palette.Dark {
		variant = theme.VariantDark
	}
	switch name {
	case theme.ColorNameBackground:
		return palette.Color(t.mode, palette.Background)
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return palette.Color(t.mode, palette.Primary)
	case theme.ColorNameForeground:
		return palette.Color(t.mode, palette.Text)
	case theme.ColorNamePlaceHolder:
		return palette.Color(t.mode, palette.TextSecondary)
	case theme.ColorNameInputBackground:
		return palette.Color(t.mode, palette.InputSurface)
	case theme.ColorNameError:
		return palette.Color(t.mode, palette.Danger)
	case theme.ColorNameButton:
		return palette.Color(t.mode, palette.CardSurface)
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (t m2gTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText {
		return t.textSize
	}
	return theme.DefaultTheme().Size(name)
}

func (t m2gTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t m2gTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
