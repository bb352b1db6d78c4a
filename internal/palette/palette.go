// Package palette maps theme modes and color tokens to concrete colors.
// It is the single authority for every color the interface renders.
package palette

import (
	"fmt"
	"image/color"
)

type Mode int

const (
	Light Mode = iota
	Dark
)

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

type Token int

const (
	Background Token = iota
	Primary
	Text
	TextSecondary
	CardSurface
	IconBackground
	NavBarSurface
	InputSurface
	PaperSurface
	PaperRuleLine
	Danger
)

var tokenNames = map[Token]string{
	Background:     "background",
	Primary:        "primary",
	Text:           "text",
	TextSecondary:  "text_secondary",
	CardSurface:    "card_surface",
	IconBackground: "icon_background",
	NavBarSurface:  "navbar_surface",
	InputSurface:   "input_surface",
	PaperSurface:   "paper_surface",
	PaperRuleLine:  "paper_rule_line",
	Danger:         "danger",
}

func (t Token) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("token(%d)", int(t))
}

// Tokens lists every defined token, for exhaustiveness checks.
func Tokens() []Token {
	return []Token{
		Background, Primary, Text, TextSecondary, CardSurface,
		IconBackground, NavBarSurface, InputSurface, PaperSurface,
		PaperRuleLine, Danger,
	}
}

var light = map[Token]color.NRGBA{
	Background:     hex(0xf3f0e9),
	Primary:        hex(0x6a8a73),
	Text:           hex(0x1a1a1a),
	TextSecondary:  hex(0x888888),
	CardSurface:    hex(0xffffff),
	IconBackground: hex(0xdbe4de),
	NavBarSurface:  hex(0xffffff),
	InputSurface:   hex(0xffffff),
	PaperSurface:   hex(0xfcfbf9),
	PaperRuleLine:  hex(0xe0e6e3),
	Danger:         hex(0xd9534f),
}

var dark = map[Token]color.NRGBA{
	Background:     hex(0x1e1e1e),
	Primary:        hex(0x6a8a73),
	Text:           hex(0xffffff),
	TextSecondary:  hex(0xaaaaaa),
	CardSurface:    hex(0x2c2c2c),
	IconBackground: hex(0x3a3a3a),
	NavBarSurface:  hex(0x2c2c2c),
	InputSurface:   hex(0x333333),
	PaperSurface:   hex(0x252525),
	PaperRuleLine:  hex(0x3a3a3a),
	Danger:         hex(0xd9534f),
}

// Color resolves a token for the given mode. An unknown token is a
// programming error and panics; the token set is closed.
func Color(mode Mode, token Token) color.NRGBA {
	table := light
	if mode == Dark {
		table = dark
	}
	c, ok := table[token]
	if !ok {
		panic(fmt.Sprintf("palette: undefined token %s for mode %s", token, mode))
	}
	return c
}

func hex(rgb uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
		A: 0xff,
	}
}
