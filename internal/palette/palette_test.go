package palette

import (
	"image/color"
	"testing"
)

func TestColor_TotalOverBothModes(t *testing.T) {
	for _, mode := range []Mode{Light, Dark} {
		for _, token := range Tokens() {
			got := Color(mode, token)
			if got.A == 0 {
				t.Fatalf("Color(%s, %s) returned a fully transparent color", mode, token)
			}
			if again := Color(mode, token); again != got {
				t.Fatalf("Color(%s, %s) is not deterministic", mode, token)
			}
		}
	}
}

func TestColor_KnownValues(t *testing.T) {
	cases := []struct {
		mode  Mode
		token Token
		want  color.NRGBA
	}{
		{Light, Background, color.NRGBA{R: 0xf3, G: 0xf0, B: 0xe9, A: 0xff}},
		{Light, Primary, color.NRGBA{R: 0x6a, G: 0x8a, B: 0x73, A: 0xff}},
		{Dark, Background, color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}},
		{Dark, Primary, color.NRGBA{R: 0x6a, G: 0x8a, B: 0x73, A: 0xff}},
		{Dark, CardSurface, color.NRGBA{R: 0x2c, G: 0x2c, B: 0x2c, A: 0xff}},
		{Light, Danger, color.NRGBA{R: 0xd9, G: 0x53, B: 0x4f, A: 0xff}},
	}
	for _, tc := range cases {
		if got := Color(tc.mode, tc.token); got != tc.want {
			t.Fatalf("Color(%s, %s) = %#v, want %#v", tc.mode, tc.token, got, tc.want)
		}
	}
}

func TestColor_UnknownTokenPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on undefined token")
		}
	}()
	Color(Light, Token(999))
}

func TestModeString(t *testing.T) {
	if Light.String() != "light" || Dark.String() != "dark" {
		t.Fatalf("unexpected mode names: %q, %q", Light, Dark)
	}
}
