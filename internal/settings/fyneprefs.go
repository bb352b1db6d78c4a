package settings

import "fyne.io/fyne/v2"

// Prefs adapts fyne.Preferences to the Store contract. It is the default
// backend for the GUI.
type Prefs struct {
	p fyne.Preferences
}

func NewPrefs(p fyne.Preferences) *Prefs {
	return &Prefs{p: p}
}

// fyne.Preferences has no explicit absence check, so each getter probes the
// key with two different fallbacks: when both leak through unchanged the key
// is absent.

func (s *Prefs) GetString(key string) (string, bool) {
	if s.p.StringWithFallback(key, "") != s.p.StringWithFallback(key, "\x00") {
		return "", false
	}
	return s.p.String(key), true
}

func (s *Prefs) SetString(key, value string) {
	s.p.SetString(key, value)
}

func (s *Prefs) GetFloat(key string) (float64, bool) {
	if s.p.FloatWithFallback(key, 0) != s.p.FloatWithFallback(key, -1) {
		return 0, false
	}
	return s.p.Float(key), true
}

func (s *Prefs) SetFloat(key string, value float64) {
	s.p.SetFloat(key, value)
}

func (s *Prefs) GetBool(key string) (bool, bool) {
	if s.p.BoolWithFallback(key, false) != s.p.BoolWithFallback(key, true) {
		return false, false
	}
	return s.p.Bool(key), true
}

func (s *Prefs) SetBool(key string, value bool) {
	s.p.SetBool(key, value)
}
