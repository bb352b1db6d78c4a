// Package settings defines the scalar preference store the app persists
// through, plus its concrete backends. All writes are best effort: a failed
// write is logged and dropped, never surfaced to the caller.
package settings

// Keys used by the app. The set is closed; new features add keys here.
const (
	KeyUserName   = "user_name"
	KeyUserNotes  = "user_notes"
	KeyFontSize   = "font_size"
	KeyDarkMode   = "dark_mode"
	KeyProfilePic = "profile_pic_ref"
)

// Store persists and retrieves scalar user preferences. Getters report
// absence through the second return; callers supply their own defaults.
type Store interface {
	GetString(key string) (string, bool)
	SetString(key, value string)
	GetFloat(key string) (float64, bool)
	SetFloat(key string, value float64)
	GetBool(key string) (bool, bool)
	SetBool(key string, value bool)
}

// Memory is an in-process Store used by tests.
type Memory struct {
	strings map[string]string
	floats  map[string]float64
	bools   map[string]bool
}

func NewMemory() *Memory {
	return &Memory{
		strings: make(map[string]string),
		floats:  make(map[string]float64),
		bools:   make(map[string]bool),
	}
}

func (m *Memory) GetString(key string) (string, bool) {
	v, ok := m.strings[key]
	return v, ok
}

func (m *Memory) SetString(key, value string) { m.strings[key] = value }

func (m *Memory) GetFloat(key string) (float64, bool) {
	v, ok := m.floats[key]
	return v, ok
}

func (m *Memory) SetFloat(key string, value float64) { m.floats[key] = value }

func (m *Memory) GetBool(key string) (bool, bool) {
	v, ok := m.bools[key]
	return v, ok
}

func (m *Memory) SetBool(key string, value bool) { m.bools[key] = value }
