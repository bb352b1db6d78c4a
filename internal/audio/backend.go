package audio

// NopBackend satisfies Backend without producing sound. It stands in when no
// audio device is available and in tests that do not count calls.
type NopBackend struct{}

func (NopBackend) Load(string) error { return nil }
func (NopBackend) Play() error       { return nil }
func (NopBackend) Pause() error      { return nil }
func (NopBackend) Resume() error     { return nil }
func (NopBackend) Stop() error       { return nil }
func (NopBackend) Busy() bool        { return false }
