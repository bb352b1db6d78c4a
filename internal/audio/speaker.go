package audio

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
)

// SpeakerBackend plays an MP3 track through the system speaker via beep.
type SpeakerBackend struct {
	mu       sync.Mutex
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	ready    bool
}

func NewSpeakerBackend() *SpeakerBackend {
	return &SpeakerBackend{}
}

func (b *SpeakerBackend) Load(track string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	f, err := os.Open(track)
	if err != nil {
		return err
	}
	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return err
	}
	if b.streamer != nil {
		b.streamer.Close()
	}
	b.streamer = streamer
	b.format = format
	if !b.ready {
		if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
			return err
		}
		b.ready = true
	}
	return nil
}

func (b *SpeakerBackend) Play() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.streamer == nil || !b.ready {
		return errors.New("audio: no track loaded")
	}
	speaker.Clear()
	if err := b.streamer.Seek(0); err != nil {
		return err
	}
	b.ctrl = &beep.Ctrl{Streamer: b.streamer}
	speaker.Play(b.ctrl)
	return nil
}

func (b *SpeakerBackend) Pause() error {
	return b.setPaused(true)
}

func (b *SpeakerBackend) Resume() error {
	return b.setPaused(false)
}

func (b *SpeakerBackend) setPaused(paused bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ctrl == nil {
		return errors.New("audio: nothing playing")
	}
	speaker.Lock()
	b.ctrl.Paused = paused
	speaker.Unlock()
	return nil
}

// Stop silences the speaker and rewinds the track.
func (b *SpeakerBackend) Stop() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.ready {
		return nil
	}
	speaker.Clear()
	b.ctrl = nil
	if b.streamer != nil {
		return b.streamer.Seek(0)
	}
	return nil
}

func (b *SpeakerBackend) Busy() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ctrl == nil || b.streamer == nil {
		return false
	}
	speaker.Lock()
	paused := b.ctrl.Paused
	speaker.Unlock()
	return !paused && b.streamer.Position() < b.streamer.Len()
}
