// Package audio owns the single playback stream. The Controller is the only
// component allowed to talk to the Backend.
package audio

import "github.com/m2g-app/m2g/internal/logger"

type Status int

const (
	Stopped Status = iota
	Playing
	Paused
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "stopped"
	}
}

// Backend controls one audio stream. Implementations must tolerate calls in
// any order; Stop implies a seek back to the start of the track.
type Backend interface {
	Load(track string) error
	Play() error
	Pause() error
	Resume() error
	Stop() error
	Busy() bool
}

// Controller is the playback state machine. Backend failures are swallowed
// and the state still advances: a dead audio device must not take the UI
// down with it, the worst case is silence.
type Controller struct {
	backend Backend
	track   string
	status  Status
	loaded  bool
}

func NewController(backend Backend, track string) *Controller {
	return &Controller{backend: backend, track: track}
}

func (c *Controller) Status() Status {
	return c.status
}

// Toggle advances Stopped→Playing, Playing→Paused, Paused→Playing, issuing
// exactly one transition call to the backend.
func (c *Controller) Toggle() Status {
	switch c.status {
	case Stopped:
		if !c.loaded {
			if err := c.backend.Load(c.track); err != nil {
				logger.Warn("Audio track failed to load", "track", c.track, "error", err)
			}
			c.loaded = true
		}
		if err := c.backend.Play(); err != nil {
			logger.Warn("Audio play failed", "error", err)
		}
		c.status = Playing
	case Playing:
		if err := c.backend.Pause(); err != nil {
			logger.Warn("Audio pause failed", "error", err)
		}
		c.status = Paused
	case Paused:
		if err := c.backend.Resume(); err != nil {
			logger.Warn("Audio resume failed", "error", err)
		}
		c.status = Playing
	}
	return c.status
}

// Stop rewinds to the start and lands in Stopped from any state. Calling it
// while already Stopped makes no backend call.
func (c *Controller) Stop() Status {
	if c.status == Stopped {
		return c.status
	}
	if err := c.backend.Stop(); err != nil {
		logger.Warn("Audio stop failed", "error", err)
	}
	c.status = Stopped
	return c.status
}

// OnOverlayClosed forces a stop: playback must never continue once its
// reader view is gone.
func (c *Controller) OnOverlayClosed() {
	c.Stop()
}

// OnSectionChanged forces a stop when navigation moves to another section.
func (c *Controller) OnSectionChanged() {
	c.Stop()
}
