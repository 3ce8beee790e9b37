// Package audio synthesizes Silverball's sound effects and plays them
// through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-silverball/internal/config"
	"github.com/vovakirdan/tui-silverball/internal/games/silverball/engine"
)

// Sink plays engine sounds on the speaker. Play never blocks on audio
// output; effects are queued into a mixer drained by the speaker.
type Sink struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	initialized bool
}

// NewSink creates a sink. Call Init before Play.
func NewSink(cfg config.SilverballAudio) *Sink {
	return &Sink{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.Volume,
	}
}

// Init opens the speaker with a 100ms buffer.
func (s *Sink) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play queues a sound. It is a no-op before Init or after Close.
func (s *Sink) Play(sound engine.Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	st := Effect(sound, s.volume, s.rate)
	if st == nil {
		return
	}

	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops playback and releases the speaker.
func (s *Sink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.initialized = false
}

// Null discards every sound.
type Null struct{}

// Play does nothing.
func (Null) Play(engine.Sound) {}

// Close does nothing.
func (Null) Close() {}

// Player is an engine.AudioSink that must be closed.
type Player interface {
	engine.AudioSink
	Close()
}

// Open returns a speaker-backed player, or Null when audio is disabled or
// the speaker is unavailable (no device, running over SSH).
func Open(cfg config.SilverballAudio, logger *log.Logger) Player {
	if !cfg.Enabled {
		return Null{}
	}
	sink := NewSink(cfg)
	if err := sink.Init(); err != nil {
		if logger != nil {
			logger.Warn("audio disabled", "err", err)
		}
		return Null{}
	}
	return sink
}
