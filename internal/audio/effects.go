package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-silverball/internal/games/silverball/engine"
)

// Effect durations.
const (
	BounceDuration  = 60 * time.Millisecond
	SuccessNoteTime = 90 * time.Millisecond
	FailureDuration = 400 * time.Millisecond
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a mono oscillator that ends after duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with attack and release ramps over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := max(e.total-e.release, e.attack)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, false
		}

		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		} else if e.position >= releaseStart && e.release > 0 {
			vol = float64(e.total-e.position) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear volume. Log2(0) is -Inf, so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateBounceSound is a short dull knock.
func CreateBounceSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(180, BounceDuration, WaveSine, rate)
	return NewEnvelope(osc, BounceDuration, 2*time.Millisecond, 50*time.Millisecond, rate)
}

// CreateSuccessSound is a rising arpeggio (C6, E6, G6).
func CreateSuccessSound(rate beep.SampleRate) beep.Streamer {
	notes := []float64{1046.50, 1318.51, 1567.98}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		osc := NewOscillator(f, SuccessNoteTime, WaveSquare, rate)
		parts = append(parts, newVolume(NewEnvelope(osc, SuccessNoteTime, 5*time.Millisecond, 40*time.Millisecond, rate), 0.5))
	}
	return beep.Seq(parts...)
}

// CreateFailureSound is a low saw buzz mixed with noise.
func CreateFailureSound(rate beep.SampleRate) beep.Streamer {
	buzz := NewEnvelope(NewOscillator(110, FailureDuration, WaveSaw, rate), FailureDuration, 5*time.Millisecond, 250*time.Millisecond, rate)
	noise := NewEnvelope(NewOscillator(0, FailureDuration, WaveNoise, rate), FailureDuration, 0, 300*time.Millisecond, rate)
	return beep.Take(rate.N(FailureDuration), beep.Mix(newVolume(buzz, 0.7), newVolume(noise, 0.2)))
}

// Effect returns a fresh streamer for sound at the given master volume.
func Effect(sound engine.Sound, volume float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch sound {
	case engine.SoundBounce:
		s = CreateBounceSound(rate)
	case engine.SoundSuccess:
		s = CreateSuccessSound(rate)
	case engine.SoundFailure:
		s = CreateFailureSound(rate)
	default:
		return nil
	}
	return newVolume(s, volume)
}
