// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"fmt"
	"time"
)

// Collision policies.
const (
	PolicyCorner = "corner" // corner-aware reflection (rotation off the corner normal)
	PolicyAxis   = "axis"   // axis-only fallback, corners bounce like faces
)

// SilverballConfig contains all configuration for the tilt-ball game.
type SilverballConfig struct {
	Physics   SilverballPhysics   `yaml:"physics"`
	Collision SilverballCollision `yaml:"collision"`
	Timing    SilverballTiming    `yaml:"timing"`
	Gameplay  SilverballGameplay  `yaml:"gameplay"`
	Audio     SilverballAudio     `yaml:"audio"`
}

// SilverballPhysics defines physics tunables. Speeds and accelerations are
// authored for a playfield whose base dimension is ReferenceBase units and
// are rescaled to the actual layout at level start.
type SilverballPhysics struct {
	BounceFactor              float64 `yaml:"bounce_factor"`                // Restitution on faces and walls
	HaltBallThreshold         float64 `yaml:"halt_ball_threshold"`          // Velocity delta that keeps the ball at its previous position
	BounceSoundThreshold      float64 `yaml:"bounce_sound_threshold"`       // Min wall impact speed for a bounce sound
	BounceAngleSoundThreshold float64 `yaml:"bounce_angle_sound_threshold"` // Degrees of direction change for an obstacle bounce sound
	AccelerationScale         float64 `yaml:"acceleration_scale"`           // World units/s² per unit of tilt
	ReferenceBase             float64 `yaml:"reference_base"`
}

// SilverballCollision selects the obstacle collision policy.
type SilverballCollision struct {
	Policy string `yaml:"policy"` // "corner" or "axis"
}

// SilverballTiming defines the fixed simulation rate.
type SilverballTiming struct {
	TickMS int `yaml:"tick_ms"`
}

// TickInterval returns the tick period as a duration.
func (t SilverballTiming) TickInterval() time.Duration {
	return time.Duration(t.TickMS) * time.Millisecond
}

// TickRate returns ticks per second, at least 1.
func (t SilverballTiming) TickRate() int {
	if t.TickMS <= 0 {
		return 1
	}
	return max(1, 1000/t.TickMS)
}

// SilverballGameplay defines run-level parameters.
type SilverballGameplay struct {
	TimeScale float64 `yaml:"time_scale"` // Multiplier applied to every level's time limit
	MaxTilt   float64 `yaml:"max_tilt"`   // Largest tilt per axis from keyboard input
	TiltStep  float64 `yaml:"tilt_step"`  // Tilt added per key press
}

// SilverballAudio configures the synthesized sound effects.
type SilverballAudio struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`      // Master volume in [0, 1]
	SampleRate int     `yaml:"sample_rate"` // Hz
}

// Validate checks that every value is usable by the simulator.
func (c SilverballConfig) Validate() error {
	p := c.Physics
	switch {
	case p.BounceFactor < 0 || p.BounceFactor > 1:
		return fmt.Errorf("config: bounce_factor %v outside [0, 1]", p.BounceFactor)
	case p.HaltBallThreshold < 0:
		return fmt.Errorf("config: halt_ball_threshold must not be negative")
	case p.BounceSoundThreshold < 0:
		return fmt.Errorf("config: bounce_sound_threshold must not be negative")
	case p.BounceAngleSoundThreshold < 0 || p.BounceAngleSoundThreshold > 180:
		return fmt.Errorf("config: bounce_angle_sound_threshold %v outside [0, 180]", p.BounceAngleSoundThreshold)
	case p.ReferenceBase <= 0:
		return fmt.Errorf("config: reference_base must be positive")
	}

	if c.Collision.Policy != PolicyCorner && c.Collision.Policy != PolicyAxis {
		return fmt.Errorf("config: unknown collision policy %q", c.Collision.Policy)
	}
	if c.Timing.TickMS <= 0 {
		return fmt.Errorf("config: tick_ms must be positive, got %d", c.Timing.TickMS)
	}
	if c.Gameplay.TimeScale <= 0 {
		return fmt.Errorf("config: time_scale must be positive")
	}
	if c.Gameplay.MaxTilt <= 0 || c.Gameplay.TiltStep <= 0 {
		return fmt.Errorf("config: max_tilt and tilt_step must be positive")
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: audio volume %v outside [0, 1]", c.Audio.Volume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("config: audio sample_rate must be positive")
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}
