package config

import (
	_ "embed"
)

//go:embed defaults/silverball.yaml
var defaultSilverballYAML []byte

// DefaultSilverballConfig returns the default tilt-ball configuration.
func DefaultSilverballConfig() SilverballConfig {
	return SilverballConfig{
		Physics: SilverballPhysics{
			BounceFactor:              0.25,
			HaltBallThreshold:         1.0,
			BounceSoundThreshold:      500,
			BounceAngleSoundThreshold: 30,
			AccelerationScale:         400,
			ReferenceBase:             100,
		},
		Collision: SilverballCollision{
			Policy: PolicyCorner,
		},
		Timing: SilverballTiming{
			TickMS: 20,
		},
		Gameplay: SilverballGameplay{
			TimeScale: 1.0,
			MaxTilt:   9.81,
			TiltStep:  1.5,
		},
		Audio: SilverballAudio{
			Enabled:    true,
			Volume:     0.6,
			SampleRate: 44100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSilverballYAML
}
