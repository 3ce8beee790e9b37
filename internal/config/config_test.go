package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestDefaultsMatchEmbeddedYAML(t *testing.T) {
	embedded := DefaultSilverballConfig()
	if err := yaml.Unmarshal(DefaultYAML(), &embedded); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if embedded != DefaultSilverballConfig() {
		t.Errorf("embedded yaml %+v differs from hardcoded defaults %+v", embedded, DefaultSilverballConfig())
	}
	if err := embedded.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestTiming(t *testing.T) {
	timing := SilverballTiming{TickMS: 20}
	if timing.TickInterval() != 20*time.Millisecond {
		t.Errorf("TickInterval = %v, expected 20ms", timing.TickInterval())
	}
	if timing.TickRate() != 50 {
		t.Errorf("TickRate = %d, expected 50", timing.TickRate())
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SilverballConfig)
	}{
		{"bounce factor above one", func(c *SilverballConfig) { c.Physics.BounceFactor = 1.5 }},
		{"negative halt threshold", func(c *SilverballConfig) { c.Physics.HaltBallThreshold = -1 }},
		{"angle threshold too large", func(c *SilverballConfig) { c.Physics.BounceAngleSoundThreshold = 200 }},
		{"zero reference base", func(c *SilverballConfig) { c.Physics.ReferenceBase = 0 }},
		{"unknown policy", func(c *SilverballConfig) { c.Collision.Policy = "sphere" }},
		{"zero tick", func(c *SilverballConfig) { c.Timing.TickMS = 0 }},
		{"zero time scale", func(c *SilverballConfig) { c.Gameplay.TimeScale = 0 }},
		{"zero tilt step", func(c *SilverballConfig) { c.Gameplay.TiltStep = 0 }},
		{"loud volume", func(c *SilverballConfig) { c.Audio.Volume = 1.2 }},
		{"zero sample rate", func(c *SilverballConfig) { c.Audio.SampleRate = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSilverballConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  bounce_factor: 0.5\ncollision:\n  policy: axis\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSilverball(path)
	if err != nil {
		t.Fatalf("LoadSilverball() failed: %v", err)
	}
	if cfg.Physics.BounceFactor != 0.5 {
		t.Errorf("BounceFactor = %v, expected 0.5", cfg.Physics.BounceFactor)
	}
	if cfg.Collision.Policy != PolicyAxis {
		t.Errorf("Policy = %q, expected axis", cfg.Collision.Policy)
	}
	if cfg.Timing.TickMS != 20 {
		t.Errorf("unspecified TickMS should keep default, got %d", cfg.Timing.TickMS)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSilverball(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("timing:\n  tick_ms: -5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSilverball(bad); err == nil {
		t.Error("invalid values should fail")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"normal", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", "", true},
	}
	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, %v", tc.in, got, err)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	easy := DefaultSilverballConfig()
	ApplySilverballPreset(&easy, DifficultyEasy)
	if easy.Gameplay.TimeScale <= 1 {
		t.Errorf("easy should extend time, got scale %v", easy.Gameplay.TimeScale)
	}

	hard := DefaultSilverballConfig()
	ApplySilverballPreset(&hard, DifficultyHard)
	if hard.Gameplay.TimeScale >= 1 {
		t.Errorf("hard should shorten time, got scale %v", hard.Gameplay.TimeScale)
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}

	normal := DefaultSilverballConfig()
	ApplySilverballPreset(&normal, DifficultyNormal)
	if normal != DefaultSilverballConfig() {
		t.Error("normal preset should not change defaults")
	}
}
