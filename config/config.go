// SPDX-License-Identifier: EPL-2.0

// Package config holds drumcut's settings and loads them from YAML.
package config

import (
	"github.com/ik5/drumcut/edit"
	"github.com/ik5/drumcut/peak"
	"github.com/sirupsen/logrus"
)

// Mode selects what happens around detected hits.
type Mode string

const (
	// ModeIsolate keeps only the windows around hits.
	ModeIsolate Mode = "isolate"

	// ModeSilence removes the windows around hits and keeps the rest.
	ModeSilence Mode = "silence"
)

// IsValid reports whether m is a recognised mode.
func (m Mode) IsValid() bool {
	return m == ModeIsolate || m == ModeSilence
}

// Config is the full set of processing settings.
type Config struct {
	Mode        Mode          `yaml:"mode"`
	Threshold   float64       `yaml:"threshold"`
	MinDistance int           `yaml:"min_distance"`
	WindowMs    int           `yaml:"window_ms"`
	Isolate     IsolateConfig `yaml:"isolate"`
	Silence     SilenceConfig `yaml:"silence"`
	Output      OutputConfig  `yaml:"output"`

	// Workers caps concurrent window jobs; 0 means GOMAXPROCS.
	Workers  int    `yaml:"workers"`
	LogLevel string `yaml:"log_level"`
}

// IsolateConfig holds isolate mode settings.
type IsolateConfig struct {
	FadeMs int `yaml:"fade_ms"`
}

// SilenceConfig holds silence mode settings.
type SilenceConfig struct {
	PreFadeMs   int  `yaml:"pre_fade_ms"`
	PostFadeMs  int  `yaml:"post_fade_ms"`
	FullSilence bool `yaml:"full_silence"`

	// AttenuationDB is only used when FullSilence is false.
	AttenuationDB float64 `yaml:"attenuation_db"`
}

// OutputConfig describes the exported file.
type OutputConfig struct {
	Channels int `yaml:"channels"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Mode:        ModeIsolate,
		Threshold:   0.7,
		MinDistance: 1000,
		WindowMs:    60,
		Isolate: IsolateConfig{
			FadeMs: 8,
		},
		Silence: SilenceConfig{
			PreFadeMs:     20,
			PostFadeMs:    20,
			FullSilence:   true,
			AttenuationDB: 30,
		},
		Output: OutputConfig{
			Channels: 2,
		},
		LogLevel: "info",
	}
}

// Attenuation maps the silence section to the editor's attenuation.
func (c Config) Attenuation() edit.Attenuation {
	if c.Silence.FullSilence {
		return edit.Silence()
	}

	return edit.Attenuate(c.Silence.AttenuationDB)
}

// EditOptions maps Workers to the editor's scheduling options.
func (c Config) EditOptions() edit.Options {
	return edit.Options{Workers: c.Workers}
}

// Detector returns the peak detector for Threshold and MinDistance.
func (c Config) Detector() peak.Detector {
	return peak.Detector{Threshold: c.Threshold, MinDistance: c.MinDistance}
}

// Level parses LogLevel; an empty level means info.
func (c Config) Level() (logrus.Level, error) {
	if c.LogLevel == "" {
		return logrus.InfoLevel, nil
	}

	return logrus.ParseLevel(c.LogLevel)
}
