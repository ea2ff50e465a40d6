// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/drumcut/edit"
	"github.com/ik5/drumcut/window"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML configuration file at path on top of [Default] and
// validates the result.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes YAML from r over [Default] and validates the result.
// Unknown keys are rejected. An empty document yields the defaults.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field and reports all failures at once, wrapped in
// [ErrInvalidConfig]. Failures also wrap the sentinel of the package that
// owns the setting, e.g. peak.ErrInvalidThreshold.
func Validate(cfg *Config) error {
	var errs []error

	if !cfg.Mode.IsValid() {
		errs = append(errs, fmt.Errorf("mode %q is invalid; valid values: isolate, silence", cfg.Mode))
	}

	if err := cfg.Detector().Validate(); err != nil {
		errs = append(errs, err)
	}

	if cfg.WindowMs <= 0 {
		errs = append(errs, fmt.Errorf("window_ms %d: %w", cfg.WindowMs, window.ErrInvalidWidth))
	}

	if cfg.Isolate.FadeMs < 0 {
		errs = append(errs, fmt.Errorf("isolate.fade_ms %d: %w", cfg.Isolate.FadeMs, edit.ErrInvalidFade))
	}
	if cfg.Silence.PreFadeMs < 0 {
		errs = append(errs, fmt.Errorf("silence.pre_fade_ms %d: %w", cfg.Silence.PreFadeMs, edit.ErrInvalidFade))
	}
	if cfg.Silence.PostFadeMs < 0 {
		errs = append(errs, fmt.Errorf("silence.post_fade_ms %d: %w", cfg.Silence.PostFadeMs, edit.ErrInvalidFade))
	}
	if err := cfg.Attenuation().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("silence.attenuation_db: %w", err))
	}

	if cfg.Output.Channels < 1 {
		errs = append(errs, fmt.Errorf("output.channels %d must be at least 1", cfg.Output.Channels))
	}
	if cfg.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers %d must be >= 0", cfg.Workers))
	}
	if _, err := cfg.Level(); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
