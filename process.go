// SPDX-License-Identifier: EPL-2.0

package drumcut

import (
	"fmt"

	"github.com/ik5/drumcut/audio"
	"github.com/ik5/drumcut/config"
	"github.com/ik5/drumcut/edit"
	"github.com/ik5/drumcut/window"
	"github.com/sirupsen/logrus"
)

// Result is the outcome of a Process run.
type Result struct {
	// Output is the edited mono buffer.
	Output *audio.Buffer

	// Peaks are the accepted peak indices, in samples.
	Peaks []int

	// Windows are the merged windows the edit was applied to.
	Windows []window.Window
}

// Process detects the hits in a mono buffer, plans windows around them and
// renders them according to cfg.Mode. buf is never modified; silence mode
// works on a copy.
func Process(buf *audio.Buffer, cfg config.Config) (*Result, error) {
	if err := config.Validate(&cfg); err != nil {
		return nil, err
	}
	if err := buf.ValidateMono(); err != nil {
		return nil, fmt.Errorf("drumcut: %w", err)
	}

	peaks, err := cfg.Detector().Detect(buf)
	if err != nil {
		return nil, fmt.Errorf("drumcut: detect: %w", err)
	}

	totalMs := buf.DurationMs()
	ws, err := window.Plan(peaks, buf.SampleRate, cfg.WindowMs, totalMs)
	if err != nil {
		return nil, fmt.Errorf("drumcut: plan: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"function":    "Process",
		"mode":        cfg.Mode,
		"peaks":       len(peaks),
		"windows":     len(ws),
		"covered_ms":  window.Total(ws),
		"duration_ms": totalMs,
	}).Info("Planned windows")

	var out *audio.Buffer
	switch cfg.Mode {
	case config.ModeIsolate:
		out, err = edit.RenderIsolated(buf, ws, cfg.Isolate.FadeMs, cfg.EditOptions())
	case config.ModeSilence:
		out = buf.Clone()
		err = edit.RenderSilenced(out, ws, cfg.Silence.PreFadeMs, cfg.Silence.PostFadeMs,
			cfg.Attenuation(), cfg.EditOptions())
	}
	if err != nil {
		return nil, fmt.Errorf("drumcut: render: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"function": "Process",
		"mode":     cfg.Mode,
		"frames":   out.Frames(),
	}).Info("Rendered buffer")

	return &Result{Output: out, Peaks: peaks, Windows: ws}, nil
}
