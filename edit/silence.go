// SPDX-License-Identifier: EPL-2.0

package edit

import (
	"fmt"

	"github.com/ik5/drumcut/audio"
	"github.com/ik5/drumcut/pcm"
	"github.com/ik5/drumcut/window"
	"github.com/sirupsen/logrus"
)

// span is a window in samples together with the bounds its fades may not
// cross: the previous window's end (or 0) and the next window's start (or the
// buffer end).
type span struct {
	prevEnd   int
	start     int
	end       int
	nextStart int
}

func (s span) preStart(preN int) int { return max(s.start-preN, s.prevEnd) }

func (s span) postEnd(postN int) int { return min(s.end+postN, s.nextStart) }

func spansFor(ws []window.Window, sampleRate, total int) []span {
	spans := make([]span, len(ws))
	for i, w := range ws {
		spans[i].start, spans[i].end = window.ToSamples(w, sampleRate, total)
	}

	for i := range spans {
		if i > 0 {
			spans[i].prevEnd = spans[i-1].end
		}

		spans[i].nextStart = total
		if i+1 < len(spans) {
			spans[i].nextStart = spans[i+1].start
		}
	}

	return spans
}

// RenderSilenced fades buf out ahead of every window, silences or attenuates
// the window body, and fades back in after it. buf is modified in place and
// left untouched when any argument is invalid.
func RenderSilenced(buf *audio.Buffer, ws []window.Window, preFadeMs, postFadeMs int, att Attenuation, opts Options) error {
	if preFadeMs < 0 || postFadeMs < 0 {
		return fmt.Errorf("%w: pre %d ms, post %d ms", ErrInvalidFade, preFadeMs, postFadeMs)
	}
	if err := att.Validate(); err != nil {
		return err
	}
	if err := buf.ValidateMono(); err != nil {
		return fmt.Errorf("edit: %w", err)
	}
	if err := window.Validate(ws, buf.DurationMs()); err != nil {
		return fmt.Errorf("edit: %w", err)
	}

	depth, err := buf.Depth()
	if err != nil {
		return fmt.Errorf("edit: %w", err)
	}

	r := silencer{
		data:   buf.Data,
		spans:  spansFor(ws, buf.SampleRate, len(buf.Data)),
		preN:   window.MsToSamples(preFadeMs, buf.SampleRate),
		postN:  window.MsToSamples(postFadeMs, buf.SampleRate),
		att:    att,
		factor: att.Factor(),
		depth:  depth,
	}

	logrus.WithFields(logrus.Fields{
		"function":          "RenderSilenced",
		"windows":           len(ws),
		"pre_fade_samples":  r.preN,
		"post_fade_samples": r.postN,
		"attenuation":       att.String(),
		"workers":           opts.workers(),
	}).Debug("Rendering silenced windows")

	return opts.run(len(r.spans), func(i int) error {
		r.window(i)
		return nil
	})
}

type silencer struct {
	data   []int32
	spans  []span
	preN   int
	postN  int
	att    Attenuation
	factor float64
	depth  pcm.Depth
}

func (r *silencer) scale(j int, gain float64) {
	r.data[j] = r.depth.Round(float64(r.data[j]) * gain)
}

// window renders the samples owned by window i: the gap in front of it, its
// body and, for the last window, everything after it. Where the previous
// window's post-fade meets this window's pre-fade both gains apply and the
// sample is rounded once.
func (r *silencer) window(i int) {
	cur := r.spans[i]

	preStart := cur.preStart(r.preN)
	fall := Falling(cur.start - preStart)

	riseEnd := cur.prevEnd
	var rise Ramp
	if i > 0 {
		riseEnd = r.spans[i-1].postEnd(r.postN)
		rise = Rising(riseEnd - cur.prevEnd)
	}

	for j := cur.prevEnd; j < cur.start; j++ {
		inRise := j < riseEnd
		inFall := j >= preStart
		if !inRise && !inFall {
			continue
		}

		gain := 1.0
		if inRise {
			gain *= rise.Gain(j - cur.prevEnd)
		}
		if inFall {
			gain *= fall.Gain(j - preStart)
		}
		r.scale(j, gain)
	}

	if r.att.FullSilence {
		clear(r.data[cur.start:cur.end])
	} else {
		for j := cur.start; j < cur.end; j++ {
			r.scale(j, r.factor)
		}
	}

	if i == len(r.spans)-1 {
		postEnd := cur.postEnd(r.postN)
		last := Rising(postEnd - cur.end)
		for j := cur.end; j < postEnd; j++ {
			r.scale(j, last.Gain(j-cur.end))
		}
	}
}
