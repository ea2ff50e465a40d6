// SPDX-License-Identifier: EPL-2.0

package edit

import (
	"fmt"

	"github.com/ik5/drumcut/audio"
	"github.com/ik5/drumcut/pcm"
	"github.com/ik5/drumcut/window"
	"github.com/sirupsen/logrus"
)

// RenderIsolated returns a new buffer, silent except for the windows of buf,
// each faded in and out over fadeMs. buf is not modified. A snippet shorter
// than two fades uses half its length for each.
func RenderIsolated(buf *audio.Buffer, ws []window.Window, fadeMs int, opts Options) (*audio.Buffer, error) {
	if fadeMs < 0 {
		return nil, fmt.Errorf("%w: got %d ms", ErrInvalidFade, fadeMs)
	}
	if err := buf.ValidateMono(); err != nil {
		return nil, fmt.Errorf("edit: %w", err)
	}
	if err := window.Validate(ws, buf.DurationMs()); err != nil {
		return nil, fmt.Errorf("edit: %w", err)
	}

	depth, err := buf.Depth()
	if err != nil {
		return nil, fmt.Errorf("edit: %w", err)
	}

	out := audio.NewBuffer(len(buf.Data), 1, buf.SampleRate, buf.BitDepth)
	fadeN := window.MsToSamples(fadeMs, buf.SampleRate)

	logrus.WithFields(logrus.Fields{
		"function":     "RenderIsolated",
		"windows":      len(ws),
		"fade_samples": fadeN,
		"workers":      opts.workers(),
	}).Debug("Rendering isolated windows")

	err = opts.run(len(ws), func(i int) error {
		start, end := window.ToSamples(ws[i], buf.SampleRate, len(buf.Data))
		isolateSnippet(out.Data[start:end], buf.Data[start:end], fadeN, depth)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func isolateSnippet(dst, src []int32, fadeN int, depth pcm.Depth) {
	n := len(src)
	if 2*fadeN > n {
		fadeN = n / 2
	}

	copy(dst, src)

	in := Rising(fadeN)
	fadeOut := Falling(fadeN)
	tail := n - fadeN

	for k := range fadeN {
		dst[k] = depth.Round(float64(src[k]) * in.Gain(k))
		dst[tail+k] = depth.Round(float64(src[tail+k]) * fadeOut.Gain(k))
	}
}
