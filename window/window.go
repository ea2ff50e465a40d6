// SPDX-License-Identifier: EPL-2.0

package window

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Window is the half-open interval [StartMs, EndMs).
type Window struct {
	StartMs int
	EndMs   int
}

// Len is the window's duration in milliseconds.
func (w Window) Len() int { return w.EndMs - w.StartMs }

// String formats w as "[start,end)ms".
func (w Window) String() string {
	return fmt.Sprintf("[%d,%d)ms", w.StartMs, w.EndMs)
}

// Plan builds the merged window list for peaks.
func Plan(peaks []int, sampleRate, windowMs, totalMs int) ([]Window, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSampleRate, sampleRate)
	}
	if windowMs <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWidth, windowMs)
	}
	if totalMs < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDuration, totalMs)
	}

	half := windowMs / 2
	ws := make([]Window, 0, len(peaks))

	for _, p := range peaks {
		if p < 0 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidPeak, p)
		}

		center := int(int64(p) * 1000 / int64(sampleRate))
		w := Window{
			StartMs: max(0, center-half),
			EndMs:   min(totalMs, center+half),
		}
		if w.EndMs <= w.StartMs {
			continue
		}

		ws = append(ws, w)
	}

	return Merge(ws), nil
}

// Merge sorts ws by start and folds together windows that overlap or touch.
// The input is not modified.
func Merge(ws []Window) []Window {
	sorted := slices.Clone(ws)
	slices.SortFunc(sorted, func(a, b Window) int {
		return cmp.Or(cmp.Compare(a.StartMs, b.StartMs), cmp.Compare(a.EndMs, b.EndMs))
	})

	merged := make([]Window, 0, len(sorted))
	for _, w := range sorted {
		if n := len(merged); n > 0 && w.StartMs <= merged[n-1].EndMs {
			merged[n-1].EndMs = max(merged[n-1].EndMs, w.EndMs)
			continue
		}

		merged = append(merged, w)
	}

	return merged
}

// Validate checks that ws is sorted, non-overlapping and inside
// [0, totalMs). Touching windows, end[i] == start[i+1], are allowed.
func Validate(ws []Window, totalMs int) error {
	if totalMs < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDuration, totalMs)
	}

	for i, w := range ws {
		if w.StartMs < 0 || w.EndMs > totalMs || w.EndMs <= w.StartMs {
			return fmt.Errorf("%w: window %d is %s, duration %dms", ErrOutOfRange, i, w, totalMs)
		}
		if i > 0 && w.StartMs < ws[i-1].EndMs {
			return fmt.Errorf("%w: window %d %s follows %s", ErrNotMerged, i, w, ws[i-1])
		}
	}

	return nil
}

// Total is the covered duration of a merged list in milliseconds.
func Total(ws []Window) int {
	total := 0
	for _, w := range ws {
		total += w.Len()
	}

	return total
}

// MsToSamples converts a duration to a sample count, rounding half to even.
func MsToSamples(ms, sampleRate int) int {
	perMs := float64(sampleRate) / 1000

	return int(math.RoundToEven(float64(ms) * perMs))
}

// ToSamples returns w's sample bounds clamped to [0, totalSamples].
func ToSamples(w Window, sampleRate, totalSamples int) (start, end int) {
	start = min(max(MsToSamples(w.StartMs, sampleRate), 0), totalSamples)
	end = min(max(MsToSamples(w.EndMs, sampleRate), 0), totalSamples)

	return start, end
}
