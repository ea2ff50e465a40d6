// SPDX-License-Identifier: EPL-2.0

package peak

import (
	"fmt"
	"math"

	"github.com/ik5/drumcut/audio"
)

// Detector holds detection settings for callers that carry them around as
// configuration.
type Detector struct {
	Threshold   float64
	MinDistance int
}

// Detect runs Detect with the detector's settings.
func (d Detector) Detect(buf *audio.Buffer) ([]int, error) {
	return Detect(buf, d.Threshold, d.MinDistance)
}

// Validate checks the settings without touching any audio.
func (d Detector) Validate() error {
	if math.IsNaN(d.Threshold) || d.Threshold <= 0 || d.Threshold > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidThreshold, d.Threshold)
	}
	if d.MinDistance < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMinDistance, d.MinDistance)
	}

	return nil
}

// Detect returns the accepted peak indices of a mono buffer in ascending
// order. No candidates is not an error; the result is then empty.
func Detect(buf *audio.Buffer, threshold float64, minDistance int) ([]int, error) {
	if err := (Detector{Threshold: threshold, MinDistance: minDistance}).Validate(); err != nil {
		return nil, err
	}
	if err := buf.ValidateMono(); err != nil {
		return nil, fmt.Errorf("peak: %w", err)
	}

	depth, err := buf.Depth()
	if err != nil {
		return nil, fmt.Errorf("peak: %w", err)
	}

	limit := threshold * float64(depth.Max)

	peaks := []int{}
	last := -1
	for i, v := range buf.Data {
		mag := int64(v)
		if mag < 0 {
			mag = -mag
		}
		if float64(mag) <= limit {
			continue
		}

		if last >= 0 && i-last <= minDistance {
			continue
		}

		peaks = append(peaks, i)
		last = i
	}

	return peaks, nil
}
