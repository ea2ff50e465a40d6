// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

// MonoMixer down-mixes any channel layout to mono by averaging the channels
// of each frame. Averages are rounded half to even.
type MonoMixer struct {
	src Source
	tmp []int32
}

// NewMonoMixer wraps src. Closing the mixer closes src.
func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]int32, 4096),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BitDepth() int   { return m.src.BitDepth() }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }
func (m *MonoMixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples fills dst with one mixed value per source frame.
func (m *MonoMixer) ReadSamples(dst []int32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if m.src.Channels() == 1 {
		// Pass-through: read mono directly
		return m.src.ReadSamples(dst)
	}

	channels := m.src.Channels()
	maxFrames := len(dst)
	samplesNeeded := maxFrames * channels

	// Grow tmp buffer if needed (but don't shrink to avoid thrashing)
	if cap(m.tmp) < samplesNeeded {
		newCap := max(samplesNeeded, 8192)
		m.tmp = make([]int32, newCap)
	} else if len(m.tmp) < samplesNeeded {
		m.tmp = m.tmp[:samplesNeeded]
	}

	n, err := m.src.ReadSamples(m.tmp[:samplesNeeded])
	if n == 0 {
		return 0, err
	}
	frames := n / channels

	// Sums are taken in int64 so 32-bit channels cannot overflow
	switch channels {
	case 2: // Stereo (most common)
		for f := range frames {
			idx := f << 1
			sum := int64(m.tmp[idx]) + int64(m.tmp[idx+1])
			dst[f] = int32(math.RoundToEven(float64(sum) * 0.5))
		}
	default:
		invChannels := 1.0 / float64(channels)
		for f := range frames {
			var sum int64
			baseIdx := f * channels
			for c := range channels {
				sum += int64(m.tmp[baseIdx+c])
			}
			dst[f] = int32(math.RoundToEven(float64(sum) * invChannels))
		}
	}

	return frames, err
}
