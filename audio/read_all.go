// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// ReadAll drains src into a Buffer that keeps the source's rate, depth and
// channel layout. bufferSize is the number of values pulled per read; values
// <= 0 fall back to src.BufSize().
//
// ReadAll does not close src.
func ReadAll(src Source, bufferSize int) (*Buffer, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, fmt.Errorf("%w: channel count %d", ErrInvalidBuffer, channels)
	}

	if bufferSize <= 0 {
		bufferSize = src.BufSize()
	}
	// Reads must hold whole frames
	bufferSize -= bufferSize % channels
	if bufferSize == 0 {
		bufferSize = channels
	}

	out := &Buffer{
		SampleRate: src.SampleRate(),
		BitDepth:   src.BitDepth(),
		Channels:   channels,
		// Assume ~2 seconds initially, append grows it
		Data: make([]int32, 0, src.SampleRate()*channels*2),
	}
	buf := make([]int32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out.Data = append(out.Data, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		if n == 0 {
			// A source that returns nothing without EOF is treated as drained
			break
		}
	}

	return out, nil
}
