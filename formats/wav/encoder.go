// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"
	"github.com/ik5/drumcut/audio"
)

// Encode writes buf as a PCM WAV at its own rate, bit depth and channel
// count. The go-audio encoder patches the header sizes on close, so ws must
// be seekable; use WriteStream for pipes. ws is not closed.
func Encode(ws io.WriteSeeker, buf *audio.Buffer) error {
	if err := buf.Validate(); err != nil {
		return fmt.Errorf("wav: %w", err)
	}

	enc := wav.NewEncoder(ws, buf.SampleRate, buf.BitDepth, buf.Channels, formatPCM)

	ib := buf.IntBuffer()
	if buf.BitDepth == 8 {
		for i := range ib.Data {
			ib.Data[i] += 128
		}
	}

	if err := enc.Write(ib); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
