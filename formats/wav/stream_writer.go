// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/drumcut/audio"
)

// WriteStream writes buf as a canonical 44-byte-header PCM WAV to any writer.
// All sizes are known up front, so nothing is patched afterwards.
func WriteStream(w io.Writer, buf *audio.Buffer) error {
	if err := buf.Validate(); err != nil {
		return fmt.Errorf("wav: %w", err)
	}

	depth, err := buf.Depth()
	if err != nil {
		return fmt.Errorf("wav: %w", err)
	}

	bytesPerSample := depth.Bytes()
	numChannels := uint16(buf.Channels)
	bitsPerSample := uint16(buf.BitDepth)
	byteRate := uint32(buf.SampleRate) * uint32(numChannels) * uint32(bytesPerSample)
	blockAlign := numChannels * uint16(bytesPerSample)
	dataSize := uint32(len(buf.Data) * bytesPerSample)
	riffSize := 36 + dataSize

	header := make([]byte, 44)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(buf.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(buf.Data) == 0 {
		return nil
	}

	// Write in chunks of 8192 samples
	const chunkSize = 8192
	out := make([]byte, min(len(buf.Data), chunkSize)*bytesPerSample)

	for i := 0; i < len(buf.Data); i += chunkSize {
		end := min(i+chunkSize, len(buf.Data))
		chunk := buf.Data[i:end]
		out = out[:len(chunk)*bytesPerSample]

		putSamples(out, chunk, bytesPerSample)

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// putSamples packs little-endian samples; 8-bit is stored unsigned.
func putSamples(dst []byte, samples []int32, bytesPerSample int) {
	switch bytesPerSample {
	case 1:
		for j, s := range samples {
			dst[j] = byte(s + 128)
		}
	case 2:
		for j, s := range samples {
			binary.LittleEndian.PutUint16(dst[j*2:], uint16(s))
		}
	case 3:
		for j, s := range samples {
			u := uint32(s)
			dst[j*3] = byte(u)
			dst[j*3+1] = byte(u >> 8)
			dst[j*3+2] = byte(u >> 16)
		}
	case 4:
		for j, s := range samples {
			binary.LittleEndian.PutUint32(dst[j*4:], uint32(s))
		}
	}
}
