// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/drumcut/pcm"
)

// Buffer is a fully materialized block of integer PCM.
// Data is interleaved when Channels > 1.
type Buffer struct {
	Data       []int32
	SampleRate int
	BitDepth   int
	Channels   int
}

// NewBuffer allocates a silent buffer of frames frames.
func NewBuffer(frames, channels, sampleRate, bitDepth int) *Buffer {
	return &Buffer{
		Data:       make([]int32, frames*channels),
		SampleRate: sampleRate,
		BitDepth:   bitDepth,
		Channels:   channels,
	}
}

// Depth returns the sample width descriptor for the buffer's bit depth.
func (b *Buffer) Depth() (pcm.Depth, error) {
	return pcm.DepthFor(b.BitDepth)
}

// Frames is the number of samples per channel.
func (b *Buffer) Frames() int {
	if b.Channels <= 0 {
		return 0
	}

	return len(b.Data) / b.Channels
}

// DurationMs is the buffer length in whole milliseconds, rounded down.
func (b *Buffer) DurationMs() int {
	if b.SampleRate <= 0 {
		return 0
	}

	return int(int64(b.Frames()) * 1000 / int64(b.SampleRate))
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	c := *b
	c.Data = make([]int32, len(b.Data))
	copy(c.Data, b.Data)

	return &c
}

// Validate checks the metadata and that every sample fits the bit depth.
func (b *Buffer) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidBuffer)
	}
	if b.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidBuffer, b.SampleRate)
	}
	if b.Channels < 1 {
		return fmt.Errorf("%w: channel count %d", ErrInvalidBuffer, b.Channels)
	}
	if len(b.Data)%b.Channels != 0 {
		return fmt.Errorf("%w: %d samples is not a multiple of %d channels",
			ErrInvalidBuffer, len(b.Data), b.Channels)
	}

	d, err := b.Depth()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBuffer, err)
	}

	for i, v := range b.Data {
		if !d.Contains(v) {
			return fmt.Errorf("%w: sample %d value %d outside %d-bit range",
				ErrInvalidBuffer, i, v, d.Bits)
		}
	}

	return nil
}

// ValidateMono is Validate plus a single channel requirement.
func (b *Buffer) ValidateMono() error {
	if err := b.Validate(); err != nil {
		return err
	}
	if b.Channels != 1 {
		return fmt.Errorf("%w: got %d channels", ErrNotMono, b.Channels)
	}

	return nil
}

// Expand duplicates a mono buffer into channels identical channels.
// Expanding to one channel returns a copy.
func (b *Buffer) Expand(channels int) (*Buffer, error) {
	if b.Channels != 1 {
		return nil, fmt.Errorf("%w: got %d channels", ErrNotMono, b.Channels)
	}
	if channels < 1 {
		return nil, fmt.Errorf("%w: channel count %d", ErrInvalidBuffer, channels)
	}
	if channels == 1 {
		return b.Clone(), nil
	}

	out := NewBuffer(len(b.Data), channels, b.SampleRate, b.BitDepth)
	for f, v := range b.Data {
		base := f * channels
		for c := range channels {
			out.Data[base+c] = v
		}
	}

	return out, nil
}

// IntBuffer converts to the go-audio representation used by its encoders.
func (b *Buffer) IntBuffer() *goaudio.IntBuffer {
	data := make([]int, len(b.Data))
	for i, v := range b.Data {
		data[i] = int(v)
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: b.Channels,
			SampleRate:  b.SampleRate,
		},
		Data:           data,
		SourceBitDepth: b.BitDepth,
	}
}
