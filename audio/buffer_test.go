// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"

	"github.com/ik5/drumcut/pcm"
)

func TestBuffer_FramesAndDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		buf        *Buffer
		wantFrames int
		wantMs     int
	}{
		{"one second mono", NewBuffer(48000, 1, 48000, 16), 48000, 1000},
		{"stereo half second", NewBuffer(22050, 2, 44100, 16), 22050, 500},
		{"sub-millisecond rounds down", NewBuffer(47, 1, 48000, 16), 47, 0},
		{"44.1k fractional ms", NewBuffer(44100+44, 1, 44100, 24), 44144, 1000},
		{"empty", NewBuffer(0, 1, 8000, 8), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.buf.Frames(); got != tt.wantFrames {
				t.Errorf("Frames() = %d, want %d", got, tt.wantFrames)
			}
			if got := tt.buf.DurationMs(); got != tt.wantMs {
				t.Errorf("DurationMs() = %d, want %d", got, tt.wantMs)
			}
		})
	}
}

func TestBuffer_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		buf     *Buffer
		wantErr error
	}{
		{"valid", &Buffer{Data: []int32{-32768, 0, 32767}, SampleRate: 8000, BitDepth: 16, Channels: 1}, nil},
		{"nil", nil, ErrInvalidBuffer},
		{"zero rate", &Buffer{SampleRate: 0, BitDepth: 16, Channels: 1}, ErrInvalidBuffer},
		{"zero channels", &Buffer{SampleRate: 8000, BitDepth: 16, Channels: 0}, ErrInvalidBuffer},
		{"ragged frames", &Buffer{Data: []int32{1, 2, 3}, SampleRate: 8000, BitDepth: 16, Channels: 2}, ErrInvalidBuffer},
		{"bad depth", &Buffer{SampleRate: 8000, BitDepth: 12, Channels: 1}, pcm.ErrUnsupportedBitDepth},
		{"out of range 8-bit", &Buffer{Data: []int32{128}, SampleRate: 8000, BitDepth: 8, Channels: 1}, ErrInvalidBuffer},
		{"out of range 24-bit", &Buffer{Data: []int32{-8388609}, SampleRate: 8000, BitDepth: 24, Channels: 1}, ErrInvalidBuffer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.buf.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuffer_ValidateMono(t *testing.T) {
	t.Parallel()

	stereo := NewBuffer(10, 2, 8000, 16)
	if err := stereo.ValidateMono(); !errors.Is(err, ErrNotMono) {
		t.Errorf("ValidateMono() error = %v, want ErrNotMono", err)
	}

	mono := NewBuffer(10, 1, 8000, 16)
	if err := mono.ValidateMono(); err != nil {
		t.Errorf("ValidateMono() error = %v, want nil", err)
	}
}

func TestBuffer_CloneIsDeep(t *testing.T) {
	t.Parallel()

	b := &Buffer{Data: []int32{1, 2, 3}, SampleRate: 8000, BitDepth: 16, Channels: 1}
	c := b.Clone()
	c.Data[0] = 99

	if b.Data[0] != 1 {
		t.Errorf("Clone() shares data with the original")
	}
	if c.SampleRate != b.SampleRate || c.BitDepth != b.BitDepth || c.Channels != b.Channels {
		t.Errorf("Clone() metadata = %+v, want %+v", c, b)
	}
}

func TestBuffer_Expand(t *testing.T) {
	t.Parallel()

	b := &Buffer{Data: []int32{1, -2, 3}, SampleRate: 8000, BitDepth: 16, Channels: 1}

	st, err := b.Expand(2)
	if err != nil {
		t.Fatalf("Expand(2) error = %v", err)
	}

	want := []int32{1, 1, -2, -2, 3, 3}
	if len(st.Data) != len(want) {
		t.Fatalf("Expand(2) len = %d, want %d", len(st.Data), len(want))
	}
	for i := range want {
		if st.Data[i] != want[i] {
			t.Errorf("Expand(2).Data[%d] = %d, want %d", i, st.Data[i], want[i])
		}
	}
	if st.Channels != 2 || st.Frames() != 3 {
		t.Errorf("Expand(2) channels=%d frames=%d, want 2 and 3", st.Channels, st.Frames())
	}

	if _, err := st.Expand(2); !errors.Is(err, ErrNotMono) {
		t.Errorf("Expand on stereo error = %v, want ErrNotMono", err)
	}
	if _, err := b.Expand(0); !errors.Is(err, ErrInvalidBuffer) {
		t.Errorf("Expand(0) error = %v, want ErrInvalidBuffer", err)
	}

	same, err := b.Expand(1)
	if err != nil || len(same.Data) != 3 || &same.Data[0] == &b.Data[0] {
		t.Errorf("Expand(1) should return an independent copy")
	}
}

func TestBuffer_IntBuffer(t *testing.T) {
	t.Parallel()

	b := &Buffer{Data: []int32{-8388608, 0, 8388607, 42}, SampleRate: 96000, BitDepth: 24, Channels: 2}

	ib := b.IntBuffer()
	if ib.SourceBitDepth != 24 || ib.Format.NumChannels != 2 || ib.Format.SampleRate != 96000 {
		t.Fatalf("IntBuffer() format = %+v depth %d", ib.Format, ib.SourceBitDepth)
	}

	for i := range b.Data {
		if ib.Data[i] != int(b.Data[i]) {
			t.Errorf("IntBuffer().Data[%d] = %d, want %d", i, ib.Data[i], b.Data[i])
		}
	}
}
