// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/drumcut/audio"
)

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bits     int
		channels int
		data     []int32
	}{
		{"8-bit mono", 8, 1, []int32{0, -128, 127, 5, -5, 64}},
		{"16-bit stereo", 16, 2, []int32{0, 1, -1, 32767, -32768, 1234}},
		{"24-bit mono", 24, 1, []int32{8388607, -8388608, 0, -1}},
		{"32-bit mono", 32, 1, []int32{2147483647, -2147483648, 7, -7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "out.wav")
			f, err := os.Create(path)
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}

			buf := &audio.Buffer{Data: tt.data, SampleRate: 22050, BitDepth: tt.bits, Channels: tt.channels}
			if err := Encode(f, buf); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if err := f.Close(); err != nil {
				t.Fatalf("Close() error = %v", err)
			}

			raw, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}

			got, rate, chans, bits := readAll(t, raw)
			if rate != 22050 || chans != tt.channels || bits != tt.bits {
				t.Errorf("format = (%d, %d, %d), want (22050, %d, %d)",
					rate, chans, bits, tt.channels, tt.bits)
			}
			if !equalSamples(got, tt.data) {
				t.Errorf("samples = %v, want %v", got, tt.data)
			}
		})
	}
}

func TestEncode_DoesNotMutateBuffer(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "out.wav"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer f.Close()

	buf := &audio.Buffer{Data: []int32{-3, 3}, SampleRate: 8000, BitDepth: 8, Channels: 1}
	if err := Encode(f, buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if buf.Data[0] != -3 || buf.Data[1] != 3 {
		t.Errorf("buffer changed to %v", buf.Data)
	}
}

func TestEncode_RejectsInvalidBuffer(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "out.wav"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer f.Close()

	buf := &audio.Buffer{Data: []int32{1, 2, 3}, SampleRate: 8000, BitDepth: 16, Channels: 2}
	if err := Encode(f, buf); !errors.Is(err, audio.ErrInvalidBuffer) {
		t.Errorf("Encode() error = %v, want %v", err, audio.ErrInvalidBuffer)
	}
}
