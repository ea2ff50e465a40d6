// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/drumcut/pcm"
)

// createWAVFile builds a minimal WAV with a raw data payload.
func createWAVFile(formatTag uint16, sampleRate, channels, bitsPerSample int, data []byte) []byte {
	buf := new(bytes.Buffer)

	numChannels := uint16(channels)
	bits := uint16(bitsPerSample)
	bytesPerSample := (bitsPerSample + 7) / 8
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bytesPerSample)
	blockAlign := numChannels * uint16(bytesPerSample)
	dataSize := uint32(len(data))
	riffSize := 36 + dataSize

	// RIFF header
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, riffSize)
	buf.WriteString("WAVE")

	// fmt chunk
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, formatTag)
	binary.Write(buf, binary.LittleEndian, numChannels)
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bits)

	// data chunk
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	buf.Write(data)

	return buf.Bytes()
}

func pcm16(samples ...int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}

	return out
}

func readAll(t *testing.T, data []byte) ([]int32, int, int, int) {
	t.Helper()

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}
	defer src.Close()

	var out []int32
	buf := make([]int32, 3)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	return out, src.SampleRate(), src.Channels(), src.BitDepth()
}

func equalSamples(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func TestDecoder_Depths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		bits int
		data []byte
		want []int32
	}{
		{
			name: "16-bit",
			bits: 16,
			data: pcm16(0, 100, -100, 32767, -32768),
			want: []int32{0, 100, -100, 32767, -32768},
		},
		{
			name: "8-bit unsigned offset",
			bits: 8,
			data: []byte{128, 0, 255, 129},
			want: []int32{0, -128, 127, 1},
		},
		{
			name: "24-bit",
			bits: 24,
			data: []byte{
				0x00, 0x00, 0x00,
				0xFF, 0xFF, 0x7F,
				0x00, 0x00, 0x80,
				0xFF, 0xFF, 0xFF,
			},
			want: []int32{0, 8388607, -8388608, -1},
		},
		{
			name: "32-bit",
			bits: 32,
			data: []byte{
				0x01, 0x00, 0x00, 0x00,
				0xFF, 0xFF, 0xFF, 0xFF,
			},
			want: []int32{1, -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, rate, chans, bits := readAll(t, createWAVFile(formatPCM, 8000, 1, tt.bits, tt.data))

			if rate != 8000 || chans != 1 || bits != tt.bits {
				t.Errorf("format = (%d, %d, %d), want (8000, 1, %d)", rate, chans, bits, tt.bits)
			}
			if !equalSamples(got, tt.want) {
				t.Errorf("samples = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecoder_Stereo(t *testing.T) {
	t.Parallel()

	got, _, chans, _ := readAll(t, createWAVFile(formatPCM, 44100, 2, 16, pcm16(1, 2, 3, 4, 5, 6)))

	if chans != 2 {
		t.Errorf("Channels() = %d, want 2", chans)
	}
	if !equalSamples(got, []int32{1, 2, 3, 4, 5, 6}) {
		t.Errorf("samples = %v", got)
	}
}

func TestDecoder_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{
			name: "empty input",
			data: nil,
			want: ErrNotWavFile,
		},
		{
			name: "garbage",
			data: []byte("definitely not a riff stream"),
			want: ErrNotWavFile,
		},
		{
			name: "float format",
			data: createWAVFile(3, 8000, 1, 32, make([]byte, 16)),
			want: ErrOnlyPCMSupported,
		},
		{
			name: "12-bit",
			data: createWAVFile(formatPCM, 8000, 1, 12, make([]byte, 8)),
			want: pcm.ErrUnsupportedBitDepth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestWavSource_ReadSamplesEmptyDst(t *testing.T) {
	t.Parallel()

	src, err := Decoder{}.Decode(bytes.NewReader(createWAVFile(formatPCM, 8000, 1, 16, pcm16(1, 2))))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestWavSource_EOFIsSticky(t *testing.T) {
	t.Parallel()

	src, err := Decoder{}.Decode(bytes.NewReader(createWAVFile(formatPCM, 8000, 1, 16, pcm16(1, 2))))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	buf := make([]int32, 16)
	n, err := src.ReadSamples(buf)
	if n != 2 || err != io.EOF {
		t.Fatalf("first ReadSamples() = (%d, %v), want (2, EOF)", n, err)
	}

	n, err = src.ReadSamples(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("second ReadSamples() = (%d, %v), want (0, EOF)", n, err)
	}
}

type stubPCMReader struct {
	err error
}

func (s stubPCMReader) PCMBuffer(_ *goaudio.IntBuffer) (int, error) {
	return 0, s.err
}

func TestWavSource_PropagatesReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk on fire")
	src := &wavSource{dec: stubPCMReader{err: boom}, sampleRate: 8000, channels: 1, bitDepth: 16}

	_, err := src.ReadSamples(make([]int32, 4))
	if !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}
