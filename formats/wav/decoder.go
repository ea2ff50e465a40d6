// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/drumcut/audio"
	"github.com/ik5/drumcut/internal/seekbuf"
	"github.com/ik5/drumcut/pcm"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

// pcmReader is an interface for wav.Decoder to allow testing
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type wavSource struct {
	dec        pcmReader
	sampleRate int
	channels   int
	bitDepth   int
	depth      pcm.Depth
	intBuf     *goaudio.IntBuffer
	eof        bool
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) BitDepth() int   { return s.bitDepth }
func (s *wavSource) Close() error    { return nil }
func (s *wavSource) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *wavSource) ReadSamples(dst []int32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.eof {
		return 0, io.EOF
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         &goaudio.Format{NumChannels: s.channels, SampleRate: s.sampleRate},
			SourceBitDepth: s.bitDepth,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("%w", err)
	}
	if n == 0 {
		s.eof = true
		return 0, io.EOF
	}

	// 8-bit WAV samples are unsigned with a 128 offset
	if s.bitDepth == 8 {
		for i := range n {
			dst[i] = int32(uint8(s.intBuf.Data[i])) - 128
		}
	} else {
		for i := range n {
			dst[i] = s.depth.Extend(s.intBuf.Data[i])
		}
	}

	if n < len(dst) || err == io.EOF {
		s.eof = true
		return n, io.EOF
	}

	return n, nil
}

// Decoder decodes WAV input into an audio.Source.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, err := seekbuf.From(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("%w: format tag %d", ErrOnlyPCMSupported, dec.WavAudioFormat)
	}

	depth, err := pcm.DepthFor(int(dec.BitDepth))
	if err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}

	return &wavSource{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		bitDepth:   int(dec.BitDepth),
		depth:      depth,
	}, nil
}
