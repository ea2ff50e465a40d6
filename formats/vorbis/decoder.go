package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/drumcut/audio"
	"github.com/ik5/drumcut/pcm"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	floatBuf   []float32 // decoder output before quantization
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BitDepth() int   { return pcm.Depth16.Bits }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.floatBuf) }

// ReadSamples quantizes the decoder's float output to 16-bit. Only whole
// frames are requested, so dst shorter than one frame reads nothing.
func (s *source) ReadSamples(dst []int32) (int, error) {
	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, nil
	}

	if cap(s.floatBuf) < want {
		s.floatBuf = make([]float32, want)
	}
	s.floatBuf = s.floatBuf[:want]

	// oggvorbis returns the number of interleaved values, not frames
	n, err := s.dec.Read(s.floatBuf)
	for i := range n {
		dst[i] = pcm.Depth16.FromFloat(s.floatBuf[i])
	}

	return n, err
}

// Decoder decodes Ogg Vorbis input into an audio.Source.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		floatBuf:   make([]float32, 4096),
	}, nil
}
