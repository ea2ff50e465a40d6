// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"maps"
	"slices"
	"sync"
)

// Source is a pull-based stream of interleaved integer PCM.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// BitDepth of the integer samples (8, 16, 24 or 32).
	BitDepth() int
	// ReadSamples fills dst with interleaved integer samples in the range of BitDepth.
	// Returns number of values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []int32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

// Register maps format to d, replacing any earlier decoder.
func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

// Get looks up the decoder for format.
func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// Formats lists the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return slices.Sorted(maps.Keys(r.codecs))
}
