// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM containers and streaming primitives shared by
// the decoders and the editing code.
//
// This package contains:
//   - Source interface for streaming decoder output
//   - Buffer, a fully materialized block of integer PCM
//   - MonoMixer for channel down-mixing
//   - ReadAll to collect a Source into a Buffer
//   - Format registry for decoder registration
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    BitDepth() int
//	    ReadSamples(dst []int32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are signed integers in the range of the source's bit depth
// (8, 16, 24 or 32). Decoders that produce floats quantize to 16-bit.
//
// # Buffers
//
// Peak detection and editing need the whole signal up front, so a Source is
// drained into a Buffer:
//
//	buf, err := audio.ReadAll(audio.NewMonoMixer(src), 4096)
//
// Buffer.Validate checks the metadata and that every sample fits the bit
// depth. Buffer.Expand duplicates mono into N channels for export.
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
