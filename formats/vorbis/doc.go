// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis files.
//
// # Decoding Vorbis Files
//
//	file, _ := os.Open("audio.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]int32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Output Format
//
// Vorbis decodes to floating point. The source quantizes to signed 16-bit
// with pcm.Depth16.FromFloat, clamping anything outside [-1, 1], and reports
// a bit depth of 16. Channel count and sample rate come from the stream.
//
// ReadSamples only reads whole frames, so a dst shorter than one frame
// returns (0, nil).
//
// # Limitations
//
// Vorbis encoding is not supported.
package vorbis
