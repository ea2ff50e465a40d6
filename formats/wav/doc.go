// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes integer PCM WAV files.
//
// Decoding goes through github.com/go-audio/wav and accepts 8, 16, 24 and
// 32-bit PCM with any channel count and sample rate:
//
//	src, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // ErrNotWavFile, ErrOnlyPCMSupported or pcm.ErrUnsupportedBitDepth
//	}
//	buf := make([]int32, 4096)
//	n, err := src.ReadSamples(buf)
//
// Samples come out as signed integers at the file's native bit depth. 8-bit
// WAV is stored unsigned on disk; the decoder removes the 128 offset and the
// writers put it back.
//
// # Writing
//
// Two writers are provided:
//   - Encode uses the go-audio encoder and needs an io.WriteSeeker
//   - WriteStream emits a fixed 44-byte header followed by the samples and
//     works with any io.Writer, including pipes and stdout
//
// Both validate the buffer first and write it at its own sample rate, bit
// depth and channel count.
package wav
