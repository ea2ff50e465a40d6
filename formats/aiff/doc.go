// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// AIFF is Apple's standard audio file format, commonly used on macOS.
//
// # Supported Formats
//
// Uncompressed AIFF at 8, 16, 24 or 32 bits, any channel count and any
// sample rate. Other depths fail with pcm.ErrUnsupportedBitDepth.
//
// # Decoding AIFF Files
//
//	file, _ := os.Open("audio.aif")
//	source, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]int32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Samples are signed integers at the file's native bit depth. AIFF stores
// them big-endian and signed; the decoder returns them in host order.
//
// Non-seekable readers are buffered into memory first because the go-audio
// decoder seeks between chunks.
//
// # Error Handling
//
//   - ErrNotAiffFile: The input is not a valid AIFF file
//   - ErrUnsupportedAiffLayout: The COMM chunk describes no usable format
//
// # Limitations
//
// AIFF writing is not supported. AIFF-C compressed streams are not decoded.
package aiff
