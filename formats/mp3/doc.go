// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
//
// # Decoding MP3 Files
//
//	file, _ := os.Open("audio.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]int32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Output Format
//
//   - Sample format: signed 16-bit values in int32
//   - Channels: always 2, go-mp3 duplicates mono streams
//   - Sample rate: that of the MP3 file
//
// To fold to mono use audio.NewMonoMixer.
//
// # Limitations
//
// MP3 writing is not supported. The decoder's byte stream may split a sample
// across reads; the trailing byte is carried into the next ReadSamples call.
package mp3
