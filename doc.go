// SPDX-License-Identifier: EPL-2.0

// Package drumcut finds drum hits in a recording and cuts around them.
//
// A hit is a sample whose magnitude crosses a threshold, at least a minimum
// distance after the previous hit. Every hit gets a fixed-width window
// centred on it; overlapping or touching windows are merged. The buffer is
// then rendered in one of two modes:
//
//   - isolate: a new buffer that is silent except for the windows, each
//     faded in and out;
//   - silence: a copy of the input where every window is faded out,
//     silenced or attenuated, then faded back in.
//
// # Supported Formats
//
// Input can be decoded from:
//   - WAV (PCM 8/16/24/32-bit) via formats/wav
//   - AIFF (PCM 8/16/24/32-bit) via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// Output is written as PCM WAV at the source bit depth.
//
// # Quick Start
//
//	file, _ := os.Open("drums.wav")
//	src, _ := wav.Decoder{}.Decode(file)
//
//	buf, _ := drumcut.ReadMono(src, 4096)
//
//	cfg := config.Default()
//	cfg.Mode = config.ModeSilence
//	res, _ := drumcut.Process(buf, cfg)
//
//	stereo, _ := res.Output.Expand(2)
//	out, _ := os.Create("cut.wav")
//	_ = wav.Encode(out, stereo)
//
// # Building Blocks
//
// Each stage is usable on its own:
//
//	peaks, _ := peak.Detect(buf, 0.7, 1000)
//	ws, _ := window.Plan(peaks, buf.SampleRate, 60, buf.DurationMs())
//	out, _ := edit.RenderIsolated(buf, ws, 8, edit.Options{})
//
// window.WriteLabels exports windows as an Audacity label track.
//
// # Concurrency
//
// Windows are rendered on a bounded worker pool (edit.Options.Workers).
// Every worker owns a disjoint range of samples, so results do not depend
// on the number of workers.
package drumcut
