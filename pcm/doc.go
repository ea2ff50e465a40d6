// SPDX-License-Identifier: EPL-2.0

// Package pcm models integer PCM sample widths.
//
// A [Depth] is selected once per buffer and then carries the representable
// range of its samples:
//
//	d, err := pcm.DepthFor(24)
//	if err != nil {
//	    // unsupported bit depth
//	}
//	v := d.Round(float64(x) * gain) // rounded half to even, clipped
//
// Every arithmetic path in the editing code runs in float64 and goes
// through [Depth.Round] on the way back to the native width, so values never
// wrap.
//
// # Supported Depths
//
//   - 8-bit:  [-128, 127]
//   - 16-bit: [-32768, 32767]
//   - 24-bit: [-8388608, 8388607]
//   - 32-bit: [-2147483648, 2147483647]
//
// Samples of every depth are stored as int32.
package pcm
