// SPDX-License-Identifier: EPL-2.0

// Package window turns peak sample indices into merged millisecond windows.
//
// Each peak becomes a window of windowMs/2 on either side of its center,
// where the center is the peak's position floored to whole milliseconds.
// Windows are clipped to [0, totalMs), dropped when nothing is left, sorted by
// start and merged whenever one starts at or before the previous one's end.
// Plan output is sorted and strictly disjoint: end[i] < start[i+1]. Validate
// also accepts touching windows, end[i] == start[i+1].
//
//	ws, err := window.Plan(peaks, 48000, 60, buf.DurationMs())
//
// ToSamples maps a window back to sample indices with round half to even,
// the same rounding the editors use for fade lengths.
package window
