// SPDX-License-Identifier: EPL-2.0

// Package edit rewrites mono PCM around merged peak windows.
//
// Two renders are provided:
//
//   - RenderIsolated builds a new silent buffer and copies each window's audio
//     into it, fading every snippet in and out.
//   - RenderSilenced works in place. Each window gets a falling ramp in front
//     of it, a silenced or attenuated body and a rising ramp behind it. Ramps
//     are clamped to the gap between neighboring windows so they never reach
//     into another window.
//
// Gains are applied in float64, rounded half to even and saturated to the
// buffer's bit depth, so nothing wraps. Windows must come from window.Plan or
// pass window.Validate; they are checked before any sample is written.
//
// Windows are independent jobs run on an errgroup pool sized by
// Options.Workers. Every job owns a disjoint sample range, so concurrent and
// sequential renders produce identical output.
package edit
