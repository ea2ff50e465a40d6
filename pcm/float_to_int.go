// SPDX-License-Identifier: EPL-2.0

package pcm

// FromFloat converts a normalized sample in [-1,1] to the depth's integer
// range. Out of range input is clamped first.
func (d Depth) FromFloat(x float32) int32 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Scale by Max so +1 never overflows
	return int32(float64(x) * float64(d.Max))
}
