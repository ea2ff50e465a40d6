// SPDX-License-Identifier: EPL-2.0

package audiotest

// Impulses returns frames samples of silence with the given index -> value
// hits written in.
func Impulses(frames int, hits map[int]int32) []int32 {
	data := make([]int32, frames)
	for idx, v := range hits {
		data[idx] = v
	}

	return data
}

// Constant returns frames samples all set to value.
func Constant(frames int, value int32) []int32 {
	data := make([]int32, frames)
	for i := range data {
		data[i] = value
	}

	return data
}

// Noise returns deterministic pseudo-random samples in [-amplitude, amplitude]
// from a linear congruential generator seeded with seed.
func Noise(frames int, amplitude int32, seed uint32) []int32 {
	data := make([]int32, frames)
	state := seed
	span := int64(amplitude)*2 + 1
	for i := range data {
		state = state*1664525 + 1013904223
		data[i] = int32(int64(state)%span - int64(amplitude))
	}

	return data
}
