// SPDX-License-Identifier: EPL-2.0

package edit

// Ramp is a linear gain over N samples that hits both Start and End exactly.
// A one-sample ramp is just Start.
type Ramp struct {
	N     int
	Start float64
	End   float64
}

// Rising goes 0 to 1 over n samples.
func Rising(n int) Ramp { return Ramp{N: n, Start: 0, End: 1} }

// Falling goes 1 to 0 over n samples.
func Falling(n int) Ramp { return Ramp{N: n, Start: 1, End: 0} }

// Gain is the multiplier for the k-th sample of the ramp.
func (r Ramp) Gain(k int) float64 {
	if r.N <= 1 || k <= 0 {
		return r.Start
	}
	if k >= r.N-1 {
		return r.End
	}

	step := (r.End - r.Start) / float64(r.N-1)

	return float64(k)*step + r.Start
}
