// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"
	"math"
)

// Depth describes a signed integer sample width and its representable range.
type Depth struct {
	Bits int
	Min  int64
	Max  int64
}

var (
	Depth8  = Depth{Bits: 8, Min: math.MinInt8, Max: math.MaxInt8}
	Depth16 = Depth{Bits: 16, Min: math.MinInt16, Max: math.MaxInt16}
	Depth24 = Depth{Bits: 24, Min: -1 << 23, Max: 1<<23 - 1}
	Depth32 = Depth{Bits: 32, Min: math.MinInt32, Max: math.MaxInt32}
)

// DepthFor returns the Depth for bits, which must be one of 8, 16, 24 or 32.
func DepthFor(bits int) (Depth, error) {
	switch bits {
	case 8:
		return Depth8, nil
	case 16:
		return Depth16, nil
	case 24:
		return Depth24, nil
	case 32:
		return Depth32, nil
	}

	return Depth{}, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bits)
}

// Bytes is the packed size of one sample.
func (d Depth) Bytes() int { return d.Bits / 8 }

// Contains reports whether v is representable at this depth.
func (d Depth) Contains(v int32) bool {
	return int64(v) >= d.Min && int64(v) <= d.Max
}

// Round rounds x half to even and saturates it to the depth's range.
// NaN maps to 0.
func (d Depth) Round(x float64) int32 {
	if math.IsNaN(x) {
		return 0
	}

	r := math.RoundToEven(x)
	if r >= float64(d.Max) {
		return int32(d.Max)
	}
	if r <= float64(d.Min) {
		return int32(d.Min)
	}

	return int32(r)
}

// Extend reinterprets the low d.Bits bits of v as a two's complement sample.
// Decoders that hand back raw words, signed or not, end up in range.
func (d Depth) Extend(v int) int32 {
	shift := uint(32 - d.Bits)

	return int32(uint32(v)<<shift) >> shift
}
