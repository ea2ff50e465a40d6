// SPDX-License-Identifier: EPL-2.0

package edit

import (
	"fmt"
	"math"
)

// Attenuation is what happens to a window body in silence mode: either full
// silence or a cut of GainDB decibels.
type Attenuation struct {
	FullSilence bool
	GainDB      float64
}

// Silence zeroes window bodies.
func Silence() Attenuation { return Attenuation{FullSilence: true} }

// Attenuate scales window bodies by 10^(-db/20). A negative db boosts.
func Attenuate(db float64) Attenuation { return Attenuation{GainDB: db} }

// Factor is the linear multiplier for the window body.
func (a Attenuation) Factor() float64 {
	if a.FullSilence {
		return 0
	}

	return math.Pow(10, -a.GainDB/20)
}

// Validate rejects a non-finite GainDB unless FullSilence is set.
func (a Attenuation) Validate() error {
	if a.FullSilence {
		return nil
	}
	if math.IsNaN(a.GainDB) || math.IsInf(a.GainDB, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidAttenuation, a.GainDB)
	}

	return nil
}

// String describes the attenuation for logs.
func (a Attenuation) String() string {
	if a.FullSilence {
		return "full silence"
	}

	return fmt.Sprintf("%g dB attenuation", a.GainDB)
}
