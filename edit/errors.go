// SPDX-License-Identifier: EPL-2.0

package edit

import "errors"

var (
	ErrInvalidFade        = errors.New("fade length must be >= 0")
	ErrInvalidAttenuation = errors.New("attenuation gain must be finite")
)
