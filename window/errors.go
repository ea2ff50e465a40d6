// SPDX-License-Identifier: EPL-2.0

package window

import "errors"

var (
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidWidth      = errors.New("window width must be positive")
	ErrInvalidDuration   = errors.New("total duration must be >= 0")
	ErrInvalidPeak       = errors.New("peak index must be >= 0")
	ErrNotMerged         = errors.New("windows are not sorted or overlap")
	ErrOutOfRange        = errors.New("window outside buffer bounds")
)
