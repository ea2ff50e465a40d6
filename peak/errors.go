// SPDX-License-Identifier: EPL-2.0

package peak

import "errors"

var (
	ErrInvalidThreshold   = errors.New("threshold must be in (0, 1]")
	ErrInvalidMinDistance = errors.New("min distance must be >= 0")
)
