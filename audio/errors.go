// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidBuffer = errors.New("invalid sample buffer")
	ErrNotMono       = errors.New("buffer must be mono")
)
