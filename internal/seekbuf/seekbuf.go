// SPDX-License-Identifier: EPL-2.0

// Package seekbuf adapts plain readers for decoders that need io.ReadSeeker.
package seekbuf

import (
	"errors"
	"fmt"
	"io"
)

var ErrNegativePosition = errors.New("negative position")

// Reader implements io.ReadSeeker over in-memory data.
type Reader struct {
	data   []byte
	offset int64
}

// New wraps data without copying it.
func New(data []byte) *Reader {
	return &Reader{data: data}
}

// From returns r itself when it already seeks, otherwise it reads r fully
// into memory.
func From(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}

	return New(data), nil
}

func (rs *Reader) Read(p []byte) (n int, err error) {
	if rs.offset >= int64(len(rs.data)) {
		return 0, io.EOF
	}
	n = copy(p, rs.data[rs.offset:])
	rs.offset += int64(n)
	return n, nil
}

func (rs *Reader) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = rs.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(rs.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, ErrNegativePosition
	}

	rs.offset = newOffset
	return newOffset, nil
}
