// SPDX-License-Identifier: EPL-2.0

package window

import (
	"bufio"
	"fmt"
	"io"
)

// WriteLabels writes ws as an Audacity label track: one
// "start<TAB>end<TAB>hit N" line per window, times in seconds.
func WriteLabels(w io.Writer, ws []Window) error {
	bw := bufio.NewWriter(w)

	for i, win := range ws {
		_, err := fmt.Fprintf(bw, "%.6f\t%.6f\thit %d\n",
			float64(win.StartMs)/1000, float64(win.EndMs)/1000, i+1)
		if err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
