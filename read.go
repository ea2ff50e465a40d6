// SPDX-License-Identifier: EPL-2.0

package drumcut

import (
	"fmt"

	"github.com/ik5/drumcut/audio"
)

// ReadMono is a high-level convenience function that down-mixes src to mono
// and collects all of it into a Buffer at the source's rate and bit depth.
//
// No resampling happens, so sample indices in the result line up with the
// frames of src. bufferSize is the number of values pulled per read; values
// <= 0 fall back to src.BufSize().
//
// ReadMono does not close src.
//
// Example:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	buf, err := drumcut.ReadMono(src, 4096)
//	if err != nil {
//	    return err
//	}
//	res, err := drumcut.Process(buf, config.Default())
func ReadMono(src audio.Source, bufferSize int) (*audio.Buffer, error) {
	buf, err := audio.ReadAll(audio.NewMonoMixer(src), bufferSize)
	if err != nil {
		return nil, fmt.Errorf("drumcut: read: %w", err)
	}

	return buf, nil
}
