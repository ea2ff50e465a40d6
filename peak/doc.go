// SPDX-License-Identifier: EPL-2.0

// Package peak finds transient hits in a mono PCM buffer.
//
// A sample is a candidate when its magnitude exceeds threshold times the
// largest positive value of the buffer's bit depth. Note that the reference
// is the format's full scale, not the loudest sample actually present.
// Candidates are then accepted left to right: the first one always, each
// later one only when it lies more than minDistance samples after the last
// accepted peak. This is a single greedy pass that favors the earliest hit in
// a cluster; it is not a globally optimal spacing.
//
//	peaks, err := peak.Detect(buf, 0.7, 1000)
//
// Detection is pure and does not log.
package peak
