// SPDX-License-Identifier: EPL-2.0

package audplay

import "errors"

var (
	// ErrInvalidArgument rejects malformed caller input: empty or
	// ragged buffers, non-positive rates or durations, out-of-range
	// ramps. It is returned before any backend is touched.
	ErrInvalidArgument = errors.New("invalid argument")
)
