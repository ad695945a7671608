// SPDX-License-Identifier: EPL-2.0

package device

import "errors"

var (
	// ErrUnavailable marks a backend whose native capability is missing
	// on this host. The selection loop absorbs it.
	ErrUnavailable = errors.New("backend not available")
	// ErrInitFailed marks a capable backend that still failed to open
	// (device busy, permissions). The selection loop absorbs it too.
	ErrInitFailed = errors.New("backend failed to open")
	// ErrWriteFailed marks a failure during playback on an already-open
	// backend. It propagates to the caller.
	ErrWriteFailed = errors.New("device write failed")
	// ErrClosed is returned by Write after Close.
	ErrClosed = errors.New("device closed")
	// ErrInvalidShape is returned for ragged or zero-width frame buffers.
	ErrInvalidShape = errors.New("frames must be non-empty and rectangular")
)
