// SPDX-License-Identifier: EPL-2.0

package device

// Driver is the uniform playback contract every backend implements.
type Driver interface {
	// Name of the backend, e.g. "pulseaudio".
	Name() string
	// Write pushes interleaved 16-bit PCM to the device and blocks until
	// the backend has consumed it. len(pcm) must be a multiple of
	// channels and rate must be positive.
	Write(pcm []int16, rate float64, channels int) error

	// Close stops the stream and releases the native device.
	// Safe to call more than once.
	Close() error
}

// Backend describes one selectable playback variant.
type Backend struct {
	// Name identifies the backend in a Registry and in probe orders.
	Name string
	// Probe reports whether the native subsystem looks usable on this
	// host. A Registry calls it at most once and caches the answer.
	// Nil counts as available.
	Probe func() bool
	// Open acquires the native device.
	Open func() (Driver, error)
}
