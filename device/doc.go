// SPDX-License-Identifier: EPL-2.0

// Package device defines the playback contract shared by all audio
// backends and the transformation that turns raw sample buffers into
// device-ready PCM.
//
// # Driver Interface
//
// Every backend implements Driver:
//
//	type Driver interface {
//	    Name() string
//	    Write(pcm []int16, rate float64, channels int) error
//	    Close() error
//	}
//
// Write is synchronous: it returns once the backend has consumed the
// buffer. Close releases the native device and is safe to call more
// than once.
//
// # Registry
//
// A Registry maps backend names to Backend descriptors and answers the
// question "is this backend usable on this host?" at most once per
// name:
//
//	reg := device.NewRegistry()
//	reg.Register(pulse.Backend())
//	if reg.Available("pulseaudio") {
//	    drv, err := reg.Open("pulseaudio")
//	    ...
//	}
//
// Availability is an environment fact (is the server reachable, is the
// native library present), so the probe result is cached for the life
// of the Registry.
//
// # Prepare Stage
//
// Prepare and PrepareFrames run the fixed pipeline that every buffer
// passes through before reaching a driver:
//
//  1. channel count from the buffer shape (flat = mono, row width
//     otherwise)
//  2. per-channel DC offset removal
//  3. normalization to 1/Headroom of full scale, guarding all-zero
//     buffers against a zero divisor
//  4. quantization to signed 16-bit (round(2^15 * x))
//  5. trailing silence, Padding * frames extra
//
// The tunables live in Params; DefaultParams matches the behavior most
// backends want:
//
//	pcm := device.Prepare(samples, device.DefaultParams())
//
// # Sample Format
//
// Input samples are float64. The pipeline centers and rescales them, so
// any consistent amplitude convention works; [-1, 1] is conventional.
// Output is interleaved signed 16-bit PCM in native byte order, the
// format the backends hand to their native subsystems.
package device
