// SPDX-License-Identifier: EPL-2.0

// Package malgo provides playback through the miniaudio library.
//
// This package uses github.com/gen2brain/malgo, a cgo binding that
// compiles miniaudio into the binary, so nothing needs to be installed
// on the host. miniaudio picks a host backend on its own (ALSA,
// PulseAudio, WASAPI, Core Audio and others).
//
// With cgo the full driver is compiled in; without cgo a stub takes
// its place that probes false and refuses to open.
//
// # Playback
//
// The driver holds one miniaudio context. Each write configures a
// playback device for the buffer's sample rate and channel count and
// feeds it from the device's data callback; the write returns once the
// last sample has been handed to the device. Context setup is chatty
// on some hosts, so probing and opening run with stderr suppressed.
package malgo
