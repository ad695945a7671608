// SPDX-License-Identifier: EPL-2.0

// Package pulse provides playback through a PulseAudio sound server.
//
// This package uses github.com/jfreymuth/pulse, a pure Go client for
// the PulseAudio native protocol. It needs no cgo and also works
// against PipeWire's PulseAudio compatibility layer, which makes it
// the preferred backend on desktop Linux.
//
// # Probing
//
// Available connects to the server and immediately disconnects:
//
//	if pulse.Available() {
//	    drv, err := pulse.Open()
//	    ...
//	}
//
// A host without a running server (or without the user's cookie) fails
// the probe rather than the playback call.
//
// # Playback
//
// Each write runs a dedicated playback stream over the shared client
// connection: the stream pulls samples through a callback, is drained
// once the buffer runs out, and closed. Blocking until drained is what
// gives the driver its write-everything-then-return contract.
//
// # Supported Formats
//
//   - Signed 16-bit PCM
//   - Mono and stereo (more channels are rejected)
//   - Any sample rate the server accepts
package pulse
