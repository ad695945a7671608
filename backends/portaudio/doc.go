// SPDX-License-Identifier: EPL-2.0

// Package portaudio provides playback through the PortAudio library.
//
// This package uses github.com/gordonklaus/portaudio, a cgo binding to
// the native library. It reaches sound hardware on hosts without a
// PulseAudio server, at the price of needing libportaudio installed.
//
// # Build Modes
//
// With cgo the full driver is compiled in; without cgo a stub takes
// its place that probes false and refuses to open. Probe orders can
// therefore always list the backend, whatever the build.
//
// # Probing and Noise
//
// PortAudio's host API discovery writes warnings to stderr on most
// ALSA setups. Both the probe and Open run with stderr temporarily
// redirected to keep that noise out of the host application's output.
//
// # Playback
//
// Each write opens a stream on the default output device and feeds it
// from the stream callback, zero filling once the buffer runs out; the
// write returns when the last sample has been handed to the device.
package portaudio
