// SPDX-License-Identifier: EPL-2.0

// Package speaker provides playback through the gopxl/beep speaker.
//
// beep runs a process-wide mixer (itself backed by oto) that streams
// two-channel float64 audio. The driver adapts interleaved PCM to that
// contract: mono buffers play on both channels, stereo buffers split.
//
// The speaker initializes once, at the first write's sample rate, and
// stays locked to it. Writes block until the end-of-stream callback
// fires; Close clears whatever is still queued.
//
// The backend always probes true. It sits near the end of the default
// order because it shares oto's one-context-per-process constraint
// while adding a mixer layer on top.
package speaker
