// SPDX-License-Identifier: EPL-2.0

// Package audplay plays audio buffers through whatever sound system a
// host happens to have.
//
// The package probes a prioritized list of playback backends at
// runtime, binds the first one that works, and falls back to a silent
// null device when nothing does. Opening a session therefore never
// fails; degraded environments (containers, CI, headless servers) play
// silence instead of erroring.
//
// # Quick Start
//
// The package level functions share one process-wide session:
//
//	// Play one second of 440 Hz
//	err := audplay.Beep(1.0, 440)
//
//	// Play your own mono buffer of float64 samples in [-1, 1]
//	err = audplay.Play(samples, 44100)
//
//	// Release the device when done
//	_ = audplay.Close()
//
// # Sessions
//
// A Session owns at most one open device and serializes playback
// through it. Sessions open lazily: the first playback call selects
// and binds a backend. Use With to scope a session to a function:
//
//	err := audplay.With(func(s *audplay.Session) error {
//	    if err := s.Beep(0.2, 880); err != nil {
//	        return err
//	    }
//	    return s.Beep(0.2, 440)
//	})
//
// # The Sample Pipeline
//
// Buffers are float64 samples in [-1, 1]. Before playback each buffer
// is prepared: per-channel DC offset removal, peak normalization to
// half scale, quantization to signed 16-bit PCM, and a stretch of
// trailing silence so device buffers drain cleanly. See the device
// package for the details and the tunables.
//
// Multi-channel audio goes through PlayFrames, where each row of the
// buffer is one frame holding one sample per channel. The channel
// count is inferred from the row length.
//
// # Backends
//
// The default probe order is:
//
//   - pulseaudio: a PulseAudio/PipeWire server, pure Go
//   - portaudio: the PortAudio library, cgo
//   - malgo: miniaudio, cgo
//   - oto: the platform's native audio API, via ebitengine/oto
//   - speaker: the gopxl/beep mixer
//   - null: discards everything, never fails
//
// Backends that do not probe are skipped silently; backends that probe
// but fail to open are logged as warnings (via logrus) and skipped.
// The walk always terminates: when nothing else opens, the null driver
// is bound.
//
// Custom orders and registries are per-session options:
//
//	s := audplay.New(audplay.WithOrder("oto", "null"))
//
// The backends/wavfile package plugs the same interface but renders
// into a WAV file, which is handy in tests and batch jobs.
//
// # Errors
//
// Playback calls return ErrInvalidArgument for malformed input before
// any device is touched. Device failures during playback surface as
// the device package's sentinels, wrapped; match with errors.Is:
//
//	if errors.Is(err, device.ErrWriteFailed) {
//	    ...
//	}
package audplay
