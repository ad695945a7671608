package audplay

import "sync"

var (
	defaultMtx     sync.Mutex
	defaultSession *Session
)

// Default returns the process-wide session used by the package level
// playback functions, creating it on first use.
func Default() *Session {
	defaultMtx.Lock()
	defer defaultMtx.Unlock()

	if defaultSession == nil {
		defaultSession = New()
	}

	return defaultSession
}

// Play plays a mono buffer through the process-wide session.
func Play(samples []float64, rate float64) error {
	return Default().Play(samples, rate)
}

// PlayFrames plays a multi-channel buffer through the process-wide
// session.
func PlayFrames(frames [][]float64, rate float64) error {
	return Default().PlayFrames(frames, rate)
}

// Beep plays a sine tone through the process-wide session.
func Beep(duration, frequency float64) error {
	return Default().Beep(duration, frequency)
}

// Tone synthesizes and plays a sine wave through the process-wide
// session.
func Tone(duration, frequency, rate, ramp float64) error {
	return Default().Tone(duration, frequency, rate, ramp)
}

// Close releases the process-wide session's device, if one was ever
// opened. Playback after Close reopens it.
func Close() error {
	defaultMtx.Lock()
	s := defaultSession
	defaultMtx.Unlock()

	if s == nil {
		return nil
	}

	return s.Close()
}
