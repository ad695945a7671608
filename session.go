// SPDX-License-Identifier: EPL-2.0

package audplay

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audplay/backends/malgo"
	"github.com/ik5/audplay/backends/null"
	"github.com/ik5/audplay/backends/oto"
	"github.com/ik5/audplay/backends/portaudio"
	"github.com/ik5/audplay/backends/pulse"
	"github.com/ik5/audplay/backends/speaker"
	"github.com/ik5/audplay/device"
)

// Option configures a Session.
type Option func(*Session)

// WithRegistry makes the session select from reg instead of the
// process-wide default registry.
func WithRegistry(reg *device.Registry) Option {
	return func(s *Session) { s.reg = reg }
}

// WithOrder replaces the probe order. Names that are not registered
// are skipped; when nothing in the order opens, the null driver still
// terminates the walk.
func WithOrder(names ...string) Option {
	return func(s *Session) { s.order = append([]string(nil), names...) }
}

// WithDriver binds an already open driver, skipping backend selection
// entirely. The session owns the driver and closes it.
func WithDriver(drv device.Driver) Option {
	return func(s *Session) { s.drv = drv }
}

// WithParams replaces the prepare stage tunables (normalization
// headroom and trailing padding).
func WithParams(p device.Params) Option {
	return func(s *Session) { s.params = p }
}

// Session owns at most one open playback driver and serializes access
// to it: concurrent playback calls queue up behind each other instead
// of overlapping.
//
// The zero value is not usable; call New.
type Session struct {
	mtx    sync.Mutex
	drv    device.Driver
	reg    *device.Registry
	order  []string
	params device.Params
}

// New returns a session. No device is touched until the first playback
// call, or an explicit Open.
func New(opts ...Option) *Session {
	s := &Session{
		reg:    defaultRegistry(),
		order:  DefaultOrder(),
		params: device.DefaultParams(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Open binds a driver now instead of on the first playback call. It
// never fails: candidates that do not probe or do not open are logged
// and skipped, and when the whole order has been walked without a
// winner the null driver is bound, degrading playback to silence.
//
// Opening an open session does nothing.
func (s *Session) Open() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.openLocked()
}

func (s *Session) openLocked() {
	if s.drv != nil {
		return
	}

	for _, name := range s.order {
		if !s.reg.Available(name) {
			logrus.WithFields(logrus.Fields{
				"backend": name,
			}).Debug("audio backend not available")

			continue
		}

		drv, err := s.reg.Open(name)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"backend": name,
				"error":   err,
			}).Warn("failed to open audio backend")

			continue
		}

		logrus.WithFields(logrus.Fields{
			"backend": name,
		}).Debug("audio backend selected")

		s.drv = drv

		return
	}

	logrus.Debug("no audio backend available, playing into the void")
	s.drv = null.Driver{}
}

// Play plays a mono buffer of samples in [-1, 1] at rate Hz, blocking
// until the device has consumed it. The buffer is read, never kept or
// mutated.
func (s *Session) Play(samples []float64, rate float64) error {
	if len(samples) == 0 {
		return fmt.Errorf("%w: empty buffer", ErrInvalidArgument)
	}
	if rate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %g", ErrInvalidArgument, rate)
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	pcm := device.Prepare(samples, s.params)

	s.openLocked()
	if err := s.drv.Write(pcm, rate, 1); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// PlayFrames plays a multi-channel buffer at rate Hz: each row is one
// frame holding one sample per channel, so a stereo buffer has rows of
// length two. All rows must have the same length.
func (s *Session) PlayFrames(frames [][]float64, rate float64) error {
	if len(frames) == 0 {
		return fmt.Errorf("%w: empty buffer", ErrInvalidArgument)
	}
	if rate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %g", ErrInvalidArgument, rate)
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	pcm, channels, err := device.PrepareFrames(frames, s.params)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	s.openLocked()
	if err := s.drv.Write(pcm, rate, channels); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Tone synthesizes and plays a sine wave: duration seconds of
// frequency Hz at rate samples per second, with linear fade ramps of
// ramp seconds on both ends.
func (s *Session) Tone(duration, frequency, rate, ramp float64) error {
	if duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %g", ErrInvalidArgument, duration)
	}
	if rate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %g", ErrInvalidArgument, rate)
	}
	if ramp < 0 || ramp > duration/2 {
		return fmt.Errorf("%w: ramp must be within [0, duration/2], got %g", ErrInvalidArgument, ramp)
	}

	return s.Play(sineTone(duration, frequency, rate, ramp), rate)
}

// Beep plays a frequency Hz sine for duration seconds at the default
// rate. The default ramp shrinks to fit very short beeps.
func (s *Session) Beep(duration, frequency float64) error {
	ramp := DefaultBeepRamp
	if duration > 0 && ramp > duration/2 {
		ramp = duration / 2
	}

	return s.Tone(duration, frequency, DefaultBeepRate, ramp)
}

// Close releases the bound driver, if any. Closing a closed session is
// a no-op, and the next playback call opens a fresh driver.
func (s *Session) Close() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.drv == nil {
		return nil
	}

	err := s.drv.Close()
	s.drv = nil
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Driver reports the bound backend's name, or the empty string while
// no driver is bound.
func (s *Session) Driver() string {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.drv == nil {
		return ""
	}

	return s.drv.Name()
}

// With runs fn with a fresh session and guarantees the device is
// released on every exit path. fn's error wins over Close's.
func With(fn func(*Session) error, opts ...Option) (err error) {
	s := New(opts...)
	defer func() {
		cerr := s.Close()
		if err == nil {
			err = cerr
		}
	}()

	return fn(s)
}

// Process-wide backend registry. Its probe cache makes "is this
// backend usable" a once-per-process question, shared by every session
// that does not bring its own registry.
var (
	regOnce sync.Once
	reg     *device.Registry
)

func defaultRegistry() *device.Registry {
	regOnce.Do(func() {
		reg = device.NewRegistry()
		reg.Register(pulse.Backend())
		reg.Register(portaudio.Backend())
		reg.Register(malgo.Backend())
		reg.Register(oto.Backend())
		reg.Register(speaker.Backend())
		reg.Register(null.Backend())
	})

	return reg
}

// DefaultOrder returns the default probe order: sound servers first,
// then direct hardware access, ending in the null fallback.
func DefaultOrder() []string {
	return []string{
		pulse.Name,
		portaudio.Name,
		malgo.Name,
		oto.Name,
		speaker.Name,
		null.Name,
	}
}
