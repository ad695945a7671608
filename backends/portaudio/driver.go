// SPDX-License-Identifier: EPL-2.0

//go:build cgo

package portaudio

import (
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/ik5/audplay/device"
	"github.com/ik5/audplay/internal/quiet"
)

// Name identifies the backend in registries and probe orders.
const Name = "portaudio"

// Available reports whether the native library initializes. Host API
// discovery is chatty on ALSA, so the probe runs with stderr
// suppressed.
func Available() bool {
	var err error
	_ = quiet.Stderr(func() { err = portaudio.Initialize() })
	if err != nil {
		return false
	}

	_ = quiet.Stderr(func() { _ = portaudio.Terminate() })

	return true
}

// Open initializes the native library. Initializations are reference
// counted, so probing and multiple drivers do not step on each other.
func Open() (device.Driver, error) {
	var err error
	_ = quiet.Stderr(func() { err = portaudio.Initialize() })
	if err != nil {
		return nil, fmt.Errorf("%w: %w", device.ErrInitFailed, err)
	}

	return &Driver{}, nil
}

// Driver plays through the default PortAudio output device.
type Driver struct {
	mtx    sync.Mutex
	closed bool
}

func (d *Driver) Name() string { return Name }

// Write opens a callback stream on the default device and feeds it
// until the buffer runs out. The prepare stage's trailing padding
// covers whatever is still in flight when the last sample is handed
// over.
func (d *Driver) Write(pcm []int16, rate float64, channels int) error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.closed {
		return fmt.Errorf("%w", device.ErrClosed)
	}

	feed := &feeder{pcm: pcm}
	done := make(chan struct{})

	var once sync.Once
	stream, err := portaudio.OpenDefaultStream(0, channels, rate, 0, func(out []int16) {
		if feed.fill(out) {
			once.Do(func() { close(done) })
		}
	})
	if err != nil {
		return fmt.Errorf("%w: %w", device.ErrWriteFailed, err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return fmt.Errorf("%w: %w", device.ErrWriteFailed, err)
	}

	<-done

	if err := stream.Stop(); err != nil {
		return fmt.Errorf("%w: %w", device.ErrWriteFailed, err)
	}

	return nil
}

// Close terminates the native library (the initialization count keeps
// other open drivers valid). Closing twice is safe.
func (d *Driver) Close() error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true

	if err := portaudio.Terminate(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
