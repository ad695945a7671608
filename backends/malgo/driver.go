// SPDX-License-Identifier: EPL-2.0

//go:build cgo

package malgo

import (
	"fmt"
	"math"
	"sync"

	"github.com/gen2brain/malgo"

	"github.com/ik5/audplay/device"
	"github.com/ik5/audplay/internal/quiet"
)

// Name identifies the backend in registries and probe orders.
const Name = "malgo"

// Available reports whether a miniaudio context comes up. Context
// setup probes every host backend and logs to stderr while doing it,
// so the probe runs suppressed.
func Available() bool {
	var (
		ctx *malgo.AllocatedContext
		err error
	)
	_ = quiet.Stderr(func() {
		ctx, err = malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	})
	if err != nil {
		return false
	}

	_ = ctx.Uninit()
	ctx.Free()

	return true
}

// Open brings up a miniaudio context. It is held for the life of the
// driver; each write runs its own playback device on it.
func Open() (device.Driver, error) {
	var (
		ctx *malgo.AllocatedContext
		err error
	)
	_ = quiet.Stderr(func() {
		ctx, err = malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", device.ErrInitFailed, err)
	}

	return &Driver{ctx: ctx}, nil
}

// Driver plays through a miniaudio context.
type Driver struct {
	mtx    sync.Mutex
	ctx    *malgo.AllocatedContext
	closed bool
}

func (d *Driver) Name() string { return Name }

// Write configures a playback device for the buffer's format, feeds it
// from the data callback and blocks until the last sample has been
// handed over. The prepare stage's trailing padding covers whatever is
// still draining in the device buffer at that point.
func (d *Driver) Write(pcm []int16, rate float64, channels int) error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.closed {
		return fmt.Errorf("%w", device.ErrClosed)
	}

	cfg := malgo.DefaultDeviceConfig(malgo.Playback)
	cfg.Playback.Format = malgo.FormatS16
	cfg.Playback.Channels = uint32(channels)
	cfg.SampleRate = uint32(math.Round(rate))
	cfg.Alsa.NoMMap = 1

	feed := newFeeder(pcm, channels)
	done := make(chan struct{})

	var once sync.Once
	dev, err := malgo.InitDevice(d.ctx.Context, cfg, malgo.DeviceCallbacks{
		Data: func(out, _ []byte, frameCount uint32) {
			if feed.fill(out, int(frameCount)) {
				once.Do(func() { close(done) })
			}
		},
	})
	if err != nil {
		return fmt.Errorf("%w: %w", device.ErrWriteFailed, err)
	}
	defer dev.Uninit()

	if err := dev.Start(); err != nil {
		return fmt.Errorf("%w: %w", device.ErrWriteFailed, err)
	}

	<-done

	return nil
}

// Close tears down the context. Closing twice is safe.
func (d *Driver) Close() error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true

	err := d.ctx.Uninit()
	d.ctx.Free()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
