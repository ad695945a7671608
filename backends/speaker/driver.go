// SPDX-License-Identifier: EPL-2.0

package speaker

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/ik5/audplay/device"
	"github.com/ik5/audplay/utils"
)

// Name identifies the backend in registries and probe orders.
const Name = "speaker"

// The library owns one mixer per process, initialized once at a fixed
// sample rate. The first write decides that rate.
var (
	initMtx  sync.Mutex
	initRate int
)

func ensure(rate int) error {
	initMtx.Lock()
	defer initMtx.Unlock()

	if initRate == 0 {
		sr := beep.SampleRate(rate)
		if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
			return fmt.Errorf("%w: %w", device.ErrInitFailed, err)
		}

		initRate = rate

		return nil
	}

	if rate != initRate {
		return fmt.Errorf(
			"%w: speaker locked to %d Hz, got %d Hz",
			device.ErrWriteFailed, initRate, rate,
		)
	}

	return nil
}

// Available always reports true: the backend is pure Go and carried in
// every build. Failures surface when the speaker initializes.
func Available() bool { return true }

// Open returns the driver. The speaker itself initializes lazily on
// the first write, at that write's sample rate.
func Open() (device.Driver, error) { return &Driver{}, nil }

// Backend returns the registry descriptor.
func Backend() device.Backend {
	return device.Backend{Name: Name, Probe: Available, Open: Open}
}

// Driver plays through the process-wide beep speaker.
type Driver struct {
	mtx    sync.Mutex
	closed bool
}

func (d *Driver) Name() string { return Name }

// Write queues the buffer on the speaker mixer and blocks until the
// end-of-stream callback fires.
func (d *Driver) Write(pcm []int16, rate float64, channels int) error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.closed {
		return fmt.Errorf("%w", device.ErrClosed)
	}

	if channels != 1 && channels != 2 {
		return fmt.Errorf(
			"%w: %d channels, the speaker driver plays mono and stereo",
			device.ErrWriteFailed, channels,
		)
	}

	if err := ensure(int(math.Round(rate))); err != nil {
		return err
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(
		&pcmStreamer{pcm: pcm, channels: channels},
		beep.Callback(func() { close(done) }),
	))
	<-done

	return nil
}

// Close stops whatever is still queued. The process-wide speaker stays
// initialized for the next driver.
func (d *Driver) Close() error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true

	initMtx.Lock()
	if initRate != 0 {
		speaker.Clear()
	}
	initMtx.Unlock()

	return nil
}

// pcmStreamer adapts interleaved PCM to the library's two-channel
// float contract: mono plays on both channels, stereo splits.
type pcmStreamer struct {
	pcm      []int16
	channels int
	pos      int
}

func (s *pcmStreamer) Stream(samples [][2]float64) (int, bool) {
	total := len(s.pcm) / s.channels
	if s.pos >= total {
		return 0, false
	}

	n := 0
	for i := range samples {
		if s.pos >= total {
			break
		}

		switch s.channels {
		case 1:
			v := utils.Int16ToFloat64(s.pcm[s.pos])
			samples[i][0], samples[i][1] = v, v
		case 2:
			samples[i][0] = utils.Int16ToFloat64(s.pcm[2*s.pos])
			samples[i][1] = utils.Int16ToFloat64(s.pcm[2*s.pos+1])
		}

		s.pos++
		n++
	}

	return n, true
}

func (s *pcmStreamer) Err() error { return nil }
