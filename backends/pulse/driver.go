// SPDX-License-Identifier: EPL-2.0

package pulse

import (
	"fmt"
	"math"
	"sync"

	"github.com/jfreymuth/pulse"

	"github.com/ik5/audplay/device"
)

// Name identifies the backend in registries and probe orders.
const Name = "pulseaudio"

// Available reports whether a PulseAudio (or PipeWire) server accepts
// connections right now.
func Available() bool {
	c, err := pulse.NewClient()
	if err != nil {
		return false
	}
	c.Close()
	return true
}

// Open connects to the sound server. The connection is held for the
// life of the driver; each write runs its own playback stream over it.
func Open() (device.Driver, error) {
	c, err := pulse.NewClient()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", device.ErrInitFailed, err)
	}

	return &Driver{client: c}, nil
}

// Backend returns the registry descriptor.
func Backend() device.Backend {
	return device.Backend{Name: Name, Probe: Available, Open: Open}
}

// Driver plays through a PulseAudio server connection.
type Driver struct {
	mtx    sync.Mutex
	client *pulse.Client
	closed bool
}

func (d *Driver) Name() string { return Name }

// Write opens a playback stream, feeds it the whole buffer and drains
// it, blocking until the server has consumed everything.
func (d *Driver) Write(pcm []int16, rate float64, channels int) error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.closed {
		return fmt.Errorf("%w", device.ErrClosed)
	}

	var layout pulse.PlaybackOption
	switch channels {
	case 1:
		layout = pulse.PlaybackMono
	case 2:
		layout = pulse.PlaybackStereo
	default:
		return fmt.Errorf(
			"%w: %d channels, the pulseaudio driver plays mono and stereo",
			device.ErrWriteFailed, channels,
		)
	}

	feed := newFeeder(pcm)
	stream, err := d.client.NewPlayback(
		pulse.Int16Reader(feed.read),
		layout,
		pulse.PlaybackSampleRate(int(math.Round(rate))),
		pulse.PlaybackLatency(0.1),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", device.ErrWriteFailed, err)
	}
	defer stream.Close()

	stream.Start()
	stream.Drain()

	return nil
}

// Close drops the server connection. Closing twice is safe.
func (d *Driver) Close() error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.closed {
		return nil
	}

	d.closed = true
	d.client.Close()

	return nil
}

// feeder hands the buffer to the stream callback chunk by chunk.
type feeder struct {
	pcm []int16
	pos int
}

func newFeeder(pcm []int16) *feeder {
	return &feeder{pcm: pcm}
}

// read fills out from the remaining samples. It reports EndOfData once
// everything has been handed to the server, which ends the stream.
func (f *feeder) read(out []int16) (int, error) {
	if f.pos >= len(f.pcm) {
		return 0, pulse.EndOfData
	}

	n := copy(out, f.pcm[f.pos:])
	f.pos += n

	return n, nil
}
