// SPDX-License-Identifier: EPL-2.0

package oto

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/audplay/device"
)

// Name identifies the backend in registries and probe orders.
const Name = "oto"

// The library allows a single context per process, created with a
// fixed format and never torn down. The first write decides the rate
// and channel count for everyone after it.
var (
	ctxMtx  sync.Mutex
	ctx     *oto.Context
	ctxRate int
	ctxCh   int
)

func context(rate, channels int) (*oto.Context, error) {
	ctxMtx.Lock()
	defer ctxMtx.Unlock()

	if ctx != nil {
		if rate != ctxRate || channels != ctxCh {
			return nil, fmt.Errorf(
				"%w: context locked to %d Hz/%d channels, got %d Hz/%d channels",
				device.ErrWriteFailed, ctxRate, ctxCh, rate, channels,
			)
		}

		return ctx, nil
	}

	c, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: channels,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", device.ErrInitFailed, err)
	}
	<-ready

	ctx, ctxRate, ctxCh = c, rate, channels

	return c, nil
}

// Available reports whether this operating system has an oto
// implementation compiled in.
func Available() bool {
	switch runtime.GOOS {
	case "linux", "windows", "darwin", "js", "android", "ios":
		return true
	}

	return false
}

// Open returns the driver. The native context is acquired lazily on
// the first write, because creating it fixes the sample rate and
// channel count for the rest of the process.
func Open() (device.Driver, error) {
	if !Available() {
		return nil, fmt.Errorf("%w: no oto support on %s", device.ErrUnavailable, runtime.GOOS)
	}

	return &Driver{}, nil
}

// Backend returns the registry descriptor.
func Backend() device.Backend {
	return device.Backend{Name: Name, Probe: Available, Open: Open}
}

// Driver plays through the process-wide oto context.
type Driver struct {
	mtx    sync.Mutex
	closed bool
}

func (d *Driver) Name() string { return Name }

// Write plays the whole buffer, polling the player until it runs dry.
func (d *Driver) Write(pcm []int16, rate float64, channels int) error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.closed {
		return fmt.Errorf("%w", device.ErrClosed)
	}

	c, err := context(int(math.Round(rate)), channels)
	if err != nil {
		return err
	}

	player := c.NewPlayer(bytes.NewReader(pcmBytes(pcm)))
	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}

	if err := player.Close(); err != nil {
		return fmt.Errorf("%w: %w", device.ErrWriteFailed, err)
	}

	return nil
}

// Close marks the driver closed. The process-wide context stays alive;
// the library has no way to release it.
func (d *Driver) Close() error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	d.closed = true

	return nil
}

// pcmBytes lays samples out as little-endian byte pairs, the wire
// format of FormatSignedInt16LE.
func pcmBytes(pcm []int16) []byte {
	buf := make([]byte, 2*len(pcm))
	for i, s := range pcm {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(s))
	}

	return buf
}
