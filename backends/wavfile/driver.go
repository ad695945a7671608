// SPDX-License-Identifier: EPL-2.0

package wavfile

import (
	"fmt"
	"math"
	"os"
	"sync"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/audplay/device"
)

// Name identifies the backend in registries and probe orders.
const Name = "wavfile"

// encoder is the part of wav.Encoder the driver uses, to allow
// testing.
type encoder interface {
	Write(buf *goaudio.IntBuffer) error
	Close() error
}

// Open creates path and returns a driver that renders PCM into it as a
// 16-bit WAV file instead of playing it. The file format is fixed by
// the first write; a driver closed before any write leaves the file
// empty.
func Open(path string) (device.Driver, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", device.ErrInitFailed, err)
	}

	return &Driver{file: f}, nil
}

// Backend returns a registry descriptor rendering into path. It is not
// part of the default probe order; register it and put its name first
// to capture playback instead of hearing it.
func Backend(path string) device.Backend {
	return device.Backend{
		Name:  Name,
		Probe: func() bool { return true },
		Open:  func() (device.Driver, error) { return Open(path) },
	}
}

// Driver renders PCM into a WAV file.
type Driver struct {
	mtx      sync.Mutex
	file     *os.File
	enc      encoder
	rate     int
	channels int
	closed   bool
}

func (d *Driver) Name() string { return Name }

// Write appends the buffer to the file. The first write decides the
// file's sample rate and channel count.
func (d *Driver) Write(pcm []int16, rate float64, channels int) error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.closed {
		return fmt.Errorf("%w", device.ErrClosed)
	}

	r := int(math.Round(rate))
	if d.enc == nil {
		d.enc = wav.NewEncoder(d.file, r, 16, channels, 1)
		d.rate, d.channels = r, channels
	} else if r != d.rate || channels != d.channels {
		return fmt.Errorf(
			"%w: file locked to %d Hz/%d channels, got %d Hz/%d channels",
			device.ErrWriteFailed, d.rate, d.channels, r, channels,
		)
	}

	data := make([]int, len(pcm))
	for i, s := range pcm {
		data[i] = int(s)
	}

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: r},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := d.enc.Write(buf); err != nil {
		return fmt.Errorf("%w: %w", device.ErrWriteFailed, err)
	}

	return nil
}

// Close finalizes the WAV header and closes the file. Closing twice is
// safe.
func (d *Driver) Close() error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true

	var err error
	if d.enc != nil {
		err = d.enc.Close()
	}
	if cerr := d.file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
