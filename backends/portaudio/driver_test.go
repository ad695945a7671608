// SPDX-License-Identifier: EPL-2.0

//go:build cgo

package portaudio

import (
	"errors"
	"math"
	"os"
	"testing"

	"github.com/ik5/audplay/device"
)

var _ device.Driver = (*Driver)(nil)

func TestWriteAfterClose(t *testing.T) {
	t.Parallel()

	drv := &Driver{closed: true}

	if err := drv.Write([]int16{0}, 44100, 1); !errors.Is(err, device.ErrClosed) {
		t.Errorf("Write() after Close error = %v, want ErrClosed", err)
	}
	if err := drv.Close(); err != nil {
		t.Errorf("Close() on closed driver error = %v", err)
	}
}

// TestDevicePlayback plays a short tone on real hardware. It only runs
// when AUDPLAY_DEVICE_TESTS is set.
func TestDevicePlayback(t *testing.T) {
	if os.Getenv("AUDPLAY_DEVICE_TESTS") == "" {
		t.Skip("set AUDPLAY_DEVICE_TESTS to exercise real audio devices")
	}
	if !Available() {
		t.Skip("portaudio does not initialize on this host")
	}

	drv, err := Open()
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer drv.Close()

	const rate = 44100.0
	pcm := make([]int16, 4410)
	for i := range pcm {
		pcm[i] = int16(8192 * math.Sin(2*math.Pi*440*float64(i)/rate))
	}

	if err := drv.Write(pcm, rate, 1); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
}
