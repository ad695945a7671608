// SPDX-License-Identifier: EPL-2.0

package oto

import (
	"errors"
	"testing"

	"github.com/ik5/audplay/device"
)

var _ device.Driver = (*Driver)(nil)

func TestPCMBytes(t *testing.T) {
	t.Parallel()

	got := pcmBytes([]int16{0x0102, -2, 0})
	want := []byte{0x02, 0x01, 0xfe, 0xff, 0x00, 0x00}

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("byte %d = %#02x, want %#02x", i, got[i], want[i])
		}
	}
}

func TestPCMBytesEmpty(t *testing.T) {
	t.Parallel()

	if got := pcmBytes(nil); len(got) != 0 {
		t.Errorf("pcmBytes(nil) has %d bytes, want 0", len(got))
	}
}

func TestWriteAfterClose(t *testing.T) {
	t.Parallel()

	drv := &Driver{}
	if err := drv.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if err := drv.Write([]int16{0}, 44100, 1); !errors.Is(err, device.ErrClosed) {
		t.Errorf("Write() after Close error = %v, want ErrClosed", err)
	}
}

func TestBackendDescriptor(t *testing.T) {
	t.Parallel()

	b := Backend()

	if b.Name != Name {
		t.Errorf("Backend().Name = %q, want %q", b.Name, Name)
	}
	if b.Probe == nil || b.Open == nil {
		t.Error("Backend() must carry both a probe and an opener")
	}
}
