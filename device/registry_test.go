// SPDX-License-Identifier: EPL-2.0

package device

import (
	"errors"
	"testing"
)

type nopDriver struct{ name string }

func (d *nopDriver) Name() string                                       { return d.name }
func (d *nopDriver) Write(pcm []int16, rate float64, channels int) error { return nil }
func (d *nopDriver) Close() error                                       { return nil }

func TestRegistryProbeRunsOnce(t *testing.T) {
	t.Parallel()

	probes := 0
	reg := NewRegistry()
	reg.Register(Backend{
		Name:  "counted",
		Probe: func() bool { probes++; return true },
		Open:  func() (Driver, error) { return &nopDriver{name: "counted"}, nil },
	})

	for range 3 {
		if !reg.Available("counted") {
			t.Fatal("Available(counted) = false, want true")
		}
	}

	if probes != 1 {
		t.Errorf("probe ran %d times, want 1", probes)
	}
}

func TestRegistryUnknownBackend(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()

	if reg.Available("nope") {
		t.Error("Available(nope) = true, want false")
	}

	_, err := reg.Open("nope")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Open(nope) error = %v, want ErrUnavailable", err)
	}
}

func TestRegistryNilProbeCountsAsAvailable(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(Backend{
		Name: "trusting",
		Open: func() (Driver, error) { return &nopDriver{name: "trusting"}, nil },
	})

	if !reg.Available("trusting") {
		t.Error("Available() = false, want true for nil probe")
	}
}

func TestRegistryRegisterReplaces(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(Backend{Name: "flaky", Probe: func() bool { return false }})

	if reg.Available("flaky") {
		t.Fatal("Available() = true, want false")
	}

	// Re-registering discards the cached probe result.
	reg.Register(Backend{
		Name:  "flaky",
		Probe: func() bool { return true },
		Open:  func() (Driver, error) { return &nopDriver{name: "flaky"}, nil },
	})

	if !reg.Available("flaky") {
		t.Error("Available() = false after re-register, want true")
	}
}

func TestRegistryOpen(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("device is busy")

	reg := NewRegistry()
	reg.Register(Backend{
		Name: "good",
		Open: func() (Driver, error) { return &nopDriver{name: "good"}, nil },
	})
	reg.Register(Backend{
		Name: "busy",
		Open: func() (Driver, error) { return nil, wantErr },
	})
	reg.Register(Backend{Name: "openerless"})

	drv, err := reg.Open("good")
	if err != nil {
		t.Fatalf("Open(good) error = %v", err)
	}
	if drv.Name() != "good" {
		t.Errorf("Open(good).Name() = %q, want %q", drv.Name(), "good")
	}

	if _, err := reg.Open("busy"); !errors.Is(err, wantErr) {
		t.Errorf("Open(busy) error = %v, want %v", err, wantErr)
	}

	if _, err := reg.Open("openerless"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Open(openerless) error = %v, want ErrUnavailable", err)
	}
}

func TestRegistryGet(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(Backend{Name: "present"})

	if _, ok := reg.Get("present"); !ok {
		t.Error("Get(present) ok = false, want true")
	}
	if _, ok := reg.Get("absent"); ok {
		t.Error("Get(absent) ok = true, want false")
	}
}
