// SPDX-License-Identifier: EPL-2.0

//go:build !cgo

package portaudio

import (
	"fmt"

	"github.com/ik5/audplay/device"
)

// Name identifies the backend in registries and probe orders.
const Name = "portaudio"

// Available reports false: the PortAudio binding needs cgo and this
// build has none.
func Available() bool { return false }

// Open always fails on builds without cgo.
func Open() (device.Driver, error) {
	return nil, fmt.Errorf("%w: portaudio needs cgo", device.ErrUnavailable)
}
