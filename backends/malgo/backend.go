// SPDX-License-Identifier: EPL-2.0

package malgo

import "github.com/ik5/audplay/device"

// Backend returns the registry descriptor.
func Backend() device.Backend {
	return device.Backend{Name: Name, Probe: Available, Open: Open}
}
