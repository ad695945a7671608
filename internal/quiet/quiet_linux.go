// SPDX-License-Identifier: EPL-2.0

//go:build linux

package quiet

import (
	"os"

	"golang.org/x/sys/unix"
)

const stderrFd = 2

// redirect points file descriptor 2 at the null device and returns the
// function that puts the original descriptor back.
func redirect() (func() error, error) {
	saved, err := unix.Dup(stderrFd)
	if err != nil {
		return nil, err
	}

	devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		unix.Close(saved)
		return nil, err
	}

	if err := unix.Dup3(int(devnull.Fd()), stderrFd, 0); err != nil {
		devnull.Close()
		unix.Close(saved)
		return nil, err
	}
	devnull.Close()

	return func() error {
		err := unix.Dup3(saved, stderrFd, 0)
		if cerr := unix.Close(saved); err == nil {
			err = cerr
		}
		return err
	}, nil
}
