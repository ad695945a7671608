// SPDX-License-Identifier: EPL-2.0

//go:build darwin || freebsd || netbsd || openbsd || dragonfly

package quiet

import (
	"os"

	"golang.org/x/sys/unix"
)

const stderrFd = 2

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

	if err := unix.Dup2(int(devnull.Fd()), stderrFd); err != nil {
		devnull.Close()
		unix.Close(saved)
		return nil, err
	}
	devnull.Close()

	return func() error {
		err := unix.Dup2(saved, stderrFd)
		if cerr := unix.Close(saved); err == nil {
			err = cerr
		}
		return err
	}, nil
}
