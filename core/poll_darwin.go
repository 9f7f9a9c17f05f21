//go:build darwin

package core

import (
	"errors"
	"time"

	"golang.org/x/sys/unix"
)

// waitReadable uses select(2): poll(2) reports POLLNVAL for tty devices on darwin.
func waitReadable(fd uintptr, timeout time.Duration) (bool, error) {
	var set unix.FdSet
	set.Set(int(fd))
	tv := unix.NsecToTimeval(timeout.Nanoseconds())
	n, err := unix.Select(int(fd)+1, &set, nil, nil, &tv)
	if err != nil {
		if errors.Is(err, unix.EINTR) {
			return false, nil
		}
		return false, err
	}
	return n > 0, nil
}
