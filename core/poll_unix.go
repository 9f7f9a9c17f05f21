//go:build unix && !darwin

package core

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// waitReadable blocks until fd has data or timeout elapses.
func waitReadable(fd uintptr, timeout time.Duration) (bool, error) {
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, int(timeout.Milliseconds()))
	if err != nil {
		// a signal landed mid-wait; report an empty tick
		if errors.Is(err, unix.EINTR) {
			return false, nil
		}
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	if fds[0].Revents&(unix.POLLERR|unix.POLLNVAL) != 0 {
		return false, fmt.Errorf("poll fd %d: revents %#x", fd, fds[0].Revents)
	}
	// POLLHUP falls through as readable so the next read surfaces EOF.
	return true, nil
}
