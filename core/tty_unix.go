//go:build !windows

package core

const ttyPath = "/dev/tty"
