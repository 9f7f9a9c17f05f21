//go:build windows

package core

const ttyPath = "CONIN$"
