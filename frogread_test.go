package frogread

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pondworks-lib/frogread/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubTTY(t *testing.T, open func() (*os.File, error)) {
	t.Helper()
	prev := openTTY
	openTTY = open
	t.Cleanup(func() { openTTY = prev })
}

func pipedInput(t *testing.T, data string) *os.File {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	_, err = w.WriteString(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return r
}

func outputFile(t *testing.T) *os.File {
	t.Helper()
	out, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = out.Close() })
	return out
}

func TestRun_PipedSeedReadsKeysFromTTY(t *testing.T) {
	in := pipedInput(t, "seed\n")
	out := outputFile(t)
	// a plain file stands in for the terminal; Enter rejects it, which
	// shows the session was built on it rather than on the pipe
	tty, err := os.Create(filepath.Join(t.TempDir(), "tty"))
	require.NoError(t, err)
	opened := 0
	stubTTY(t, func() (*os.File, error) { opened++; return tty, nil })
	var logs bytes.Buffer

	err = Run(context.Background(), in, out, Config{Log: core.FmtLogger(&logs)})

	assert.ErrorIs(t, err, core.ErrNotTerminal)
	assert.Equal(t, 1, opened)
	assert.Contains(t, logs.String(), "DEBUG initial model:")
	assert.Contains(t, logs.String(), "reading keys from "+tty.Name())
	_, err = tty.WriteString("x")
	assert.ErrorIs(t, err, os.ErrClosed, "the terminal is closed on return")
}

func TestRun_NoControllingTerminal(t *testing.T) {
	in := pipedInput(t, "seed\n")
	out := outputFile(t)
	noTTY := errors.New("no such device")
	stubTTY(t, func() (*os.File, error) { return nil, noTTY })

	err := Run(context.Background(), in, out, Config{})

	assert.ErrorIs(t, err, noTTY)
	assert.Contains(t, err.Error(), "open terminal")
	written, _ := os.ReadFile(out.Name())
	assert.Empty(t, written, "nothing is drawn before the terminal is entered")
}
