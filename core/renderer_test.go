package core

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }

func TestRenderer_FirstRenderClearsAndPaints(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	require.NoError(t, r.Render("main"))

	out := buf.String()
	assert.Contains(t, out, "\x1b[2J")
	assert.Contains(t, out, "\x1b[Hmain\x1b[0J")
}

func TestRenderer_IdenticalFrameWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	require.NoError(t, r.Render("main"))
	buf.Reset()

	require.NoError(t, r.Render("main"))

	assert.Empty(t, buf.String())
}

func TestRenderer_DiffRepaintsChangedRowsOnly(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	require.NoError(t, r.Render("one\ntwo\nthree"))
	buf.Reset()

	require.NoError(t, r.Render("one\nTWO"))

	out := buf.String()
	assert.NotContains(t, out, "one")
	assert.Contains(t, out, "\x1b[2;1HTWO\x1b[0K")
	assert.Contains(t, out, "\x1b[3;1H\x1b[2K", "removed row is cleared")
}

func TestRenderer_FullRepaintUsesCRLF(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	require.NoError(t, r.Render("a\nb"))

	assert.Contains(t, buf.String(), "a\r\nb")
}

func TestRenderer_WriteErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	r := NewRenderer(failWriter{err: boom})

	err := r.Render("main")

	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, r.Close(), boom)
}

func TestNormalizeNewlines(t *testing.T) {
	assert.Equal(t, "a\nb\nc", normalizeNewlines("a\r\nb\rc"))
	assert.Equal(t, "plain", normalizeNewlines("plain"))
}
