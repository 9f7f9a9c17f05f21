package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/pondworks-lib/frogread/core"
	"github.com/pondworks-lib/frogread/reader"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs a cobra command with args and returns captured output
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootCommand_Flags(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "frogread", cmd.Use)
	tick, err := cmd.Flags().GetDuration("tick-rate")
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, tick)

	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["check"])
	assert.True(t, names["version"])
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(newRootCmd(), "version")

	require.NoError(t, err)
	assert.Equal(t, "frogread dev\n", out)
}

func TestCheckCommand_DefaultStatesPass(t *testing.T) {
	out, err := executeCommand(newRootCmd(), "check")

	require.NoError(t, err)
	assert.Contains(t, out, "no issues found")
}

func TestCheckCommand_NarrowFrameWarns(t *testing.T) {
	out, err := executeCommand(newRootCmd(), "check", "--width", "5")

	require.NoError(t, err, "width warnings do not fail the check")
	assert.Contains(t, out, "FROG109")
	assert.Contains(t, out, `read "were getting the hang"`)
}

func TestCheckViews_CoversEveryCandidate(t *testing.T) {
	st := reader.NewStyles(core.NewPaletteWithProfile(termenv.ANSI))

	rep := checkViews(core.Frame{Width: 1, Height: 1}, st)

	// every state is wider than one cell: initial, each candidate, paused
	assert.Equal(t, len(reader.Candidates)+2, rep.Len())
	assert.False(t, rep.HasErrors())
}

func TestOptions_Validate(t *testing.T) {
	assert.NoError(t, options{tick: time.Second, logLevel: "debug"}.validate())
	assert.ErrorContains(t, options{tick: 0, logLevel: "info"}.validate(), "--tick-rate")
	assert.ErrorContains(t, options{tick: time.Second, logLevel: "loud"}.validate(), "--log-level")
}

func TestOptions_LoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frogread.log")
	log, closer, err := options{logFile: path, logLevel: "info"}.logger()
	require.NoError(t, err)

	log.Infof("q pressed")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"q pressed"`)
}

func TestOptions_NoLogFileIsNop(t *testing.T) {
	log, closer, err := options{logLevel: "info"}.logger()

	require.NoError(t, err)
	assert.Equal(t, core.NopLogger(), log)
	assert.NoError(t, closer.Close())
}

func TestRootCommand_RejectsBadTick(t *testing.T) {
	_, err := executeCommand(newRootCmd(), "--tick-rate", "0s")

	assert.ErrorContains(t, err, "--tick-rate must be positive")
}
