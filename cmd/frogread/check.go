package main

import (
	"errors"
	"fmt"

	"github.com/pondworks-lib/frogread/core"
	"github.com/pondworks-lib/frogread/core/validate"
	"github.com/pondworks-lib/frogread/reader"
	"github.com/spf13/cobra"
)

var errCheckFailed = errors.New("view check failed")

func newCheckCmd() *cobra.Command {
	frame := core.Frame{Width: 80, Height: 24}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Render every reachable state once and report view problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			rep := checkViews(frame, reader.NewStyles(core.NewPalette(out)))
			fmt.Fprintln(out, rep.Format(core.NewPalette(out)))
			if rep.HasErrors() {
				return errCheckFailed
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&frame.Width, "width", frame.Width, "frame width in cells")
	cmd.Flags().IntVar(&frame.Height, "height", frame.Height, "frame height in cells")
	return cmd
}

// checkViews validates the initial model, one model per Read candidate and
// the paused model. Views are rendered unplaced so text that f would cut
// off is reported.
func checkViews(f core.Frame, st reader.Styles) *validate.Report {
	rep := &validate.Report{}
	run := func(subject string, m reader.Model) {
		rep.Merge(validate.View(subject, f, func() string { return reader.View(m, core.Frame{}, st) }))
	}

	run("initial", reader.DefaultModel())
	for _, c := range reader.Candidates {
		m := reader.DefaultModel()
		reader.UpdateWith(&m, reader.Read, func([]string) string { return c })
		run(fmt.Sprintf("read %q", c), m)
	}
	paused := reader.DefaultModel()
	reader.Update(&paused, reader.Pause)
	run("paused", paused)
	return rep
}
