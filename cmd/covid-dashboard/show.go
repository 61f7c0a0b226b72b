package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/turbot/owid-covid-dashboard/pipeline"
	"github.com/turbot/owid-covid-dashboard/report"
	"golang.org/x/term"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [location]",
		Short: "Show the data, series and statistics of a location",
		Long: `Show the data, series and statistics of a location.

Without a location, an interactive picker is opened when stdin is a terminal.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			p := newPipeline(cfg, false)
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				s := p.Run(cmd.Context(), &args[0])
				return render(out, s)
			}

			d := p.Prepare(cmd.Context())
			if d.Err != nil {
				return d.Err
			}
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				report.RenderLocations(out, d.Locations)
				return errors.New("a location is required when stdin is not a terminal")
			}
			return pickLocation(d.Locations, func(location string) {
				showPicked(out, cmd.ErrOrStderr(), d.Select(cmd.Context(), location))
			})
		},
	}
}

// render writes the report of a selection, returning the error of a halted run
func render(w io.Writer, s *pipeline.State) error {
	if s.Halted() {
		return s.Err
	}
	report.Render(w, s)
	return nil
}

// showPicked renders a selection made in the picker, writing the error of a halted selection to errOut
func showPicked(out, errOut io.Writer, s *pipeline.State) {
	if err := render(out, s); err != nil {
		fmt.Fprintf(errOut, "Error: %s\n", err)
	}
}
