package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newScrapeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scrape <commander name>",
		Short: "Fetch a commander's average deck and compare it with the collection",
		Example: `  deckcheck scrape "Atraxa, Praetors' Voice"
  deckcheck scrape The Ur-Dragon --match substring`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.service()
			if err != nil {
				return err
			}
			out := svc.ScrapeCommander(cmd.Context(), strings.Join(args, " "))
			fmt.Fprint(cmd.OutOrStdout(), renderOutcome(out, stdoutIsTerminal()))
			return reported(out.Err)
		},
	}
}

func newLocalCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "local <deck list file>",
		Short: "Compare a local deck list file with the collection",
		Long: `The first line of the file names the commander after a label, for example
"Commander: Kenrith, the Returned King". Every following line is "<quantity> <name>".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.service()
			if err != nil {
				return err
			}
			out := svc.ProcessDeckFile(args[0])
			fmt.Fprint(cmd.OutOrStdout(), renderOutcome(out, stdoutIsTerminal()))
			return reported(out.Err)
		},
	}
}

// errAlreadyReported marks a run error that renderOutcome has printed, so
// main only sets the exit status.
type errAlreadyReported struct{ err error }

func (e *errAlreadyReported) Error() string { return e.err.Error() }

func (e *errAlreadyReported) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return &errAlreadyReported{err: err}
}
