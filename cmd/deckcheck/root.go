package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	flags := &flagOverrides{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:   "deckcheck",
		Short: "Compare EDHREC average decks against your card collection",
		Long: `deckcheck downloads the average deck list for a commander from EDHREC, or reads
a local deck list, saves it as CSV and splits it into owned and not owned cards
using collection.csv.

Running without a subcommand starts the interactive menu.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenuCommand(cmd, ctx)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			ctx.sync()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.collection, "collection", "", "Collection file (.csv or .xlsx)")
	pf.StringVar(&flags.outputDir, "output-dir", "", "Directory that receives per-commander folders")
	pf.StringVar(&flags.match, "match", "", "Match policy: exact|substring")
	pf.StringVar(&flags.extraction, "extraction", "", "Extraction strategy: tagSelector|structuralPath")
	pf.StringVar(&flags.trim, "trim", "", "Edge trim mode: leading|both|none")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug|info|warn|error")

	rootCmd.AddCommand(newScrapeCommand(ctx))
	rootCmd.AddCommand(newLocalCommand(ctx))
	rootCmd.AddCommand(newMenuCommand(ctx))

	return rootCmd
}
