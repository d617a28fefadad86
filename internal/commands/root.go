package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerbook/internal/buildinfo"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	dir string
	raw bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "ledgerbook",
		Short:   "Double-entry ledger with derived financial statements",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.dir, "dir", "C", ".", "book directory")
	rootCmd.PersistentFlags().BoolVar(&opts.raw, "raw", false, "print markdown instead of styled terminal output")

	rootCmd.AddCommand(
		newInitCommand(),
		newAddCommand(opts),
		newEditCommand(opts),
		newDeleteCommand(opts),
		newResetCommand(opts),
		newListCommand(opts),
		newAccountsCommand(opts),
		newTaxonomyCommand(opts),
		newSummaryCommand(opts),
		newEquationCommand(opts),
		newStatementsCommand(opts),
		newRatiosCommand(opts),
		newTrendCommand(opts),
		newExportCommand(opts),
		newImportCommand(opts),
		newServeCommand(opts),
	)

	return rootCmd
}
