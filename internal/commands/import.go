package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerbook/internal/importer"
	"github.com/cleared-dev/ledgerbook/internal/model"
)

func newImportCommand(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import transactions from a file, or from every file in import/",
		Long: `Import transactions from a file, or from every file in import/.

Every imported transaction is validated; if any is rejected nothing is
imported. Files taken from import/ are moved to import/processed/ once the
ledger has been saved. A file that cannot be moved is reported and stays in
import/ even though its transactions are in the ledger; remove it by hand
before the next import or it is imported again.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openBook(cmd, opts)
			if err != nil {
				return err
			}
			reg := importer.DefaultRegistry()

			if len(args) == 1 {
				p, err := pickParser(reg, format, args[0])
				if err != nil {
					return err
				}
				txns, err := importer.ParseFile(p, args[0])
				if err != nil {
					return err
				}
				if err := env.book.AppendAll(txns); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions from %s\n", len(txns), filepath.Base(args[0]))
				return nil
			}

			files, err := reg.Scan(env.dir)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No files to import")
				return nil
			}

			var all []model.Transaction
			for _, f := range files {
				txns, err := importer.ParseFile(reg.Get(f.Format), f.Path)
				if err != nil {
					return err
				}
				env.log.Info("parsed import file", "file", f.Name, "format", f.Format, "transactions", len(txns))
				all = append(all, txns...)
			}
			if err := env.book.AppendAll(all); err != nil {
				return err
			}

			var stuck []string
			for _, f := range files {
				if err := importer.MarkProcessed(env.dir, f.Name); err != nil {
					env.log.WithError(err).Warn("imported file not moved", "file", f.Name)
					stuck = append(stuck, f.Name)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions from %d files\n", len(all), len(files))
			if len(stuck) > 0 {
				return fmt.Errorf("already imported but still in import/, remove before the next import: %s", strings.Join(stuck, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "input format (postings or json); detected from the extension when empty")

	return cmd
}

func pickParser(reg *importer.Registry, format, path string) (importer.Parser, error) {
	if format != "" {
		if p := reg.Get(format); p != nil {
			return p, nil
		}
		return nil, fmt.Errorf("unknown import format %q (want one of %s)", format, strings.Join(reg.Formats(), ", "))
	}
	if p := reg.ForFile(path); p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("cannot detect the format of %s; use --format", filepath.Base(path))
}
