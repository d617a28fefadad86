package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerbook/internal/aggregate"
	"github.com/cleared-dev/ledgerbook/internal/export"
	"github.com/cleared-dev/ledgerbook/internal/ratio"
	"github.com/cleared-dev/ledgerbook/internal/render"
	"github.com/cleared-dev/ledgerbook/internal/report"
	"github.com/cleared-dev/ledgerbook/internal/statement"
)

func newSummaryCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show total assets, liabilities, equity and the current ratio",
		Args:  cobra.NoArgs,
		RunE: view(opts, func(e *bookEnv, r *render.Renderer) (string, error) {
			return r.Summary(report.BuildSummary(e.book.Snapshot()))
		}),
	}
}

func newEquationCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "equation",
		Short: "Show the accounting equation table",
		Args:  cobra.NoArgs,
		RunE: view(opts, func(e *bookEnv, r *render.Renderer) (string, error) {
			return r.Equation(aggregate.Equation(e.book.Snapshot()))
		}),
	}
}

func newStatementsCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "statements",
		Short: "Show the balance sheet, income statement and cash-flow statement",
		Args:  cobra.NoArgs,
		RunE: view(opts, func(e *bookEnv, r *render.Renderer) (string, error) {
			return r.Statements(statement.Build(e.book.Snapshot()))
		}),
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "balance-sheet",
			Short: "Show the balance sheet",
			Args:  cobra.NoArgs,
			RunE: view(opts, func(e *bookEnv, r *render.Renderer) (string, error) {
				return r.BalanceSheet(statement.Build(e.book.Snapshot()).BalanceSheet)
			}),
		},
		&cobra.Command{
			Use:   "income",
			Short: "Show the income statement",
			Args:  cobra.NoArgs,
			RunE: view(opts, func(e *bookEnv, r *render.Renderer) (string, error) {
				return r.IncomeStatement(statement.Build(e.book.Snapshot()).IncomeStatement)
			}),
		},
		&cobra.Command{
			Use:   "cash-flow",
			Short: "Show the cash-flow statement",
			Args:  cobra.NoArgs,
			RunE: view(opts, func(e *bookEnv, r *render.Renderer) (string, error) {
				return r.CashFlow(statement.Build(e.book.Snapshot()).CashFlow)
			}),
		},
	)

	return cmd
}

func newRatiosCommand(opts *options) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "ratios",
		Short: "Show liquidity, solvency and profitability ratios",
		Args:  cobra.NoArgs,
		RunE: view(opts, func(e *bookEnv, r *render.Renderer) (string, error) {
			set := ratio.Compute(ratio.InputsFrom(statement.Build(e.book.Snapshot())))
			if category != "" {
				set = set.InCategory(ratio.Category(category))
				if len(set) == 0 {
					return "", fmt.Errorf("unknown ratio category %q", category)
				}
			}
			return r.Ratios(set)
		}),
	}

	cmd.Flags().StringVar(&category, "category", "", "only show one category (Liquidity, Solvency, Profitability)")

	return cmd
}

func newTrendCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "trend",
		Short: "Show the running total of asset and liability postings",
		Args:  cobra.NoArgs,
		RunE: view(opts, func(e *bookEnv, r *render.Renderer) (string, error) {
			return r.Trend(aggregate.Trend(e.book.Snapshot()))
		}),
	}
}

func newExportCommand(opts *options) *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export postings as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var write func(io.Writer) error
			env, err := openBook(cmd, opts)
			if err != nil {
				return err
			}
			txns := env.book.Snapshot()

			switch strings.ToLower(format) {
			case "records":
				write = func(w io.Writer) error { return export.WriteCSV(w, txns) }
			case "postings":
				write = func(w io.Writer) error { return export.WritePostings(w, txns) }
			default:
				return fmt.Errorf("unknown export format %q (want records or postings)", format)
			}

			if output == "" || output == "-" {
				return write(cmd.OutOrStdout())
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}
			if err := write(f); err != nil {
				f.Close()
				return fmt.Errorf("writing %s: %w", output, err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", output, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d transactions to %s\n", len(txns), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "records", "records (description, type, name, amount) or postings (re-importable)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
