package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerbook/internal/accounts"
	"github.com/cleared-dev/ledgerbook/internal/ledger"
	"github.com/cleared-dev/ledgerbook/internal/model"
	"github.com/cleared-dev/ledgerbook/internal/render"
)

const postingUsage = `posting as "name|type|sub|line_item|amount"; "name|type|sub|amount" uses the first line item, ` +
	`"name|amount" reuses a known account's classification (repeatable)`

// parsePosting reads one --posting value.
func parsePosting(s string) (model.Posting, error) {
	fields := strings.Split(s, "|")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	var p model.Posting
	switch len(fields) {
	case 2:
		p.Name = fields[0]
	case 4:
		p.Name, p.Type, p.Sub = fields[0], model.AccountType(fields[1]), model.SubClassification(fields[2])
	case 5:
		p.Name, p.Type, p.Sub = fields[0], model.AccountType(fields[1]), model.SubClassification(fields[2])
		p.LineItem = model.LineItem(fields[3])
	default:
		return model.Posting{}, fmt.Errorf("posting %q: expected 2, 4 or 5 fields separated by |", s)
	}

	amount, err := decimal.NewFromString(fields[len(fields)-1])
	if err != nil {
		return model.Posting{}, fmt.Errorf("posting %q: parsing amount: %w", s, err)
	}
	p.Amount = amount
	p.SelectedAccount = p.Name
	return p, nil
}

// buildTransaction parses the flags of add and edit, classifying short
// postings from the accounts already in the ledger.
func buildTransaction(description string, postings []string, txns []model.Transaction) (model.Transaction, error) {
	idx := accounts.NewIndex(txns)
	txn := model.Transaction{Description: description}
	for _, s := range postings {
		p, err := parsePosting(s)
		if err != nil {
			return model.Transaction{}, err
		}
		p = idx.Fill(p)
		if p.LineItem == "" {
			p.LineItem = accounts.DefaultLineItem(p.Sub)
		}
		txn.Postings = append(txn.Postings, p)
	}
	return txn, nil
}

// parseNumber reads a one-based transaction number and returns its index.
func parseNumber(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("transaction number %q: must be an integer", arg)
	}
	return n - 1, nil
}

// numbered restates an index error with the one-based number the user typed.
func numbered(err error, i, n int) error {
	if errors.Is(err, ledger.ErrIndexOutOfRange) {
		return fmt.Errorf("no transaction %d (ledger has %d)", i+1, n)
	}
	return err
}

func newAddCommand(opts *options) *cobra.Command {
	var description string
	var postings []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openBook(cmd, opts)
			if err != nil {
				return err
			}
			txn, err := buildTransaction(description, postings, env.book.Snapshot())
			if err != nil {
				return err
			}
			i, err := env.book.Append(txn)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded transaction %d: %s\n", i+1, txn.Description)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "transaction description")
	cmd.Flags().StringArrayVarP(&postings, "posting", "p", nil, postingUsage)

	return cmd
}

func newEditCommand(opts *options) *cobra.Command {
	var description string
	var postings []string

	cmd := &cobra.Command{
		Use:   "edit <number>",
		Short: "Replace a transaction, keeping its position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseNumber(args[0])
			if err != nil {
				return err
			}
			env, err := openBook(cmd, opts)
			if err != nil {
				return err
			}
			txn, err := buildTransaction(description, postings, env.book.Snapshot())
			if err != nil {
				return err
			}
			if err := env.book.Replace(i, txn); err != nil {
				return numbered(err, i, env.book.Len())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Replaced transaction %d: %s\n", i+1, txn.Description)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "transaction description")
	cmd.Flags().StringArrayVarP(&postings, "posting", "p", nil, postingUsage)

	return cmd
}

func newDeleteCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <number>",
		Short: "Delete a transaction; later ones move up",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseNumber(args[0])
			if err != nil {
				return err
			}
			env, err := openBook(cmd, opts)
			if err != nil {
				return err
			}
			removed, err := env.book.Delete(i)
			if err != nil {
				return numbered(err, i, env.book.Len())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted transaction %d: %s\n", i+1, removed.Description)
			return nil
		},
	}
}

func newResetCommand(opts *options) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove every transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openBook(cmd, opts)
			if err != nil {
				return err
			}
			n := env.book.Len()
			if !yes && n > 0 {
				return fmt.Errorf("refusing to remove %d transactions without --yes", n)
			}
			if err := env.book.Clear(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d transactions\n", n)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm removing every transaction")

	return cmd
}

func newListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show every transaction",
		Args:  cobra.NoArgs,
		RunE: view(opts, func(e *bookEnv, r *render.Renderer) (string, error) {
			return r.Transactions(e.book.Snapshot())
		}),
	}
}

func newAccountsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "Show the accounts used so far with their last classification",
		Args:  cobra.NoArgs,
		RunE: view(opts, func(e *bookEnv, r *render.Renderer) (string, error) {
			return r.Accounts(accounts.NewIndex(e.book.Snapshot()))
		}),
	}
}

func newTaxonomyCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "taxonomy",
		Short: "Show the account types, sub-classifications and line items",
		Args:  cobra.NoArgs,
		RunE: view(opts, func(e *bookEnv, r *render.Renderer) (string, error) {
			return r.Taxonomy()
		}),
	}
}
