package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerbook/internal/config"
	"github.com/cleared-dev/ledgerbook/internal/gitops"
	"github.com/cleared-dev/ledgerbook/internal/ledger"
	"github.com/cleared-dev/ledgerbook/internal/logger"
	"github.com/cleared-dev/ledgerbook/internal/render"
)

// bookEnv is an opened book directory.
type bookEnv struct {
	dir  string
	cfg  *config.Config
	log  *logger.Logger
	book *ledger.Book
	raw  bool
}

// openBook loads the config in opts.dir, builds the logger and opens the
// ledger. With git.auto_commit every save is committed.
func openBook(cmd *cobra.Command, opts *options) (*bookEnv, error) {
	dir, err := filepath.Abs(opts.dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.LoadOrDefault(filepath.Join(dir, config.FileName))
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	path := cfg.LedgerPath(dir)
	var store ledger.Store = ledger.NewFileStore(path)
	if cfg.Git.AutoCommit && gitops.IsRepo(dir) {
		author := gitops.Author{Name: cfg.Git.AuthorName, Email: cfg.Git.AuthorEmail}
		store = gitops.NewCommitStore(store, dir, path, author, log.Logger)
	}

	book, err := ledger.Open(store, log.Logger)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &bookEnv{dir: dir, cfg: cfg, log: log, book: book, raw: opts.raw}, nil
}

func (e *bookEnv) renderer() (*render.Renderer, error) {
	return render.New(e.cfg.Currency, e.cfg.Business.Name)
}

// show prints md as-is with --raw, styled otherwise.
func (e *bookEnv) show(w io.Writer, md string) error {
	if e.raw {
		_, err := io.WriteString(w, md)
		return err
	}
	return render.Display(w, md, e.cfg.Render.Style, e.cfg.Render.Width)
}

// view opens the book and prints the markdown produced by build.
func view(opts *options, build func(e *bookEnv, r *render.Renderer) (string, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		env, err := openBook(cmd, opts)
		if err != nil {
			return err
		}
		r, err := env.renderer()
		if err != nil {
			return err
		}
		md, err := build(env, r)
		if err != nil {
			return err
		}
		return env.show(cmd.OutOrStdout(), md)
	}
}
