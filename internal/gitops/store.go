package gitops

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/cleared-dev/ledgerbook/internal/ledger"
	"github.com/cleared-dev/ledgerbook/internal/model"
)

// CommitStore commits the ledger file after every successful save. A failed
// commit is logged, not returned: the save itself succeeded.
type CommitStore struct {
	ledger.Store
	Dir    string
	File   string
	Author Author
	Log    *slog.Logger
}

// NewCommitStore wraps store, committing file (inside the repository at dir).
func NewCommitStore(store ledger.Store, dir, file string, author Author, log *slog.Logger) *CommitStore {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &CommitStore{Store: store, Dir: dir, File: file, Author: author, Log: log}
}

var _ ledger.Store = (*CommitStore)(nil)

// Save persists txns and commits the ledger file.
func (s *CommitStore) Save(txns []model.Transaction) error {
	if err := s.Store.Save(txns); err != nil {
		return err
	}

	rel, err := filepath.Rel(s.Dir, s.File)
	if err != nil {
		rel = s.File
	}
	msg := fmt.Sprintf("ledger: %d transactions", len(txns))
	hash, err := Commit(s.Dir, msg, s.Author, rel)
	if err != nil {
		s.Log.Warn("auto-commit failed", "error", err)
		return nil
	}
	if hash != "" {
		s.Log.Debug("ledger committed", "commit", hash)
	}
	return nil
}
