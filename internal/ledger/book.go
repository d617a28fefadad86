package ledger

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/cleared-dev/ledgerbook/internal/model"
)

// Store persists the whole ledger.
type Store interface {
	Load() ([]model.Transaction, error)
	Save(txns []model.Transaction) error
}

// Book owns the ordered transaction list. Mutations are validated, persisted,
// and only then made visible; readers always get a deep copy.
type Book struct {
	mu    sync.RWMutex
	txns  []model.Transaction
	store Store
	log   *slog.Logger
}

// New creates an empty Book. store and log may be nil.
func New(store Store, log *slog.Logger) *Book {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Book{store: store, log: log}
}

// Open creates a Book and loads its transactions from store. Every loaded
// transaction must pass validation.
func Open(store Store, log *slog.Logger) (*Book, error) {
	b := New(store, log)
	if store == nil {
		return b, nil
	}
	txns, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}
	for i, txn := range txns {
		if err := Validate(txn); err != nil {
			return nil, fmt.Errorf("loaded transaction %d: %w", i+1, err)
		}
	}
	b.txns = txns
	b.log.Debug("ledger loaded", "transactions", len(txns))
	return b, nil
}

// Len returns the number of transactions.
func (b *Book) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.txns)
}

// Snapshot returns a deep copy of all transactions.
func (b *Book) Snapshot() []model.Transaction {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return model.CloneAll(b.txns)
}

// Get returns a copy of the transaction at index i.
func (b *Book) Get(i int) (model.Transaction, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i < 0 || i >= len(b.txns) {
		return model.Transaction{}, &IndexError{Index: i, Len: len(b.txns)}
	}
	return b.txns[i].Clone(), nil
}

// Append validates txn and adds it at the end. Returns its index.
func (b *Book) Append(txn model.Transaction) (int, error) {
	if err := Validate(txn); err != nil {
		return 0, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	next := make([]model.Transaction, len(b.txns), len(b.txns)+1)
	copy(next, b.txns)
	next = append(next, txn.Clone())
	if err := b.commit(next); err != nil {
		return 0, err
	}

	idx := len(next) - 1
	b.log.Info("transaction added", "index", idx, "description", txn.Description, "postings", len(txn.Postings))
	return idx, nil
}

// AppendAll validates every transaction and appends them together, or none
// of them.
func (b *Book) AppendAll(txns []model.Transaction) error {
	for i, txn := range txns {
		if err := Validate(txn); err != nil {
			return fmt.Errorf("transaction %d: %w", i+1, err)
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	next := make([]model.Transaction, len(b.txns), len(b.txns)+len(txns))
	copy(next, b.txns)
	next = append(next, model.CloneAll(txns)...)
	if err := b.commit(next); err != nil {
		return err
	}

	b.log.Info("transactions imported", "count", len(txns), "total", len(next))
	return nil
}

// Replace swaps the transaction at index i for txn. The ledger length is
// unchanged.
func (b *Book) Replace(i int, txn model.Transaction) error {
	if err := Validate(txn); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if i < 0 || i >= len(b.txns) {
		return &IndexError{Index: i, Len: len(b.txns)}
	}
	next := make([]model.Transaction, len(b.txns))
	copy(next, b.txns)
	next[i] = txn.Clone()
	if err := b.commit(next); err != nil {
		return err
	}

	b.log.Info("transaction replaced", "index", i, "description", txn.Description)
	return nil
}

// Delete removes the transaction at index i and returns it.
func (b *Book) Delete(i int) (model.Transaction, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if i < 0 || i >= len(b.txns) {
		return model.Transaction{}, &IndexError{Index: i, Len: len(b.txns)}
	}
	removed := b.txns[i]
	next := make([]model.Transaction, 0, len(b.txns)-1)
	next = append(next, b.txns[:i]...)
	next = append(next, b.txns[i+1:]...)
	if err := b.commit(next); err != nil {
		return model.Transaction{}, err
	}

	b.log.Info("transaction deleted", "index", i, "description", removed.Description)
	return removed.Clone(), nil
}

// Clear removes every transaction.
func (b *Book) Clear() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.commit(nil); err != nil {
		return err
	}
	b.log.Info("ledger cleared")
	return nil
}

// commit persists next and installs it. On failure the current list is kept.
func (b *Book) commit(next []model.Transaction) error {
	if b.store != nil {
		if err := b.store.Save(next); err != nil {
			return fmt.Errorf("saving ledger: %w", err)
		}
	}
	b.txns = next
	return nil
}
