// Package transactionlog manages the append-only record of completed transactions.
package transactionlog

import (
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/go-petr/sim-ledger/internal/domain"
)

// Log is an append-only, in-memory sequence of transactions indexed by account id.
//
// Stored transactions are never modified, so readers work on snapshots taken under
// a read lock and never block appends while they iterate.
type Log struct {
	mu      sync.RWMutex
	entries []domain.Transaction
	index   map[int64][]int
}

// New returns an empty Log.
func New() *Log {
	return &Log{index: make(map[int64][]int)}
}

// Append validates tx, assigns its sequence number (and an id when missing) and stores it.
//
// A malformed transaction is a caller bug, not user input, so Append panics instead of
// returning an error.
func (l *Log) Append(tx domain.Transaction) domain.Transaction {
	if err := tx.Validate(); err != nil {
		panic(fmt.Sprintf("transactionlog: malformed transaction: %v", err))
	}

	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	tx.Sequence = uint64(len(l.entries) + 1)
	pos := len(l.entries)
	l.entries = append(l.entries, tx)

	if tx.FromAccountID != nil {
		l.index[*tx.FromAccountID] = append(l.index[*tx.FromAccountID], pos)
	}

	if tx.ToAccountID != nil {
		l.index[*tx.ToAccountID] = append(l.index[*tx.ToAccountID], pos)
	}

	return tx
}

// Len returns the number of stored transactions.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.entries)
}

// All returns every stored transaction in sequence order.
func (l *Log) All() iter.Seq[domain.Transaction] {
	return func(yield func(domain.Transaction) bool) {
		l.mu.RLock()
		snapshot := slices.Clone(l.entries)
		l.mu.RUnlock()

		for _, tx := range snapshot {
			if !yield(tx) {
				return
			}
		}
	}
}

// HistoryFor returns the transactions touching the account, oldest first.
//
// The sequence is lazy and restartable: nothing is read until it is ranged over, and
// every range takes a fresh snapshot. Transactions with equal timestamps keep their
// insertion order. Deleted accounts keep their history.
func (l *Log) HistoryFor(accountID int64) iter.Seq[domain.Transaction] {
	return func(yield func(domain.Transaction) bool) {
		l.mu.RLock()
		positions := l.index[accountID]
		snapshot := make([]domain.Transaction, len(positions))
		for i, pos := range positions {
			snapshot[i] = l.entries[pos]
		}
		l.mu.RUnlock()

		slices.SortStableFunc(snapshot, func(a, b domain.Transaction) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})

		for _, tx := range snapshot {
			if !yield(tx) {
				return
			}
		}
	}
}
