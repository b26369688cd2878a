package ledger

import (
	"time"

	"github.com/go-petr/sim-ledger/internal/transactionlog"
)

// Option configures a Ledger.
type Option func(*Ledger)

// WithCurrency sets the single currency the ledger keeps balances in.
func WithCurrency(currency string) Option {
	return func(l *Ledger) {
		l.currency = currency
	}
}

// WithOverdraft allows withdrawals and transfers to take balances below zero.
func WithOverdraft(allow bool) Option {
	return func(l *Ledger) {
		l.allowOverdraft = allow
	}
}

// WithClock replaces time.Now as the source of transaction timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// WithLog makes the ledger append to an existing transaction log.
func WithLog(log *transactionlog.Log) Option {
	return func(l *Ledger) {
		l.log = log
	}
}
