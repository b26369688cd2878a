// Package domain provides defenitions of all ledger entities.
package domain

import (
	"errors"
	"time"

	"github.com/go-petr/sim-ledger/pkg/moneypkg"
)

var (
	// ErrAccountNotFound indicates that the account is not found or was deleted.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidAmount indicates a non-positive, non-numeric or non-representable amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidRate indicates a negative or non-numeric interest rate.
	ErrInvalidRate = errors.New("invalid rate")
	// ErrInsufficientFunds indicates that the operation would overdraw the account.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrCurrencyMismatch indicates an amount in a currency other than the ledger's.
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// Account holds the balance of a single ledger account.
type Account struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Balance   moneypkg.Money `json:"balance"`
	CreatedAt time.Time      `json:"created_at"`
}

// EntryResult is the result of a single-account balance change.
type EntryResult struct {
	Account     Account     `json:"account"`
	Transaction Transaction `json:"transaction"`
}
