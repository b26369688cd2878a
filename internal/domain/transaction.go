package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/go-petr/sim-ledger/pkg/moneypkg"
)

// ErrSameAccount indicates a transfer whose source and destination are the same account.
var ErrSameAccount = errors.New("source and destination accounts are the same")

// TransactionKind is the kind of money movement.
type TransactionKind string

// Transaction kinds.
const (
	KindDeposit    TransactionKind = "deposit"
	KindWithdrawal TransactionKind = "withdrawal"
	KindTransfer   TransactionKind = "transfer"
)

// Origin tells what caused a transaction.
type Origin string

// Transaction origins.
const (
	OriginCustomer    Origin = "customer"
	OriginInterest    Origin = "interest"
	OriginLoan        Origin = "loan"
	OriginDirectDebit Origin = "direct_debit"
)

// Transaction is an immutable record of a completed money movement.
//
// Accounts are referenced by id only, so deleting an account leaves its
// transactions intact.
type Transaction struct {
	ID            uuid.UUID       `json:"id"`
	Sequence      uint64          `json:"sequence"`
	Kind          TransactionKind `json:"kind"`
	Origin        Origin          `json:"origin"`
	FromAccountID *int64          `json:"from_account_id,omitempty"`
	ToAccountID   *int64          `json:"to_account_id,omitempty"`
	Amount        moneypkg.Money  `json:"amount"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Touches reports whether the transaction moves money in or out of the account.
func (t Transaction) Touches(accountID int64) bool {
	return (t.FromAccountID != nil && *t.FromAccountID == accountID) ||
		(t.ToAccountID != nil && *t.ToAccountID == accountID)
}

// Validate checks the shape rules of the transaction kind.
func (t Transaction) Validate() error {
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction amount %s is not positive", t.Amount)
	}

	switch t.Kind {
	case KindDeposit:
		if t.ToAccountID == nil || t.FromAccountID != nil {
			return errors.New("deposit must reference only the destination account")
		}
	case KindWithdrawal:
		if t.FromAccountID == nil || t.ToAccountID != nil {
			return errors.New("withdrawal must reference only the source account")
		}
	case KindTransfer:
		if t.FromAccountID == nil || t.ToAccountID == nil {
			return errors.New("transfer must reference both accounts")
		}

		if *t.FromAccountID == *t.ToAccountID {
			return ErrSameAccount
		}
	default:
		return fmt.Errorf("unknown transaction kind %q", t.Kind)
	}

	return nil
}

// CreateTransferParams is the input data for a transfer.
type CreateTransferParams struct {
	FromAccountID int64  `json:"from_account_id"`
	ToAccountID   int64  `json:"to_account_id"`
	Amount        string `json:"amount"`
}

// TransferResult is the result of the transfer transaction.
type TransferResult struct {
	FromAccount Account     `json:"from_account"`
	ToAccount   Account     `json:"to_account"`
	Transaction Transaction `json:"transaction"`
}
