package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/go-petr/sim-ledger/pkg/moneypkg"
)

// LoanRecord holds principal granted to an account by the ledger.
type LoanRecord struct {
	ID            uuid.UUID      `json:"id"`
	AccountID     int64          `json:"account_id"`
	Principal     moneypkg.Money `json:"principal"`
	IssuedAt      time.Time      `json:"issued_at"`
	TransactionID uuid.UUID      `json:"transaction_id"`
}

// LoanResult is the result of a loan application.
type LoanResult struct {
	Loan        LoanRecord  `json:"loan"`
	Account     Account     `json:"account"`
	Transaction Transaction `json:"transaction"`
}
