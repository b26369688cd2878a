package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/go-petr/sim-ledger/pkg/moneypkg"
)

var (
	// ErrDirectDebitNotFound indicates that the direct debit instruction is not found.
	ErrDirectDebitNotFound = errors.New("direct debit not found")
	// ErrInvalidRecurrence indicates an unknown recurrence policy.
	ErrInvalidRecurrence = errors.New("invalid recurrence")
)

// Recurrence is the repetition policy of a direct debit.
type Recurrence string

// Supported recurrence policies.
const (
	RecurrenceOnce    Recurrence = "once"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// ParseRecurrence returns the policy named by s.
func ParseRecurrence(s string) (Recurrence, error) {
	switch r := Recurrence(s); r {
	case RecurrenceOnce, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return r, nil
	default:
		return "", ErrInvalidRecurrence
	}
}

// Next returns the due time following t, or false for a one-off instruction.
func (r Recurrence) Next(t time.Time) (time.Time, bool) {
	switch r {
	case RecurrenceDaily:
		return t.AddDate(0, 0, 1), true
	case RecurrenceWeekly:
		return t.AddDate(0, 0, 7), true
	case RecurrenceMonthly:
		return t.AddDate(0, 1, 0), true
	default:
		return time.Time{}, false
	}
}

// DirectDebitInstruction is a standing authorization to withdraw from an account.
// It never changes a balance by itself; see DirectDebitResult.
type DirectDebitInstruction struct {
	ID             uuid.UUID      `json:"id"`
	AccountID      int64          `json:"account_id"`
	Amount         moneypkg.Money `json:"amount"`
	Recurrence     Recurrence     `json:"recurrence"`
	CreatedAt      time.Time      `json:"created_at"`
	NextDueAt      time.Time      `json:"next_due_at"`
	LastExecutedAt *time.Time     `json:"last_executed_at,omitempty"`
	Executions     int            `json:"executions"`
}

// DirectDebitResult is the result of executing an instruction.
type DirectDebitResult struct {
	Instruction DirectDebitInstruction `json:"instruction"`
	Account     Account                `json:"account"`
	Transaction Transaction            `json:"transaction"`
	// Retired is set when a one-off instruction was removed after it succeeded.
	Retired bool `json:"retired"`
}

// DirectDebitOutcome pairs an instruction with the result of a scheduled run.
type DirectDebitOutcome struct {
	InstructionID uuid.UUID          `json:"instruction_id"`
	Result        *DirectDebitResult `json:"result,omitempty"`
	Err           error              `json:"-"`
}
