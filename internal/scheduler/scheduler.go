// Package scheduler keeps standing direct debit instructions and issued loans.
//
// The scheduler has no timer of its own. Instructions affect balances only when
// ExecuteDirectDebit or RunDue is called, and every balance change goes through the ledger.
package scheduler

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/go-petr/sim-ledger/internal/domain"
	"github.com/go-petr/sim-ledger/pkg/moneypkg"
)

// Ledger is the part of the ledger the scheduler moves money through.
type Ledger interface {
	Currency() string
	Account(id int64) (domain.Account, error)
	Credit(id int64, amount moneypkg.Money, origin domain.Origin) (domain.EntryResult, error)
	Debit(id int64, amount moneypkg.Money, origin domain.Origin) (domain.EntryResult, error)
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock replaces time.Now as the source of creation and execution times.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

// Scheduler records direct debit instructions and loans against a ledger.
type Scheduler struct {
	// mu is held across ledger calls, so it must always be acquired before the ledger's lock.
	mu     sync.Mutex
	ledger Ledger
	now    func() time.Time

	// debits are kept in creation order.
	debits []*domain.DirectDebitInstruction
	loans  []domain.LoanRecord
}

// New returns a Scheduler working on ledger.
func New(ledger Ledger, opts ...Option) *Scheduler {
	s := &Scheduler{
		ledger: ledger,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ScheduleDirectDebit records a standing instruction to withdraw amount from the account.
// The instruction is due immediately and has no effect on the balance until executed.
func (s *Scheduler) ScheduleDirectDebit(accountID int64, amount moneypkg.Money, recurrence domain.Recurrence) (domain.DirectDebitInstruction, error) {
	if err := s.checkAmount(amount); err != nil {
		return domain.DirectDebitInstruction{}, err
	}

	recurrence, err := domain.ParseRecurrence(string(recurrence))
	if err != nil {
		return domain.DirectDebitInstruction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.ledger.Account(accountID); err != nil {
		return domain.DirectDebitInstruction{}, err
	}

	now := s.now()
	dd := &domain.DirectDebitInstruction{
		ID:         uuid.New(),
		AccountID:  accountID,
		Amount:     amount,
		Recurrence: recurrence,
		CreatedAt:  now,
		NextDueAt:  now,
	}
	s.debits = append(s.debits, dd)

	return *dd, nil
}

// ExecuteDirectDebit withdraws the instruction's amount from its account.
//
// On success the next due time moves forward by one period and a one-off instruction is
// retired. On failure the instruction is left untouched and the ledger error is returned.
func (s *Scheduler) ExecuteDirectDebit(id uuid.UUID) (domain.DirectDebitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.execute(id)
}

func (s *Scheduler) execute(id uuid.UUID) (domain.DirectDebitResult, error) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.DirectDebitResult{}, domain.ErrDirectDebitNotFound
	}

	dd := s.debits[i]

	res, err := s.ledger.Debit(dd.AccountID, dd.Amount, domain.OriginDirectDebit)
	if err != nil {
		return domain.DirectDebitResult{}, err
	}

	executedAt := s.now()
	dd.LastExecutedAt = &executedAt
	dd.Executions++

	next, recurring := dd.Recurrence.Next(dd.NextDueAt)
	if recurring {
		dd.NextDueAt = next
	} else {
		s.debits = slices.Delete(s.debits, i, i+1)
	}

	return domain.DirectDebitResult{
		Instruction: *dd,
		Account:     res.Account,
		Transaction: res.Transaction,
		Retired:     !recurring,
	}, nil
}

// RunDue executes every instruction due at or before now, in creation order, once each.
// Failed instructions stay due and are retried on the next run.
func (s *Scheduler) RunDue(now time.Time) []domain.DirectDebitOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	var due []uuid.UUID

	for _, dd := range s.debits {
		if !dd.NextDueAt.After(now) {
			due = append(due, dd.ID)
		}
	}

	outcomes := make([]domain.DirectDebitOutcome, 0, len(due))

	for _, id := range due {
		out := domain.DirectDebitOutcome{InstructionID: id}

		res, err := s.execute(id)
		if err != nil {
			out.Err = err
		} else {
			out.Result = &res
		}

		outcomes = append(outcomes, out)
	}

	return outcomes
}

// CancelDirectDebit removes the instruction.
func (s *Scheduler) CancelDirectDebit(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.ErrDirectDebitNotFound
	}

	s.debits = slices.Delete(s.debits, i, i+1)

	return nil
}

// DirectDebits returns the account's active instructions in creation order.
func (s *Scheduler) DirectDebits(accountID int64) []domain.DirectDebitInstruction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []domain.DirectDebitInstruction{}

	for _, dd := range s.debits {
		if dd.AccountID == accountID {
			out = append(out, *dd)
		}
	}

	return out
}

// ApplyForLoan credits principal to the account and records the loan.
func (s *Scheduler) ApplyForLoan(accountID int64, principal moneypkg.Money) (domain.LoanResult, error) {
	if err := s.checkAmount(principal); err != nil {
		return domain.LoanResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.ledger.Credit(accountID, principal, domain.OriginLoan)
	if err != nil {
		return domain.LoanResult{}, err
	}

	loan := domain.LoanRecord{
		ID:            uuid.New(),
		AccountID:     accountID,
		Principal:     principal,
		IssuedAt:      res.Transaction.CreatedAt,
		TransactionID: res.Transaction.ID,
	}
	s.loans = append(s.loans, loan)

	return domain.LoanResult{Loan: loan, Account: res.Account, Transaction: res.Transaction}, nil
}

// Loans returns the loans issued to the account, oldest first.
func (s *Scheduler) Loans(accountID int64) []domain.LoanRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []domain.LoanRecord{}

	for _, loan := range s.loans {
		if loan.AccountID == accountID {
			out = append(out, loan)
		}
	}

	return out
}

func (s *Scheduler) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(s.debits, func(dd *domain.DirectDebitInstruction) bool {
		return dd.ID == id
	})
}

func (s *Scheduler) checkAmount(amount moneypkg.Money) error {
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}

	if amount.Currency() != s.ledger.Currency() {
		return domain.ErrCurrencyMismatch
	}

	return nil
}
