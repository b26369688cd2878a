// Package ledgerservice is the operation surface of the ledger.
//
// Amounts and rates arrive as decimal strings and are parsed here, so malformed input is
// rejected before it reaches the ledger. Every operation returns a result value that the
// caller renders; nothing here logs.
package ledgerservice

import (
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/go-petr/sim-ledger/internal/domain"
	"github.com/go-petr/sim-ledger/pkg/moneypkg"
)

// Ledger provides the balance operations needed by the service.
//
//go:generate mockgen -source service.go -destination service_mock.go -package ledgerservice
type Ledger interface {
	Currency() string
	CreateAccount(name string) domain.Account
	DeleteAccount(id int64) error
	Account(id int64) (domain.Account, error)
	Accounts() []domain.Account
	Deposit(id int64, amount moneypkg.Money) (domain.EntryResult, error)
	Withdraw(id int64, amount moneypkg.Money) (domain.EntryResult, error)
	Transfer(fromID, toID int64, amount moneypkg.Money) (domain.TransferResult, error)
	AccrueInterest(id int64, ratePercent decimal.Decimal) (domain.EntryResult, error)
	History(id int64) iter.Seq[domain.Transaction]
}

// Scheduler provides the direct debit and loan operations needed by the service.
type Scheduler interface {
	ScheduleDirectDebit(accountID int64, amount moneypkg.Money, recurrence domain.Recurrence) (domain.DirectDebitInstruction, error)
	ExecuteDirectDebit(id uuid.UUID) (domain.DirectDebitResult, error)
	RunDue(now time.Time) []domain.DirectDebitOutcome
	CancelDirectDebit(id uuid.UUID) error
	DirectDebits(accountID int64) []domain.DirectDebitInstruction
	ApplyForLoan(accountID int64, principal moneypkg.Money) (domain.LoanResult, error)
	Loans(accountID int64) []domain.LoanRecord
}

// Service facilitates ledger operations for the delivery layer.
type Service struct {
	ledger    Ledger
	scheduler Scheduler
}

// New returns ledger service struct wrapping the ledger and its scheduler.
func New(l Ledger, s Scheduler) *Service {
	return &Service{
		ledger:    l,
		scheduler: s,
	}
}

// ListAccounts returns all active accounts ordered by id.
func (s *Service) ListAccounts() []domain.Account {
	return s.ledger.Accounts()
}

// GetAccount returns the account by id.
func (s *Service) GetAccount(id int64) (domain.Account, error) {
	return s.ledger.Account(id)
}

// CreateAccount opens an account. A blank name is replaced with "Account N".
func (s *Service) CreateAccount(name string) domain.Account {
	return s.ledger.CreateAccount(strings.TrimSpace(name))
}

// DeleteAccount removes the account while keeping its history.
func (s *Service) DeleteAccount(id int64) error {
	return s.ledger.DeleteAccount(id)
}

// Deposit parses amount and adds it to the account.
func (s *Service) Deposit(id int64, amount string) (domain.EntryResult, error) {
	m, err := s.parseAmount(amount)
	if err != nil {
		return domain.EntryResult{}, err
	}

	return s.ledger.Deposit(id, m)
}

// Withdraw parses amount and takes it from the account.
func (s *Service) Withdraw(id int64, amount string) (domain.EntryResult, error) {
	m, err := s.parseAmount(amount)
	if err != nil {
		return domain.EntryResult{}, err
	}

	return s.ledger.Withdraw(id, m)
}

// Transfer parses the amount and moves it between the accounts.
func (s *Service) Transfer(arg domain.CreateTransferParams) (domain.TransferResult, error) {
	m, err := s.parseAmount(arg.Amount)
	if err != nil {
		return domain.TransferResult{}, err
	}

	return s.ledger.Transfer(arg.FromAccountID, arg.ToAccountID, m)
}

// AccrueInterest parses the percentage rate and credits the interest to the account.
func (s *Service) AccrueInterest(id int64, rate string) (domain.EntryResult, error) {
	r, err := parseRate(rate)
	if err != nil {
		return domain.EntryResult{}, err
	}

	return s.ledger.AccrueInterest(id, r)
}

// History returns the transactions that touched the account, oldest first. Deleted
// accounts keep their history; unknown ids yield nothing.
func (s *Service) History(id int64) iter.Seq[domain.Transaction] {
	return s.ledger.History(id)
}

// ScheduleDirectDebit records a standing withdrawal instruction for the account.
func (s *Service) ScheduleDirectDebit(id int64, amount, recurrence string) (domain.DirectDebitInstruction, error) {
	m, err := s.parseAmount(amount)
	if err != nil {
		return domain.DirectDebitInstruction{}, err
	}

	r, err := domain.ParseRecurrence(strings.TrimSpace(recurrence))
	if err != nil {
		return domain.DirectDebitInstruction{}, err
	}

	return s.scheduler.ScheduleDirectDebit(id, m, r)
}

// ExecuteDirectDebit runs the instruction once.
func (s *Service) ExecuteDirectDebit(id uuid.UUID) (domain.DirectDebitResult, error) {
	return s.scheduler.ExecuteDirectDebit(id)
}

// RunDueDirectDebits runs every instruction due at now.
func (s *Service) RunDueDirectDebits(now time.Time) []domain.DirectDebitOutcome {
	return s.scheduler.RunDue(now)
}

// CancelDirectDebit removes the instruction.
func (s *Service) CancelDirectDebit(id uuid.UUID) error {
	return s.scheduler.CancelDirectDebit(id)
}

// ListDirectDebits returns the active instructions of an existing account.
func (s *Service) ListDirectDebits(accountID int64) ([]domain.DirectDebitInstruction, error) {
	if _, err := s.ledger.Account(accountID); err != nil {
		return nil, err
	}

	return s.scheduler.DirectDebits(accountID), nil
}

// ApplyForLoan parses the principal, credits it to the account and records the loan.
func (s *Service) ApplyForLoan(id int64, principal string) (domain.LoanResult, error) {
	m, err := s.parseAmount(principal)
	if err != nil {
		return domain.LoanResult{}, err
	}

	return s.scheduler.ApplyForLoan(id, m)
}

// ListLoans returns the loans issued to an existing account.
func (s *Service) ListLoans(accountID int64) ([]domain.LoanRecord, error) {
	if _, err := s.ledger.Account(accountID); err != nil {
		return nil, err
	}

	return s.scheduler.Loans(accountID), nil
}

// parseAmount converts a decimal string into a positive amount of the ledger currency.
func (s *Service) parseAmount(amount string) (moneypkg.Money, error) {
	m, err := moneypkg.Parse(amount, s.ledger.Currency())
	if err != nil {
		return moneypkg.Money{}, fmt.Errorf("%w: %v", domain.ErrInvalidAmount, err)
	}

	if !m.IsPositive() {
		return moneypkg.Money{}, fmt.Errorf("%w: %q is not positive", domain.ErrInvalidAmount, amount)
	}

	return m, nil
}

func parseRate(rate string) (decimal.Decimal, error) {
	r, err := moneypkg.ParseDecimal(rate)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", domain.ErrInvalidRate, rate)
	}

	if r.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is negative", domain.ErrInvalidRate, rate)
	}

	return r, nil
}
