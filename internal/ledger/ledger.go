// Package ledger is the sole owner of account balances.
//
// Every mutation runs under one write lock, so a transfer and a concurrent deposit or
// withdrawal on either account never interleave, and the transaction log always
// matches the balances.
package ledger

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/go-petr/sim-ledger/internal/domain"
	"github.com/go-petr/sim-ledger/internal/transactionlog"
	"github.com/go-petr/sim-ledger/pkg/currencypkg"
	"github.com/go-petr/sim-ledger/pkg/moneypkg"
)

// Ledger holds the active accounts and the transaction log.
type Ledger struct {
	mu       sync.RWMutex
	accounts map[int64]*domain.Account
	// nextID is never decremented, so ids are not reused after deletion.
	nextID int64

	currency       string
	allowOverdraft bool
	now            func() time.Time
	log            *transactionlog.Log
}

// New returns an empty ledger. Without options it keeps USD balances, rejects
// overdrafts and stamps transactions with time.Now.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		accounts: make(map[int64]*domain.Account),
		currency: currencypkg.USD,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(l)
	}

	if l.log == nil {
		l.log = transactionlog.New()
	}

	return l
}

// Currency returns the currency of all balances.
func (l *Ledger) Currency() string {
	return l.currency
}

// CreateAccount opens an account with a zero balance. An empty name becomes "Account N",
// where N is the new id.
func (l *Ledger) CreateAccount(name string) domain.Account {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++

	if name == "" {
		name = fmt.Sprintf("Account %d", l.nextID)
	}

	a := &domain.Account{
		ID:        l.nextID,
		Name:      name,
		Balance:   moneypkg.Zero(l.currency),
		CreatedAt: l.now(),
	}
	l.accounts[a.ID] = a

	return *a
}

// DeleteAccount removes the account from the active set. Its transactions stay
// in the log and remain queryable by id.
func (l *Ledger) DeleteAccount(id int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.accounts[id]; !ok {
		return domain.ErrAccountNotFound
	}

	delete(l.accounts, id)

	return nil
}

// Account returns a snapshot of the account.
func (l *Ledger) Account(id int64) (domain.Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	a, ok := l.accounts[id]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	return *a, nil
}

// Accounts returns a snapshot of all active accounts ordered by id.
func (l *Ledger) Accounts() []domain.Account {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Account, 0, len(l.accounts))
	for _, a := range l.accounts {
		out = append(out, *a)
	}

	slices.SortFunc(out, func(a, b domain.Account) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return out
}

// Total returns the sum of all active balances.
func (l *Ledger) Total() (moneypkg.Money, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	total := moneypkg.Zero(l.currency)
	for _, a := range l.accounts {
		var err error
		if total, err = total.Add(a.Balance); err != nil {
			return moneypkg.Money{}, err
		}
	}

	return total, nil
}

// History returns the account's transactions, oldest first.
func (l *Ledger) History(id int64) iter.Seq[domain.Transaction] {
	return l.log.HistoryFor(id)
}

// Log returns the ledger's transaction log.
func (l *Ledger) Log() *transactionlog.Log {
	return l.log
}

// Deposit adds amount to the account's balance.
func (l *Ledger) Deposit(id int64, amount moneypkg.Money) (domain.EntryResult, error) {
	return l.Credit(id, amount, domain.OriginCustomer)
}

// Withdraw takes amount from the account's balance.
func (l *Ledger) Withdraw(id int64, amount moneypkg.Money) (domain.EntryResult, error) {
	return l.Debit(id, amount, domain.OriginCustomer)
}

// Credit is Deposit with an explicit origin recorded on the transaction.
func (l *Ledger) Credit(id int64, amount moneypkg.Money, origin domain.Origin) (domain.EntryResult, error) {
	if err := l.checkAmount(amount); err != nil {
		return domain.EntryResult{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.credit(id, amount, origin)
}

func (l *Ledger) credit(id int64, amount moneypkg.Money, origin domain.Origin) (domain.EntryResult, error) {
	a, ok := l.accounts[id]
	if !ok {
		return domain.EntryResult{}, domain.ErrAccountNotFound
	}

	balance, err := a.Balance.Add(amount)
	if err != nil {
		return domain.EntryResult{}, fmt.Errorf("%w: %v", domain.ErrInvalidAmount, err)
	}

	a.Balance = balance
	accountID := a.ID

	tx := l.log.Append(domain.Transaction{
		Kind:        domain.KindDeposit,
		Origin:      origin,
		ToAccountID: &accountID,
		Amount:      amount,
		CreatedAt:   l.now(),
	})

	return domain.EntryResult{Account: *a, Transaction: tx}, nil
}

// Debit is Withdraw with an explicit origin recorded on the transaction.
func (l *Ledger) Debit(id int64, amount moneypkg.Money, origin domain.Origin) (domain.EntryResult, error) {
	if err := l.checkAmount(amount); err != nil {
		return domain.EntryResult{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.accounts[id]
	if !ok {
		return domain.EntryResult{}, domain.ErrAccountNotFound
	}

	balance, err := l.debited(a, amount)
	if err != nil {
		return domain.EntryResult{}, err
	}

	a.Balance = balance
	accountID := a.ID

	tx := l.log.Append(domain.Transaction{
		Kind:          domain.KindWithdrawal,
		Origin:        origin,
		FromAccountID: &accountID,
		Amount:        amount,
		CreatedAt:     l.now(),
	})

	return domain.EntryResult{Account: *a, Transaction: tx}, nil
}

// Transfer moves amount between two accounts. Either both balances change and one
// transfer transaction is recorded, or nothing changes.
func (l *Ledger) Transfer(fromID, toID int64, amount moneypkg.Money) (domain.TransferResult, error) {
	if err := l.checkAmount(amount); err != nil {
		return domain.TransferResult{}, err
	}

	if fromID == toID {
		return domain.TransferResult{}, domain.ErrSameAccount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	from, ok := l.accounts[fromID]
	if !ok {
		return domain.TransferResult{}, domain.ErrAccountNotFound
	}

	to, ok := l.accounts[toID]
	if !ok {
		return domain.TransferResult{}, domain.ErrAccountNotFound
	}

	fromBalance, err := l.debited(from, amount)
	if err != nil {
		return domain.TransferResult{}, err
	}

	toBalance, err := to.Balance.Add(amount)
	if err != nil {
		return domain.TransferResult{}, fmt.Errorf("%w: %v", domain.ErrInvalidAmount, err)
	}

	// Nothing below can fail.
	from.Balance, to.Balance = fromBalance, toBalance

	tx := l.log.Append(domain.Transaction{
		Kind:          domain.KindTransfer,
		Origin:        domain.OriginCustomer,
		FromAccountID: &fromID,
		ToAccountID:   &toID,
		Amount:        amount,
		CreatedAt:     l.now(),
	})

	return domain.TransferResult{FromAccount: *from, ToAccount: *to, Transaction: tx}, nil
}

// AccrueInterest credits ratePercent of the balance, rounded to the nearest minor unit,
// as an interest deposit. Balances at or below zero earn nothing, and a zero interest
// amount records no transaction.
func (l *Ledger) AccrueInterest(id int64, ratePercent decimal.Decimal) (domain.EntryResult, error) {
	if ratePercent.IsNegative() || !moneypkg.InRange(ratePercent) {
		return domain.EntryResult{}, domain.ErrInvalidRate
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.accounts[id]
	if !ok {
		return domain.EntryResult{}, domain.ErrAccountNotFound
	}

	if !a.Balance.IsPositive() {
		return domain.EntryResult{Account: *a}, nil
	}

	interest, err := a.Balance.Percent(ratePercent)
	if err != nil {
		return domain.EntryResult{}, fmt.Errorf("%w: %v", domain.ErrInvalidRate, err)
	}

	if interest.IsZero() {
		return domain.EntryResult{Account: *a}, nil
	}

	return l.credit(id, interest, domain.OriginInterest)
}

func (l *Ledger) checkAmount(amount moneypkg.Money) error {
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}

	if amount.Currency() != l.currency {
		return domain.ErrCurrencyMismatch
	}

	return nil
}

// debited returns the account balance after taking amount, enforcing the overdraft policy.
func (l *Ledger) debited(a *domain.Account, amount moneypkg.Money) (moneypkg.Money, error) {
	balance, err := a.Balance.Sub(amount)
	if err != nil {
		return moneypkg.Money{}, fmt.Errorf("%w: %v", domain.ErrInvalidAmount, err)
	}

	if balance.IsNegative() && !l.allowOverdraft {
		return moneypkg.Money{}, domain.ErrInsufficientFunds
	}

	return balance, nil
}
