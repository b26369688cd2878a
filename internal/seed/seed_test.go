package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-petr/sim-ledger/internal/domain"
	"github.com/go-petr/sim-ledger/internal/ledger"
	"github.com/go-petr/sim-ledger/internal/ledgerservice"
	"github.com/go-petr/sim-ledger/internal/scheduler"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func newService() *ledgerservice.Service {
	l := ledger.New()
	return ledgerservice.New(l, scheduler.New(l))
}

func TestLoadAndApply(t *testing.T) {
	path := writeSeed(t, `
accounts:
  - name: Savings
    balance: "1000.00"
  - name: Checking
    balance: "2500.00"
  - name: Empty
  - name: Zero
    balance: "0.00"
`)

	f, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, File{Accounts: []Account{
		{Name: "Savings", Balance: "1000.00"},
		{Name: "Checking", Balance: "2500.00"},
		{Name: "Empty"},
		{Name: "Zero", Balance: "0.00"},
	}}, f)

	service := newService()

	accounts, err := Apply(f, service)
	require.NoError(t, err)
	require.Len(t, accounts, 4)

	balances := map[string]string{}
	for _, a := range service.ListAccounts() {
		balances[a.Name] = a.Balance.String()
	}

	require.Equal(t, map[string]string{"Savings": "1000.00", "Checking": "2500.00", "Empty": "0.00", "Zero": "0.00"}, balances)
	require.Equal(t, accounts, service.ListAccounts())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeSeed(t, "accounts:\n  - nome: typo\n"))
	require.Error(t, err)

	f, err := Load(writeSeed(t, ""))
	require.NoError(t, err)
	require.Empty(t, f.Accounts)
}

func TestApplyInvalidBalance(t *testing.T) {
	f := File{Accounts: []Account{{Name: "Good", Balance: "1"}, {Name: "Bad", Balance: "1.001"}}}

	accounts, err := Apply(f, newService())
	require.ErrorIs(t, err, domain.ErrInvalidAmount)
	require.Len(t, accounts, 1)
}
