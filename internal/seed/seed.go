// Package seed loads the starting accounts of a ledger from a YAML file.
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-petr/sim-ledger/internal/domain"
	"github.com/go-petr/sim-ledger/pkg/moneypkg"
)

// Account is a starting account with its opening balance.
type Account struct {
	Name    string `yaml:"name"`
	Balance string `yaml:"balance"`
}

// File is the content of a seed file.
type File struct {
	Accounts []Account `yaml:"accounts"`
}

// Service provides the ledger operations needed to apply a seed.
type Service interface {
	CreateAccount(name string) domain.Account
	Deposit(id int64, amount string) (domain.EntryResult, error)
}

// Load reads and decodes the seed file at path. Unknown keys are rejected.
func Load(path string) (File, error) {
	var f File

	data, err := os.ReadFile(path)
	if err != nil {
		return f, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return f, fmt.Errorf("decode seed %s: %w", path, err)
	}

	return f, nil
}

// Apply opens every seeded account and deposits its opening balance. A blank or zero
// balance leaves the account empty.
func Apply(f File, s Service) ([]domain.Account, error) {
	accounts := make([]domain.Account, 0, len(f.Accounts))

	for _, a := range f.Accounts {
		acc := s.CreateAccount(a.Name)

		if !isEmpty(a.Balance) {
			res, err := s.Deposit(acc.ID, a.Balance)
			if err != nil {
				return accounts, fmt.Errorf("seed account %q: %w", a.Name, err)
			}

			acc = res.Account
		}

		accounts = append(accounts, acc)
	}

	return accounts, nil
}

func isEmpty(balance string) bool {
	if strings.TrimSpace(balance) == "" {
		return true
	}

	d, err := moneypkg.ParseDecimal(balance)

	return err == nil && d.IsZero()
}
