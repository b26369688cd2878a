// Package moneypkg provides a fixed-precision money value stored in integer minor units.
//
// Decimal strings are the only way amounts enter or leave the package, so floating-point
// values never reach balances.
package moneypkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/go-petr/sim-ledger/pkg/currencypkg"
)

var (
	// ErrInvalidAmount indicates a string that is not a representable amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrUnsupportedCurrency indicates an unknown currency code.
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	// ErrCurrencyMismatch indicates arithmetic between different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrOverflow indicates that the result does not fit into int64 minor units.
	ErrOverflow = errors.New("amount overflow")
)

const (
	// maxInputLen caps the length of decimal text accepted from callers.
	maxInputLen = 64
	// maxExponent bounds the decimal exponent so rescaling stays small.
	maxExponent = 30
)

var (
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	minMinor = decimal.NewFromInt(math.MinInt64)
	hundred  = decimal.NewFromInt(100)
)

// Money is an amount of a single currency counted in minor units (cents for USD).
type Money struct {
	minor    int64
	currency string
}

// New returns Money holding the given number of minor units.
func New(minor int64, currency string) Money {
	return Money{minor: minor, currency: currency}
}

// Zero returns a zero amount of the currency.
func Zero(currency string) Money {
	return Money{currency: currency}
}

// Parse converts a decimal string such as "1000.50" into Money.
//
// It fails with ErrInvalidAmount when the string is not a finite number, carries more
// fractional digits than the currency's minor unit, or does not fit into int64 minor units.
// The sign is preserved; rejecting non-positive amounts is left to the caller.
func Parse(s, currency string) (Money, error) {
	exp, ok := currencypkg.Exponent(currency)
	if !ok {
		return Money{}, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, currency)
	}

	d, err := ParseDecimal(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", err, s)
	}

	minor, err := toMinor(d.Shift(exp))
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", err, s)
	}

	return Money{minor: minor, currency: currency}, nil
}

// MustParse is like Parse but panics on error. Intended for constants and tests.
func MustParse(s, currency string) Money {
	m, err := Parse(s, currency)
	if err != nil {
		panic(err)
	}

	return m
}

// ParseDecimal parses decimal text for amounts and rates. Text longer than 64 bytes or with
// an exponent beyond ±30 fails with ErrInvalidAmount before any arithmetic happens.
func ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if len(s) > maxInputLen {
		return decimal.Decimal{}, ErrInvalidAmount
	}

	d, err := decimal.NewFromString(s)
	if err != nil || !InRange(d) {
		return decimal.Decimal{}, ErrInvalidAmount
	}

	return d, nil
}

// InRange reports whether the exponent of d lies within the bounds ParseDecimal accepts.
func InRange(d decimal.Decimal) bool {
	exp := d.Exponent()
	return exp >= -maxExponent && exp <= maxExponent
}

func toMinor(scaled decimal.Decimal) (int64, error) {
	if !scaled.Equal(scaled.Truncate(0)) {
		return 0, ErrInvalidAmount
	}

	if scaled.GreaterThan(maxMinor) || scaled.LessThan(minMinor) {
		return 0, ErrOverflow
	}

	return scaled.IntPart(), nil
}

// Minor returns the amount in minor units.
func (m Money) Minor() int64 { return m.minor }

// Currency returns the currency code.
func (m Money) Currency() string { return m.currency }

// IsPositive reports whether m > 0.
func (m Money) IsPositive() bool { return m.minor > 0 }

// IsNegative reports whether m < 0.
func (m Money) IsNegative() bool { return m.minor < 0 }

// IsZero reports whether m == 0.
func (m Money) IsZero() bool { return m.minor == 0 }

// Equal reports whether both values have the same currency and amount.
func (m Money) Equal(o Money) bool {
	return m.minor == o.minor && m.currency == o.currency
}

// Add returns m + o.
func (m Money) Add(o Money) (Money, error) {
	if m.currency != o.currency {
		return Money{}, ErrCurrencyMismatch
	}

	if (o.minor > 0 && m.minor > math.MaxInt64-o.minor) ||
		(o.minor < 0 && m.minor < math.MinInt64-o.minor) {
		return Money{}, ErrOverflow
	}

	return Money{minor: m.minor + o.minor, currency: m.currency}, nil
}

// Sub returns m - o.
func (m Money) Sub(o Money) (Money, error) {
	if m.currency != o.currency {
		return Money{}, ErrCurrencyMismatch
	}

	if (o.minor < 0 && m.minor > math.MaxInt64+o.minor) ||
		(o.minor > 0 && m.minor < math.MinInt64+o.minor) {
		return Money{}, ErrOverflow
	}

	return Money{minor: m.minor - o.minor, currency: m.currency}, nil
}

// Cmp compares m and o and returns -1, 0 or +1. Currencies are not checked.
func (m Money) Cmp(o Money) int {
	switch {
	case m.minor < o.minor:
		return -1
	case m.minor > o.minor:
		return 1
	default:
		return 0
	}
}

// Percent returns rate percent of m rounded half away from zero to the nearest minor unit.
func (m Money) Percent(rate decimal.Decimal) (Money, error) {
	if !InRange(rate) {
		return Money{}, ErrInvalidAmount
	}

	v := decimal.NewFromInt(m.minor).Mul(rate).Div(hundred).Round(0)

	minor, err := toMinor(v)
	if err != nil {
		return Money{}, err
	}

	return Money{minor: minor, currency: m.currency}, nil
}

// Decimal returns the amount in major units.
func (m Money) Decimal() decimal.Decimal {
	exp, _ := currencypkg.Exponent(m.currency)
	return decimal.New(m.minor, -exp)
}

// String renders the amount with exactly the currency's number of decimals, e.g. "1000.00".
func (m Money) String() string {
	exp, _ := currencypkg.Exponent(m.currency)
	return m.Decimal().StringFixed(exp)
}

type jsonMoney struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// MarshalJSON encodes Money as {"amount":"1000.00","currency":"USD"}.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonMoney{Amount: m.String(), Currency: m.currency})
}

// UnmarshalJSON decodes the form produced by MarshalJSON.
func (m *Money) UnmarshalJSON(data []byte) error {
	var jm jsonMoney
	if err := json.Unmarshal(data, &jm); err != nil {
		return err
	}

	// The zero Money carries no currency.
	if jm.Currency == "" {
		if d, err := ParseDecimal(jm.Amount); err == nil && d.IsZero() {
			*m = Money{}
			return nil
		}
	}

	parsed, err := Parse(jm.Amount, jm.Currency)
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}
