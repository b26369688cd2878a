package ledgerdelivery

import (
	"github.com/go-playground/validator/v10"

	"github.com/go-petr/sim-ledger/internal/domain"
	"github.com/go-petr/sim-ledger/pkg/moneypkg"
)

// ValidAmount validates that the field is a positive decimal string.
var ValidAmount validator.Func = func(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	d, err := moneypkg.ParseDecimal(s)

	return err == nil && d.IsPositive()
}

// ValidRate validates that the field is a non-negative decimal string.
var ValidRate validator.Func = func(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	d, err := moneypkg.ParseDecimal(s)

	return err == nil && !d.IsNegative()
}

// ValidRecurrence validates that the field names a supported recurrence.
var ValidRecurrence validator.Func = func(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := domain.ParseRecurrence(s)

	return err == nil
}

// RegisterValidators adds the ledger request validators to v.
func RegisterValidators(v *validator.Validate) error {
	validators := map[string]validator.Func{
		"amount":     ValidAmount,
		"rate":       ValidRate,
		"recurrence": ValidRecurrence,
	}

	for tag, fn := range validators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}

	return nil
}
