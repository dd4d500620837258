package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// Record is implemented by every table mirrored from Razorpay.
type Record interface {
	PlanItem | Plan | Customer | Subscription
}

// All returns one value of every mirrored model, in dependency order.
func All() []any {
	return []any{
		&PlanItem{},
		&Plan{},
		&Customer{},
		&Subscription{},
	}
}

func validateRecord(id EntityID, record any) error {
	if err := id.Validate(); err != nil {
		return err
	}
	return validate.Struct(record)
}

// checkDecimal enforces a SQL decimal(digits, places) column bound.
func checkDecimal(field string, d decimal.Decimal, digits, places int32) error {
	if !d.Equal(d.Round(places)) {
		return fmt.Errorf("%s: %s has more than %d decimal places", field, d.String(), places)
	}
	if !d.Abs().LessThan(decimal.New(1, digits-places)) {
		return fmt.Errorf("%s: %s exceeds %d digits", field, d.String(), digits)
	}
	return nil
}
