package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanItem is the billing item embedded in a Razorpay plan. Amounts are stored
// in major currency units.
type PlanItem struct {
	ID           EntityID            `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Active       bool                `gorm:"not null" json:"active"`
	Name         string              `gorm:"type:varchar(128);not null" json:"name" validate:"max=128"`
	Description  string              `gorm:"type:varchar(128);not null" json:"description" validate:"max=128"`
	Amount       decimal.Decimal     `gorm:"type:decimal(10,2);not null" json:"amount"`
	UnitAmount   decimal.Decimal     `gorm:"type:decimal(10,2);not null" json:"unit_amount"`
	Currency     string              `gorm:"type:varchar(4);not null" json:"currency" validate:"max=4"`
	Type         string              `gorm:"type:varchar(16);not null" json:"type" validate:"max=16"`
	Unit         *string             `gorm:"type:varchar(16)" json:"unit" validate:"omitempty,max=16"`
	TaxInclusive bool                `gorm:"not null" json:"tax_inclusive"`
	HSNCode      *string             `gorm:"column:hsn_code;type:varchar(16)" json:"hsn_code" validate:"omitempty,max=16"`
	SACCode      *string             `gorm:"column:sac_code;type:varchar(16)" json:"sac_code" validate:"omitempty,max=16"`
	TaxRate      decimal.NullDecimal `gorm:"type:decimal(5,2)" json:"tax_rate"`
	TaxID        *string             `gorm:"column:tax_id;type:varchar(32)" json:"tax_id" validate:"omitempty,max=32"`
	TaxGroupID   *string             `gorm:"column:tax_group_id;type:varchar(32)" json:"tax_group_id" validate:"omitempty,max=32"`
	CreatedAt    time.Time           `gorm:"autoCreateTime:false;not null" json:"created_at" validate:"required"`
	UpdatedAt    time.Time           `gorm:"autoUpdateTime:false;not null" json:"updated_at" validate:"required"`
}

func (i *PlanItem) Validate() error {
	if err := validateRecord(i.ID, i); err != nil {
		return err
	}
	if err := checkDecimal("amount", i.Amount, 10, 2); err != nil {
		return err
	}
	if err := checkDecimal("unit_amount", i.UnitAmount, 10, 2); err != nil {
		return err
	}
	if i.TaxRate.Valid {
		return checkDecimal("tax_rate", i.TaxRate.Decimal, 5, 2)
	}
	return nil
}
