package razorpay

import (
	"github.com/shopspring/decimal"

	"github.com/ManuelReschke/RazorSync/app/models"
	"github.com/ManuelReschke/RazorSync/internal/pkg/timestamp"
)

// Collection is the envelope of every Razorpay list endpoint.
type Collection[T any] struct {
	Entity string `json:"entity"`
	Count  int    `json:"count"`
	Items  []T    `json:"items"`
}

// Item is the billing item embedded in a plan. Amounts are in minor units.
type Item struct {
	ID           models.EntityID     `json:"id"`
	Active       bool                `json:"active"`
	Name         string              `json:"name"`
	Description  *string             `json:"description"`
	Amount       int64               `json:"amount"`
	UnitAmount   int64               `json:"unit_amount"`
	Currency     string              `json:"currency"`
	Type         string              `json:"type"`
	Unit         *string             `json:"unit"`
	TaxInclusive bool                `json:"tax_inclusive"`
	HSNCode      *string             `json:"hsn_code"`
	SACCode      *string             `json:"sac_code"`
	TaxRate      decimal.NullDecimal `json:"tax_rate"`
	TaxID        *string             `json:"tax_id"`
	TaxGroupID   *string             `json:"tax_group_id"`
	CreatedAt    timestamp.Time      `json:"created_at"`
	UpdatedAt    timestamp.Time      `json:"updated_at"`
}

type Plan struct {
	ID        models.EntityID   `json:"id"`
	Interval  int               `json:"interval"`
	Period    models.PlanPeriod `json:"period"`
	Item      Item              `json:"item"`
	CreatedAt timestamp.Time    `json:"created_at"`
}

type Customer struct {
	ID        models.EntityID `json:"id"`
	Name      string          `json:"name"`
	Email     *string         `json:"email"`
	Contact   *string         `json:"contact"`
	GSTIN     *string         `json:"gstin"`
	CreatedAt timestamp.Time  `json:"created_at"`
}

type Subscription struct {
	ID                  models.EntityID           `json:"id"`
	PlanID              models.EntityID           `json:"plan_id"`
	CustomerID          *models.EntityID          `json:"customer_id"`
	Status              models.SubscriptionStatus `json:"status"`
	CurrentStart        timestamp.NullTime        `json:"current_start"`
	CurrentEnd          timestamp.NullTime        `json:"current_end"`
	EndedAt             timestamp.NullTime        `json:"ended_at"`
	Quantity            int                       `json:"quantity"`
	ChargeAt            timestamp.NullTime        `json:"charge_at"`
	StartAt             timestamp.NullTime        `json:"start_at"`
	EndAt               timestamp.NullTime        `json:"end_at"`
	AuthAttempts        int                       `json:"auth_attempts"`
	TotalCount          int                       `json:"total_count"`
	PaidCount           int                       `json:"paid_count"`
	CustomerNotify      bool                      `json:"customer_notify"`
	CreatedAt           timestamp.Time            `json:"created_at"`
	ExpireBy            timestamp.NullTime        `json:"expire_by"`
	ShortURL            *string                   `json:"short_url"`
	HasScheduledChanges bool                      `json:"has_scheduled_changes"`
	ChangeScheduledAt   timestamp.NullTime        `json:"change_scheduled_at"`
	Source              *string                   `json:"source"`
	OfferID             *string                   `json:"offer_id"`
	RemainingCount      int                       `json:"remaining_count"`
}
