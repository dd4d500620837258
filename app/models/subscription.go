package models

import "time"

// Subscription mirrors a Razorpay subscription. Customer is nullable because the
// referenced customer may not have been synced locally.
type Subscription struct {
	ID                  EntityID           `gorm:"primaryKey;type:varchar(64)" json:"id"`
	PlanID              EntityID           `gorm:"type:varchar(64);not null;index" json:"plan_id" validate:"required,max=64"`
	Plan                *Plan              `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE" json:"plan,omitempty" validate:"-"`
	CustomerID          *EntityID          `gorm:"type:varchar(64);index" json:"customer_id" validate:"omitempty,max=64"`
	Customer            *Customer          `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"customer,omitempty" validate:"-"`
	Status              SubscriptionStatus `gorm:"type:varchar(16);not null;index" json:"status" validate:"oneof=created authenticated active pending halted cancelled completed expired"`
	CurrentStart        *time.Time         `json:"current_start"`
	CurrentEnd          *time.Time         `json:"current_end"`
	EndedAt             *time.Time         `json:"ended_at"`
	Quantity            int                `gorm:"not null" json:"quantity"`
	ChargeAt            *time.Time         `json:"charge_at"`
	StartAt             *time.Time         `json:"start_at"`
	EndAt               *time.Time         `json:"end_at"`
	AuthAttempts        int                `gorm:"not null" json:"auth_attempts"`
	TotalCount          int                `gorm:"not null" json:"total_count"`
	PaidCount           int                `gorm:"not null" json:"paid_count"`
	RemainingCount      int                `gorm:"not null" json:"remaining_count"`
	CustomerNotify      bool               `gorm:"not null" json:"customer_notify"`
	ExpireBy            *time.Time         `json:"expire_by"`
	ShortURL            string             `gorm:"column:short_url;type:varchar(200);not null" json:"short_url" validate:"omitempty,url,max=200"`
	HasScheduledChanges bool               `gorm:"not null" json:"has_scheduled_changes"`
	ChangeScheduledAt   *time.Time         `json:"change_scheduled_at"`
	Source              string             `gorm:"type:varchar(16);not null" json:"source" validate:"max=16"`
	OfferID             *string            `gorm:"type:varchar(32)" json:"offer_id" validate:"omitempty,max=32"`
	CreatedAt           time.Time          `gorm:"autoCreateTime:false;not null" json:"created_at" validate:"required"`
}

func (s *Subscription) Validate() error {
	return validateRecord(s.ID, s)
}
