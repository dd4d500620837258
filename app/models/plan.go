package models

import "time"

// Plan is a Razorpay subscription plan. Each plan owns exactly one PlanItem.
type Plan struct {
	ID        EntityID   `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Interval  int        `gorm:"not null" json:"interval"`
	Period    PlanPeriod `gorm:"type:varchar(16);not null" json:"period" validate:"oneof=daily weekly monthly quarterly yearly"`
	ItemID    EntityID   `gorm:"type:varchar(64);not null;uniqueIndex" json:"item_id" validate:"required,max=64"`
	Item      *PlanItem  `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"item,omitempty" validate:"-"`
	CreatedAt time.Time  `gorm:"autoCreateTime:false;not null" json:"created_at" validate:"required"`
}

func (p *Plan) Validate() error {
	return validateRecord(p.ID, p)
}
