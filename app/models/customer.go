package models

import "time"

type Customer struct {
	ID        EntityID  `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name      string    `gorm:"type:varchar(64);not null" json:"name" validate:"max=64"`
	Email     string    `gorm:"type:varchar(64);not null" json:"email" validate:"max=64"`
	Contact   string    `gorm:"type:varchar(16);not null" json:"contact" validate:"max=16"`
	GSTIN     *string   `gorm:"column:gstin;type:varchar(16)" json:"gstin" validate:"omitempty,max=16"`
	CreatedAt time.Time `gorm:"autoCreateTime:false;not null" json:"created_at" validate:"required"`
}

func (c *Customer) Validate() error {
	return validateRecord(c.ID, c)
}
