package models

import (
	"errors"
	"fmt"
)

// EntityIDMaxLength bounds every Razorpay-assigned identifier.
const EntityIDMaxLength = 64

var (
	ErrEntityIDEmpty   = errors.New("entity id is empty")
	ErrEntityIDTooLong = errors.New("entity id is too long")
)

// EntityID stores the Razorpay-assigned ID of an entity. It is the primary key
// of every mirrored table. The internal format (prefix, charset) is not checked.
type EntityID string

func (id EntityID) String() string {
	return string(id)
}

func (id EntityID) Validate() error {
	if id == "" {
		return ErrEntityIDEmpty
	}
	if len(id) > EntityIDMaxLength {
		return fmt.Errorf("%w: %d characters, max %d", ErrEntityIDTooLong, len(id), EntityIDMaxLength)
	}
	return nil
}
