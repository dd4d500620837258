package syncer

import (
	"errors"
	"fmt"

	"github.com/ManuelReschke/RazorSync/app/models"
)

// ErrMissingRequiredReference is matched by MissingReferenceError.
var ErrMissingRequiredReference = errors.New("missing required reference")

// MissingReferenceError aborts a run when a record points at an entity that
// must already exist locally, e.g. a subscription whose plan was never synced.
type MissingReferenceError struct {
	Entity      string
	ID          models.EntityID
	Reference   string
	ReferenceID models.EntityID
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("%s %s references %s %s which does not exist locally", e.Entity, e.ID, e.Reference, e.ReferenceID)
}

func (e *MissingReferenceError) Is(target error) bool {
	return target == ErrMissingRequiredReference
}
