package repository

import (
	"context"

	"github.com/ManuelReschke/RazorSync/app/models"
	"gorm.io/gorm"
)

// Repository defines the storage operations shared by every mirrored entity.
// Records are matched by their Razorpay entity ID.
type Repository[T models.Record] interface {
	FindByID(ctx context.Context, id models.EntityID) (*T, error)
	UpsertByID(ctx context.Context, record *T) error
	List(ctx context.Context) ([]T, error)
	Count(ctx context.Context) (int64, error)
}

type (
	PlanItemRepository     = Repository[models.PlanItem]
	PlanRepository         = Repository[models.Plan]
	CustomerRepository     = Repository[models.Customer]
	SubscriptionRepository = Repository[models.Subscription]
)

// Repositories struct holds all repository instances
type Repositories struct {
	PlanItem     PlanItemRepository
	Plan         PlanRepository
	Customer     CustomerRepository
	Subscription SubscriptionRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		PlanItem:     NewRecordRepository[models.PlanItem](db),
		Plan:         NewRecordRepository[models.Plan](db),
		Customer:     NewRecordRepository[models.Customer](db),
		Subscription: NewRecordRepository[models.Subscription](db),
	}
}
