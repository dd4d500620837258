package syncer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ManuelReschke/RazorSync/app/models"
	"github.com/ManuelReschke/RazorSync/app/repository"
	"github.com/ManuelReschke/RazorSync/internal/pkg/razorpay"
)

// Source lists the remote entities to mirror. razorpay.Client implements it.
type Source interface {
	ListPlans(ctx context.Context) ([]razorpay.Plan, error)
	ListCustomers(ctx context.Context) ([]razorpay.Customer, error)
	ListSubscriptions(ctx context.Context) ([]razorpay.Subscription, error)
}

// Result summarizes a completed run.
type Result struct {
	RunID         string
	Plans         int
	Customers     int
	Subscriptions int
	Duration      time.Duration
}

// Service mirrors Razorpay plans, customers and subscriptions into local
// storage. Every record is upserted by its Razorpay ID, so a run over an
// unchanged remote dataset changes nothing.
type Service struct {
	source Source
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewService creates a sync service from an injected source and repositories.
func NewService(source Source, repos *repository.Repositories, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{source: source, repos: repos, logger: logger}
}

// Run executes the three phases in order: plans, customers, subscriptions.
// The first error aborts the run. Records written before it stay committed.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	started := time.Now()
	res := &Result{RunID: uuid.NewString()}

	run := *s
	run.logger = s.logger.With(zap.String("run_id", res.RunID))
	run.logger.Info("starting razorpay sync")

	var err error
	if res.Plans, err = run.SyncPlans(ctx); err != nil {
		return res, fmt.Errorf("sync plans: %w", err)
	}
	if res.Customers, err = run.SyncCustomers(ctx); err != nil {
		return res, fmt.Errorf("sync customers: %w", err)
	}
	if res.Subscriptions, err = run.SyncSubscriptions(ctx); err != nil {
		return res, fmt.Errorf("sync subscriptions: %w", err)
	}

	res.Duration = time.Since(started)
	run.logger.Info("razorpay sync finished",
		zap.Int("plans", res.Plans),
		zap.Int("customers", res.Customers),
		zap.Int("subscriptions", res.Subscriptions),
		zap.Duration("duration", res.Duration),
	)
	return res, nil
}

// SyncPlans upserts every plan item and then the plan that owns it.
func (s *Service) SyncPlans(ctx context.Context) (int, error) {
	plans, err := s.source.ListPlans(ctx)
	if err != nil {
		return 0, err
	}

	synced := 0
	for _, remote := range plans {
		item := planItemFromRemote(remote.Item)
		if err := item.Validate(); err != nil {
			return synced, fmt.Errorf("plan item %s: %w", remote.Item.ID, err)
		}
		plan := planFromRemote(remote, item)
		if err := plan.Validate(); err != nil {
			return synced, fmt.Errorf("plan %s: %w", remote.ID, err)
		}

		if err := s.repos.PlanItem.UpsertByID(ctx, item); err != nil {
			return synced, fmt.Errorf("upsert plan item %s: %w", item.ID, err)
		}
		if err := s.repos.Plan.UpsertByID(ctx, plan); err != nil {
			return synced, fmt.Errorf("upsert plan %s: %w", plan.ID, err)
		}

		s.logger.Info("synced plan",
			zap.String("id", plan.ID.String()),
			zap.String("item_id", item.ID.String()),
		)
		synced++
	}
	return synced, nil
}

func (s *Service) SyncCustomers(ctx context.Context) (int, error) {
	customers, err := s.source.ListCustomers(ctx)
	if err != nil {
		return 0, err
	}

	synced := 0
	for _, remote := range customers {
		customer := customerFromRemote(remote)
		if err := customer.Validate(); err != nil {
			return synced, fmt.Errorf("customer %s: %w", remote.ID, err)
		}
		if err := s.repos.Customer.UpsertByID(ctx, customer); err != nil {
			return synced, fmt.Errorf("upsert customer %s: %w", customer.ID, err)
		}

		s.logger.Info("synced customer", zap.String("id", customer.ID.String()))
		synced++
	}
	return synced, nil
}

// SyncSubscriptions requires the referenced plan to exist locally. A missing
// customer is stored as NULL.
func (s *Service) SyncSubscriptions(ctx context.Context) (int, error) {
	subscriptions, err := s.source.ListSubscriptions(ctx)
	if err != nil {
		return 0, err
	}

	synced := 0
	for _, remote := range subscriptions {
		plan, err := s.repos.Plan.FindByID(ctx, remote.PlanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return synced, &MissingReferenceError{
					Entity:      "subscription",
					ID:          remote.ID,
					Reference:   "plan",
					ReferenceID: remote.PlanID,
				}
			}
			return synced, fmt.Errorf("lookup plan %s: %w", remote.PlanID, err)
		}

		customer, err := s.lookupCustomer(ctx, remote)
		if err != nil {
			return synced, err
		}

		sub := subscriptionFromRemote(remote, plan, customer)
		if err := sub.Validate(); err != nil {
			return synced, fmt.Errorf("subscription %s: %w", remote.ID, err)
		}
		if err := s.repos.Subscription.UpsertByID(ctx, sub); err != nil {
			return synced, fmt.Errorf("upsert subscription %s: %w", sub.ID, err)
		}

		s.logger.Info("synced subscription", zap.String("id", sub.ID.String()))
		synced++
	}
	return synced, nil
}

func (s *Service) lookupCustomer(ctx context.Context, remote razorpay.Subscription) (*models.Customer, error) {
	if remote.CustomerID == nil || *remote.CustomerID == "" {
		return nil, nil
	}

	customer, err := s.repos.Customer.FindByID(ctx, *remote.CustomerID)
	if err == nil {
		return customer, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Debug("subscription customer not synced locally, storing without customer",
			zap.String("id", remote.ID.String()),
			zap.String("customer_id", remote.CustomerID.String()),
		)
		return nil, nil
	}
	return nil, fmt.Errorf("lookup customer %s: %w", *remote.CustomerID, err)
}
