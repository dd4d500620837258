package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ManuelReschke/RazorSync/app/models"
	"github.com/ManuelReschke/RazorSync/internal/pkg/database/dbtest"
)

func strPtr(s string) *string { return &s }

func testItem(id models.EntityID, amount int64) *models.PlanItem {
	created := time.Unix(1700000000, 0).UTC()
	return &models.PlanItem{
		ID:         id,
		Active:     true,
		Name:       "Gold",
		Amount:     decimal.New(amount, -2),
		UnitAmount: decimal.New(amount, -2),
		Currency:   "INR",
		Type:       "plan",
		Unit:       strPtr("seat"),
		CreatedAt:  created,
		UpdatedAt:  created,
	}
}

func TestRecordRepository_FindByIDNotFound(t *testing.T) {
	repos := NewRepositories(dbtest.New(t))

	_, err := repos.Customer.FindByID(context.Background(), "cust_missing")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestRecordRepository_UpsertCreatesThenOverwrites(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(dbtest.New(t))

	require.NoError(t, repos.PlanItem.UpsertByID(ctx, testItem("item_ABC", 150000)))

	got, err := repos.PlanItem.FindByID(ctx, "item_ABC")
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("1500.00")), got.Amount.String())
	require.NotNil(t, got.Unit)
	assert.Equal(t, "seat", *got.Unit)

	updated := testItem("item_ABC", 99)
	updated.Name = "Silver"
	updated.Active = false
	updated.Unit = nil
	updated.TaxRate = decimal.NewNullDecimal(decimal.RequireFromString("18"))
	require.NoError(t, repos.PlanItem.UpsertByID(ctx, updated))

	got, err = repos.PlanItem.FindByID(ctx, "item_ABC")
	require.NoError(t, err)
	assert.Equal(t, "Silver", got.Name)
	assert.False(t, got.Active)
	assert.Nil(t, got.Unit, "nullable columns are overwritten with NULL")
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("0.99")))
	require.True(t, got.TaxRate.Valid)
	assert.True(t, got.TaxRate.Decimal.Equal(decimal.NewFromInt(18)))

	count, err := repos.PlanItem.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRecordRepository_UpsertSkipsAssociations(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(dbtest.New(t))

	plan := &models.Plan{
		ID:        "plan_XYZ",
		Interval:  1,
		Period:    models.PlanPeriodMonthly,
		ItemID:    "item_ABC",
		Item:      testItem("item_ABC", 100),
		CreatedAt: time.Unix(1700000000, 0).UTC(),
	}
	require.NoError(t, repos.Plan.UpsertByID(ctx, plan))

	_, err := repos.PlanItem.FindByID(ctx, "item_ABC")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	got, err := repos.Plan.FindByID(ctx, "plan_XYZ")
	require.NoError(t, err)
	assert.Equal(t, models.EntityID("item_ABC"), got.ItemID)
	assert.Equal(t, models.PlanPeriodMonthly, got.Period)
	assert.Nil(t, got.Item)
}

func TestRecordRepository_SubscriptionNullableFields(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(dbtest.New(t))

	start := time.Unix(1700000000, 0).UTC()
	customer := models.EntityID("cust_123")
	sub := &models.Subscription{
		ID:           "sub_1",
		PlanID:       "plan_XYZ",
		CustomerID:   &customer,
		Status:       models.SubscriptionStatusActive,
		CurrentStart: &start,
		ShortURL:     "https://rzp.io/i/abc",
		CreatedAt:    start,
	}
	require.NoError(t, repos.Subscription.UpsertByID(ctx, sub))

	sub.CustomerID = nil
	sub.CurrentStart = nil
	sub.Status = models.SubscriptionStatusHalted
	require.NoError(t, repos.Subscription.UpsertByID(ctx, sub))

	got, err := repos.Subscription.FindByID(ctx, "sub_1")
	require.NoError(t, err)
	assert.Nil(t, got.CustomerID)
	assert.Nil(t, got.CurrentStart)
	assert.Nil(t, got.EndedAt)
	assert.Equal(t, models.SubscriptionStatusHalted, got.Status)
	assert.True(t, start.Equal(got.CreatedAt))
}

func TestRecordRepository_List(t *testing.T) {
	ctx := context.Background()
	repos := NewFactory(dbtest.New(t)).GetRepositories()

	for _, id := range []models.EntityID{"cust_b", "cust_a"} {
		require.NoError(t, repos.Customer.UpsertByID(ctx, &models.Customer{
			ID:        id,
			Name:      "Test",
			CreatedAt: time.Unix(1700000000, 0).UTC(),
		}))
	}

	list, err := repos.Customer.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, models.EntityID("cust_a"), list[0].ID)
	assert.Equal(t, models.EntityID("cust_b"), list[1].ID)
}

func TestFactory_Singletons(t *testing.T) {
	f := NewFactory(dbtest.New(t))
	assert.Same(t, f.GetRepositories(), f.GetRepositories())
	assert.NotNil(t, f.GetPlanItemRepository())
	assert.NotNil(t, f.GetPlanRepository())
	assert.NotNil(t, f.GetCustomerRepository())
	assert.NotNil(t, f.GetSubscriptionRepository())
}
