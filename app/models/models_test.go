package models

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItem() *PlanItem {
	return &PlanItem{
		ID:         "item_ABC",
		Active:     true,
		Name:       "Gold",
		Amount:     decimal.New(150000, -2),
		UnitAmount: decimal.New(150000, -2),
		Currency:   "INR",
		Type:       "plan",
		CreatedAt:  time.Unix(1700000000, 0).UTC(),
		UpdatedAt:  time.Unix(1700000000, 0).UTC(),
	}
}

func TestEntityIDValidate(t *testing.T) {
	assert.NoError(t, EntityID("plan_XYZ").Validate())
	assert.NoError(t, EntityID(strings.Repeat("a", EntityIDMaxLength)).Validate())

	err := EntityID(strings.Repeat("a", EntityIDMaxLength+1)).Validate()
	assert.ErrorIs(t, err, ErrEntityIDTooLong)

	assert.ErrorIs(t, EntityID("").Validate(), ErrEntityIDEmpty)
}

func TestEntityIDAcceptsAnyCharset(t *testing.T) {
	assert.NoError(t, EntityID("not a razorpay id ✓").Validate())
}

func TestRecordsRejectLongIDs(t *testing.T) {
	long := EntityID(strings.Repeat("x", 65))

	item := validItem()
	item.ID = long
	assert.ErrorIs(t, item.Validate(), ErrEntityIDTooLong)

	plan := &Plan{ID: long, Period: PlanPeriodMonthly, ItemID: "item_ABC"}
	assert.ErrorIs(t, plan.Validate(), ErrEntityIDTooLong)

	customer := &Customer{ID: long}
	assert.ErrorIs(t, customer.Validate(), ErrEntityIDTooLong)

	sub := &Subscription{ID: long, PlanID: "plan_1", Status: SubscriptionStatusActive}
	assert.ErrorIs(t, sub.Validate(), ErrEntityIDTooLong)
}

func TestPlanItemValidate(t *testing.T) {
	require.NoError(t, validItem().Validate())

	item := validItem()
	item.Currency = "RUPEE"
	assert.Error(t, item.Validate())

	item = validItem()
	item.Amount = decimal.New(1, 8)
	assert.Error(t, item.Validate(), "decimal(10,2) holds less than 10^8")

	item = validItem()
	item.UnitAmount = decimal.RequireFromString("1.005")
	assert.Error(t, item.Validate())

	item = validItem()
	item.TaxRate = decimal.NewNullDecimal(decimal.RequireFromString("18.00"))
	assert.NoError(t, item.Validate())
	item.TaxRate = decimal.NewNullDecimal(decimal.RequireFromString("1000"))
	assert.Error(t, item.Validate())

	unit := strings.Repeat("u", 17)
	item = validItem()
	item.Unit = &unit
	assert.Error(t, item.Validate())
}

func TestPlanValidate(t *testing.T) {
	plan := &Plan{ID: "plan_XYZ", Interval: 1, Period: PlanPeriodMonthly, ItemID: "item_ABC", CreatedAt: time.Unix(1700000000, 0).UTC()}
	assert.NoError(t, plan.Validate())

	plan.Period = "fortnightly"
	assert.Error(t, plan.Validate())

	plan.Period = PlanPeriodYearly
	plan.ItemID = ""
	assert.Error(t, plan.Validate())
}

func TestSubscriptionValidate(t *testing.T) {
	sub := &Subscription{
		ID:        "sub_1",
		PlanID:    "plan_XYZ",
		Status:    SubscriptionStatusActive,
		ShortURL:  "https://rzp.io/i/abc",
		Source:    "api",
		CreatedAt: time.Unix(1700000000, 0).UTC(),
	}
	assert.NoError(t, sub.Validate())

	sub.ShortURL = ""
	assert.NoError(t, sub.Validate())

	sub.ShortURL = "not a url"
	assert.Error(t, sub.Validate())

	sub.ShortURL = "https://rzp.io/i/abc"
	sub.Status = "paused"
	assert.Error(t, sub.Validate())
}

func TestParsePlanPeriod(t *testing.T) {
	for _, in := range []string{"daily", "weekly", "monthly", "quarterly", "yearly"} {
		got, err := ParsePlanPeriod(in)
		require.NoError(t, err)
		assert.Equal(t, PlanPeriod(in), got)
	}

	_, err := ParsePlanPeriod("hourly")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "hourly", decodeErr.Value)
}

func TestSubscriptionStatusUnmarshalJSON(t *testing.T) {
	var s SubscriptionStatus
	require.NoError(t, s.UnmarshalJSON([]byte(`"halted"`)))
	assert.Equal(t, SubscriptionStatusHalted, s)

	assert.ErrorIs(t, s.UnmarshalJSON([]byte(`"paused"`)), ErrDecode)
	assert.ErrorIs(t, s.UnmarshalJSON([]byte(`42`)), ErrDecode)
}

func TestRecordsRequireProviderTimestamps(t *testing.T) {
	item := validItem()
	item.UpdatedAt = time.Time{}
	assert.Error(t, item.Validate())

	item = validItem()
	item.CreatedAt = time.Time{}
	assert.Error(t, item.Validate())

	plan := &Plan{ID: "plan_XYZ", Interval: 1, Period: PlanPeriodMonthly, ItemID: "item_ABC"}
	assert.Error(t, plan.Validate())

	customer := &Customer{ID: "cust_1", Name: "Asha"}
	assert.Error(t, customer.Validate())
	customer.CreatedAt = time.Unix(1700000000, 0).UTC()
	assert.NoError(t, customer.Validate())

	sub := &Subscription{ID: "sub_1", PlanID: "plan_XYZ", Status: SubscriptionStatusActive}
	assert.Error(t, sub.Validate())

	// the epoch is a real value, only the zero time is missing
	customer.CreatedAt = time.Unix(0, 0).UTC()
	assert.NoError(t, customer.Validate())
}
