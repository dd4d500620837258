package syncer

import (
	"github.com/shopspring/decimal"

	"github.com/ManuelReschke/RazorSync/app/models"
	"github.com/ManuelReschke/RazorSync/internal/pkg/razorpay"
)

// minorUnitExp converts provider minor units (paise) into major units.
const minorUnitExp = -2

func planItemFromRemote(in razorpay.Item) *models.PlanItem {
	return &models.PlanItem{
		ID:           in.ID,
		Active:       in.Active,
		Name:         in.Name,
		Description:  deref(in.Description),
		Amount:       decimal.New(in.Amount, minorUnitExp),
		UnitAmount:   decimal.New(in.UnitAmount, minorUnitExp),
		Currency:     in.Currency,
		Type:         in.Type,
		Unit:         in.Unit,
		TaxInclusive: in.TaxInclusive,
		HSNCode:      in.HSNCode,
		SACCode:      in.SACCode,
		TaxRate:      in.TaxRate,
		TaxID:        in.TaxID,
		TaxGroupID:   in.TaxGroupID,
		CreatedAt:    in.CreatedAt.Time,
		UpdatedAt:    in.UpdatedAt.Time,
	}
}

func planFromRemote(in razorpay.Plan, item *models.PlanItem) *models.Plan {
	return &models.Plan{
		ID:        in.ID,
		Interval:  in.Interval,
		Period:    in.Period,
		ItemID:    item.ID,
		CreatedAt: in.CreatedAt.Time,
	}
}

func customerFromRemote(in razorpay.Customer) *models.Customer {
	return &models.Customer{
		ID:        in.ID,
		Name:      in.Name,
		Email:     deref(in.Email),
		Contact:   deref(in.Contact),
		GSTIN:     in.GSTIN,
		CreatedAt: in.CreatedAt.Time,
	}
}

func subscriptionFromRemote(in razorpay.Subscription, plan *models.Plan, customer *models.Customer) *models.Subscription {
	sub := &models.Subscription{
		ID:                  in.ID,
		PlanID:              plan.ID,
		Status:              in.Status,
		CurrentStart:        in.CurrentStart.Ptr(),
		CurrentEnd:          in.CurrentEnd.Ptr(),
		EndedAt:             in.EndedAt.Ptr(),
		Quantity:            in.Quantity,
		ChargeAt:            in.ChargeAt.Ptr(),
		StartAt:             in.StartAt.Ptr(),
		EndAt:               in.EndAt.Ptr(),
		AuthAttempts:        in.AuthAttempts,
		TotalCount:          in.TotalCount,
		PaidCount:           in.PaidCount,
		RemainingCount:      in.RemainingCount,
		CustomerNotify:      in.CustomerNotify,
		ExpireBy:            in.ExpireBy.Ptr(),
		ShortURL:            deref(in.ShortURL),
		HasScheduledChanges: in.HasScheduledChanges,
		ChangeScheduledAt:   in.ChangeScheduledAt.Ptr(),
		Source:              deref(in.Source),
		OfferID:             in.OfferID,
		CreatedAt:           in.CreatedAt.Time,
	}
	if customer != nil {
		id := customer.ID
		sub.CustomerID = &id
	}
	return sub
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
