package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrDecode is matched by every DecodeError.
var ErrDecode = errors.New("decode error")

// DecodeError reports a provider string that does not map to a known value.
type DecodeError struct {
	Type  string
	Value string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Type, e.Value)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// PlanPeriod defines the billing frequency of a plan.
type PlanPeriod string

const (
	PlanPeriodDaily     PlanPeriod = "daily"
	PlanPeriodWeekly    PlanPeriod = "weekly"
	PlanPeriodMonthly   PlanPeriod = "monthly"
	PlanPeriodQuarterly PlanPeriod = "quarterly"
	PlanPeriodYearly    PlanPeriod = "yearly"
)

func ParsePlanPeriod(s string) (PlanPeriod, error) {
	switch p := PlanPeriod(strings.TrimSpace(s)); p {
	case PlanPeriodDaily, PlanPeriodWeekly, PlanPeriodMonthly, PlanPeriodQuarterly, PlanPeriodYearly:
		return p, nil
	default:
		return "", &DecodeError{Type: "plan period", Value: s}
	}
}

func (p *PlanPeriod) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &DecodeError{Type: "plan period", Value: string(data)}
	}
	parsed, err := ParsePlanPeriod(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// SubscriptionStatus is the state of a subscription in its lifecycle.
// See https://razorpay.com/docs/payments/subscriptions/states/
type SubscriptionStatus string

const (
	SubscriptionStatusCreated       SubscriptionStatus = "created"
	SubscriptionStatusAuthenticated SubscriptionStatus = "authenticated"
	SubscriptionStatusActive        SubscriptionStatus = "active"
	SubscriptionStatusPending       SubscriptionStatus = "pending"
	SubscriptionStatusHalted        SubscriptionStatus = "halted"
	SubscriptionStatusCancelled     SubscriptionStatus = "cancelled"
	SubscriptionStatusCompleted     SubscriptionStatus = "completed"
	SubscriptionStatusExpired       SubscriptionStatus = "expired"
)

func ParseSubscriptionStatus(s string) (SubscriptionStatus, error) {
	switch st := SubscriptionStatus(strings.TrimSpace(s)); st {
	case SubscriptionStatusCreated,
		SubscriptionStatusAuthenticated,
		SubscriptionStatusActive,
		SubscriptionStatusPending,
		SubscriptionStatusHalted,
		SubscriptionStatusCancelled,
		SubscriptionStatusCompleted,
		SubscriptionStatusExpired:
		return st, nil
	default:
		return "", &DecodeError{Type: "subscription status", Value: s}
	}
}

func (s *SubscriptionStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return &DecodeError{Type: "subscription status", Value: string(data)}
	}
	parsed, err := ParseSubscriptionStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

