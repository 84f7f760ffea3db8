package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Subscription statuses.
const (
	SubscriptionTrial         = "trial"
	SubscriptionActive        = "active"
	SubscriptionCancelled     = "cancelled"
	SubscriptionExpired       = "expired"
	SubscriptionPaymentFailed = "payment_failed"
)

// Plan is a purchasable subscription plan. Nil limits mean unlimited.
type Plan struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	PlanType          string          `json:"plan_type"`
	BillingCycle      string          `json:"billing_cycle"`
	Price             decimal.Decimal `json:"price"`
	MaxCustomers      *int            `json:"max_customers"`
	MaxOrdersPerMonth *int            `json:"max_orders_per_month"`
	MaxGalleryImages  *int            `json:"max_gallery_images"`
	MaxInventoryItems *int            `json:"max_inventory_items"`
	MaxStaffUsers     *int            `json:"max_staff_users"`
	IsActive          bool            `json:"is_active"`
}

// Subscription is the caller's subscription state. Expired subscriptions put
// the account into read-only mode; the backend signals that with 403s whose
// message references the expiry.
type Subscription struct {
	ID            int64      `json:"id"`
	Plan          *Plan      `json:"plan,omitempty"`
	Status        string     `json:"status"`
	TrialStart    *time.Time `json:"trial_start_date,omitempty"`
	TrialEnd      *time.Time `json:"trial_end_date,omitempty"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
	DaysRemaining int        `json:"days_remaining"`
}

// SubscriptionStats is the admin-only aggregate over all subscriptions.
type SubscriptionStats struct {
	TotalUsers     int             `json:"total_users"`
	TrialUsers     int             `json:"trial_users"`
	ActiveUsers    int             `json:"active_users"`
	ExpiredUsers   int             `json:"expired_users"`
	MonthlyRevenue decimal.Decimal `json:"monthly_revenue"`
}
