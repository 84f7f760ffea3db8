package services

import (
	"context"
	"net/http"

	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/pkg/client"
	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/pkg/models"
	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/pkg/pagination"
)

// SubscriptionsService wraps the subscription endpoints. The Admin* methods
// hit superuser-only routes; for everyone else they fail with a 403.
type SubscriptionsService struct {
	client *client.Client
}

// Plans returns the purchasable plans, cheapest first.
func (s *SubscriptionsService) Plans(ctx context.Context) ([]models.Plan, error) {
	data, err := s.client.DoRaw(ctx, http.MethodGet, "/subscriptions/plans/", nil, nil)
	if err != nil {
		return nil, err
	}
	return pagination.Normalize[models.Plan](data)
}

// MySubscription returns the caller's subscription state.
func (s *SubscriptionsService) MySubscription(ctx context.Context) (*models.Subscription, error) {
	var sub models.Subscription
	if err := s.client.Get(ctx, "/subscriptions/my-subscription/", nil, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// SubscribeResponse carries the payment-gateway order to complete checkout.
type SubscribeResponse struct {
	OrderID  string `json:"order_id"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}

// Subscribe creates a payment order for a plan.
func (s *SubscriptionsService) Subscribe(ctx context.Context, planID int64) (*SubscribeResponse, error) {
	body := map[string]int64{"plan_id": planID}
	var resp SubscribeResponse
	if err := s.client.Post(ctx, "/subscriptions/subscribe/", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyPaymentInput carries the gateway's signed payment confirmation.
type VerifyPaymentInput struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// VerifyPayment confirms a checkout and activates the subscription.
func (s *SubscriptionsService) VerifyPayment(ctx context.Context, input VerifyPaymentInput) (*models.Subscription, error) {
	var sub models.Subscription
	if err := s.client.Post(ctx, "/subscriptions/verify-payment/", input, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// Cancel cancels the caller's subscription at period end.
func (s *SubscriptionsService) Cancel(ctx context.Context) (*models.Subscription, error) {
	var sub models.Subscription
	if err := s.client.Post(ctx, "/subscriptions/cancel/", nil, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// AdminPlans returns every plan, active or not.
func (s *SubscriptionsService) AdminPlans(ctx context.Context) ([]models.Plan, error) {
	data, err := s.client.DoRaw(ctx, http.MethodGet, "/subscriptions/admin/plans/", nil, nil)
	if err != nil {
		return nil, err
	}
	return pagination.Normalize[models.Plan](data)
}

// AdminCreatePlan adds a plan.
func (s *SubscriptionsService) AdminCreatePlan(ctx context.Context, plan models.Plan) (*models.Plan, error) {
	var out models.Plan
	if err := s.client.Post(ctx, "/subscriptions/admin/plans/", plan, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminUpdatePlan replaces a plan's fields.
func (s *SubscriptionsService) AdminUpdatePlan(ctx context.Context, id int64, plan models.Plan) (*models.Plan, error) {
	var out models.Plan
	if err := s.client.Put(ctx, "/subscriptions/admin/plans/"+i64toa(id)+"/", plan, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminSubscriptions returns every user subscription.
func (s *SubscriptionsService) AdminSubscriptions(ctx context.Context) ([]models.Subscription, error) {
	data, err := s.client.DoRaw(ctx, http.MethodGet, "/subscriptions/admin/subscriptions/", nil, nil)
	if err != nil {
		return nil, err
	}
	return pagination.Normalize[models.Subscription](data)
}

// AdminAssignPlan assigns a custom plan to a user.
func (s *SubscriptionsService) AdminAssignPlan(ctx context.Context, userID, planID int64) (*models.Subscription, error) {
	body := map[string]int64{"plan_id": planID}
	var sub models.Subscription
	path := "/subscriptions/admin/subscriptions/user/" + i64toa(userID) + "/assign-plan/"
	if err := s.client.Post(ctx, path, body, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// AdminStats returns the subscription aggregate across all users.
func (s *SubscriptionsService) AdminStats(ctx context.Context) (*models.SubscriptionStats, error) {
	var stats models.SubscriptionStats
	if err := s.client.Get(ctx, "/subscriptions/admin/stats/", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
