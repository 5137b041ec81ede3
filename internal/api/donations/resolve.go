package donations

import (
	"fmt"

	"github.com/stripe/stripe-go/v75"
)

// resolveCustomer looks the donor up in the billing processor's
// registry. All three operations share this step.
func (h *Handler) resolveCustomer(email string) (*stripe.Customer, error) {
	cus, err := h.gateway.CustomerByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("looking up customer: %w", err)
	}
	if cus == nil {
		return nil, ErrNoSubscription
	}
	return cus, nil
}

// resolveActiveSubscriptions returns the customer's active
// subscriptions and signals ErrNoSubscription when there are none.
func (h *Handler) resolveActiveSubscriptions(customerID string) ([]*stripe.Subscription, error) {
	subs, err := h.gateway.ActiveSubscriptions(customerID)
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions: %w", err)
	}
	if len(subs) == 0 {
		return nil, ErrNoSubscription
	}
	return subs, nil
}
