package donations

import "github.com/stripe/stripe-go/v75"

// Gateway is the slice of the billing processor the donation flow
// needs. The production implementation lives in internal/infra/billing;
// tests substitute a fake.
type Gateway interface {
	// CustomerByEmail returns nil without error when no customer exists.
	CustomerByEmail(email string) (*stripe.Customer, error)
	CreateCustomer(email, name string) (*stripe.Customer, error)
	CreateMonthlyPrice(amount int64) (*stripe.Price, error)
	CreateCheckoutSession(customerID, priceID, origin string, amount int64) (*stripe.CheckoutSession, error)
	ActiveSubscriptions(customerID string) ([]*stripe.Subscription, error)
	UpdateSubscriptionPrice(subID, itemID, priceID string) (*stripe.Subscription, error)
	CancelSubscription(subID string) error
}
