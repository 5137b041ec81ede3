package billing

import (
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
	"github.com/stripe/stripe-go/v75/customer"
	"github.com/stripe/stripe-go/v75/price"
	"github.com/stripe/stripe-go/v75/subscription"
)

// Client talks to Stripe. It satisfies donations.Gateway so the
// donation handlers never touch the SDK directly.
type Client struct {
	OrgName  string
	Currency string
}

func NewClient(secretKey, orgName, currency string) *Client {
	stripe.Key = secretKey
	return &Client{OrgName: orgName, Currency: currency}
}

// CustomerByEmail returns the first customer registered under email,
// or nil when none exists.
func (c *Client) CustomerByEmail(email string) (*stripe.Customer, error) {
	params := &stripe.CustomerListParams{Email: stripe.String(email)}
	params.Limit = stripe.Int64(1)

	it := customer.List(params)
	if it.Next() {
		return it.Customer(), nil
	}
	return nil, it.Err()
}

func (c *Client) CreateCustomer(email, name string) (*stripe.Customer, error) {
	return customer.New(&stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
		Metadata: map[string]string{
			"organization": c.OrgName,
			"created_at":   time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// CreateMonthlyPrice creates a fresh recurring price for amount, given
// in major currency units. Prices are never reused or mutated.
func (c *Client) CreateMonthlyPrice(amount int64) (*stripe.Price, error) {
	return price.New(priceParams(amount, c.Currency, c.OrgName))
}

func (c *Client) CreateCheckoutSession(customerID, priceID, origin string, amount int64) (*stripe.CheckoutSession, error) {
	return checkoutsession.New(checkoutParams(customerID, priceID, origin, amount))
}

// ActiveSubscriptions lists every subscription in active status owned
// by the customer. In practice there is at most one.
func (c *Client) ActiveSubscriptions(customerID string) ([]*stripe.Subscription, error) {
	params := &stripe.SubscriptionListParams{
		Customer: stripe.String(customerID),
		Status:   stripe.String(string(stripe.SubscriptionStatusActive)),
	}

	subs := []*stripe.Subscription{}
	it := subscription.List(params)
	for it.Next() {
		subs = append(subs, it.Subscription())
	}
	return subs, it.Err()
}

func (c *Client) UpdateSubscriptionPrice(subID, itemID, priceID string) (*stripe.Subscription, error) {
	return subscription.Update(subID, updateParams(itemID, priceID))
}

func (c *Client) CancelSubscription(subID string) error {
	_, err := subscription.Cancel(subID, nil)
	return err
}

func priceParams(amount int64, currency, orgName string) *stripe.PriceParams {
	return &stripe.PriceParams{
		// Major units in, minor units (hundredths) at the Stripe boundary.
		UnitAmount: stripe.Int64(amount * 100),
		Currency:   stripe.String(currency),
		Recurring: &stripe.PriceRecurringParams{
			Interval: stripe.String(string(stripe.PriceRecurringIntervalMonth)),
		},
		ProductData: &stripe.PriceProductDataParams{
			Name: stripe.String(fmt.Sprintf("Monthly Donation - %s (%d %s)", orgName, amount, currency)),
		},
	}
}

func checkoutParams(customerID, priceID, origin string, amount int64) *stripe.CheckoutSessionParams {
	return &stripe.CheckoutSessionParams{
		Customer: stripe.String(customerID),
		Mode:     stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(priceID), Quantity: stripe.Int64(1)},
		},
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		// The success target carries the session id so the client can
		// resume gracefully; the cancel target carries a flag.
		SuccessURL: stripe.String(origin + "/donations/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(origin + "/donations/manage?checkout=cancelled"),
		Metadata: map[string]string{
			"amount": fmt.Sprint(amount),
		},
	}
}

func updateParams(itemID, priceID string) *stripe.SubscriptionParams {
	return &stripe.SubscriptionParams{
		Items: []*stripe.SubscriptionItemsParams{
			{ID: stripe.String(itemID), Price: stripe.String(priceID)},
		},
		// The new amount takes effect at the next billing cycle; the
		// donor is never billed or refunded a partial period.
		ProrationBehavior: stripe.String("none"),
	}
}
