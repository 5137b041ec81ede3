package donations

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Create sets up a new recurring donation: it refuses emails that
// already carry an active subscription, then creates a customer, a
// fresh price and a hosted checkout session. The subscription itself is
// activated asynchronously by the processor once the donor completes
// payment; we only hand back the redirect URL.
func (h *Handler) Create(c *gin.Context) {
	var body struct {
		Amount int64  `json:"amount"`
		Email  string `json:"email"`
		Name   string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// Fail fast, zero side effects: nothing is created for bad input.
	if verr := validateDonation(body.Amount, body.Email, body.Name); verr != nil {
		h.renderError(c, "create", body.Email, verr)
		return
	}

	email := normalizeEmail(body.Email)
	name := normalizeName(body.Name)

	result, err := h.createCheckout(body.Amount, email, name, h.redirectOrigin(c))
	if err != nil {
		h.renderError(c, "create", email, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId": result.SessionID,
		"url":       result.URL,
	})
}

type checkoutResult struct {
	SessionID string
	URL       string
}

func (h *Handler) createCheckout(amount int64, email, name, origin string) (*checkoutResult, error) {
	existing, err := h.gateway.CustomerByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("looking up customer: %w", err)
	}
	if existing != nil {
		subs, err := h.gateway.ActiveSubscriptions(existing.ID)
		if err != nil {
			return nil, fmt.Errorf("listing subscriptions: %w", err)
		}
		if len(subs) > 0 {
			return nil, ErrAlreadySubscribed
		}
	}

	// Two concurrent creates for the same email can both pass the check
	// above. Accepted: the processor stays the source of truth and a
	// duplicate subscription can be cancelled afterwards.
	cus, err := h.gateway.CreateCustomer(email, name)
	if err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}

	price, err := h.gateway.CreateMonthlyPrice(amount)
	if err != nil {
		return nil, fmt.Errorf("creating price: %w", err)
	}

	session, err := h.gateway.CreateCheckoutSession(cus.ID, price.ID, origin, amount)
	if err != nil {
		return nil, fmt.Errorf("creating checkout session: %w", err)
	}

	return &checkoutResult{SessionID: session.ID, URL: session.URL}, nil
}
