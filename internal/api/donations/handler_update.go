package donations

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
)

// Update changes the amount of the donor's single active subscription.
// A fresh price is created every time; the existing line item is
// repointed to it with proration disabled, so no new subscription or
// customer ever comes out of this path.
func (h *Handler) Update(c *gin.Context) {
	var body struct {
		Email     string `json:"email"`
		NewAmount int64  `json:"newAmount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var fields []string
	if msg := validateAmount(body.NewAmount); msg != "" {
		fields = append(fields, msg)
	}
	if msg := validateEmail(body.Email); msg != "" {
		fields = append(fields, msg)
	}
	if len(fields) > 0 {
		h.renderError(c, "update", body.Email, &ValidationError{Fields: fields})
		return
	}

	email := normalizeEmail(body.Email)

	updated, err := h.updateAmount(email, body.NewAmount)
	if err != nil {
		h.renderError(c, "update", email, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"subscription": updated,
	})
}

func (h *Handler) updateAmount(email string, newAmount int64) (*stripe.Subscription, error) {
	cus, err := h.resolveCustomer(email)
	if err != nil {
		return nil, err
	}

	subs, err := h.resolveActiveSubscriptions(cus.ID)
	if err != nil {
		return nil, err
	}

	sub := subs[0]
	if sub.Items == nil || len(sub.Items.Data) == 0 {
		return nil, fmt.Errorf("subscription %s has no line item", sub.ID)
	}

	price, err := h.gateway.CreateMonthlyPrice(newAmount)
	if err != nil {
		return nil, fmt.Errorf("creating price: %w", err)
	}

	updated, err := h.gateway.UpdateSubscriptionPrice(sub.ID, sub.Items.Data[0].ID, price.ID)
	if err != nil {
		return nil, fmt.Errorf("updating subscription: %w", err)
	}

	return updated, nil
}
