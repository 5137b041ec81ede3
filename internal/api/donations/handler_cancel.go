package donations

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// Cancel ends every active subscription the donor has. There should be
// at most one, but the fan-out tolerates more; success is only reported
// once all of them cancelled.
func (h *Handler) Cancel(c *gin.Context) {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if msg := validateEmail(body.Email); msg != "" {
		h.renderError(c, "cancel", body.Email, &ValidationError{Fields: []string{msg}})
		return
	}

	email := normalizeEmail(body.Email)

	if err := h.cancelAll(email); err != nil {
		h.renderError(c, "cancel", email, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Subscription cancelled",
	})
}

func (h *Handler) cancelAll(email string) error {
	cus, err := h.resolveCustomer(email)
	if err != nil {
		return err
	}

	subs, err := h.resolveActiveSubscriptions(cus.ID)
	if err != nil {
		return err
	}

	g := new(errgroup.Group)
	for _, sub := range subs {
		subID := sub.ID
		g.Go(func() error {
			return h.gateway.CancelSubscription(subID)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("cancelling subscriptions: %w", err)
	}
	return nil
}
