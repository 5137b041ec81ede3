package donations

import (
	"errors"
	"net/http"

	"mosque-app/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Handler serves the donor-facing subscription operations. It holds no
// state of its own; every request is a short ordered sequence of calls
// against the billing processor.
type Handler struct {
	gateway Gateway
	origin  string
}

// NewHandler wires the billing gateway and the fallback origin used for
// checkout redirect targets when the request carries no Origin header.
func NewHandler(gateway Gateway, origin string) *Handler {
	return &Handler{gateway: gateway, origin: origin}
}

func (h *Handler) redirectOrigin(c *gin.Context) string {
	if origin := c.GetHeader("Origin"); origin != "" {
		return origin
	}
	return h.origin
}

// renderError translates the donation error taxonomy to HTTP. Anything
// outside the taxonomy is logged in full and reported generically so
// processor error codes never leak to the caller.
func (h *Handler) renderError(c *gin.Context, op string, email string, err error) {
	var verr *ValidationError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.Is(err, ErrAlreadySubscribed):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "You already have an active subscription with this email. Use another email or manage your existing subscription.",
		})
	case errors.Is(err, ErrNoSubscription):
		c.JSON(http.StatusNotFound, gin.H{"error": "No subscription found for this email"})
	default:
		logger.Error(err, "donation operation failed", map[string]interface{}{
			"op":    op,
			"email": maskEmail(email),
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Something went wrong. Please try again.",
		})
	}
}

// maskEmail keeps log lines from spelling out full donor addresses.
func maskEmail(email string) string {
	if len(email) <= 3 {
		return "***"
	}
	return email[:3] + "***"
}
