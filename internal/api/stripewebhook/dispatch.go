package stripewebhooks

import (
	"encoding/json"

	"mosque-app/internal/infra/billing"
	"mosque-app/pkg/logger"

	"github.com/stripe/stripe-go/v75"
)

// dispatch routes a verified event to its handler. No local
// subscription record is persisted, so the handlers only log and append
// to the receipt table; reconciliation is an extension point.
func dispatch(event stripe.Event) {
	recordEvent(event)

	switch event.Type {
	case "customer.subscription.created",
		"customer.subscription.updated",
		"customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			logger.Warn("Failed to parse subscription event", map[string]interface{}{
				"event_id": event.ID,
				"type":     event.Type,
			})
			return
		}
		logger.Info("Subscription event", map[string]interface{}{
			"event_id":     event.ID,
			"type":         event.Type,
			"subscription": sub.ID,
			"status":       billing.NormalizeStatus(string(sub.Status)),
		})

	case "invoice.payment_succeeded", "invoice.payment_failed":
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			logger.Warn("Failed to parse invoice event", map[string]interface{}{
				"event_id": event.ID,
				"type":     event.Type,
			})
			return
		}
		logger.Info("Invoice event", map[string]interface{}{
			"event_id": event.ID,
			"type":     event.Type,
			"invoice":  invoice.ID,
			"amount":   invoice.AmountDue,
		})

	default:
		// Unknown kinds are acknowledged without handling.
		logger.Info("Ignoring event", map[string]interface{}{
			"event_id": event.ID,
			"type":     event.Type,
		})
	}
}
