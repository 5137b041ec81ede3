package stripewebhooks

import (
	"errors"
	"net/http"
	"time"

	"mosque-app/database"
	"mosque-app/internal/domain/donations"
	"mosque-app/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	"gorm.io/gorm"
)

// recordEvent appends a verified event to the receipt log. Recording is
// best effort: a replayed or unstorable event never fails the webhook
// response, since the processor would only retry.
func recordEvent(event stripe.Event) {
	if database.DB == nil {
		return
	}

	var existing donations.WebhookEvent
	err := database.DB.Where("event_id = ?", event.ID).First(&existing).Error
	if err == nil {
		// Replayed delivery, already recorded.
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error(err, "Failed to check webhook event log", map[string]interface{}{
			"event_id": event.ID,
		})
		return
	}

	record := donations.WebhookEvent{
		EventID:    event.ID,
		Type:       string(event.Type),
		Payload:    string(event.Data.Raw),
		ReceivedAt: time.Now(),
	}
	if err := database.DB.Create(&record).Error; err != nil {
		logger.Error(err, "Failed to record webhook event", map[string]interface{}{
			"event_id": event.ID,
		})
	}
}

// ListEvents returns the most recent receipts for the admin dashboard.
func ListEvents(c *gin.Context) {
	var events []donations.WebhookEvent
	if err := database.DB.
		Order("received_at DESC").
		Limit(50).
		Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load events"})
		return
	}

	c.JSON(http.StatusOK, events)
}
