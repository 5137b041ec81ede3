package donations

import "time"

// WebhookEvent is a receipt of a verified billing-processor event. The
// unique event ID makes replayed deliveries idempotent.
type WebhookEvent struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	EventID string `gorm:"not null;uniqueIndex:idx_webhook_events_event_id" json:"event_id"`
	Type    string `gorm:"not null" json:"type"`
	Payload string `gorm:"type:text" json:"-"`

	ReceivedAt time.Time `json:"received_at"`
}
