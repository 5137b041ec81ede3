package content

import "time"

type Photo struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Category    string    `gorm:"index;not null" json:"category"`
	Active      bool      `gorm:"default:true" json:"active"`
	ImageURL    string    `gorm:"not null" json:"imageUrl"`
	UploadedAt  time.Time `json:"uploadedAt"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
