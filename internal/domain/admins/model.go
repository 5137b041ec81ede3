package admins

import "time"

// Admin is a dashboard account. There is usually exactly one, seeded
// from the environment on first start.
type Admin struct {
	ID       uint   `gorm:"primaryKey"`
	Email    string `gorm:"not null;uniqueIndex:idx_admins_email"`
	Password string `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
