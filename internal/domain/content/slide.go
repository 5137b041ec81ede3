package content

import "time"

// Slide kinds shown by the hero carousel.
const (
	SlideTypeImage        = "image"
	SlideTypeAnnouncement = "announcement"
	SlideTypeVideo        = "video"
)

type Slide struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Subtitle string `json:"subtitle"`
	Position int    `gorm:"column:position;default:1" json:"order"`
	Active   bool   `gorm:"default:true" json:"active"`
	Type     string `gorm:"type:varchar(20);not null;default:'image'" json:"type"`
	ImageURL string `json:"imageUrl"`
	VideoURL string `json:"videoUrl"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ValidSlideType(t string) bool {
	switch t {
	case SlideTypeImage, SlideTypeAnnouncement, SlideTypeVideo:
		return true
	}
	return false
}
