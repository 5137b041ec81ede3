package content

import (
	"strings"

	"mosque-app/internal/domain/content"
)

type slideRequest struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Order    int    `json:"order"`
	Active   *bool  `json:"active"`
	Type     string `json:"type"`
	ImageURL string `json:"imageUrl"`
	VideoURL string `json:"videoUrl"`
}

// validate normalizes the request in place and returns a caller-facing
// message when the slide cannot be stored.
func (r *slideRequest) validate() string {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return "title is required"
	}

	if r.Type == "" {
		r.Type = content.SlideTypeImage
	}
	if !content.ValidSlideType(r.Type) {
		return "type must be image, announcement or video"
	}

	switch r.Type {
	case content.SlideTypeImage:
		if strings.TrimSpace(r.ImageURL) == "" {
			return "imageUrl is required for image slides"
		}
	case content.SlideTypeVideo:
		if strings.TrimSpace(r.VideoURL) == "" {
			return "videoUrl is required for video slides"
		}
	}

	if r.Order < 1 {
		r.Order = 1
	}
	return ""
}

func (r *slideRequest) active() bool {
	if r.Active == nil {
		return true
	}
	return *r.Active
}

type photoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Active      *bool  `json:"active"`
	ImageURL    string `json:"imageUrl"`
}

func (r *photoRequest) validate() string {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return "title is required"
	}
	if strings.TrimSpace(r.ImageURL) == "" {
		return "imageUrl is required"
	}
	if strings.TrimSpace(r.Category) == "" {
		r.Category = "General"
	}
	return ""
}

func (r *photoRequest) active() bool {
	if r.Active == nil {
		return true
	}
	return *r.Active
}
