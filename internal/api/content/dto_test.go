package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlideRequestValidate(t *testing.T) {
	cases := []struct {
		name    string
		req     slideRequest
		wantMsg string
	}{
		{
			name:    "missing title",
			req:     slideRequest{Type: "image", ImageURL: "https://cdn/x.jpg"},
			wantMsg: "title is required",
		},
		{
			name:    "unknown type",
			req:     slideRequest{Title: "Eid", Type: "banner"},
			wantMsg: "type must be image, announcement or video",
		},
		{
			name:    "image slide without image",
			req:     slideRequest{Title: "Eid", Type: "image"},
			wantMsg: "imageUrl is required for image slides",
		},
		{
			name:    "video slide without video",
			req:     slideRequest{Title: "Friday talk", Type: "video"},
			wantMsg: "videoUrl is required for video slides",
		},
		{
			name: "announcement needs no media",
			req:  slideRequest{Title: "Ramadan times", Type: "announcement"},
		},
		{
			name: "valid image slide",
			req:  slideRequest{Title: "Eid", Type: "image", ImageURL: "https://cdn/x.jpg"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantMsg, tc.req.validate())
		})
	}
}

func TestSlideRequestDefaults(t *testing.T) {
	req := slideRequest{Title: "Eid", ImageURL: "https://cdn/x.jpg", Order: 0}
	assert.Empty(t, req.validate())
	assert.Equal(t, "image", req.Type)
	assert.Equal(t, 1, req.Order)
	assert.True(t, req.active())
}

func TestPhotoRequestValidate(t *testing.T) {
	req := photoRequest{Title: "Iftar", ImageURL: "https://cdn/y.jpg"}
	assert.Empty(t, req.validate())
	assert.Equal(t, "General", req.Category)
	assert.True(t, req.active())

	missing := photoRequest{Title: "Iftar"}
	assert.Equal(t, "imageUrl is required", missing.validate())
}
