package content

import (
	"net/http"

	"mosque-app/cache"
	"mosque-app/database"
	"mosque-app/internal/domain/content"

	"github.com/gin-gonic/gin"
)

// ListSlides serves the carousel: active slides in display order.
func ListSlides(c *gin.Context) {
	var slides []content.Slide
	if hit, err := cache.GetJSON(slidesCacheKey, &slides); err == nil && hit {
		c.JSON(http.StatusOK, slides)
		return
	}

	if err := database.DB.
		Where("active = ?", true).
		Order("position ASC").
		Find(&slides).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load slides"})
		return
	}

	_ = cache.SetJSON(slidesCacheKey, slides, cacheTTL)
	c.JSON(http.StatusOK, slides)
}

// AdminListSlides returns every slide, inactive ones included.
func AdminListSlides(c *gin.Context) {
	var slides []content.Slide
	if err := database.DB.Order("position ASC").Find(&slides).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load slides"})
		return
	}
	c.JSON(http.StatusOK, slides)
}

func CreateSlide(c *gin.Context) {
	var body slideRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if msg := body.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	slide := content.Slide{
		Title:    body.Title,
		Subtitle: body.Subtitle,
		Position: body.Order,
		Active:   body.active(),
		Type:     body.Type,
		ImageURL: body.ImageURL,
		VideoURL: body.VideoURL,
	}
	if err := database.DB.Create(&slide).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create slide"})
		return
	}

	contentChanged("slides")
	c.JSON(http.StatusOK, slide)
}

func UpdateSlide(c *gin.Context) {
	var slide content.Slide
	if err := database.DB.First(&slide, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Slide not found"})
		return
	}

	var body slideRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if msg := body.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	slide.Title = body.Title
	slide.Subtitle = body.Subtitle
	slide.Position = body.Order
	slide.Active = body.active()
	slide.Type = body.Type
	slide.ImageURL = body.ImageURL
	slide.VideoURL = body.VideoURL

	if err := database.DB.Save(&slide).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update slide"})
		return
	}

	contentChanged("slides")
	c.JSON(http.StatusOK, slide)
}

func DeleteSlide(c *gin.Context) {
	result := database.DB.Delete(&content.Slide{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete slide"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Slide not found"})
		return
	}

	contentChanged("slides")
	c.JSON(http.StatusOK, gin.H{"success": true})
}
