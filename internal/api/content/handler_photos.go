package content

import (
	"net/http"
	"time"

	"mosque-app/cache"
	"mosque-app/database"
	"mosque-app/internal/domain/content"

	"github.com/gin-gonic/gin"
)

// ListPhotos serves the public gallery, newest first, with an optional
// ?category= filter applied in memory over the cached list.
func ListPhotos(c *gin.Context) {
	photos, err := activePhotos()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load gallery"})
		return
	}

	if category := c.Query("category"); category != "" {
		filtered := []content.Photo{}
		for _, p := range photos {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		photos = filtered
	}

	c.JSON(http.StatusOK, photos)
}

// ListCategories derives the distinct categories of the active photos.
func ListCategories(c *gin.Context) {
	photos, err := activePhotos()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load gallery"})
		return
	}

	seen := map[string]bool{}
	categories := []string{}
	for _, p := range photos {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}

	c.JSON(http.StatusOK, categories)
}

func activePhotos() ([]content.Photo, error) {
	var photos []content.Photo
	if hit, err := cache.GetJSON(galleryCacheKey, &photos); err == nil && hit {
		return photos, nil
	}

	if err := database.DB.
		Where("active = ?", true).
		Order("uploaded_at DESC").
		Find(&photos).Error; err != nil {
		return nil, err
	}

	_ = cache.SetJSON(galleryCacheKey, photos, cacheTTL)
	return photos, nil
}

// AdminListPhotos returns every photo, inactive ones included.
func AdminListPhotos(c *gin.Context) {
	var photos []content.Photo
	if err := database.DB.Order("uploaded_at DESC").Find(&photos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load photos"})
		return
	}
	c.JSON(http.StatusOK, photos)
}

func CreatePhoto(c *gin.Context) {
	var body photoRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if msg := body.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	photo := content.Photo{
		Title:       body.Title,
		Description: body.Description,
		Category:    body.Category,
		Active:      body.active(),
		ImageURL:    body.ImageURL,
		UploadedAt:  time.Now(),
	}
	if err := database.DB.Create(&photo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create photo"})
		return
	}

	contentChanged("gallery")
	c.JSON(http.StatusOK, photo)
}

func UpdatePhoto(c *gin.Context) {
	var photo content.Photo
	if err := database.DB.First(&photo, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
		return
	}

	var body photoRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if msg := body.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	photo.Title = body.Title
	photo.Description = body.Description
	photo.Category = body.Category
	photo.Active = body.active()
	photo.ImageURL = body.ImageURL

	if err := database.DB.Save(&photo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update photo"})
		return
	}

	contentChanged("gallery")
	c.JSON(http.StatusOK, photo)
}

func DeletePhoto(c *gin.Context) {
	result := database.DB.Delete(&content.Photo{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete photo"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
		return
	}

	contentChanged("gallery")
	c.JSON(http.StatusOK, gin.H{"success": true})
}
