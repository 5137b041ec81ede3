package routes

import (
	authapi "mosque-app/internal/api/auth"
	contentapi "mosque-app/internal/api/content"
	donationsapi "mosque-app/internal/api/donations"
	mediaapi "mosque-app/internal/api/media"
	stripewebhooks "mosque-app/internal/api/stripewebhook"
	"mosque-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, donations *donationsapi.Handler, media *mediaapi.Handler) {
	// Webhook verification needs the raw body; keep it outside the
	// sanitized group.
	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public content reads for the carousel and gallery.
	r.GET("/slides", contentapi.ListSlides)
	r.GET("/gallery", contentapi.ListPhotos)
	r.GET("/gallery/categories", contentapi.ListCategories)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	// Donor-facing subscription operations. Known weakness: identified
	// by donor-supplied email only, no further authorization.
	public.POST("/api/donations", donations.Create)
	public.POST("/api/donations/update", donations.Update)
	public.POST("/api/donations/cancel", donations.Cancel)

	public.POST("/admin/login", authapi.Login)

	// Dashboard
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.POST("/change-password", authapi.ChangePassword)

	admin.GET("/slides", contentapi.AdminListSlides)
	admin.POST("/slides", contentapi.CreateSlide)
	admin.PUT("/slides/:id", contentapi.UpdateSlide)
	admin.DELETE("/slides/:id", contentapi.DeleteSlide)

	admin.GET("/photos", contentapi.AdminListPhotos)
	admin.POST("/photos", contentapi.CreatePhoto)
	admin.PUT("/photos/:id", contentapi.UpdatePhoto)
	admin.DELETE("/photos/:id", contentapi.DeletePhoto)

	admin.POST("/upload", media.Upload)
	admin.GET("/donations/events", stripewebhooks.ListEvents)
}
