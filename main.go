package main

import (
	"time"

	"mosque-app/cache"
	"mosque-app/config"
	"mosque-app/database"
	authapi "mosque-app/internal/api/auth"
	donationsapi "mosque-app/internal/api/donations"
	mediaapi "mosque-app/internal/api/media"
	routes "mosque-app/internal/app/http"
	"mosque-app/internal/infra/billing"
	"mosque-app/internal/media"
	"mosque-app/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	logger.Init()
	database.InitDB()

	if err := cache.InitRedis(config.REDIS_URL); err != nil {
		logger.Fatal("Redis init failed", map[string]interface{}{"error": err.Error()})
	}

	authapi.SeedAdmin()

	gateway := billing.NewClient(config.STRIPE_SECRET_KEY, config.ORG_NAME, config.CURRENCY)
	donations := donationsapi.NewHandler(gateway, config.APP_ORIGIN)

	uploader := media.NewUploader(
		config.CLOUDINARY_CLOUD_NAME,
		config.CLOUDINARY_UPLOAD_PRESET,
		config.CLOUDINARY_FOLDER,
	)
	uploads := mediaapi.NewHandler(uploader)

	r := gin.New()
	r.Use(gin.Recovery(), logger.GinLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, donations, uploads)

	if err := r.Run(":" + config.PORT); err != nil {
		logger.Fatal("Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
