package database

import (
	"log"
	"os"

	"mosque-app/internal/domain/admins"
	"mosque-app/internal/domain/content"
	"mosque-app/internal/domain/donations"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	if err := DB.AutoMigrate(
		&admins.Admin{},
		&content.Slide{},
		&content.Photo{},
		&donations.WebhookEvent{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}
}
