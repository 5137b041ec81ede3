package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	STRIPE_SECRET_KEY     string
	STRIPE_WEBHOOK_SECRET string

	APP_ORIGIN  string
	CORS_ORIGIN string
	ORG_NAME    string
	CURRENCY    string

	REDIS_URL string

	ADMIN_EMAIL    string
	ADMIN_PASSWORD string

	CLOUDINARY_CLOUD_NAME    string
	CLOUDINARY_UPLOAD_PRESET string
	CLOUDINARY_FOLDER        string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	STRIPE_SECRET_KEY = mustEnv("STRIPE_SECRET_KEY")
	STRIPE_WEBHOOK_SECRET = mustEnv("STRIPE_WEBHOOK_SECRET")

	APP_ORIGIN = getEnv("APP_ORIGIN", "http://localhost:3000")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:3000")
	ORG_NAME = getEnv("ORG_NAME", "Al-Rahma Mosque")
	CURRENCY = getEnv("CURRENCY", "sek")

	// Redis powers the public content cache and the content:updated channel.
	// Empty disables both.
	REDIS_URL = getEnv("REDIS_URL", "")

	ADMIN_EMAIL = getEnv("ADMIN_EMAIL", "")
	ADMIN_PASSWORD = getEnv("ADMIN_PASSWORD", "")

	CLOUDINARY_CLOUD_NAME = getEnv("CLOUDINARY_CLOUD_NAME", "")
	CLOUDINARY_UPLOAD_PRESET = getEnv("CLOUDINARY_UPLOAD_PRESET", "")
	CLOUDINARY_FOLDER = getEnv("CLOUDINARY_FOLDER", "mosque-images")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
