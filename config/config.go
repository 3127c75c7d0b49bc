package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	CORS_ORIGIN string

	DOCUMENT_STORE string // "postgres" or "file"
	DB_URL         string
	DOCUMENT_FILE  string

	JWT_SECRET          string
	ADMIN_EMAIL         string
	ADMIN_PASSWORD_HASH string

	SMTP_HOST     string
	SMTP_PORT     string
	SMTP_FROM     string
	SMTP_PASSWORD string
	CONTACT_TO    string

	OPENAI_API_KEY    string
	STRIPE_SECRET_KEY string
	APP_URL           string

	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:5173")

	DOCUMENT_STORE = getEnv("DOCUMENT_STORE", "postgres")
	switch DOCUMENT_STORE {
	case "postgres":
		DB_URL = mustEnv("DB_URL")
	case "file":
		DOCUMENT_FILE = getEnv("DOCUMENT_FILE", "site-document.json")
	default:
		log.Fatalf("Unknown DOCUMENT_STORE %q (want postgres or file)", DOCUMENT_STORE)
	}

	JWT_SECRET = mustEnv("JWT_SECRET")
	ADMIN_EMAIL = mustEnv("ADMIN_EMAIL")
	ADMIN_PASSWORD_HASH = mustEnv("ADMIN_PASSWORD_HASH")

	SMTP_HOST = getEnv("SMTP_HOST", "")
	SMTP_PORT = getEnv("SMTP_PORT", "587")
	SMTP_FROM = getEnv("SMTP_FROM", "")
	SMTP_PASSWORD = getEnv("SMTP_PASSWORD", "")
	CONTACT_TO = getEnv("CONTACT_TO", "")

	OPENAI_API_KEY = getEnv("OPENAI_API_KEY", "")
	STRIPE_SECRET_KEY = getEnv("STRIPE_SECRET_KEY", "")
	APP_URL = getEnv("APP_URL", "http://localhost:5173")

	GOOGLE_CLIENT_ID = getEnv("GOOGLE_CLIENT_ID", "")
	GOOGLE_CLIENT_SECRET = getEnv("GOOGLE_CLIENT_SECRET", "")
	GOOGLE_REDIRECT_URL = getEnv("GOOGLE_REDIRECT_URL", "")
	GOOGLE_FRONTEND_REDIRECT = getEnv("GOOGLE_FRONTEND_REDIRECT", "")
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
