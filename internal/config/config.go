package config

import (
	"log"

	"github.com/joho/godotenv"
)

// Load reads .env if present; otherwise the process environment is used as-is.
func Load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️ No .env file found — using system environment variables")
	} else {
		log.Println("✅ .env file loaded")
	}
}
