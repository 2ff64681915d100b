package config

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Load reads a .env file from the working directory into the process environment.
// Variables already set in the environment win. A missing file is not an error.
func Load() {
	if err := godotenv.Load(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Println("No .env file found (using environment variables)")
			return
		}
		log.Printf("load .env failed: %v", err)
	}
}

// Get returns the environment value for key, or fallback when it is unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
