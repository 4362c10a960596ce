package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var loaded bool

// Config returns the value of an environment variable, loading .env once.
func Config(key string) string {
	if !loaded {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("no .env file found, using process environment")
		}
		loaded = true
	}
	return os.Getenv(key)
}

// ConfigBool treats "true" (and only "true") as enabled.
func ConfigBool(key string) bool {
	return Config(key) == "true"
}
