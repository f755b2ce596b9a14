package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config returns the value of the given key from .env, falling back to the
// process environment when no .env file is present.
func Config(key string) string {
	godotenv.Load(".env")
	return os.Getenv(key)
}
