package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds process configuration, read once at boot.
type Config struct {
	MongoURI string
	DBName   string
	RedisURI string
	HTTPPort string
}

// Load reads configuration from the environment, after loading a local
// .env file when one is present. RedisURI is optional; when empty the
// service runs without the survey cache.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:   getEnv("DB_NAME", "surveyhub"),
		RedisURI: os.Getenv("REDIS_URI"),
		HTTPPort: getEnv("PORT", "8080"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
