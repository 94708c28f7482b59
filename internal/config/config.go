package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultDataPath   = "ecommerce_estatistica.csv"
	defaultPort       = "8050"
	defaultAssetsHost = "https://go-echarts.github.io/go-echarts-assets/assets/"
	defaultCacheTTL   = 10 * time.Minute
)

type Config struct {
	DataPath   string
	Port       string
	GinMode    string
	LogLevel   string
	AssetsHost string
	CacheTTL   time.Duration
	RedisURL   string
	AWSRegion  string
}

func LoadConfig() *Config {
	// Solo cargar .env en desarrollo local
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Error loading .env file:", err)
		} else {
			log.Println("✅ .env file loaded successfully")
		}
	} else {
		log.Println("🌐 Using system environment variables")
	}

	return &Config{
		DataPath:   getEnv("DATA_PATH", defaultDataPath),
		Port:       getEnv("PORT", defaultPort),
		GinMode:    getEnv("GIN_MODE", "debug"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		AssetsHost: getEnv("ASSETS_HOST", defaultAssetsHost),
		CacheTTL:   getDuration("CACHE_TTL", defaultCacheTTL),
		RedisURL:   getEnv("REDIS_URL", ""),
		AWSRegion:  getEnv("AWS_REGION", "us-east-1"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// getDuration interpreta valores como "90s" o "10m"
func getDuration(key string, fallback time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("⚠️ Invalid %s=%q, using %s", key, raw, fallback)
		return fallback
	}
	return d
}
