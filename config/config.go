package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret is the development fallback signing key. Production
// deployments must override it through JWT_SECRET.
const DefaultJWTSecret = "tu_secreto_jwt_super_seguro"

type Config struct {
	ServerPort int
	Env        string
	LogLevel   string

	// JWTSecret is the symmetric signing key for session tokens.
	JWTSecret string

	// WeatherAPIKey authenticates calls to the weather upstream.
	WeatherAPIKey string

	// PokeAPIBaseURL and WeatherBaseURL override the upstream endpoints,
	// mainly for tests. Empty means the public defaults.
	PokeAPIBaseURL string
	WeatherBaseURL string

	// UpstreamTimeout bounds every upstream HTTP call.
	UpstreamTimeout time.Duration

	// SeedDemoData loads the demo users and catalog at startup.
	SeedDemoData bool

	CORSAllowedOrigins []string
}

func LoadConfig() Config {
	if os.Getenv("ENV") == "dev" {
		godotenv.Load()
	}

	return Config{
		ServerPort:         getEnvInt("PORT", 3000),
		Env:                getEnv("ENV", "dev"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		JWTSecret:          getEnv("JWT_SECRET", DefaultJWTSecret),
		WeatherAPIKey:      getEnv("OPENWEATHER_API_KEY", ""),
		PokeAPIBaseURL:     getEnv("POKEAPI_BASE_URL", ""),
		WeatherBaseURL:     getEnv("OPENWEATHER_BASE_URL", ""),
		UpstreamTimeout:    getEnvDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		SeedDemoData:       getEnvBool("SEED_DEMO_DATA", true),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		var value int
		fmt.Sscanf(valueStr, "%d", &value)
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := time.ParseDuration(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
