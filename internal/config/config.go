package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	MongoURI       string
	DatabaseName   string
	JWTSecret      string
	Env            string
	AllowedOrigins []string
	Timeout        time.Duration
}

// IsProduction reports whether the server runs behind HTTPS; it controls
// the Secure flag on the session cookie.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		if os.IsNotExist(err) {
			// .env file not found, proceed with environment values
		} else {
			panic("Error loading .env file")
		}
	}
	return Config{
		Port:         getEnv("PORT", "3000"),
		MongoURI:     getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DatabaseName: getEnv("DATABASE_NAME", "group-study"),
		JWTSecret:    getEnv("JWT_SECRET", "dev-only-secret"),
		Env:          getEnv("APP_ENV", "development"),
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS",
			"http://localhost:5173,https://group-study-504b7.web.app,https://group-study-504b7.firebaseapp.com")),
		Timeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
