package configs

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

type Config struct {
	Port string

	StoreDriver string
	DataDir     string
	DBSource    string
	MenuPath    string

	JWTSecret string
	JWTTTL    time.Duration

	AdminEmail    string
	AdminPassword string
	AdminAuth     bool

	StrictTransitions bool
	StripeSecretKey   string
	FrontendURL       string
	CORSOrigins       []string

	LogLevel  string
	LogFormat string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file, using process environment")
	}

	return &Config{
		Port:              getEnv("PORT", "8000"),
		StoreDriver:       strings.ToLower(getEnv("STORE_DRIVER", StoreJSON)),
		DataDir:           getEnv("DATA_DIR", "data"),
		DBSource:          getEnv("DB_SOURCE", "restaurant.db"),
		MenuPath:          getEnv("MENU_PATH", ""),
		JWTSecret:         getEnv("JWT_SECRET", "changeme"),
		JWTTTL:            getDuration("JWT_TTL", 24*time.Hour),
		AdminEmail:        getEnv("ADMIN_EMAIL", ""),
		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
		AdminAuth:         getBool("ADMIN_AUTH", true),
		StrictTransitions: getBool("STRICT_TRANSITIONS", true),
		StripeSecretKey:   os.Getenv("STRIPE_SECRET_KEY"),
		FrontendURL:       strings.TrimRight(getEnv("FRONTEND_URL", ""), "/"),
		CORSOrigins:       splitList(getEnv("CORS_ORIGINS", "*")),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("not a boolean, using default")
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("not a duration, using default")
		return fallback
	}
	return d
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
