package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Refresh Token Config
	RefreshTokenExpiryDuration time.Duration
	RefreshTokenCookieName     string
	RefreshTokenCookiePath     string

	// Conversion display configuration
	RateSnapshotTTL time.Duration
	DisplayLocale   language.Tag
	CurrencySymbols map[string]string

	// Image storage
	ImageStorageDir string
	ImageBaseURL    string

	CORSAllowOrigins []string

	// Initial admin bootstrap; no admin is created when AdminPassword is empty
	AdminUsername string
	AdminPassword string
	AdminName     string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "damar-exchange-backend")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	viper.SetDefault("REFRESH_TOKEN_COOKIE_NAME", "rtid")
	viper.SetDefault("REFRESH_TOKEN_COOKIE_PATH", "/auth")
	viper.SetDefault("RATE_SNAPSHOT_TTL", "5m")
	viper.SetDefault("DISPLAY_LOCALE", "id-ID")
	viper.SetDefault("IMAGE_STORAGE_DIR", "./data/images")
	viper.SetDefault("IMAGE_BASE_URL", "/static/images")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:5173")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "")
	viper.SetDefault("ADMIN_NAME", "Administrator")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.JWTExpiryDuration = durationOrDefault("JWT_EXPIRY_DURATION", time.Hour)

	cfg.RefreshTokenExpiryDuration = durationOrDefault("REFRESH_TOKEN_EXPIRY_DURATION", 7*24*time.Hour)
	cfg.RefreshTokenCookieName = viper.GetString("REFRESH_TOKEN_COOKIE_NAME")
	cfg.RefreshTokenCookiePath = viper.GetString("REFRESH_TOKEN_COOKIE_PATH")

	cfg.RateSnapshotTTL = durationOrDefault("RATE_SNAPSHOT_TTL", 5*time.Minute)

	localeStr := viper.GetString("DISPLAY_LOCALE")
	locale, err := language.Parse(localeStr)
	if err != nil {
		log.Printf("Warning: Invalid DISPLAY_LOCALE (%q). Defaulting to id-ID.\n", localeStr)
		locale = language.MustParse("id-ID")
	}
	cfg.DisplayLocale = locale

	// The builtin symbol table can be extended or overridden per code, e.g.
	// CURRENCY_SYMBOLS="BTC=₿,XAU=oz" for codes the defaults do not cover.
	cfg.CurrencySymbols = DefaultCurrencySymbols()
	for _, pair := range splitList(viper.GetString("CURRENCY_SYMBOLS")) {
		code, symbol, found := strings.Cut(pair, "=")
		if !found || code == "" || symbol == "" {
			log.Printf("Warning: Skipping malformed CURRENCY_SYMBOLS entry %q.\n", pair)
			continue
		}
		cfg.CurrencySymbols[strings.ToUpper(strings.TrimSpace(code))] = strings.TrimSpace(symbol)
	}

	cfg.ImageStorageDir = viper.GetString("IMAGE_STORAGE_DIR")
	cfg.ImageBaseURL = viper.GetString("IMAGE_BASE_URL")
	cfg.CORSAllowOrigins = splitList(viper.GetString("CORS_ALLOW_ORIGINS"))

	// Bootstrap admin. Left disabled unless a password is provided.
	cfg.AdminUsername = viper.GetString("ADMIN_USERNAME")
	cfg.AdminPassword = viper.GetString("ADMIN_PASSWORD")
	cfg.AdminName = viper.GetString("ADMIN_NAME")

	return cfg, nil
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: Invalid value for %s (%q). Defaulting to %s.\n", key, raw, fallback)
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
