package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	JWTSecret string
	JWTIssuer string

	CORSAllowedOrigins []string
	RateLimit          string
	RedisURL           string

	DefaultCurrency string
	DefaultLocale   string

	// Upper bound on sequence retries before falling back to a timestamp code.
	CodeMaxAttempts int

	// Initial values for the settings row when none has been saved yet.
	PreventNegativeTreasury bool
	PreventNegativeBank     bool

	PayrollUnapproveReverses bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "customs-clearance-erp")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("DEFAULT_CURRENCY", "SAR")
	v.SetDefault("DEFAULT_LOCALE", "en")
	v.SetDefault("CODE_MAX_ATTEMPTS", 5)
	v.SetDefault("PREVENT_NEGATIVE_TREASURY", true)
	v.SetDefault("PREVENT_NEGATIVE_BANK", true)
	v.SetDefault("PAYROLL_UNAPPROVE_REVERSES", false)

	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:              v.GetString("PGSQL_URL"),
		Port:                     v.GetString("PORT"),
		IsProduction:             v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:            v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:           v.GetString("MIGRATIONS_PATH"),
		JWTSecret:                v.GetString("JWT_SECRET"),
		JWTIssuer:                v.GetString("JWT_ISSUER"),
		RateLimit:                v.GetString("RATE_LIMIT"),
		RedisURL:                 v.GetString("REDIS_URL"),
		DefaultCurrency:          strings.ToUpper(v.GetString("DEFAULT_CURRENCY")),
		DefaultLocale:            v.GetString("DEFAULT_LOCALE"),
		CodeMaxAttempts:          v.GetInt("CODE_MAX_ATTEMPTS"),
		PreventNegativeTreasury:  v.GetBool("PREVENT_NEGATIVE_TREASURY"),
		PreventNegativeBank:      v.GetBool("PREVENT_NEGATIVE_BANK"),
		PayrollUnapproveReverses: v.GetBool("PAYROLL_UNAPPROVE_REVERSES"),
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if cfg.CodeMaxAttempts < 1 {
		log.Printf("Warning: Invalid value for CODE_MAX_ATTEMPTS (%d). Defaulting to 5.\n", cfg.CodeMaxAttempts)
		cfg.CodeMaxAttempts = 5
	}

	if len(cfg.DefaultCurrency) != 3 {
		log.Printf("Warning: Invalid value for DEFAULT_CURRENCY ('%s'). Defaulting to SAR.\n", cfg.DefaultCurrency)
		cfg.DefaultCurrency = "SAR"
	}

	return cfg, nil
}
