package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"

	devJWTSecret = "dev-secret-change-me"
)

// Config is loaded once at startup and handed to the components that need it.
type Config struct {
	Port          string
	StorageDriver string
	MongoURI      string
	MongoDatabase string

	TaxRate        float64
	ServiceFeeRate float64
	SessionTimeout time.Duration

	JWTSecret  string
	TokenTTL   time.Duration
	AdminToken string

	RedisAddr       string
	LoginRateLimit  int
	LoginRateWindow time.Duration

	LogLevel string
}

// LoadEnv loads variables from a .env file when one exists.
func LoadEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// Load reads the process environment into a Config and validates it.
func Load() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary variable source.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	r := reader{lookup: lookup}

	cfg := Config{
		Port:            r.str("PORT", "3000"),
		StorageDriver:   strings.ToLower(r.str("STORAGE_DRIVER", DriverMongo)),
		MongoURI:        r.str("MONGODB_URI", ""),
		MongoDatabase:   r.str("MONGODB_DATABASE", "quick_bite"),
		TaxRate:         r.float("TAX_RATE", 0.08),
		ServiceFeeRate:  r.float("SERVICE_FEE_RATE", 0.05),
		SessionTimeout:  time.Duration(r.int("SESSION_TIMEOUT_MINUTES", 120)) * time.Minute,
		JWTSecret:       r.str("JWT_SECRET", ""),
		TokenTTL:        8 * time.Hour,
		AdminToken:      r.str("ADMIN_TOKEN", ""),
		RedisAddr:       r.str("REDIS_ADDR", ""),
		LoginRateLimit:  r.int("LOGIN_RATE_LIMIT", 5),
		LoginRateWindow: time.Duration(r.int("LOGIN_RATE_WINDOW_MINUTES", 15)) * time.Minute,
		LogLevel:        r.str("LOG_LEVEL", "info"),
	}
	if r.err != nil {
		return Config{}, r.err
	}

	if cfg.JWTSecret == "" && cfg.StorageDriver == DriverMemory {
		cfg.JWTSecret = devJWTSecret
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and required settings.
func (c Config) Validate() error {
	switch c.StorageDriver {
	case DriverMongo:
		if c.MongoURI == "" {
			return errors.New("MONGODB_URI is required when STORAGE_DRIVER=mongo")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	if c.TaxRate < 0 || c.TaxRate > 1 {
		return fmt.Errorf("TAX_RATE must be within [0,1], got %v", c.TaxRate)
	}
	if c.ServiceFeeRate < 0 || c.ServiceFeeRate > 1 {
		return fmt.Errorf("SERVICE_FEE_RATE must be within [0,1], got %v", c.ServiceFeeRate)
	}
	if c.SessionTimeout <= 0 {
		return errors.New("SESSION_TIMEOUT_MINUTES must be positive")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.LoginRateLimit < 1 || c.LoginRateWindow <= 0 {
		return errors.New("login rate limit settings must be positive")
	}
	return nil
}

type reader struct {
	lookup func(string) (string, bool)
	err    error
}

func (r *reader) str(key, def string) string {
	if v, ok := r.lookup(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func (r *reader) float(key string, def float64) float64 {
	v := r.str(key, "")
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}
	return f
}

func (r *reader) int(key string, def int) int {
	v := r.str(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}
	return n
}
