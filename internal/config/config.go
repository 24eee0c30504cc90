package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"

	SessionToken  = "token"
	SessionShared = "shared"
)

type Config struct {
	Port      string
	StaticDir string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	SeedOnStart bool

	DB      DB
	Session Session
	Log     Log
}

type DB struct {
	Driver string
	Path   string // sqlite
	DSN    string // postgres
}

type Session struct {
	Mode   string
	Secret string
	TTL    time.Duration

	// GeneratedSecret indica que no vino SESSION_SECRET y se generó uno efímero.
	GeneratedSecret bool
}

type Log struct {
	Level  string
	Format string
	App    string
}

// Load lee la configuración desde env:
// - PORT (8080), STATIC_DIR, HTTP_READ_TIMEOUT (5s), HTTP_WRITE_TIMEOUT (10s), SEED_ON_START (true)
// - DB_DRIVER=sqlite|postgres|memory; si viene DB_DSN sin DB_DRIVER => postgres
// - DB_PATH (./data/pets_db.sqlite), DB_DSN
// - SESSION_MODE=token|shared, SESSION_SECRET, SESSION_TTL (24h)
// - LOG_LEVEL, LOG_FORMAT, APP_NAME
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnvOrDefault("PORT", "8080"),
		StaticDir:   strings.TrimSpace(os.Getenv("STATIC_DIR")),
		SeedOnStart: getEnvAsBoolOrDefault("SEED_ON_START", true),
		DB: DB{
			Driver: strings.ToLower(strings.TrimSpace(os.Getenv("DB_DRIVER"))),
			Path:   getEnvOrDefault("DB_PATH", "./data/pets_db.sqlite"),
			DSN:    strings.TrimSpace(os.Getenv("DB_DSN")),
		},
		Session: Session{
			Mode:   strings.ToLower(getEnvOrDefault("SESSION_MODE", SessionToken)),
			Secret: os.Getenv("SESSION_SECRET"),
		},
		Log: Log{
			Level:  os.Getenv("LOG_LEVEL"),
			Format: os.Getenv("LOG_FORMAT"),
			App:    getEnvOrDefault("APP_NAME", "pet-care"),
		},
	}

	var err error
	if cfg.ReadTimeout, err = getEnvAsDurationOrDefault("HTTP_READ_TIMEOUT", 5*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = getEnvAsDurationOrDefault("HTTP_WRITE_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.Session.TTL, err = getEnvAsDurationOrDefault("SESSION_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}

	if cfg.DB.Driver == "" {
		cfg.DB.Driver = DriverSQLite
		if cfg.DB.DSN != "" {
			cfg.DB.Driver = DriverPostgres
		}
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	if cfg.Session.Mode == SessionToken && cfg.Session.Secret == "" {
		secret, err := randomSecret()
		if err != nil {
			return Config{}, err
		}
		cfg.Session.Secret = secret
		cfg.Session.GeneratedSecret = true
	}

	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func (c Config) validate() error {
	switch c.DB.Driver {
	case DriverSQLite:
		if strings.TrimSpace(c.DB.Path) == "" {
			return fmt.Errorf("DB_PATH is required for sqlite")
		}
	case DriverPostgres:
		if c.DB.DSN == "" {
			return fmt.Errorf("DB_DSN is required for postgres")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.DB.Driver)
	}

	switch c.Session.Mode {
	case SessionToken, SessionShared:
	default:
		return fmt.Errorf("unknown SESSION_MODE %q", c.Session.Mode)
	}

	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
