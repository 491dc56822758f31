package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Backend override values accepted in STORE_BACKEND.
const (
	BackendAuto     = "auto"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

type Config struct {
	Port     string
	LogLevel string

	DatabaseURL  string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSSLMode    string
	DBRequireTLS bool
	DBTimezone   string

	StoreBackend   string
	SQLitePath     string
	DBProbeTimeout time.Duration
	DBMaxOpenConns int
	DBMaxIdleConns int
	DBOpTimeout    time.Duration
	SchemaStrict   bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	NATSURL     string
	NATSSubject string
	NATSQueue   string

	OTELCollectorURL string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvi(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getenvd(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:     getenv("PORT", "8080"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DBHost:       os.Getenv("DB_HOST"),
		DBPort:       getenv("DB_PORT", "5432"),
		DBUser:       getenv("DB_USER", "postgres"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       getenv("DB_NAME", "jobs"),
		DBSSLMode:    getenv("DB_SSLMODE", "disable"),
		DBRequireTLS: getenvb("DB_REQUIRE_TLS", false),
		DBTimezone:   getenv("DB_TIMEZONE", "UTC"),

		StoreBackend:   strings.ToLower(getenv("STORE_BACKEND", BackendAuto)),
		SQLitePath:     getenv("SQLITE_PATH", "data/jobs.db"),
		DBProbeTimeout: getenvd("DB_PROBE_TIMEOUT", 5*time.Second),
		DBMaxOpenConns: getenvi("DB_MAX_OPEN_CONNS", 20),
		DBMaxIdleConns: getenvi("DB_MAX_IDLE_CONNS", 5),
		DBOpTimeout:    getenvd("DB_OP_TIMEOUT", 10*time.Second),
		SchemaStrict:   getenvb("SCHEMA_STRICT", false),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getenvi("REDIS_DB", 0),
		CacheTTL:      getenvd("CACHE_TTL", 5*time.Minute),

		NATSURL:     os.Getenv("NATS_URL"),
		NATSSubject: getenv("NATS_SUBJECT", "jobs.new"),
		NATSQueue:   getenv("NATS_QUEUE", "job-board"),

		OTELCollectorURL: os.Getenv("OTEL_COLLECTOR_URL"),
	}

	switch cfg.StoreBackend {
	case BackendAuto, BackendPostgres, BackendSQLite:
	default:
		return nil, fmt.Errorf("invalid STORE_BACKEND %q: want auto, postgres or sqlite", cfg.StoreBackend)
	}

	return cfg, nil
}

// PrimaryConfigured reports whether any primary store descriptor was supplied.
func (c *Config) PrimaryConfigured() bool {
	return c.DatabaseURL != "" || c.DBHost != ""
}

// PostgresDSN builds the primary connection string. DATABASE_URL wins over the
// individual DB_* parts; DB_REQUIRE_TLS upgrades sslmode in both forms.
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		if !c.DBRequireTLS {
			return c.DatabaseURL
		}
		u, err := url.Parse(c.DatabaseURL)
		if err != nil || u.Scheme == "" {
			return c.DatabaseURL + " sslmode=require"
		}
		q := u.Query()
		q.Set("sslmode", "require")
		u.RawQuery = q.Encode()
		return u.String()
	}

	sslMode := c.DBSSLMode
	if c.DBRequireTLS {
		sslMode = "require"
	}
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s TimeZone=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBName, sslMode, c.DBTimezone)
	if c.DBPassword != "" {
		pw := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(c.DBPassword)
		dsn += fmt.Sprintf(" password='%s'", pw)
	}
	return dsn
}
