package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB credentials), security settings
// - default: Values common across all environments (timezone, intervals), standard settings
// -----------------------------------------------------------------------------

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	Server      ServerConfig
	Storage     StorageConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	Reservation ReservationConfig
	RateLimit   RateLimitConfig
	Kafka       KafkaConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	// proxies allowed to set X-Forwarded-For; empty means direct peers only
	TrustedProxies []string `envconfig:"SERVER_TRUSTED_PROXIES"`
}

type StorageConfig struct {
	Driver string `envconfig:"STORAGE_DRIVER" default:"postgres"`
	// applies goose migrations on startup; turn off when schema is managed elsewhere
	AutoMigrate bool `envconfig:"STORAGE_AUTO_MIGRATE" default:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	// per-statement budget; a timed out Reserve has an unknown outcome
	QueryTimeout time.Duration `envconfig:"DB_QUERY_TIMEOUT" default:"5s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
	Issuer   string `envconfig:"JWT_ISSUER" default:"parking-reservation"`
}

type ReservationConfig struct {
	DefaultCapacity   int           `envconfig:"RESERVATION_DEFAULT_CAPACITY" default:"4"`
	SweepInterval     time.Duration `envconfig:"RESERVATION_SWEEP_INTERVAL" default:"1m"`
	ReconcileInterval time.Duration `envconfig:"RESERVATION_RECONCILE_INTERVAL" default:"5m"`
	OrphanGrace       time.Duration `envconfig:"RESERVATION_ORPHAN_GRACE" default:"2m"`
	MatchWindow       time.Duration `envconfig:"RESERVATION_MATCH_WINDOW" default:"5s"`
	ReconcileRepair   bool          `envconfig:"RESERVATION_RECONCILE_REPAIR" default:"true"`
}

type RateLimitConfig struct {
	ReservePerSecond float64       `envconfig:"RATE_LIMIT_RESERVE_RPS" default:"5"`
	ReserveBurst     int           `envconfig:"RATE_LIMIT_RESERVE_BURST" default:"10"`
	IdleTTL          time.Duration `envconfig:"RATE_LIMIT_IDLE_TTL" default:"10m"`
}

type KafkaConfig struct {
	Brokers  []string `envconfig:"KAFKA_BROKERS"`
	Topic    string   `envconfig:"KAFKA_TOPIC" default:"slot-reservations"`
	ClientID string   `envconfig:"KAFKA_CLIENT_ID" default:"parking-reservation"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverMemory:
	case StorageDriverPostgres:
		if c.DB.User == "" || c.DB.DBName == "" {
			return errors.New("DB_USER and DB_NAME are required for the postgres storage driver")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	if c.Reservation.DefaultCapacity < 1 {
		return errors.New("RESERVATION_DEFAULT_CAPACITY must be at least 1")
	}
	if c.Reservation.SweepInterval <= 0 || c.Reservation.ReconcileInterval <= 0 {
		return errors.New("reservation worker intervals must be positive")
	}
	return nil
}

// LoadConfig reads an optional .env file, then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err.Error())
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Storage: StorageConfig{
			Driver:      StorageDriverMemory,
			AutoMigrate: true,
		},
		DB: DBConfig{
			Host:         "localhost",
			Port:         "15433", // Test DB port
			User:         "test",
			Password:     "test",
			DBName:       "test_db",
			SSLMode:      "disable",
			TimeZone:     "UTC",
			MaxConns:     10,
			QueryTimeout: 5 * time.Second,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
			Issuer:   "parking-reservation",
		},
		Reservation: ReservationConfig{
			DefaultCapacity:   4,
			SweepInterval:     time.Minute,
			ReconcileInterval: 5 * time.Minute,
			OrphanGrace:       2 * time.Minute,
			MatchWindow:       5 * time.Second,
			ReconcileRepair:   true,
		},
		RateLimit: RateLimitConfig{
			ReservePerSecond: 1000,
			ReserveBurst:     1000,
			IdleTTL:          time.Minute,
		},
		Kafka: KafkaConfig{
			Topic:    "slot-reservations",
			ClientID: "parking-reservation-test",
		},
	}
}
