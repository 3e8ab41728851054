package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Catalog Catalog `validate:"required"`
	Courier Courier `validate:"required"`

	Auth    Auth `validate:"required"`
	Tracing Tracing
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`

	ReadTimeout  time.Duration `validate:"gte=0"`
	WriteTimeout time.Duration `validate:"gte=0"`
}

// Kafka configures the payment confirmation consumer.
type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`

	// StatementTimeout is enforced by the server for every statement; zero disables it.
	StatementTimeout time.Duration `validate:"gte=0"`
}

type Catalog struct {
	BaseURL string        `validate:"required,url"`
	Timeout time.Duration `validate:"gt=0"`

	// MenuCacheTTL of 0 disables menu caching.
	MenuCacheCapacity int           `validate:"gte=0"`
	MenuCacheTTL      time.Duration `validate:"gte=0"`
}

type Courier struct {
	BaseURL string        `validate:"required,url"`
	Timeout time.Duration `validate:"gt=0"`
}

type Auth struct {
	Secret string `validate:"required,min=16"`
	Issuer string
}

type Tracing struct {
	ExporterURL string
	SampleRate  float64 `validate:"gte=0,lte=1"`
	ServiceName string  `validate:"required"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),

			ReadTimeout:  envDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: envDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID: env("KAFKA_GROUP_ID", "order-coordinator"),
			Topic:   env("KAFKA_PAYMENTS_TOPIC", "payments"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "orders"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),

			StatementTimeout: envDuration("POSTGRES_STATEMENT_TIMEOUT", 5*time.Second),
		},

		Catalog: Catalog{
			BaseURL: env("CATALOG_URL", "http://localhost:8081"),
			Timeout: envDuration("CATALOG_TIMEOUT", 5*time.Second),

			MenuCacheCapacity: envInt("CATALOG_MENU_CACHE_CAPACITY", 1000),
			MenuCacheTTL:      envDuration("CATALOG_MENU_CACHE_TTL", 30*time.Second),
		},

		Courier: Courier{
			BaseURL: env("COURIER_URL", "http://localhost:8082"),
			Timeout: envDuration("COURIER_TIMEOUT", 5*time.Second),
		},

		Auth: Auth{
			Secret: env("JWT_SECRET", ""),
			Issuer: env("JWT_ISSUER", ""),
		},

		Tracing: Tracing{
			ExporterURL: env("OTEL_EXPORTER_URL", ""),
			SampleRate:  envFloat("OTEL_SAMPLE_RATE", 1.0),
			ServiceName: env("OTEL_SERVICE_NAME", "order-coordinator"),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// Validate checks only the database settings, which is all the migrate command needs.
func (p Postgres) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
