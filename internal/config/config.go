// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file when
// present), loads them into structured Go types, and validates that the
// required values exist so the CMS fails fast on a broken deployment.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into the Config tree using koanf.
//   - Validate required values with go-playground/validator.
//   - Provide defaults for optional blocks (observability, storage, integration).
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads `.env` into the process environment
	// before any variable is read below.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

/*
	Env vars are read with the PROCURECMS_ prefix. The prefix is stripped and
	the rest is lowercased; nesting uses "." so the variable for
	Config.Server.Port is PROCURECMS_SERVER.PORT and the one for
	Config.Storage.Bucket is PROCURECMS_STORAGE.BUCKET.
*/

// EnvPrefix is the prefix every CMS environment variable carries.
const EnvPrefix = "PROCURECMS_"

// ServiceName tags logs, traces and New Relic events.
const ServiceName = "procurement-cms"

// Config is the root configuration object for the application.
//
// Optional blocks are pointers; when missing, LoadConfig injects defaults.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Storage       *StorageConfig       `koanf:"storage"`
	Integration   *IntegrationConfig   `koanf:"integration"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
// "local" turns on SQL query logging; "production" switches logs to JSON.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// RateLimit is the sustained number of API requests per second allowed
	// per client IP. Zero disables the limiter.
	RateLimit float64 `koanf:"rate_limit"`

	// MaxUploadMB caps the multipart body accepted by the upload endpoint.
	MaxUploadMB int64 `koanf:"max_upload_mb"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// DSN builds the postgres:// connection string. The password is escaped so
// characters like ":" or "@" survive.
func (d DatabaseConfig) DSN() string {
	hostPort := net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		d.User,
		url.QueryEscape(d.Password),
		hostPort,
		d.Name,
		d.SSLMode,
	)
}

// RedisConfig contains Redis connection details.
// Address is "host:port". Redis backs the asynq job queue.
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// StorageConfig selects and configures the object store that receives
// uploaded images and documents.
type StorageConfig struct {
	// Driver is "s3" (AWS S3 / MinIO) or "memory" (dev and tests).
	Driver string `koanf:"driver" validate:"required,oneof=s3 memory"`

	Bucket    string `koanf:"bucket"`
	Region    string `koanf:"region"`
	Endpoint  string `koanf:"endpoint"`
	PathStyle bool   `koanf:"path_style"`

	// AccessKeyID and SecretAccessKey are optional; when empty the default
	// AWS credential chain is used.
	AccessKeyID     string `koanf:"access_key_id"`
	SecretAccessKey string `koanf:"secret_access_key"`

	// PublicBaseURL is the prefix stored URLs start with, e.g.
	// https://cdn.example.com/cms. Delete-by-URL strips it to find the key.
	PublicBaseURL string `koanf:"public_base_url" validate:"required"`
}

// IntegrationConfig stores credentials for third-party services.
//
// Keep the `.env` file out of version control; these are secrets.
type IntegrationConfig struct {
	// ResendAPIKey enables admin notification emails. Empty disables them.
	ResendAPIKey string `koanf:"resend_api_key"`

	// EmailFrom is the sender identity for notification emails.
	EmailFrom string `koanf:"email_from"`

	// AdminEmails receive a notice whenever a record is created, updated or deleted.
	AdminEmails []string `koanf:"admin_emails"`
}

// NotificationsEnabled reports whether change notifications can be sent.
func (c *IntegrationConfig) NotificationsEnabled() bool {
	return c != nil && c.ResendAPIKey != "" && len(c.AdminEmails) > 0
}

// DefaultStorageConfig keeps uploads in memory. Fine for local work, useless
// across restarts.
func DefaultStorageConfig() *StorageConfig {
	return &StorageConfig{
		Driver:        "memory",
		Region:        "us-east-1",
		PublicBaseURL: "http://localhost:8080/files",
	}
}

// DefaultIntegrationConfig disables every integration.
func DefaultIntegrationConfig() *IntegrationConfig {
	return &IntegrationConfig{
		EmailFrom: "Procurement CMS <noreply@resend.dev>",
	}
}

// LoadConfig loads configuration from environment variables, unmarshals it
// into Config, validates it, applies defaults, and returns the result.
//
// Any failure is fatal: a CMS that starts with half a config is worse than
// one that does not start.
func LoadConfig() (*Config, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load initial env variables")
	}

	mainConfig := &Config{}

	if err = k.Unmarshal("", mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("could not unmarshal main config")
	}

	applyDefaults(mainConfig)

	validate := validator.New()
	if err = validate.Struct(mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("config validation failed")
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid observability config")
	}

	return mainConfig, nil
}

// applyDefaults fills optional blocks and forces the observability identity
// to follow the primary environment.
func applyDefaults(cfg *Config) {
	if cfg.Observability == nil {
		cfg.Observability = DefaultObservabilityConfig()
	}
	cfg.Observability.ServiceName = ServiceName
	cfg.Observability.Environment = cfg.Primary.Env

	if cfg.Storage == nil {
		cfg.Storage = DefaultStorageConfig()
	}
	if cfg.Integration == nil {
		cfg.Integration = DefaultIntegrationConfig()
	}
	if cfg.Server.MaxUploadMB <= 0 {
		cfg.Server.MaxUploadMB = 10
	}
}
