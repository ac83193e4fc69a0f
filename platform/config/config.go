// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// JWTConfig provides JWT validation settings for middleware.
type JWTConfig interface {
	GetJWTAccessSecret() string
}

// AuthConfig provides settings needed by the auth service.
type AuthConfig interface {
	JWTConfig
	GetAccessTokenTTL() time.Duration
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// EmailConfig provides settings for email sending.
type EmailConfig interface {
	GetEmailEnabled() bool
	GetEmailFromName() string
	GetEmailFromAddress() string
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
}

// NotificationConfig provides settings for the notification module.
type NotificationConfig interface {
	GetAppBaseURL() string
}

// ShowConfig provides settings for the trade-show module.
type ShowConfig interface {
	GetShowPortalURL() string
}

// StorageConfig provides settings for MinIO S3-compatible storage.
type StorageConfig interface {
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	GetMinIOMaxFileSize() int64
	GetMinioBucketAnimalPhotos() string
	GetMinioBucketShowDocuments() string
	IsMinIOEnabled() bool
}

// SchedulerConfig provides settings for the asynq scheduler/worker.
type SchedulerConfig interface {
	GetRedisURL() string
	GetRedisTLSInsecure() bool
	GetAsynqQueueName() string
	GetAsynqConcurrency() int
}

// SearchIndexConfig provides settings for the external fuzzy search index.
type SearchIndexConfig interface {
	GetSearchIndexURL() string
	GetSearchIndexAPIKey() string
	IsSearchIndexEnabled() bool
}

// Config holds the full application configuration.
type Config struct {
	Env      string
	HTTPAddr string

	CORSAllowAll    bool
	CORSOrigins     []string
	CORSAllowCreds  bool
	AppBaseURL      string
	ShowPortalURL   string
	DatabaseURL     string
	JWTAccessSecret string
	AccessTokenTTL  time.Duration

	EmailEnabled     bool
	EmailFromName    string
	EmailFromAddress string
	SMTPHost         string
	SMTPPort         int
	SMTPUsername     string
	SMTPPassword     string

	MinIOEndpoint            string
	MinIOAccessKey           string
	MinIOSecretKey           string
	MinIOUseSSL              bool
	MinIOMaxFileSize         int64
	MinioBucketAnimalPhotos  string
	MinioBucketShowDocuments string

	RedisURL         string
	RedisTLSInsecure bool
	AsynqQueueName   string
	AsynqConcurrency int

	SearchIndexURL    string
	SearchIndexAPIKey string
}

// overrides holds values read from the optional YAML config file. They take
// precedence over environment variables.
type overrides map[string]string

// Load reads configuration from the environment (optionally seeded from a
// .env file) and from the YAML file named by CONFIG_FILE, if set.
func Load() (*Config, error) {
	// .env is optional; missing files are fine
	_ = godotenv.Load()

	ov, err := loadOverrides(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:      ov.getString("ENV", "development"),
		HTTPAddr: ov.getString("HTTP_ADDR", ":8080"),

		CORSAllowAll:    ov.getBool("CORS_ALLOW_ALL", false),
		CORSOrigins:     ov.getStringSlice("CORS_ORIGINS"),
		CORSAllowCreds:  ov.getBool("CORS_ALLOW_CREDENTIALS", true),
		AppBaseURL:      ov.getString("APP_BASE_URL", "http://localhost:3000"),
		ShowPortalURL:   ov.getString("SHOW_PORTAL_URL", "http://localhost:3001"),
		DatabaseURL:     ov.getString("DATABASE_URL", ""),
		JWTAccessSecret: ov.getString("JWT_ACCESS_SECRET", ""),
		AccessTokenTTL:  ov.getDuration("ACCESS_TOKEN_TTL", 12*time.Hour),

		EmailEnabled:     ov.getBool("EMAIL_ENABLED", false),
		EmailFromName:    ov.getString("EMAIL_FROM_NAME", "Refuge"),
		EmailFromAddress: ov.getString("EMAIL_FROM_ADDRESS", ""),
		SMTPHost:         ov.getString("SMTP_HOST", ""),
		SMTPPort:         ov.getInt("SMTP_PORT", 587),
		SMTPUsername:     ov.getString("SMTP_USERNAME", ""),
		SMTPPassword:     ov.getString("SMTP_PASSWORD", ""),

		MinIOEndpoint:            ov.getString("MINIO_ENDPOINT", ""),
		MinIOAccessKey:           ov.getString("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:           ov.getString("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:              ov.getBool("MINIO_USE_SSL", false),
		MinIOMaxFileSize:         ov.getInt64("MINIO_MAX_FILE_SIZE", 25*1024*1024),
		MinioBucketAnimalPhotos:  ov.getString("MINIO_BUCKET_ANIMAL_PHOTOS", "animal-photos"),
		MinioBucketShowDocuments: ov.getString("MINIO_BUCKET_SHOW_DOCUMENTS", "show-documents"),

		RedisURL:         ov.getString("REDIS_URL", ""),
		RedisTLSInsecure: ov.getBool("REDIS_TLS_INSECURE", false),
		AsynqQueueName:   ov.getString("ASYNQ_QUEUE", "default"),
		AsynqConcurrency: ov.getInt("ASYNQ_CONCURRENCY", 10),

		SearchIndexURL:    ov.getString("SEARCH_INDEX_URL", ""),
		SearchIndexAPIKey: ov.getString("SEARCH_INDEX_API_KEY", ""),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTAccessSecret == "" {
		return nil, fmt.Errorf("JWT_ACCESS_SECRET is required")
	}

	return cfg, nil
}

func loadOverrides(path string) (overrides, error) {
	if strings.TrimSpace(path) == "" {
		return overrides{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	ov := overrides{}
	for k, v := range raw {
		ov[strings.ToUpper(k)] = fmt.Sprintf("%v", v)
	}
	return ov, nil
}

func (o overrides) getString(key, fallback string) string {
	if v, ok := o[key]; ok && v != "" {
		return v
	}
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (o overrides) getBool(key string, fallback bool) bool {
	v := o.getString(key, "")
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func (o overrides) getInt(key string, fallback int) int {
	v := o.getString(key, "")
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func (o overrides) getInt64(key string, fallback int64) int64 {
	v := o.getString(key, "")
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func (o overrides) getDuration(key string, fallback time.Duration) time.Duration {
	v := o.getString(key, "")
	if v == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func (o overrides) getStringSlice(key string) []string {
	v := o.getString(key, "")
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// =============================================================================
// Interface implementations
// =============================================================================

func (c *Config) GetDatabaseURL() string     { return c.DatabaseURL }
func (c *Config) GetJWTAccessSecret() string { return c.JWTAccessSecret }

func (c *Config) GetAccessTokenTTL() time.Duration { return c.AccessTokenTTL }

func (c *Config) GetHTTPAddr() string       { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool     { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string  { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool   { return c.CORSAllowCreds }
func (c *Config) GetAppBaseURL() string     { return c.AppBaseURL }
func (c *Config) GetShowPortalURL() string  { return c.ShowPortalURL }

func (c *Config) GetEmailEnabled() bool       { return c.EmailEnabled }
func (c *Config) GetEmailFromName() string    { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string { return c.EmailFromAddress }
func (c *Config) GetSMTPHost() string         { return c.SMTPHost }
func (c *Config) GetSMTPPort() int            { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string     { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string     { return c.SMTPPassword }

func (c *Config) GetMinIOEndpoint() string            { return c.MinIOEndpoint }
func (c *Config) GetMinIOAccessKey() string           { return c.MinIOAccessKey }
func (c *Config) GetMinIOSecretKey() string           { return c.MinIOSecretKey }
func (c *Config) GetMinIOUseSSL() bool                { return c.MinIOUseSSL }
func (c *Config) GetMinIOMaxFileSize() int64          { return c.MinIOMaxFileSize }
func (c *Config) GetMinioBucketAnimalPhotos() string  { return c.MinioBucketAnimalPhotos }
func (c *Config) GetMinioBucketShowDocuments() string { return c.MinioBucketShowDocuments }
func (c *Config) IsMinIOEnabled() bool {
	return c.MinIOEndpoint != "" && c.MinIOAccessKey != "" && c.MinIOSecretKey != ""
}

func (c *Config) GetRedisURL() string       { return c.RedisURL }
func (c *Config) GetRedisTLSInsecure() bool { return c.RedisTLSInsecure }
func (c *Config) GetAsynqQueueName() string { return c.AsynqQueueName }
func (c *Config) GetAsynqConcurrency() int  { return c.AsynqConcurrency }

func (c *Config) GetSearchIndexURL() string    { return c.SearchIndexURL }
func (c *Config) GetSearchIndexAPIKey() string { return c.SearchIndexAPIKey }
func (c *Config) IsSearchIndexEnabled() bool   { return c.SearchIndexURL != "" }
