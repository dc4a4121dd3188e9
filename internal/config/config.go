package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App     AppConfig
	Content ContentConfig
	Region  RegionConfig
	Flags   FlagsConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Email   EmailConfig
	Chat    ChatConfig
	MinIO   MinIOConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// ContentConfig points the content resolver at the on-disk content store.
type ContentConfig struct {
	Dir           string // root of the mdx content tree
	DefaultLocale string // locale served when no suffixed file exists
}

// RegionConfig drives the country/locale resolution middleware.
type RegionConfig struct {
	DefaultCountry   string // used when headers carry nothing usable
	SecondaryCountry string // the one country mapped to the secondary locale
	PrimaryLocale    string
	SecondaryLocale  string
}

// FlagsConfig configures the feature flag cache.
type FlagsConfig struct {
	CacheTTLSeconds int // default 300
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret             string
	AccessTokenExpiry  int // minutes
	RefreshTokenExpiry int // hours
}

type EmailConfig struct {
	Provider     string // resend, smtp
	ResendAPIKey string
	From         string
	NotifyTo     string // ministry inbox for contact/decision notifications
	SMTPHost     string
	SMTPPort     string
}

// ChatConfig configures the proxy to the external chat completion API.
type ChatConfig struct {
	APIURL     string
	APIKey     string
	Model      string
	MaxTurns   int // conversation turns forwarded per request
	SessionTTL int // minutes a visitor conversation lives in redis
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string // base URL media is served from
	UseSSL    bool
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Camino de Vida API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Content: ContentConfig{
			Dir:           getEnv("CONTENT_DIR", "./content"),
			DefaultLocale: getEnv("CONTENT_DEFAULT_LOCALE", "es"),
		},
		Region: RegionConfig{
			DefaultCountry:   getEnv("DEFAULT_COUNTRY", "ES"),
			SecondaryCountry: getEnv("SECONDARY_LOCALE_COUNTRY", "BR"),
			PrimaryLocale:    getEnv("PRIMARY_LOCALE", "es"),
			SecondaryLocale:  getEnv("SECONDARY_LOCALE", "pt"),
		},
		Flags: FlagsConfig{
			CacheTTLSeconds: getEnvInt("FLAGS_CACHE_TTL", 300),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:             getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			AccessTokenExpiry:  getEnvInt("JWT_ACCESS_EXPIRY", 15),
			RefreshTokenExpiry: getEnvInt("JWT_REFRESH_EXPIRY", 72),
		},
		Email: EmailConfig{
			Provider:     getEnv("EMAIL_PROVIDER", "resend"),
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			From:         getEnv("EMAIL_FROM", "no-reply@caminodevida.org"),
			NotifyTo:     getEnv("EMAIL_NOTIFY_TO", "equipo@caminodevida.org"),
			SMTPHost:     getEnv("SMTP_HOST", "localhost"),
			SMTPPort:     getEnv("SMTP_PORT", "1025"),
		},
		Chat: ChatConfig{
			APIURL:     getEnv("CHAT_API_URL", ""),
			APIKey:     getEnv("CHAT_API_KEY", ""),
			Model:      getEnv("CHAT_MODEL", "gpt-4o-mini"),
			MaxTurns:   getEnvInt("CHAT_MAX_TURNS", 10),
			SessionTTL: getEnvInt("CHAT_SESSION_TTL", 120),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "caminodevida-media"),
			PublicURL: getEnv("MINIO_PUBLIC_URL", "http://localhost:9000/caminodevida-media"),
			UseSSL:    getEnv("MINIO_USE_SSL", "false") == "true",
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate rejects configurations that cannot safely serve production traffic.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.JWT.Secret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Email.Provider == "resend" && c.Email.ResendAPIKey == "" {
			return fmt.Errorf("RESEND_API_KEY must be set when EMAIL_PROVIDER=resend")
		}
	}
	if c.Flags.CacheTTLSeconds <= 0 {
		c.Flags.CacheTTLSeconds = 300
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
