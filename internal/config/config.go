package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Session SessionConfig
	Storage StorageConfig
	Upload  UploadConfig
	Proxy   ProxyConfig
	CORS    CORSConfig
	Contact ContactConfig
	Log     LogConfig
	Seed    SeedConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// SessionConfig holds session token signing and cookie settings.
type SessionConfig struct {
	Secret       string        `mapstructure:"secret"`
	TokenExpiry  time.Duration `mapstructure:"token_expiry"`
	Issuer       string        `mapstructure:"issuer"`
	CookieName   string        `mapstructure:"cookie_name"`
	CookieDomain string        `mapstructure:"cookie_domain"`
	CookieSecure bool          `mapstructure:"cookie_secure"`
}

// StorageConfig holds S3-compatible object storage settings.
type StorageConfig struct {
	Region     string `mapstructure:"region"`
	Bucket     string `mapstructure:"bucket"`
	Endpoint   string `mapstructure:"endpoint"`
	AccessKey  string `mapstructure:"access_key"`
	SecretKey  string `mapstructure:"secret_key"`
	PublicBase string `mapstructure:"public_base"`
}

// UploadConfig holds image upload settings. Provider selects the backend:
// "relay" forwards to the external image-hosting API, "s3" writes straight
// to object storage.
type UploadConfig struct {
	Provider       string        `mapstructure:"provider"`
	Endpoint       string        `mapstructure:"endpoint"`
	Token          string        `mapstructure:"token"`
	MaxBytes       int64         `mapstructure:"max_bytes"`
	Timeout        time.Duration `mapstructure:"timeout"`
	PartialFailure string        `mapstructure:"partial_failure"`
}

// ProxyConfig holds image access proxy settings.
type ProxyConfig struct {
	AllowedHost  string        `mapstructure:"allowed_host"`
	CacheTTLSecs int           `mapstructure:"cache_ttl_secs"`
	MaxBytes     int64         `mapstructure:"max_bytes"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
	PublicPath   string        `mapstructure:"public_path"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ContactConfig holds contact-form delivery settings.
type ContactConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	ToAddress   string `mapstructure:"to_address"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SeedConfig holds the out-of-band admin account used by cmd/seed.
type SeedConfig struct {
	AdminUsername string `mapstructure:"admin_username"`
	AdminPassword string `mapstructure:"admin_password"`
}

// Load reads configuration from environment variables with the RENOVA_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("RENOVA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "renova")
	v.SetDefault("db.password", "renova_secret")
	v.SetDefault("db.name", "renova_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Session defaults
	v.SetDefault("session.secret", "change-me-in-production")
	v.SetDefault("session.token_expiry", "24h")
	v.SetDefault("session.issuer", "renova")
	v.SetDefault("session.cookie_name", "renova_session")
	v.SetDefault("session.cookie_domain", "")
	v.SetDefault("session.cookie_secure", false)

	// Storage defaults
	v.SetDefault("storage.region", "eu-west-3")
	v.SetDefault("storage.bucket", "renova-images")
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.public_base", "")

	// Upload defaults (2 MiB ceiling per the image host's contract)
	v.SetDefault("upload.provider", "relay")
	v.SetDefault("upload.endpoint", "")
	v.SetDefault("upload.token", "")
	v.SetDefault("upload.max_bytes", 2*1024*1024)
	v.SetDefault("upload.timeout", "30s")
	v.SetDefault("upload.partial_failure", "abort")

	// Proxy defaults
	v.SetDefault("proxy.allowed_host", "images.renova.example")
	v.SetDefault("proxy.cache_ttl_secs", 3600)
	v.SetDefault("proxy.max_bytes", 10*1024*1024)
	v.SetDefault("proxy.fetch_timeout", "10s")
	v.SetDefault("proxy.public_path", "/api/proxy-image")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Contact defaults
	v.SetDefault("contact.provider", "noop")
	v.SetDefault("contact.region", "eu-west-3")
	v.SetDefault("contact.from_address", "noreply@renova.example")
	v.SetDefault("contact.to_address", "contact@renova.example")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Seed defaults
	v.SetDefault("seed.admin_username", "admin")
	v.SetDefault("seed.admin_password", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":            "RENOVA_SERVER_PORT",
		"server.read_timeout":    "RENOVA_SERVER_READ_TIMEOUT",
		"server.write_timeout":   "RENOVA_SERVER_WRITE_TIMEOUT",
		"server.environment":     "RENOVA_SERVER_ENVIRONMENT",
		"db.host":                "RENOVA_DB_HOST",
		"db.port":                "RENOVA_DB_PORT",
		"db.user":                "RENOVA_DB_USER",
		"db.password":            "RENOVA_DB_PASSWORD",
		"db.name":                "RENOVA_DB_NAME",
		"db.sslmode":             "RENOVA_DB_SSLMODE",
		"db.max_open":            "RENOVA_DB_MAX_OPEN",
		"db.max_idle":            "RENOVA_DB_MAX_IDLE",
		"session.secret":         "RENOVA_SESSION_SECRET",
		"session.token_expiry":   "RENOVA_SESSION_TOKEN_EXPIRY",
		"session.issuer":         "RENOVA_SESSION_ISSUER",
		"session.cookie_name":    "RENOVA_SESSION_COOKIE_NAME",
		"session.cookie_domain":  "RENOVA_SESSION_COOKIE_DOMAIN",
		"session.cookie_secure":  "RENOVA_SESSION_COOKIE_SECURE",
		"storage.region":         "RENOVA_STORAGE_REGION",
		"storage.bucket":         "RENOVA_STORAGE_BUCKET",
		"storage.endpoint":       "RENOVA_STORAGE_ENDPOINT",
		"storage.access_key":     "RENOVA_STORAGE_ACCESS_KEY",
		"storage.secret_key":     "RENOVA_STORAGE_SECRET_KEY",
		"storage.public_base":    "RENOVA_STORAGE_PUBLIC_BASE",
		"upload.provider":        "RENOVA_UPLOAD_PROVIDER",
		"upload.endpoint":        "RENOVA_UPLOAD_ENDPOINT",
		"upload.token":           "RENOVA_UPLOAD_TOKEN",
		"upload.max_bytes":       "RENOVA_UPLOAD_MAX_BYTES",
		"upload.timeout":         "RENOVA_UPLOAD_TIMEOUT",
		"upload.partial_failure": "RENOVA_UPLOAD_PARTIAL_FAILURE",
		"proxy.allowed_host":     "RENOVA_PROXY_ALLOWED_HOST",
		"proxy.cache_ttl_secs":   "RENOVA_PROXY_CACHE_TTL_SECS",
		"proxy.max_bytes":        "RENOVA_PROXY_MAX_BYTES",
		"proxy.fetch_timeout":    "RENOVA_PROXY_FETCH_TIMEOUT",
		"proxy.public_path":      "RENOVA_PROXY_PUBLIC_PATH",
		"cors.allowed_origins":   "RENOVA_CORS_ALLOWED_ORIGINS",
		"contact.provider":       "RENOVA_CONTACT_PROVIDER",
		"contact.region":         "RENOVA_CONTACT_REGION",
		"contact.from_address":   "RENOVA_CONTACT_FROM_ADDRESS",
		"contact.to_address":     "RENOVA_CONTACT_TO_ADDRESS",
		"log.level":              "RENOVA_LOG_LEVEL",
		"log.format":             "RENOVA_LOG_FORMAT",
		"seed.admin_username":    "RENOVA_SEED_ADMIN_USERNAME",
		"seed.admin_password":    "RENOVA_SEED_ADMIN_PASSWORD",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if RENOVA_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("RENOVA_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Session = SessionConfig{
		Secret:       v.GetString("session.secret"),
		TokenExpiry:  v.GetDuration("session.token_expiry"),
		Issuer:       v.GetString("session.issuer"),
		CookieName:   v.GetString("session.cookie_name"),
		CookieDomain: v.GetString("session.cookie_domain"),
		CookieSecure: v.GetBool("session.cookie_secure"),
	}
	cfg.Storage = StorageConfig{
		Region:     v.GetString("storage.region"),
		Bucket:     v.GetString("storage.bucket"),
		Endpoint:   v.GetString("storage.endpoint"),
		AccessKey:  v.GetString("storage.access_key"),
		SecretKey:  v.GetString("storage.secret_key"),
		PublicBase: v.GetString("storage.public_base"),
	}
	cfg.Upload = UploadConfig{
		Provider:       v.GetString("upload.provider"),
		Endpoint:       v.GetString("upload.endpoint"),
		Token:          v.GetString("upload.token"),
		MaxBytes:       v.GetInt64("upload.max_bytes"),
		Timeout:        v.GetDuration("upload.timeout"),
		PartialFailure: v.GetString("upload.partial_failure"),
	}
	cfg.Proxy = ProxyConfig{
		AllowedHost:  v.GetString("proxy.allowed_host"),
		CacheTTLSecs: v.GetInt("proxy.cache_ttl_secs"),
		MaxBytes:     v.GetInt64("proxy.max_bytes"),
		FetchTimeout: v.GetDuration("proxy.fetch_timeout"),
		PublicPath:   v.GetString("proxy.public_path"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}
	cfg.Contact = ContactConfig{
		Provider:    v.GetString("contact.provider"),
		Region:      v.GetString("contact.region"),
		FromAddress: v.GetString("contact.from_address"),
		ToAddress:   v.GetString("contact.to_address"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Seed = SeedConfig{
		AdminUsername: v.GetString("seed.admin_username"),
		AdminPassword: v.GetString("seed.admin_password"),
	}

	return cfg, nil
}
