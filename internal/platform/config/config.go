package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ReferenceCacheTTL bounds staleness of the remote reference lists.
var ReferenceCacheTTL = 3600 * time.Second

// Config captures process configuration assembled from the environment.
type Config struct {
	Server    Server
	DB        DBConfig
	Redis     RedisConfig
	OAuth     OAuthConfig
	Reference ReferenceConfig
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr string
	Env  string
}

// DBConfig captures PostgreSQL connection settings.
type DBConfig struct {
	Host     string
	Port     int
	Name     string
	User     string
	Password string
	SSLMode  string
}

// DSN renders a lib/pq connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		c.Host, c.Port, c.Name, c.User, c.Password, c.SSLMode)
}

// RedisConfig captures Redis connection settings. An empty URL means Redis is
// not configured and in-memory fallbacks are used.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// OAuthConfig captures token issuance and verification settings. The private
// key is held only by the token endpoint; resource handlers verify with the
// public key.
type OAuthConfig struct {
	Issuer         string
	PublicKeyPath  string
	PrivateKeyPath string
	EncryptionKey  string
	ClientID       string
	ClientSecret   string
	AccessTokenTTL time.Duration
}

// ReferenceConfig captures the upstream reference-data API settings.
type ReferenceConfig struct {
	BaseURL  string
	CacheTTL time.Duration
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	return Config{
		Server: Server{
			Addr: envOr("PHONEBOOK_ADDR", ":8080"),
			Env:  envOr("APPLICATION_ENV", "development"),
		},
		DB: DBConfig{
			Host:     envOr("DB_HOST", "localhost"),
			Port:     envIntOr("DB_PORT", 5432),
			Name:     envOr("DB_NAME", "phonebook"),
			User:     envOr("DB_USER", "phonebook"),
			Password: os.Getenv("DB_PASSWORD"),
			SSLMode:  envOr("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envIntOr("REDIS_POOL_SIZE", 10),
			MinIdleConns: envIntOr("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		OAuth: OAuthConfig{
			Issuer:         envOr("OAUTH_ISSUER", "phonebook"),
			PublicKeyPath:  envOr("PUBLIC_KEY_PATH", "keys/public.pem"),
			PrivateKeyPath: envOr("PRIVATE_KEY_PATH", "keys/private.pem"),
			EncryptionKey:  os.Getenv("ENCRYPTION_KEY"),
			ClientID:       envOr("OAUTH_CLIENT_ID", "phonebook-client"),
			ClientSecret:   os.Getenv("OAUTH_CLIENT_SECRET"),
			AccessTokenTTL: time.Hour,
		},
		Reference: ReferenceConfig{
			BaseURL:  envOr("REFERENCE_API_URL", "https://api.hostaway.com"),
			CacheTTL: ReferenceCacheTTL,
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
