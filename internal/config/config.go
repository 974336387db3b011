package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// DatabaseConfig holds PostgreSQL database connection settings.
// URL, when set, takes precedence over the individual parts.
type DatabaseConfig struct {
	URL                string
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// Enabled reports whether enough settings are present to open a connection.
func (c DatabaseConfig) Enabled() bool {
	return c.URL != "" || c.Host != ""
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost      string
	Port         string
	ProjectName  string
	APIPrefix    string
	Environment  string
	Debug        bool
	Timezone     string
	AllowOrigins []string
	Database     DatabaseConfig
	MinIO        MinIOConfig
}

// Location resolves Timezone, falling back to UTC when it is unknown.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ErrWildcardOrigin is returned by Validate when CORS_ALLOW_ORIGINS contains "*".
// The API always allows credentials, which browsers refuse for a wildcard origin.
var ErrWildcardOrigin = errors.New("CORS_ALLOW_ORIGINS must list explicit origins, \"*\" is not allowed with credentials")

// Validate reports settings that would make the server fail at startup.
func (c *AppConfig) Validate() error {
	for _, o := range c.AllowOrigins {
		if o == "*" {
			return ErrWildcardOrigin
		}
		if !validOrigin(o) {
			return fmt.Errorf("CORS_ALLOW_ORIGINS: invalid origin %q", o)
		}
	}
	return nil
}

// validOrigin accepts scheme://host[:port], optionally with a "*." subdomain wildcard.
func validOrigin(origin string) bool {
	if i := strings.Index(origin, "://*."); i != -1 {
		origin = origin[:i+3] + origin[i+5:]
	}
	u, err := url.Parse(origin)
	if err != nil || u.Scheme == "" || u.Host == "" || strings.Contains(u.Host, "*") {
		return false
	}
	return (u.Path == "" || u.Path == "/") && u.RawQuery == "" && u.Fragment == ""
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:      getEnv("APP_HOST", "localhost:8080"),
		Port:         getEnv("PORT", "8080"),
		ProjectName:  getEnv("PROJECT_NAME", "Flow7 API"),
		APIPrefix:    getEnv("API_V1_STR", "/api/v1"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		Debug:        getEnvBool("DEBUG", true),
		Timezone:     getEnv("TIMEZONE", "UTC"),
		AllowOrigins: getEnvList("CORS_ALLOW_ORIGINS", []string{"http://localhost:3000"}),
		Database: DatabaseConfig{
			URL:                getEnv("DATABASE_URL", ""),
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

// getEnvList splits a comma separated value, dropping empty items.
func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
