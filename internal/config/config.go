package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// placeholderPublicKey is the value shipped in sample env files. It selects
// demo mode just like an empty key.
const placeholderPublicKey = "YOUR_PUBLIC_KEY"

type Config struct {
	ListenAddr         string
	CatalogSource      string
	CatalogWatch       bool
	SiteConfig         string
	MediaPath          string
	EmailJSPublicKey   string
	EmailJSPrivateKey  string
	EmailJSServiceID   string
	EmailJSTemplateID  string
	EmailJSAPIURL      string
	ContactDemoDelay   time.Duration
	CORSAllowedOrigins []string
	LogLevel           string
	LogFile            string
	LogFormat          string
}

// Load reads the configuration from the environment. Values from a .env file
// in the working directory are applied first without overriding variables
// that are already set.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	watch, err := strconv.ParseBool(getEnv("CATALOG_WATCH", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid CATALOG_WATCH: %w", err)
	}
	delay, err := time.ParseDuration(getEnv("CONTACT_DEMO_DELAY", "1500ms"))
	if err != nil {
		return nil, fmt.Errorf("invalid CONTACT_DEMO_DELAY: %w", err)
	}

	return &Config{
		ListenAddr:         getEnv("LISTEN_ADDR", ":8080"),
		CatalogSource:      getEnv("CATALOG_SOURCE", "data/projects-data.json"),
		CatalogWatch:       watch,
		SiteConfig:         getEnv("SITE_CONFIG", "data/site.yaml"),
		MediaPath:          getEnv("MEDIA_PATH", "data/images"),
		EmailJSPublicKey:   getEnv("EMAILJS_PUBLIC_KEY", ""),
		EmailJSPrivateKey:  getEnv("EMAILJS_PRIVATE_KEY", ""),
		EmailJSServiceID:   getEnv("EMAILJS_SERVICE_ID", ""),
		EmailJSTemplateID:  getEnv("EMAILJS_TEMPLATE_ID", ""),
		EmailJSAPIURL:      getEnv("EMAILJS_API_URL", ""),
		ContactDemoDelay:   delay,
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFile:            getEnv("LOG_FILE", ""),
		LogFormat:          getEnv("LOG_FORMAT", "json"),
	}, nil
}

// DemoMode reports whether contact messages should be logged instead of sent.
func (c *Config) DemoMode() bool {
	return c.EmailJSPublicKey == "" || c.EmailJSPublicKey == placeholderPublicKey
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
