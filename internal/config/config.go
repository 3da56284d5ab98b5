package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the client and the dev server
type Config struct {
	AppMode string
	Client  ClientConfig
	Server  ServerConfig
}

// ClientConfig holds terminal client configuration
type ClientConfig struct {
	// APIBaseURL is the fixed base address of the remote service.
	APIBaseURL string
	// SessionFile is where the durable session state lives.
	SessionFile string
	// RequestTimeout bounds every network round-trip.
	RequestTimeout time.Duration
	// CustomerRefresh is the customer list polling period.
	CustomerRefresh time.Duration
	// AdminRefresh is the admin list polling period.
	AdminRefresh time.Duration
}

// ServerConfig holds dev server configuration
type ServerConfig struct {
	Port            string
	DatabasePath    string
	JWT             JWTConfig
	SummarySchedule string
}

// JWTConfig holds token signing configuration
type JWTConfig struct {
	Secret          string
	AccessTokenMins int
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode: appMode,
		Client:  loadClientConfig(),
		Server:  loadServerConfig(),
	}

	// Set global config
	AppConfig = config

	return config, nil
}

// loadClientConfig loads terminal client config
func loadClientConfig() ClientConfig {
	timeoutSecs, _ := strconv.Atoi(getEnv("REQUEST_TIMEOUT_SECONDS", "10"))
	customerSecs, _ := strconv.Atoi(getEnv("CUSTOMER_REFRESH_SECONDS", "3"))
	adminSecs, _ := strconv.Atoi(getEnv("ADMIN_REFRESH_SECONDS", "5"))

	return ClientConfig{
		APIBaseURL:      strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8080"), "/"),
		SessionFile:     getEnv("SESSION_FILE", defaultSessionFile()),
		RequestTimeout:  time.Duration(timeoutSecs) * time.Second,
		CustomerRefresh: time.Duration(customerSecs) * time.Second,
		AdminRefresh:    time.Duration(adminSecs) * time.Second,
	}
}

// loadServerConfig loads dev server config
func loadServerConfig() ServerConfig {
	accessMins, _ := strconv.Atoi(getEnv("ACCESS_TOKEN_MINUTES", "1440"))

	return ServerConfig{
		Port:            getEnv("PORT", "8080"),
		DatabasePath:    getEnv("DB_PATH", "data/inquiries.db"),
		SummarySchedule: getEnv("SUMMARY_SCHEDULE", "@every 1h"),
		JWT: JWTConfig{
			Secret:          getEnv("JWT_SECRET", "default_secret"),
			AccessTokenMins: accessMins,
		},
	}
}

// defaultSessionFile places the session under the user's home directory
func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".navkar-inquiry/session.json"
	}
	return filepath.Join(home, ".navkar-inquiry", "session.json")
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}
