package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Store backends for transactions, savings goals and wishlist items.
const (
	StoreBackendSQL   = "sql"
	StoreBackendMongo = "mongo"
)

// Database drivers for the SQL store.
const (
	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"
)

// Config holds application configuration
type Config struct {
	// Server
	Env  string
	Port string

	// Database
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Finance data store
	StoreBackend  string
	MongoURI      string
	MongoDatabase string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// DefaultSavingsTarget is the savings target (minor units) reported
	// for users who never saved a goal.
	DefaultSavingsTarget int64
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),

		DBDriver:   getEnv("DB_DRIVER", DBDriverPostgres),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "financeflow"),
		DBPassword: getEnv("DB_PASSWORD", "financeflow"),
		DBName:     getEnv("DB_NAME", "financeflow"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		SQLitePath: getEnv("SQLITE_PATH", "data/financeflow.db"),

		StoreBackend:  getEnv("STORE_BACKEND", StoreBackendSQL),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "financeflow"),

		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),
	}

	expStr := getEnv("JWT_EXPIRES_IN", "24h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 24h\n", expStr)
		expDur = 24 * time.Hour
	}
	config.JWTExpirationDur = expDur

	targetStr := getEnv("DEFAULT_SAVINGS_TARGET", "100000")
	target, err := strconv.ParseInt(targetStr, 10, 64)
	if err != nil || target < 0 {
		log.Printf("Warning: invalid DEFAULT_SAVINGS_TARGET value '%s', falling back to 100000\n", targetStr)
		target = 100000
	}
	config.DefaultSavingsTarget = target

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// Set replaces the process-wide configuration. Used by tests and by callers
// that build a Config by hand.
func Set(c *Config) {
	appConfig = c
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
