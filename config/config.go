package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Supported values of DB_DRIVER. An empty driver means no database: listings
// come from the dataset file or the embedded demo dataset.
const (
	DriverNone     = ""
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	DatasetPath string

	DBDriver         string
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
	SQLitePath       string

	HTTPAddr   string
	PageSize   int
	LogLevel   string
	MaxRetries int

	CSVOutputPath string

	// EnvFileLoaded reports whether a .env file was found.
	EnvFileLoaded bool
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	loaded := godotenv.Load() == nil

	return &Config{
		DatasetPath: getEnv("DATASET_PATH", ""),

		DBDriver:         strings.ToLower(getEnv("DB_DRIVER", DriverNone)),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "estate"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "estate123"),
		PostgresDB:       getEnv("POSTGRES_DB", "estate_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		SQLitePath:       getEnv("SQLITE_PATH", "./data/listings.db"),

		HTTPAddr:   getEnv("HTTP_ADDR", ":8080"),
		PageSize:   getEnvPositiveInt("PAGE_SIZE", 9),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		MaxRetries: getEnvInt("MAX_RETRIES", 3),

		CSVOutputPath: getEnv("CSV_OUTPUT_PATH", "./output/listings.csv"),

		EnvFileLoaded: loaded,
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

// getEnvPositiveInt is getEnvInt that also falls back on values below 1.
func getEnvPositiveInt(key string, fallback int) int {
	if n := getEnvInt(key, fallback); n > 0 {
		return n
	}
	return fallback
}
