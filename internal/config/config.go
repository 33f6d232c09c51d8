package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	Broker   BrokerConfig
	Trading  TradingConfig
	Env      string `validate:"oneof=development testing production"`
	// MetricsAddr is the listen address for the metrics and health endpoint
	MetricsAddr string `validate:"required"`
}

type DatabaseConfig struct {
	Host            string `validate:"required"`
	Port            string `validate:"required"`
	User            string `validate:"required"`
	Password        string
	Name            string `validate:"required"`
	SSLMode         string
	MaxConnections  int `validate:"gt=0"`
	MaxIdleConns    int `validate:"gt=0"`
	ConnMaxLifetime time.Duration
}

type BrokerConfig struct {
	Mode                  string `validate:"oneof=simulated live"`
	BaseURL               string `validate:"required_if=Mode live,omitempty,url"`
	APIKey                string `validate:"required_if=Mode live"`
	APISecret             string `validate:"required_if=Mode live"`
	RequestTimeout        time.Duration
	OrdersPerSecond       float64
	SimulatedStartingCash float64
}

type TradingConfig struct {
	// BackendTimeout bounds every price lookup and order placement so a
	// slow brokerage cannot stall a request indefinitely.
	BackendTimeout time.Duration `validate:"gt=0"`
	// LossGuard blocks selling an unprofitable position. Kept separate
	// from the per-position CanSell flag.
	LossGuard bool
	// SyncInterval is the period between background valuation sweeps
	SyncInterval time.Duration `validate:"gt=0"`
}

// Load reads configuration from the environment. A .env file is honored in
// development for local convenience.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("skipping .env file: %v", err)
	}

	config := &Config{
		Env: getEnv("APP_ENV", "development"),
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "stashvest_user"),
			Password:        getEnv("DB_PASSWORD", "stashvest_password"),
			Name:            getEnv("DB_NAME", "stashvest_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Broker: BrokerConfig{
			Mode:                  getEnv("BROKER_MODE", "simulated"),
			BaseURL:               getEnv("BROKER_BASE_URL", ""),
			APIKey:                getEnv("BROKER_API_KEY", ""),
			APISecret:             getEnv("BROKER_API_SECRET", ""),
			RequestTimeout:        getDurationEnv("BROKER_REQUEST_TIMEOUT", 10*time.Second),
			OrdersPerSecond:       getFloatEnv("BROKER_ORDERS_PER_SECOND", 2),
			SimulatedStartingCash: getFloatEnv("BROKER_SIMULATED_CASH", 100000),
		},
		Trading: TradingConfig{
			BackendTimeout: getDurationEnv("TRADING_BACKEND_TIMEOUT", 15*time.Second),
			LossGuard:      getBoolEnv("TRADING_LOSS_GUARD", false),
			SyncInterval:   getDurationEnv("TRADING_SYNC_INTERVAL", 5*time.Minute),
		},
		MetricsAddr: getEnv("METRICS_ADDR", ":9090"),
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
