package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	ServicePort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// PoolMax caps concurrently active storage connections. Callers queue
	// on acquire once the pool is exhausted.
	PoolMax int
}

func Load() Config {
	return Config{
		ServicePort: getEnv("SERVICE_PORT", "3000"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBName:      getEnv("DB_NAME", "retail_shop_db"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),
		PoolMax:     getEnvAsInt("DB_POOL_MAX", 10),
	}
}

// DSN returns the postgres connection string for pgxpool.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&pool_max_conns=%d",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode, c.PoolMax,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
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
