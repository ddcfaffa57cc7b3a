package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	AppEnv         string
	AppPort        string
	DatabaseURL    string
	DBMaxIdleConns int
	DBMaxOpenConns int
	NatsURL        string
	AllowedOrigins string
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("%s not set, defaulting to %s", key, defaultValue)
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Invalid integer value for %s, defaulting to %d", key, defaultValue)
	}
	return defaultValue
}

// Load reads the service configuration from the environment.
//
// DATABASE_URL is the backing store location: a postgres:// URL selects the
// Postgres driver, anything else is treated as a SQLite file path. The
// default keeps a local todo.db next to the binary.
func Load() Config {
	log.Println("Loading configuration...")

	return Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		AppPort:        getEnv("APP_PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		DatabaseURL:    getEnv("DATABASE_URL", "todo.db"),
		DBMaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
		DBMaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
		NatsURL:        getEnv("NATS_URL", "nats://localhost:4222"),
	}
}
