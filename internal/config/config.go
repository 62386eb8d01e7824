package config

import (
	"os"
	"strconv"

	"github.com/shirokane/todo-app-api/internal/constants"
)

type Config struct {
	DBDriver            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	JWTSecret           string
	TokenTTLMinutes     int
	CookieMaxAgeSeconds int
	GinMode             string
	Port                string
}

func Load() *Config {
	return &Config{
		DBDriver:            getEnv("DB_DRIVER", "mysql"),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnv("DB_PORT", "3306"),
		DBUser:              getEnv("DB_USER", "todouser"),
		DBPassword:          getEnv("DB_PASSWORD", "todopassword"),
		DBName:              getEnv("DB_NAME", "todoapp"),
		JWTSecret:           getEnv("JWT_SECRET", "default-secret-key-change-me"),
		TokenTTLMinutes:     getEnvInt("TOKEN_TTL_MINUTES", constants.DefaultTokenTTLMinutes),
		CookieMaxAgeSeconds: getEnvInt("COOKIE_MAX_AGE_SECONDS", constants.DefaultCookieMaxAgeSeconds),
		GinMode:             getEnv("GIN_MODE", "debug"),
		Port:                getEnv("PORT", "8080"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
