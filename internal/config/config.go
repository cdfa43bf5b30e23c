package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	AppPort        string
	StorageDriver  string
	SQLitePath     string
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	DbParams       string
	TrustedProxies []string
	Timezone       *time.Location
	WeeklyRollover bool
	// PropagateOnRollover also reconciles existing weeks during the
	// Monday rollover, discarding current-week edits. Off by default.
	PropagateOnRollover bool
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:             getEnv("APP_PORT", "8080"),
		StorageDriver:       getEnv("STORAGE_DRIVER", "sqlite"),
		SQLitePath:          getEnv("SQLITE_PATH", "planner.db"),
		DbHost:              getEnv("MYSQL_HOST", "db"),
		DbPort:              getEnv("MYSQL_PORT", "3306"),
		DbUser:              getEnv("MYSQL_USER", "planner"),
		DbPassword:          getEnv("MYSQL_PASSWORD", "planner"),
		DbName:              getEnv("MYSQL_DATABASE", "planner"),
		DbParams:            getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		TrustedProxies:      parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
		Timezone:            parseTimezone(getEnv("TIMEZONE", "Local")),
		WeeklyRollover:      getEnv("WEEKLY_ROLLOVER", "true") == "true",
		PropagateOnRollover: getEnv("PROPAGATE_ON_ROLLOVER", "false") == "true",
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseTimezone(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		zap.L().Warn("invalid TIMEZONE, using local time", zap.String("timezone", name), zap.Error(err))
		return time.Local
	}
	return loc
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
