package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ProjectID    string
	LogLevel     string
	Port         string
	StoragePath  string
	Currency     string
	SyncDebounce time.Duration
}

func New() *Config {
	return &Config{
		ProjectID:    os.Getenv("PROJECTID"),
		LogLevel:     os.Getenv("LOGLEVEL"),
		Port:         getOr("PORT", "8080"),
		StoragePath:  getOr("STORAGEPATH", "."),
		Currency:     getOr("CURRENCY", "MXN"),
		SyncDebounce: getDebounce(os.Getenv("SYNCDEBOUNCEMS")),
	}
}

func getOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDebounce(raw string) time.Duration {
	ms, err := strconv.Atoi(raw)
	if err != nil || ms <= 0 {
		return time.Second
	}
	return time.Duration(ms) * time.Millisecond
}
