package config

import (
	"os"
	"strconv"
)

// Config carries everything the process needs from the environment.
type Config struct {
	Addr      string
	DBPath    string
	AdminHash string // bcrypt hash of the shared admin credential
	AdminName string
	MaxConns  int // database connection pool bound
}

// Load reads configuration from INKWELL_* environment variables,
// falling back to development defaults.
func Load() Config {
	addr := envString("INKWELL_ADDR", "")
	if addr == "" {
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		} else {
			addr = ":3000"
		}
	}
	return Config{
		Addr:      addr,
		DBPath:    envString("INKWELL_DB", "inkwell.db"),
		AdminHash: envString("INKWELL_ADMIN_HASH", ""),
		AdminName: envString("INKWELL_ADMIN_NAME", "admin"),
		MaxConns:  envInt("INKWELL_DB_CONNS", 2),
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
