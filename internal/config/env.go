package config

import (
	"os"
	"strconv"
)

// FromEnv applies environment overrides on top of a loaded config.
func FromEnv(c *Config) {
	if v := os.Getenv("TAPDUNGEON_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("TAPDUNGEON_CATALOG"); v != "" {
		c.CatalogPath = v
	}
	if v := getEnvInt64("TAPDUNGEON_SEED"); v != 0 {
		c.Seed = v
	}
	if v := getEnvInt("TAPDUNGEON_TICK_MS"); v > 0 {
		c.TickIntervalMS = v
	}

	// Preset difficulty modes
	switch os.Getenv("TAPDUNGEON_DIFFICULTY") {
	case "casual":
		c.Balance = Casual()
	case "hard":
		c.Balance = Hard()
	}
}

func getEnvInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func getEnvInt64(key string) int64 {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
