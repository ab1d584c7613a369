package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr    string `toml:"addr"`
	DataDir string `toml:"data_dir"`
}

// Load resolves configuration in priority order: defaults, then an optional
// TOML file (teamdash.toml or $TEAMDASH_CONFIG), then environment variables
// (a .env file is honored if present).
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:    ":3001",
		DataDir: "./data",
	}

	if path := findConfigFile(); path != "" {
		// Unknown or unreadable config files are ignored rather than
		// fatal; env and defaults still apply.
		_, _ = toml.DecodeFile(path, cfg)
	}

	if v := os.Getenv("TEAMDASH_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("TEAMDASH_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}

	return cfg
}

func findConfigFile() string {
	if path := os.Getenv("TEAMDASH_CONFIG"); path != "" {
		return path
	}
	if _, err := os.Stat("teamdash.toml"); err == nil {
		return "teamdash.toml"
	}
	return ""
}
