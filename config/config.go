/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
// Package config loads swisstd's configuration from a YAML file, with
// a .env file and environment variables layered on top, following
// frolf-bot's config.LoadConfig (YAML-then-env-override) and
// bridge-tournament-restapi's godotenv.Load() convention for local
// development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration document.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Redis   RedisConfig   `yaml:"redis"`
	Discord DiscordConfig `yaml:"discord"`
	Storage StorageConfig `yaml:"storage"`
}

// HTTPConfig configures the REST API listener.
type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// RedisConfig configures the realtime section store.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// DiscordConfig configures the Discord slash-command webhook.
type DiscordConfig struct {
	PublicKey string `yaml:"public_key"`
	AppID     string `yaml:"app_id"`
}

// StorageConfig selects which Store backend cmd/swisstd wires up.
type StorageConfig struct {
	// Backend is one of "memory" or "redis".
	Backend string `yaml:"backend"`
}

// Load reads filename as YAML, falling back to environment variables
// alone if the file doesn't exist, then applies any env override
// present regardless of which path was taken. godotenv.Load() is tried
// first so a local .env file populates os.Getenv for both paths.
func Load(filename string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "config: no .env file loaded: %v\n", err)
	}

	cfg := &Config{
		HTTP:    HTTPConfig{Addr: ":8080"},
		Storage: StorageConfig{Backend: "memory"},
	}

	if data, err := os.ReadFile(filename); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("unmarshaling config %q: %w", filename, err)
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SWISS_HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv("SWISS_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("SWISS_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("SWISS_REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Redis.DB = n
		}
	}
	if v := os.Getenv("SWISS_DISCORD_PUBLIC_KEY"); v != "" {
		cfg.Discord.PublicKey = v
	}
	if v := os.Getenv("SWISS_DISCORD_APP_ID"); v != "" {
		cfg.Discord.AppID = v
	}
	if v := os.Getenv("SWISS_STORAGE_BACKEND"); v != "" {
		cfg.Storage.Backend = v
	}
}
