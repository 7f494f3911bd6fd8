// Package config loads the process settings from the environment, an
// optional .env file and an optional YAML file with wheel tuning.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/KirkDiggler/lootwheel/internal/wheel"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds everything the process needs to start
type Config struct {
	// Redis connection
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// HTTPAddr the API listens on
	HTTPAddr string

	// Discord bot, disabled when DiscordToken is empty
	DiscordToken  string
	ApplicationID string
	GuildID       string

	// Verbose turns on info logging
	Verbose bool

	// RandomSeed for reproducible draws, zero seeds from the clock
	RandomSeed uint64

	// HistoryLimit is the default number of listed history entries
	HistoryLimit int

	// Wheel animation tuning
	Wheel wheel.Settings
}

// FileConfig is the YAML file layout. Zero values keep the defaults.
type FileConfig struct {
	HistoryLimit int            `yaml:"history_limit"`
	Wheel        wheel.Settings `yaml:"wheel"`
}

// Load reads envFile when it exists, then the environment, then the YAML
// file named by WHEEL_CONFIG when set
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		DiscordToken:  getEnv("DISCORD_TOKEN", ""),
		ApplicationID: getEnv("APPLICATION_ID", ""),
		GuildID:       getEnv("GUILD_ID", ""),
		Wheel:         wheel.DefaultSettings(),
	}

	var err error
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.HistoryLimit, err = getEnvInt("HISTORY_LIMIT", 0); err != nil {
		return nil, err
	}
	if cfg.Verbose, err = getEnvBool("LOG_VERBOSE", true); err != nil {
		return nil, err
	}

	seed, err := getEnvInt("RANDOM_SEED", 0)
	if err != nil {
		return nil, err
	}
	if seed < 0 {
		return nil, fmt.Errorf("RANDOM_SEED must not be negative, got %d", seed)
	}
	cfg.RandomSeed = uint64(seed)

	if path := getEnv("WHEEL_CONFIG", ""); path != "" {
		file, err := ReadFile(path)
		if err != nil {
			return nil, err
		}
		cfg.apply(file)
	}

	cfg.Wheel = cfg.Wheel.Normalize()
	return cfg, nil
}

// ReadFile loads a YAML config file. A missing file yields an empty config.
func ReadFile(path string) (*FileConfig, error) {
	var file FileConfig

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &file, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(b, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &file, nil
}

// apply overrides the settings the file sets
func (c *Config) apply(file *FileConfig) {
	if file.HistoryLimit != 0 {
		c.HistoryLimit = file.HistoryLimit
	}
	if file.Wheel.SpinDuration != 0 {
		c.Wheel.SpinDuration = file.Wheel.SpinDuration
	}
	if file.Wheel.ReturnDuration != 0 {
		c.Wheel.ReturnDuration = file.Wheel.ReturnDuration
	}
	if file.Wheel.ExtraTurns != 0 {
		c.Wheel.ExtraTurns = file.Wheel.ExtraTurns
	}
	if file.Wheel.FrameInterval != 0 {
		c.Wheel.FrameInterval = file.Wheel.FrameInterval
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be true or false: %w", key, err)
	}
	return b, nil
}
