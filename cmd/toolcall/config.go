package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Output formats.
const (
	FormatResult = "result"
	FormatEvents = "events"
	FormatAGUI   = "agui"
	FormatOpenAI = "openai"
)

// Config holds the CLI configuration loaded from environment variables.
// Flags override the values after loading.
type Config struct {
	Family    string
	LogLevel  string // debug, info, warn, error
	ChunkSize int    // 0 extracts in one pass
	Repair    bool
	Format    string
	Input     string // file path, empty or "-" reads stdin
}

// LoadConfig loads configuration from environment variables.
// It loads a .env file if present (silent fail if not found).
func LoadConfig() *Config {
	godotenv.Load()

	return &Config{
		Family:    getEnvOrDefault("TOOLCALL_FAMILY", "deepseek_r1"),
		LogLevel:  getEnvOrDefault("TOOLCALL_LOG_LEVEL", "info"),
		ChunkSize: getEnvIntOrDefault("TOOLCALL_CHUNK_SIZE", 0),
		Repair:    getEnvBoolOrDefault("TOOLCALL_REPAIR", false),
		Format:    getEnvOrDefault("TOOLCALL_FORMAT", FormatResult),
	}
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.Family == "" {
		return fmt.Errorf("family is required")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.ChunkSize < 0 {
		return fmt.Errorf("chunk size must not be negative: %d", c.ChunkSize)
	}
	switch c.Format {
	case FormatResult, FormatEvents, FormatAGUI, FormatOpenAI:
	default:
		return fmt.Errorf("unknown format: %s (must be result, events, agui, or openai)", c.Format)
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	return level, nil
}

// Streaming reports whether the input is replayed through a stream.
func (c *Config) Streaming() bool {
	return c.ChunkSize > 0 || c.Format == FormatEvents || c.Format == FormatAGUI
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
