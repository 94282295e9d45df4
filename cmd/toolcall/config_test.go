package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("TOOLCALL_FAMILY", "")
		t.Setenv("TOOLCALL_LOG_LEVEL", "")
		t.Setenv("TOOLCALL_CHUNK_SIZE", "")
		t.Setenv("TOOLCALL_REPAIR", "")
		t.Setenv("TOOLCALL_FORMAT", "")

		cfg := LoadConfig()

		assert.Equal(t, "deepseek_r1", cfg.Family)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 0, cfg.ChunkSize)
		assert.False(t, cfg.Repair)
		assert.Equal(t, FormatResult, cfg.Format)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("TOOLCALL_FAMILY", "hermes")
		t.Setenv("TOOLCALL_LOG_LEVEL", "debug")
		t.Setenv("TOOLCALL_CHUNK_SIZE", "8")
		t.Setenv("TOOLCALL_REPAIR", "true")
		t.Setenv("TOOLCALL_FORMAT", "events")

		cfg := LoadConfig()

		assert.Equal(t, "hermes", cfg.Family)
		assert.Equal(t, 8, cfg.ChunkSize)
		assert.True(t, cfg.Repair)
		assert.Equal(t, FormatEvents, cfg.Format)
		level, err := cfg.Level()
		require.NoError(t, err)
		assert.Equal(t, slog.LevelDebug, level)
	})

	t.Run("ignores unparsable numbers", func(t *testing.T) {
		t.Setenv("TOOLCALL_CHUNK_SIZE", "many")
		t.Setenv("TOOLCALL_REPAIR", "maybe")

		cfg := LoadConfig()

		assert.Equal(t, 0, cfg.ChunkSize)
		assert.False(t, cfg.Repair)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{Family: "hermes", LogLevel: "warn", Format: FormatResult}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"valid", func(*Config) {}, ""},
		{"missing family", func(c *Config) { c.Family = "" }, "family is required"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "invalid log level"},
		{"negative chunk", func(c *Config) { c.ChunkSize = -1 }, "must not be negative"},
		{"unknown format", func(c *Config) { c.Format = "xml" }, "unknown format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfig_Streaming(t *testing.T) {
	assert.False(t, (&Config{Format: FormatResult}).Streaming())
	assert.True(t, (&Config{Format: FormatResult, ChunkSize: 2}).Streaming())
	assert.True(t, (&Config{Format: FormatEvents}).Streaming())
	assert.True(t, (&Config{Format: FormatAGUI}).Streaming())
	assert.False(t, (&Config{Format: FormatOpenAI}).Streaming())
}
