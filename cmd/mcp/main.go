// Command mcp serves tool call extraction over MCP stdio.
//
// Clients call extract_tool_calls with a parser family and the raw model
// output, and receive the extraction result as JSON. list_families reports
// the available parsers.
//
// Logs go to stderr since stdout carries the protocol.
//
// Usage:
//
//	go run ./cmd/mcp
//
// Configuration for an MCP client:
//
//	{
//	    "mcpServers": {
//	        "toolcall": {
//	            "command": "go",
//	            "args": ["run", "./cmd/mcp"],
//	            "cwd": "/path/to/toolcall"
//	        }
//	    }
//	}
package main

import (
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/spetersoncode/toolcall"
	"github.com/spetersoncode/toolcall/builtin"
	"github.com/spetersoncode/toolcall/mcp"
)

// Config holds the server configuration loaded from environment variables.
type Config struct {
	LogLevel slog.Level
	Repair   bool
}

// LoadConfig loads configuration from environment variables.
// It loads a .env file if present (silent fail if not found).
// Unparsable values fall back to the defaults.
func LoadConfig() Config {
	godotenv.Load()

	cfg := Config{LogLevel: slog.LevelInfo}
	if value := os.Getenv("TOOLCALL_LOG_LEVEL"); value != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(value)); err == nil {
			cfg.LogLevel = level
		}
	}
	if value := os.Getenv("TOOLCALL_REPAIR"); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			cfg.Repair = b
		}
	}
	return cfg
}

// serverOptions builds the MCP server options for cfg.
func serverOptions(cfg Config, logger *slog.Logger) []mcp.ServerOption {
	opts := []mcp.ServerOption{
		mcp.WithName("toolcall"),
		mcp.WithVersion("1.0.0"),
		mcp.WithLogger(logger),
	}
	if cfg.Repair {
		opts = append(opts, mcp.WithParserOptions(toolcall.WithRepair()))
	}
	return opts
}

func main() {
	cfg := LoadConfig()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if err := mcp.ServeStdio(builtin.Registry(), serverOptions(cfg, logger)...); err != nil {
		log.Fatal(err)
	}
}
