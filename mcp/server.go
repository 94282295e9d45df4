// Package mcp exposes tool call extraction as an MCP server.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/spetersoncode/toolcall"
)

// ServerOption configures a Server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	name    string
	version string
	parser  []toolcall.Option
}

// WithName sets the server name reported to MCP clients.
func WithName(name string) ServerOption {
	return func(c *serverConfig) {
		c.name = name
	}
}

// WithVersion sets the server version reported to MCP clients.
func WithVersion(version string) ServerOption {
	return func(c *serverConfig) {
		c.version = version
	}
}

// WithParserOptions sets the options used to construct parsers per request.
func WithParserOptions(opts ...toolcall.Option) ServerOption {
	return func(c *serverConfig) {
		c.parser = append(c.parser, opts...)
	}
}

// WithLogger is shorthand for WithParserOptions(toolcall.WithLogger(l)).
func WithLogger(l *slog.Logger) ServerOption {
	return WithParserOptions(toolcall.WithLogger(l))
}

// NewServer creates an MCP server that extracts tool calls with the parser
// families in registry.
//
// Example:
//
//	mcpServer := mcp.NewServer(builtin.Registry(),
//	    mcp.WithName("toolcall"),
//	    mcp.WithVersion("1.0.0"),
//	)
//
//	server.ServeStdio(mcpServer)
func NewServer(registry *toolcall.Registry, opts ...ServerOption) *server.MCPServer {
	cfg := &serverConfig{
		name:    "toolcall-mcp-server",
		version: "1.0.0",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	s := server.NewMCPServer(
		cfg.name,
		cfg.version,
		server.WithToolCapabilities(true),
	)

	h := &handlers{registry: registry, opts: cfg.parser}
	s.AddTool(extractTool(registry), h.extract)
	s.AddTool(listFamiliesTool(), h.listFamilies)

	return s
}

// ServeStdio starts an MCP server that communicates over stdin/stdout.
// This is the standard transport for MCP servers invoked as subprocesses.
func ServeStdio(registry *toolcall.Registry, opts ...ServerOption) error {
	s := NewServer(registry, opts...)
	return server.ServeStdio(s)
}
