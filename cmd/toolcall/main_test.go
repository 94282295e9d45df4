package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spetersoncode/toolcall"
	"github.com/spetersoncode/toolcall/builtin"
)

const deepSeekOutput = "Let me look.<｜tool▁calls▁begin｜><｜tool▁call▁begin｜>" +
	`{"name": "get_weather", "parameters": {"city": "Rome"}}` +
	"<｜tool▁call▁end｜><｜tool▁calls▁end｜>"

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func runCLI(t *testing.T, cfg *Config, input string) string {
	t.Helper()
	require.NoError(t, cfg.Validate())

	var out bytes.Buffer
	err := run(context.Background(), cfg, builtin.Registry(), discard(), strings.NewReader(input), &out)
	require.NoError(t, err)
	return out.String()
}

func baseConfig() *Config {
	return &Config{Family: "deepseek_r1", LogLevel: "info", Format: FormatResult}
}

func TestRun_Result(t *testing.T) {
	for _, size := range []int{0, 1, 3, 64} {
		cfg := baseConfig()
		cfg.ChunkSize = size

		var res toolcall.Result
		require.NoError(t, json.Unmarshal([]byte(runCLI(t, cfg, deepSeekOutput)), &res))

		assert.True(t, res.ToolsCalled, "chunk %d", size)
		require.Len(t, res.Calls, 1, "chunk %d", size)
		assert.Equal(t, "get_weather", res.Calls[0].Name)
		assert.Equal(t, `{"city":"Rome"}`, res.Calls[0].Arguments)
		assert.Equal(t, "Let me look.", res.Content)
	}
}

func TestRun_PlainText(t *testing.T) {
	cfg := baseConfig()
	cfg.ChunkSize = 2

	var res toolcall.Result
	require.NoError(t, json.Unmarshal([]byte(runCLI(t, cfg, "no calls here")), &res))
	assert.False(t, res.ToolsCalled)
	assert.Equal(t, "no calls here", res.Content)
}

func TestRun_Events(t *testing.T) {
	cfg := baseConfig()
	cfg.Format = FormatEvents
	cfg.ChunkSize = 4

	lines := strings.Split(strings.TrimSpace(runCLI(t, cfg, deepSeekOutput)), "\n")
	var types []string
	for _, line := range lines {
		var ev struct{ Type string }
		require.NoError(t, json.Unmarshal([]byte(line), &ev))
		types = append(types, ev.Type)
	}

	require.NotEmpty(t, types)
	assert.Equal(t, "message_start", types[0])
	assert.Equal(t, "message_end", types[len(types)-1])
	assert.Contains(t, types, "message_delta")
	assert.Contains(t, types, "tool_call_start")
}

func TestRun_OpenAI(t *testing.T) {
	cfg := baseConfig()
	cfg.Format = FormatOpenAI

	out := runCLI(t, cfg, deepSeekOutput)
	assert.Contains(t, out, `"get_weather"`)
	assert.Contains(t, out, `chatcmpl-tool-`)
}

func TestRun_AGUI(t *testing.T) {
	cfg := baseConfig()
	cfg.Format = FormatAGUI

	out := runCLI(t, cfg, deepSeekOutput)
	assert.Contains(t, out, "RUN_STARTED")
	assert.Contains(t, out, "TOOL_CALL_START")
	assert.Contains(t, out, "RUN_FINISHED")
}

func TestRun_UnknownFamily(t *testing.T) {
	cfg := baseConfig()
	cfg.Family = "nope"

	err := run(context.Background(), cfg, builtin.Registry(), discard(), strings.NewReader("x"), io.Discard)
	assert.Error(t, err)
}

func TestReadInput(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))

		text, err := readInput(path, strings.NewReader("ignored"))
		require.NoError(t, err)
		assert.Equal(t, "hello", text)
	})

	t.Run("stdin", func(t *testing.T) {
		text, err := readInput("-", strings.NewReader("piped"))
		require.NoError(t, err)
		assert.Equal(t, "piped", text)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readInput(filepath.Join(t.TempDir(), "missing"), nil)
		assert.Error(t, err)
	})
}

func execute(t *testing.T, cfg *Config, input string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd(cfg, builtin.Registry())
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCmd(t *testing.T) {
	t.Run("flags override config", func(t *testing.T) {
		cfg := baseConfig()
		hermes := `Hi <tool_call>{"name": "f", "arguments": {"a": 1}}</tool_call>`

		out, err := execute(t, cfg, hermes, "--family", "hermes", "--chunk", "3")
		require.NoError(t, err)

		assert.Equal(t, "hermes", cfg.Family)
		assert.Equal(t, 3, cfg.ChunkSize)
		var res toolcall.Result
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		require.Len(t, res.Calls, 1)
		assert.Equal(t, "f", res.Calls[0].Name)
		assert.Equal(t, "Hi", res.Content)
	})

	t.Run("config values are flag defaults", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Format = FormatOpenAI

		out, err := execute(t, cfg, deepSeekOutput)
		require.NoError(t, err)
		assert.Contains(t, out, `"get_weather"`)
	})

	t.Run("list families", func(t *testing.T) {
		out, err := execute(t, baseConfig(), "", "--list")
		require.NoError(t, err)
		assert.Equal(t, "deepseek_r1\nhermes\nphi4_reasoning\n", out)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := execute(t, baseConfig(), "x", "--format", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown format")
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := execute(t, baseConfig(), "x", "--nope")
		assert.Error(t, err)
	})
}
