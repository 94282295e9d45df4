// Command toolcall extracts tool calls from finished model output.
//
// The input is read from a file or stdin. With a chunk size it is replayed
// through the streaming tracker in fragments, which shows what a serving
// stack would emit token by token.
//
// Configuration is via environment variables, overridden by flags:
//
//	TOOLCALL_FAMILY     - Parser family (default: deepseek_r1)
//	TOOLCALL_LOG_LEVEL  - debug, info, warn, or error (default: info)
//	TOOLCALL_CHUNK_SIZE - Stream fragment size in runes (default: 0, no streaming)
//	TOOLCALL_REPAIR     - Repair malformed JSON before giving up (default: false)
//	TOOLCALL_FORMAT     - result, events, agui, or openai (default: result)
//
// Usage:
//
//	go run ./cmd/toolcall --family hermes --in output.txt
//	cat output.txt | go run ./cmd/toolcall --chunk 4 --format events
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/spetersoncode/toolcall"
	"github.com/spetersoncode/toolcall/agui"
	"github.com/spetersoncode/toolcall/builtin"
	"github.com/spetersoncode/toolcall/event"
	"github.com/spetersoncode/toolcall/internal/chunk"
	"github.com/spetersoncode/toolcall/provider/openai"
	"github.com/spetersoncode/toolcall/tagged"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(LoadConfig(), builtin.Registry()).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command. Flag defaults come from cfg, so flags
// override the environment.
func newRootCmd(cfg *Config, registry *toolcall.Registry) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "toolcall",
		Short: "Extract tool calls from model output",
		Long: `toolcall reads finished model output from a file or stdin and prints the
extracted tool calls. With --chunk the output is replayed through the
streaming tracker in fragments of that many runes.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				for _, f := range registry.Families() {
					fmt.Fprintln(cmd.OutOrStdout(), f)
				}
				return nil
			}

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("configuration error: %w", err)
			}
			level, _ := cfg.Level()
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)

			return run(cmd.Context(), cfg, registry, logger, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.Family, "family", "f", cfg.Family, "parser family")
	flags.IntVarP(&cfg.ChunkSize, "chunk", "c", cfg.ChunkSize, "stream fragment size in runes, 0 disables streaming")
	flags.BoolVar(&cfg.Repair, "repair", cfg.Repair, "repair malformed JSON")
	flags.StringVarP(&cfg.Format, "format", "o", cfg.Format, "output format: result, events, agui, or openai")
	flags.StringVarP(&cfg.Input, "in", "i", cfg.Input, "input file, stdin when empty")
	flags.BoolVar(&list, "list", false, "list parser families and exit")

	return cmd
}

func run(ctx context.Context, cfg *Config, registry *toolcall.Registry, logger *slog.Logger, stdin io.Reader, w io.Writer) error {
	text, err := readInput(cfg.Input, stdin)
	if err != nil {
		return err
	}

	opts := []toolcall.Option{toolcall.WithLogger(logger)}
	if cfg.Repair {
		opts = append(opts, toolcall.WithRepair())
	}
	p, err := registry.New(cfg.Family, opts...)
	if err != nil {
		return err
	}
	logger.Debug("parser ready", "family", p.Family(), "chunk", cfg.ChunkSize, "format", cfg.Format)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if !cfg.Streaming() {
		res := p.Extract(ctx, text)
		if cfg.Format == FormatOpenAI {
			return enc.Encode(openai.AssistantMessage(res, nil))
		}
		return enc.Encode(res)
	}

	events := event.Stream(ctx, p, fragments(ctx, text, cfg.ChunkSize, markerTokens(p)))
	switch cfg.Format {
	case FormatAGUI:
		for ev := range agui.NewMapper("", "").MapStream(ctx, events) {
			if err := enc.Encode(ev); err != nil {
				return err
			}
		}
	case FormatEvents:
		for ev := range events {
			if err := enc.Encode(ev); err != nil {
				return err
			}
		}
	default:
		// Streamed calls replace the one-shot extraction; the final
		// content is taken from MessageEnd.
		var calls []toolcall.Call
		var final *toolcall.Result
		for ev := range events {
			switch ev.Type {
			case event.ToolCallStart:
				calls = append(calls, ev.ToolCall.Call)
			case event.MessageEnd:
				final = ev.Result
			}
		}
		if final == nil {
			return ctx.Err()
		}
		res := toolcall.Result{ToolsCalled: len(calls) > 0, Calls: calls, Content: final.Content}
		if !res.ToolsCalled {
			res = *final
		}
		if cfg.Format == FormatOpenAI {
			return enc.Encode(openai.AssistantMessage(res, nil))
		}
		return enc.Encode(res)
	}
	return ctx.Err()
}

func readInput(path string, stdin io.Reader) (string, error) {
	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(data), nil
}

// markerTokens returns the parser's sentinels so they stay whole when
// chunking, the way a tokenizer emits special tokens.
func markerTokens(p toolcall.Parser) []string {
	if tp, ok := p.(*tagged.Parser); ok {
		return tp.Markers().Tokens()
	}
	return nil
}

func fragments(ctx context.Context, text string, size int, atoms []string) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		for _, f := range chunk.Split(text, size, atoms...) {
			select {
			case ch <- f:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}
