// Package implicit extracts tool calls written as bare JSON objects, with no
// surrounding markers:
//
//	I'll look that up. {"name": "search", "arguments": {"q": "go"}}
//
// A candidate is any object that opens with a "name" key holding a string,
// followed by an "arguments" or "parameters" key. Everything before the
// first candidate is returned as content.
package implicit

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/spetersoncode/toolcall"
)

// FamilyPhi4Reasoning is the phi4-reasoning family.
const FamilyPhi4Reasoning = "phi4_reasoning"

const head = `\{\s*"name"\s*:\s*".*?"\s*,\s*"(?:arguments|parameters)"\s*:`

var (
	headPattern = regexp.MustCompile(`(?is)` + head)
	// fullPattern is the non-greedy form, used when the object after a head
	// is not valid JSON.
	fullPattern = regexp.MustCompile(`(?is)^` + head + `\s*.*?\}`)
)

// Parser is an implicit-JSON tool call parser. It is immutable and safe for
// concurrent Extract calls.
type Parser struct {
	family  string
	decoder toolcall.Decoder
	opts    []toolcall.Option
	log     *slog.Logger
}

// New creates a Parser registered under family.
func New(family string, opts ...toolcall.Option) *Parser {
	o := toolcall.ApplyOptions(opts...)
	return &Parser{
		family:  family,
		decoder: toolcall.Decoder{Repair: o.Repair},
		opts:    opts,
		log:     o.Logger,
	}
}

// Phi4Reasoning creates a parser for phi4-reasoning output.
func Phi4Reasoning(opts ...toolcall.Option) toolcall.Parser {
	return New(FamilyPhi4Reasoning, opts...)
}

// Register adds the implicit families to r.
func Register(r *toolcall.Registry) error {
	return r.Register(FamilyPhi4Reasoning, Phi4Reasoning)
}

// Family returns the registered family name.
func (p *Parser) Family() string {
	return p.family
}

// Extract parses a complete model output.
//
// When no candidate decodes, the whole text is returned as content, even if
// candidates were found.
func (p *Parser) Extract(ctx context.Context, text string) (res toolcall.Result) {
	defer func() {
		if r := recover(); r != nil {
			p.log.ErrorContext(ctx, "recovered tool call extraction failure",
				"family", p.family, "kind", toolcall.KindUnexpected, "panic", r)
			res = toolcall.PlainResult(text)
		}
	}()

	spans, err := p.Spans(text)
	if err != nil {
		p.log.ErrorContext(ctx, "scanning tool call objects failed",
			"family", p.family, "kind", toolcall.KindUnexpected, "error", err)
		return toolcall.PlainResult(text)
	}

	var calls []toolcall.Call
	for _, span := range spans {
		call, err := p.Decode(ctx, span)
		if err != nil {
			// Bare JSON in prose is common, so this stays at debug.
			p.log.DebugContext(ctx, "skipping tool call object",
				"family", p.family, "kind", toolcall.KindOf(err), "error", err)
			continue
		}
		calls = append(calls, call)
	}
	if len(calls) == 0 {
		return toolcall.PlainResult(text)
	}

	return toolcall.Result{
		ToolsCalled: true,
		Calls:       calls,
		Content:     strings.TrimSpace(text[:spans[0].Start]),
	}
}

// Spans returns every candidate object of text. Each candidate is the
// balanced JSON value starting at a head match; a value cut off by the end of
// text is returned as a trailing incomplete span.
func (p *Parser) Spans(text string) ([]toolcall.Span, error) {
	var spans []toolcall.Span
	pos := 0
	for pos < len(text) {
		loc := headPattern.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]

		dec := json.NewDecoder(strings.NewReader(text[start:]))
		var raw json.RawMessage
		err := dec.Decode(&raw)
		switch {
		case err == nil:
			end := start + int(dec.InputOffset())
			spans = append(spans, toolcall.Span{Start: start, End: end, Text: text[start:end]})
			pos = end
		case errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
			return append(spans, incomplete(text, start)), nil
		default:
			m := fullPattern.FindStringIndex(text[start:])
			if m == nil {
				// No closing brace yet.
				return append(spans, incomplete(text, start)), nil
			}
			end := start + m[1]
			spans = append(spans, toolcall.Span{Start: start, End: end, Text: text[start:end]})
			pos = end
		}
	}
	return spans, nil
}

func incomplete(text string, start int) toolcall.Span {
	return toolcall.Span{Start: start, End: len(text), Text: text[start:], Incomplete: true}
}

// Decode turns one span into a call.
func (p *Parser) Decode(_ context.Context, span toolcall.Span) (toolcall.Call, error) {
	if span.Incomplete {
		return toolcall.Call{}, toolcall.ErrIncomplete
	}
	return p.decoder.Decode(span.Text)
}

// NewStream starts a streaming session.
func (p *Parser) NewStream() *toolcall.Tracker {
	return toolcall.NewTracker(p.family, p, p.opts...)
}

var (
	_ toolcall.Parser  = (*Parser)(nil)
	_ toolcall.Grammar = (*Parser)(nil)
)
