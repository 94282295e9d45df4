package tagged

import (
	"context"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/spetersoncode/toolcall"
)

// Markers are the literal sentinels delimiting tool calls.
type Markers struct {
	SectionBegin string
	SectionEnd   string
	CallBegin    string
	CallEnd      string
}

// Tokens returns the distinct non-empty markers.
func (m Markers) Tokens() []string {
	var out []string
	for _, t := range []string{m.SectionBegin, m.SectionEnd, m.CallBegin, m.CallEnd} {
		if t != "" && !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}

// Parser is a tag-delimited tool call parser. It is immutable and safe for
// concurrent Extract calls.
type Parser struct {
	family  string
	markers Markers
	block   *regexp.Regexp
	decoder toolcall.Decoder
	opts    []toolcall.Option
	log     *slog.Logger
}

// New creates a Parser for markers. argumentKeys overrides
// toolcall.DefaultArgumentKeys when non-empty. It panics if either call
// marker is empty. Empty section markers default to the call markers.
func New(family string, markers Markers, argumentKeys []string, opts ...toolcall.Option) *Parser {
	if markers.CallBegin == "" || markers.CallEnd == "" {
		panic("tagged: call markers must not be empty")
	}
	if markers.SectionBegin == "" {
		markers.SectionBegin = markers.CallBegin
	}
	if markers.SectionEnd == "" {
		markers.SectionEnd = markers.CallEnd
	}
	o := toolcall.ApplyOptions(opts...)
	return &Parser{
		family:  family,
		markers: markers,
		block:   regexp.MustCompile(regexp.QuoteMeta(markers.CallBegin) + `(?s)(.*?)` + regexp.QuoteMeta(markers.CallEnd)),
		decoder: toolcall.Decoder{ArgumentKeys: argumentKeys, Repair: o.Repair},
		opts:    opts,
		log:     o.Logger,
	}
}

// Family returns the registered family name.
func (p *Parser) Family() string {
	return p.family
}

// Markers returns the parser's markers.
func (p *Parser) Markers() Markers {
	return p.markers
}

// Extract parses a complete model output.
func (p *Parser) Extract(ctx context.Context, text string) (res toolcall.Result) {
	start, ok := p.sectionStart(text)
	if !ok {
		return toolcall.PlainResult(text)
	}

	defer func() {
		if r := recover(); r != nil {
			p.log.ErrorContext(ctx, "recovered tool call extraction failure",
				"family", p.family, "kind", toolcall.KindUnexpected, "panic", r)
			res = toolcall.PlainResult(text)
		}
	}()

	spans, err := p.Spans(text)
	if err != nil {
		p.log.ErrorContext(ctx, "scanning tool call blocks failed",
			"family", p.family, "kind", toolcall.KindUnexpected, "error", err)
		return toolcall.PlainResult(text)
	}

	var calls []toolcall.Call
	for _, span := range spans {
		if span.Incomplete {
			continue
		}
		call, err := p.Decode(ctx, span)
		if err != nil {
			if kind := toolcall.KindOf(err); kind != "" {
				p.log.WarnContext(ctx, "skipping tool call block",
					"family", p.family, "kind", kind, "error", err)
			}
			continue
		}
		calls = append(calls, call)
	}

	return toolcall.Result{
		ToolsCalled: len(calls) > 0,
		Calls:       calls,
		Content:     strings.TrimSpace(text[:start]),
	}
}

// Spans returns every call block of text. A call begin marker without its
// end, or an open section without any call yet, is returned as a trailing
// incomplete span.
func (p *Parser) Spans(text string) ([]toolcall.Span, error) {
	start, ok := p.sectionStart(text)
	if !ok {
		return nil, nil
	}

	end, closed := len(text), false
	if p.markers.SectionEnd != p.markers.CallEnd {
		if i := strings.LastIndex(text[start:], p.markers.SectionEnd); i >= 0 {
			end, closed = start+i, true
		}
	}
	region := text[start:end]

	var spans []toolcall.Span
	pos := 0
	for _, m := range p.block.FindAllStringSubmatchIndex(region, -1) {
		spans = append(spans, toolcall.Span{
			Start: start + m[0],
			End:   start + m[1],
			Text:  region[m[2]:m[3]],
		})
		pos = m[1]
	}

	rest := region[pos:]
	if i := strings.Index(rest, p.markers.CallBegin); i >= 0 {
		spans = append(spans, toolcall.Span{
			Start:      start + pos + i,
			End:        end,
			Text:       rest[i+len(p.markers.CallBegin):],
			Incomplete: true,
		})
	} else if len(spans) == 0 && !closed {
		spans = append(spans, toolcall.Span{Start: start, End: end, Incomplete: true})
	}
	return spans, nil
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

// sectionStart returns the offset of the earliest begin marker.
func (p *Parser) sectionStart(text string) (int, bool) {
	start := -1
	for _, marker := range []string{p.markers.SectionBegin, p.markers.CallBegin} {
		if i := strings.Index(text, marker); i >= 0 && (start < 0 || i < start) {
			start = i
		}
	}
	return start, start >= 0
}

var (
	_ toolcall.Parser  = (*Parser)(nil)
	_ toolcall.Grammar = (*Parser)(nil)
)
