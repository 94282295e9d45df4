package toolcall

import "context"

// Span is a candidate tool call block located in a text.
type Span struct {
	// Start and End are byte offsets of the whole block, markers included.
	Start, End int
	// Text is the candidate JSON, markers excluded.
	Text string
	// Incomplete marks a trailing block whose end has not arrived yet.
	// Only the last span of a scan may be incomplete.
	Incomplete bool
}

// Grammar locates and decodes candidate blocks. Spans must be a pure
// function of text so a Tracker can re-scan the accumulated text each step.
type Grammar interface {
	// Spans returns the candidate blocks of text in left-to-right order.
	Spans(text string) ([]Span, error)
	// Decode turns one span into a Call. It returns ErrIncomplete for
	// incomplete spans and ErrEmptySpan for blank ones.
	Decode(ctx context.Context, span Span) (Call, error)
}

// Parser extracts tool calls for one model family.
type Parser interface {
	// Family returns the name the parser is registered under.
	Family() string
	// Extract parses a complete text. It never fails: on any internal error
	// the text is returned unchanged as content.
	Extract(ctx context.Context, text string) Result
	// NewStream starts a streaming session.
	NewStream() *Tracker
}
