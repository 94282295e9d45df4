package toolcall

import (
	"context"
	"fmt"
	"log/slog"
)

// StreamState is the coarse state of a streaming session.
type StreamState int

const (
	// StateNoCallSeenYet holds until the first complete candidate block appears.
	StateNoCallSeenYet StreamState = iota
	// StateCallsInProgress holds once at least one complete block exists.
	StateCallsInProgress
)

// String returns the state name.
func (s StreamState) String() string {
	switch s {
	case StateNoCallSeenYet:
		return "no_call_seen_yet"
	case StateCallsInProgress:
		return "calls_in_progress"
	default:
		return fmt.Sprintf("StreamState(%d)", int(s))
	}
}

// Tracker turns successive snapshots of a growing text into Deltas, emitting
// each completed call exactly once and in textual order.
//
// A Tracker belongs to one streaming session and is not safe for concurrent
// use. Steps are naturally serialized since each extends the previous text.
type Tracker struct {
	grammar Grammar
	family  string
	log     *slog.Logger
	newID   func() string

	next    int // index of the first span not yet emitted or skipped
	emitted int // calls emitted so far
	state   StreamState
}

// NewTracker creates a Tracker that scans with g.
func NewTracker(family string, g Grammar, opts ...Option) *Tracker {
	o := ApplyOptions(opts...)
	return &Tracker{
		grammar: g,
		family:  family,
		log:     o.Logger,
		newID:   o.IDGenerator,
	}
}

// State returns the current session state.
func (t *Tracker) State() StreamState {
	return t.state
}

// Emitted returns the number of calls emitted so far.
func (t *Tracker) Emitted() int {
	return t.emitted
}

// Step processes one incremental step and returns what to send, or nil.
//
// Text not yet inside a candidate block is forwarded as content. Once blocks
// exist, at most one newly completed call is emitted per step; use Finish at
// the end of the stream to collect calls completed by the same step.
func (t *Tracker) Step(ctx context.Context, step StreamStep) (d *Delta) {
	defer func() {
		if r := recover(); r != nil {
			t.log.ErrorContext(ctx, "recovered streaming step failure",
				"family", t.family, "kind", KindUnexpected, "panic", r)
			d = nil
		}
	}()

	spans, err := t.grammar.Spans(step.CurrentText)
	if err != nil {
		t.log.ErrorContext(ctx, "scanning streamed text failed",
			"family", t.family, "kind", KindUnexpected, "error", err)
		return nil
	}
	if len(spans) == 0 {
		if step.DeltaText == "" {
			return nil
		}
		return &Delta{Content: step.DeltaText}
	}

	out := &Delta{}
	fragStart := max(len(step.CurrentText)-len(step.DeltaText), 0)
	if first := spans[0].Start; first > fragStart && first <= len(step.CurrentText) {
		out.Content = step.CurrentText[fragStart:first]
	}
	out.ToolCall = t.advance(ctx, spans)

	if out.Content == "" && out.ToolCall == nil {
		return nil
	}
	return out
}

// Finish drains every complete call in finalText that has not been emitted.
func (t *Tracker) Finish(ctx context.Context, finalText string) (calls []ToolCallDelta) {
	defer func() {
		if r := recover(); r != nil {
			t.log.ErrorContext(ctx, "recovered stream finish failure",
				"family", t.family, "kind", KindUnexpected, "panic", r)
		}
	}()

	spans, err := t.grammar.Spans(finalText)
	if err != nil {
		t.log.ErrorContext(ctx, "scanning final text failed",
			"family", t.family, "kind", KindUnexpected, "error", err)
		return nil
	}
	for {
		tc := t.advance(ctx, spans)
		if tc == nil {
			return calls
		}
		calls = append(calls, *tc)
	}
}

// advance walks spans from the cursor and returns the first one that
// decodes. Complete spans that fail are skipped for good: their text can no
// longer change.
func (t *Tracker) advance(ctx context.Context, spans []Span) *ToolCallDelta {
	for t.next < len(spans) {
		span := spans[t.next]
		if span.Incomplete {
			return nil
		}
		t.state = StateCallsInProgress

		call, err := t.grammar.Decode(ctx, span)
		t.next++
		if err != nil {
			if kind := KindOf(err); kind != "" {
				t.log.WarnContext(ctx, "skipping streamed tool call",
					"family", t.family, "kind", kind, "error", err)
			}
			continue
		}

		tc := &ToolCallDelta{Index: t.emitted, ID: t.newID(), Call: call}
		t.emitted++
		return tc
	}
	return nil
}
