// Package event turns parser stream output into the unified event sequence
// used by streaming consumers. The event types map 1:1 onto the AG-UI
// protocol's text message and tool call events.
package event

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spetersoncode/toolcall"
)

// Type identifies the kind of event.
type Type string

// Message lifecycle events
const (
	// MessageStart fires when an assistant message begins.
	MessageStart Type = "message_start"

	// MessageDelta fires for each forwarded content fragment.
	MessageDelta Type = "message_delta"

	// MessageEnd fires when the assistant message completes.
	MessageEnd Type = "message_end"
)

// Tool call lifecycle events
const (
	// ToolCallStart fires when a call is detected (contains tool name).
	ToolCallStart Type = "tool_call_start"

	// ToolCallArgs fires with the call's complete arguments.
	ToolCallArgs Type = "tool_call_args"

	// ToolCallEnd fires when the call has been fully transmitted.
	ToolCallEnd Type = "tool_call_end"
)

// Event represents an observable occurrence while streaming model output.
type Event struct {
	// Type identifies the kind of event.
	Type Type

	// MessageID identifies the message for Start/Delta/End correlation.
	MessageID string

	// Delta contains content for MessageDelta events.
	Delta string

	// ToolCall contains the call for tool call events.
	ToolCall *toolcall.ToolCallDelta

	// Result holds the non-streaming extraction of the full text on MessageEnd.
	Result *toolcall.Result

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewMessageID creates a unique message identifier.
func NewMessageID() string {
	return "msg-" + uuid.New().String()
}

// FromDelta expands one stream Delta into events. A nil Delta yields none.
func FromDelta(messageID string, d *toolcall.Delta) []Event {
	if d == nil {
		return nil
	}
	var out []Event
	if d.Content != "" {
		out = append(out, Event{Type: MessageDelta, MessageID: messageID, Delta: d.Content})
	}
	if d.ToolCall != nil {
		out = append(out, FromToolCall(messageID, *d.ToolCall)...)
	}
	return out
}

// FromToolCall returns the Start/Args/End events for one call.
func FromToolCall(messageID string, tc toolcall.ToolCallDelta) []Event {
	return []Event{
		{Type: ToolCallStart, MessageID: messageID, ToolCall: &tc},
		{Type: ToolCallArgs, MessageID: messageID, ToolCall: &tc},
		{Type: ToolCallEnd, MessageID: messageID, ToolCall: &tc},
	}
}

// Stream runs fragments through a new stream of p and returns the resulting
// events. The channel is closed after MessageEnd, or early when ctx is done.
// Calls still pending when fragments closes are drained before MessageEnd.
func Stream(ctx context.Context, p toolcall.Parser, fragments <-chan string) <-chan Event {
	ch := make(chan Event, 16)
	go func() {
		defer close(ch)

		id := NewMessageID()
		tracker := p.NewStream()
		if !send(ctx, ch, Event{Type: MessageStart, MessageID: id}) {
			return
		}

		text := ""
		for {
			select {
			case <-ctx.Done():
				return
			case f, ok := <-fragments:
				if !ok {
					for _, tc := range tracker.Finish(ctx, text) {
						for _, e := range FromToolCall(id, tc) {
							if !send(ctx, ch, e) {
								return
							}
						}
					}
					res := p.Extract(ctx, text)
					send(ctx, ch, Event{Type: MessageEnd, MessageID: id, Result: &res})
					return
				}
				step := toolcall.NextStep(text, f)
				text = step.CurrentText
				for _, e := range FromDelta(id, tracker.Step(ctx, step)) {
					if !send(ctx, ch, e) {
						return
					}
				}
			}
		}
	}()
	return ch
}

// send stamps e and delivers it unless ctx is done first.
func send(ctx context.Context, ch chan<- Event, e Event) bool {
	e.Timestamp = time.Now()
	select {
	case ch <- e:
		return true
	case <-ctx.Done():
		return false
	}
}
