package agui

import (
	"context"
	"testing"
	"time"

	"github.com/ag-ui-protocol/ag-ui/sdks/community/go/pkg/core/events"

	"github.com/spetersoncode/toolcall"
	"github.com/spetersoncode/toolcall/event"
	"github.com/spetersoncode/toolcall/tagged"
)

func TestNewMapper(t *testing.T) {
	t.Run("with provided IDs", func(t *testing.T) {
		m := NewMapper("thread-123", "run-456")
		if m.ThreadID() != "thread-123" {
			t.Errorf("expected thread ID 'thread-123', got %q", m.ThreadID())
		}
		if m.RunID() != "run-456" {
			t.Errorf("expected run ID 'run-456', got %q", m.RunID())
		}
	})

	t.Run("generates IDs when empty", func(t *testing.T) {
		m := NewMapper("", "")
		if m.ThreadID() == "" {
			t.Error("expected generated thread ID, got empty")
		}
		if m.RunID() == "" {
			t.Error("expected generated run ID, got empty")
		}
	})
}

func TestMapper_MapEvent(t *testing.T) {
	m := NewMapper("thread-1", "run-1")
	tc := &toolcall.ToolCallDelta{ID: "call-1", Call: toolcall.Call{Name: "get_weather", Arguments: `{"location":"NYC"}`}}

	tests := []struct {
		name string
		in   event.Event
		want events.EventType
	}{
		{"MessageStart", event.Event{Type: event.MessageStart, MessageID: "msg-1"}, events.EventTypeTextMessageStart},
		{"MessageDelta", event.Event{Type: event.MessageDelta, MessageID: "msg-1", Delta: "Hi"}, events.EventTypeTextMessageContent},
		{"MessageEnd", event.Event{Type: event.MessageEnd, MessageID: "msg-1"}, events.EventTypeTextMessageEnd},
		{"ToolCallStart", event.Event{Type: event.ToolCallStart, ToolCall: tc}, events.EventTypeToolCallStart},
		{"ToolCallArgs", event.Event{Type: event.ToolCallArgs, ToolCall: tc}, events.EventTypeToolCallArgs},
		{"ToolCallEnd", event.Event{Type: event.ToolCallEnd, ToolCall: tc}, events.EventTypeToolCallEnd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := m.MapEvent(tt.in)
			if result == nil {
				t.Fatal("expected event, got nil")
			}
			if result.Type() != tt.want {
				t.Errorf("expected %s, got %s", tt.want, result.Type())
			}
		})
	}

	t.Run("nil for missing tool call", func(t *testing.T) {
		for _, typ := range []event.Type{event.ToolCallStart, event.ToolCallArgs, event.ToolCallEnd} {
			if r := m.MapEvent(event.Event{Type: typ}); r != nil {
				t.Errorf("expected nil for %s without tool call, got %s", typ, r.Type())
			}
		}
	})

	t.Run("nil for empty delta and unknown types", func(t *testing.T) {
		if r := m.MapEvent(event.Event{Type: event.MessageDelta, MessageID: "msg-1"}); r != nil {
			t.Errorf("expected nil, got %s", r.Type())
		}
		if r := m.MapEvent(event.Event{Type: "other"}); r != nil {
			t.Errorf("expected nil, got %s", r.Type())
		}
	})
}

func TestMapper_MapStream(t *testing.T) {
	text := "Hi<tool_call>{\"name\": \"f\", \"arguments\": {}}</tool_call>"
	fragments := make(chan string, 3)
	fragments <- "Hi"
	fragments <- "<tool_call>{\"name\": \"f\", \"arguments\": {}}"
	fragments <- "</tool_call>"
	close(fragments)

	m := NewMapper("thread-1", "run-1")
	var received []events.EventType
	for ev := range m.MapStream(context.Background(), event.Stream(context.Background(), tagged.Hermes(), fragments)) {
		received = append(received, ev.Type())
	}

	expected := []events.EventType{
		events.EventTypeRunStarted,
		events.EventTypeTextMessageStart,
		events.EventTypeTextMessageContent,
		events.EventTypeToolCallStart,
		events.EventTypeToolCallArgs,
		events.EventTypeToolCallEnd,
		events.EventTypeTextMessageEnd,
		events.EventTypeRunFinished,
	}
	if len(received) != len(expected) {
		t.Fatalf("expected %d events for %q, got %d: %v", len(expected), text, len(received), received)
	}
	for i, e := range expected {
		if received[i] != e {
			t.Errorf("event %d: expected %s, got %s", i, e, received[i])
		}
	}
}

func TestMapper_MapStream_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	input := make(chan event.Event)
	// The producer never closes input, so only ctx can end the stream.
	go func() {
		for i := 0; i < 40; i++ {
			select {
			case input <- event.Event{Type: event.MessageDelta, MessageID: "msg-1", Delta: "x"}:
			case <-ctx.Done():
				return
			}
		}
		<-ctx.Done()
	}()

	out := NewMapper("thread-1", "run-1").MapStream(ctx, input)
	first := <-out
	if first.Type() != events.EventTypeRunStarted {
		t.Fatalf("expected %s, got %s", events.EventTypeRunStarted, first.Type())
	}
	// Stop reading long enough for the output buffer to fill.
	time.Sleep(50 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range out {
		}
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stream did not close after cancel")
	}
}
