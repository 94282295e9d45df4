// Package agui maps toolcall stream events onto the AG-UI protocol.
//
// AG-UI (Agent-User Interface) is an event-based protocol connecting agents to
// user-facing applications. Content fragments become TEXT_MESSAGE_* events and
// each extracted call becomes a TOOL_CALL_START / TOOL_CALL_ARGS /
// TOOL_CALL_END triple.
//
// # Usage
//
//	mapper := agui.NewMapper(threadID, runID)
//	for ev := range mapper.MapStream(ctx, event.Stream(ctx, parser, fragments)) {
//	    writeEvent(ev)
//	}
//
// The package does not provide transports; use the AG-UI SDK's SSE writer or
// any other encoder for the returned events.
package agui
