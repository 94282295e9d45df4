// Package openai converts extraction results into OpenAI chat completion types.
//
// Serving stacks that speak the OpenAI wire format use these helpers to turn
// a [toolcall.Result] into the assistant message of a non-streaming response,
// and each streamed [toolcall.ToolCallDelta] into a chunk delta:
//
//	msg := openai.AssistantMessage(result, nil)
//	chunk := openai.ChunkToolCall(*delta.ToolCall)
//
// Arguments are forwarded verbatim; they are already compact JSON.
package openai
