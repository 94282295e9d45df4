package openai

import (
	"github.com/openai/openai-go"

	"github.com/spetersoncode/toolcall"
)

// ToolCallType is the only tool call type OpenAI defines.
const ToolCallType = "function"

// AssistantMessage builds the assistant message for a Result.
// ids supplies call IDs; nil uses toolcall.GenerateCallID.
func AssistantMessage(r toolcall.Result, ids func() string) openai.ChatCompletionAssistantMessageParam {
	if ids == nil {
		ids = toolcall.GenerateCallID
	}

	msg := openai.ChatCompletionAssistantMessageParam{}
	if r.Content != "" {
		msg.Content = openai.ChatCompletionAssistantMessageParamContentUnion{
			OfString: openai.String(r.Content),
		}
	}
	if !r.ToolsCalled {
		return msg
	}

	msg.ToolCalls = make([]openai.ChatCompletionMessageToolCallParam, len(r.Calls))
	for i, c := range r.Calls {
		msg.ToolCalls[i] = openai.ChatCompletionMessageToolCallParam{
			ID: ids(),
			Function: openai.ChatCompletionMessageToolCallFunctionParam{
				Name:      c.Name,
				Arguments: c.Arguments,
			},
		}
	}
	return msg
}

// MessageParam wraps AssistantMessage as a conversation message.
func MessageParam(r toolcall.Result, ids func() string) openai.ChatCompletionMessageParamUnion {
	msg := AssistantMessage(r, ids)
	return openai.ChatCompletionMessageParamUnion{OfAssistant: &msg}
}

// ChunkToolCall converts a streamed call into a chunk tool call delta.
// The whole call is carried in one delta.
func ChunkToolCall(tc toolcall.ToolCallDelta) openai.ChatCompletionChunkChoiceDeltaToolCall {
	return openai.ChatCompletionChunkChoiceDeltaToolCall{
		Index: int64(tc.Index),
		ID:    tc.ID,
		Type:  ToolCallType,
		Function: openai.ChatCompletionChunkChoiceDeltaToolCallFunction{
			Name:      tc.Name,
			Arguments: tc.Arguments,
		},
	}
}
