// Package anthropic converts extraction results into Anthropic message types.
package anthropic

import (
	"encoding/json"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/spetersoncode/toolcall"
)

// AssistantMessage builds the assistant turn for a Result: a text block for
// the content, then one tool_use block per call. ids supplies tool_use IDs;
// nil uses toolcall.GenerateCallID.
func AssistantMessage(r toolcall.Result, ids func() string) anthropic.MessageParam {
	if ids == nil {
		ids = toolcall.GenerateCallID
	}

	var blocks []anthropic.ContentBlockParamUnion
	// Anthropic rejects empty text blocks
	if r.Content != "" {
		blocks = append(blocks, anthropic.NewTextBlock(r.Content))
	}
	if r.ToolsCalled {
		for _, c := range r.Calls {
			blocks = append(blocks, anthropic.NewToolUseBlock(ids(), Input(c), c.Name))
		}
	}

	return anthropic.MessageParam{
		Role:    anthropic.MessageParamRoleAssistant,
		Content: blocks,
	}
}

// Input decodes the call's arguments into a tool_use input object.
// Arguments that are not a JSON object yield an empty object.
func Input(c toolcall.Call) map[string]any {
	input := map[string]any{}
	if err := json.Unmarshal([]byte(c.Arguments), &input); err != nil || input == nil {
		return map[string]any{}
	}
	return input
}
