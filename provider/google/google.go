// Package google converts extraction results into Gemini content.
package google

import (
	"encoding/json"

	"google.golang.org/genai"

	"github.com/spetersoncode/toolcall"
)

// RoleModel is the Gemini role for model turns.
const RoleModel = "model"

// ModelContent builds the model turn for a Result: a text part for the
// content, then one FunctionCall part per call. ids supplies call IDs; nil
// uses toolcall.GenerateCallID.
func ModelContent(r toolcall.Result, ids func() string) *genai.Content {
	if ids == nil {
		ids = toolcall.GenerateCallID
	}

	var parts []*genai.Part
	if r.Content != "" {
		parts = append(parts, &genai.Part{Text: r.Content})
	}
	if r.ToolsCalled {
		for _, c := range r.Calls {
			parts = append(parts, &genai.Part{
				FunctionCall: &genai.FunctionCall{
					ID:   ids(),
					Name: c.Name,
					Args: Args(c),
				},
			})
		}
	}

	return &genai.Content{
		Role:  RoleModel,
		Parts: parts,
	}
}

// Args decodes the call's arguments for a FunctionCall.
// Arguments that are not a JSON object yield an empty map.
func Args(c toolcall.Call) map[string]any {
	var args map[string]any
	if err := json.Unmarshal([]byte(c.Arguments), &args); err != nil || args == nil {
		return map[string]any{}
	}
	return args
}
