package toolcall

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Call is a tool invocation extracted from model output.
type Call struct {
	// Name is the function the model wants to invoke. Never empty.
	Name string `json:"name"`
	// Arguments is the argument value as compact JSON text. Always valid JSON,
	// "{}" when the model supplied none.
	Arguments string `json:"arguments"`
}

// NewCall builds a Call from a decoded name and argument value.
//
// name must be a non-empty string. args may be a json.RawMessage, which is
// compacted with its key order kept, or any value encoding/json can marshal.
// A nil or empty argument value becomes "{}". JSON null is kept.
func NewCall(name any, args any) (Call, error) {
	s, ok := name.(string)
	if !ok {
		return Call{}, &MalformedCallError{Reason: fmt.Sprintf("name is %T, not a string", name)}
	}
	if s == "" {
		return Call{}, &MalformedCallError{Reason: "name is empty"}
	}
	encoded, err := encodeArguments(args)
	if err != nil {
		return Call{}, &MalformedCallError{Reason: "arguments are not encodable", Err: err}
	}
	return Call{Name: s, Arguments: encoded}, nil
}

func encodeArguments(args any) (string, error) {
	var raw []byte
	switch v := args.(type) {
	case nil:
		return "{}", nil
	case json.RawMessage:
		if len(bytes.TrimSpace(v)) == 0 {
			return "{}", nil
		}
		raw = v
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return "", err
		}
		raw = buf.Bytes()
	}

	var out bytes.Buffer
	if err := json.Compact(&out, raw); err != nil {
		return "", err
	}
	return out.String(), nil
}
