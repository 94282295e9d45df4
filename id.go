package toolcall

import "github.com/google/uuid"

// GenerateCallID creates a unique tool call identifier.
func GenerateCallID() string {
	return "chatcmpl-tool-" + uuid.New().String()
}
