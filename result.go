package toolcall

// Result is the outcome of extracting tool calls from a complete text.
type Result struct {
	// ToolsCalled is true iff Calls is non-empty.
	ToolsCalled bool `json:"toolsCalled"`
	// Calls holds the extracted calls in left-to-right textual order.
	Calls []Call `json:"calls,omitempty"`
	// Content is the prose preceding the first call, trimmed. When no call was
	// extracted it is the original text unchanged. Empty means no content.
	Content string `json:"content,omitempty"`
}

// PlainResult returns the result for text that carries no tool calls.
func PlainResult(text string) Result {
	return Result{Content: text}
}

// HasContent reports whether the result carries leftover content.
func (r Result) HasContent() bool {
	return r.Content != ""
}
