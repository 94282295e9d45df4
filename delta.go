package toolcall

// Delta is the output of one streaming step. A nil *Delta means the step
// produced nothing to send.
type Delta struct {
	// Content is prose to forward as-is.
	Content string `json:"content,omitempty"`
	// ToolCall is the single call completed by this step, if any.
	ToolCall *ToolCallDelta `json:"toolCall,omitempty"`
}

// ToolCallDelta is a call emitted by a stream, tagged for correlation.
type ToolCallDelta struct {
	// Index is the call's ordinal among calls emitted by the stream, starting at 0.
	Index int `json:"index"`
	// ID is a fresh correlation id for this call.
	ID string `json:"id"`
	Call
}

// StreamStep is the input to one streaming step. Token ids are accepted for
// symmetry with token-aware grammars; the built-in grammars ignore them.
type StreamStep struct {
	PreviousText     string
	CurrentText      string
	DeltaText        string
	PreviousTokenIDs []int
	CurrentTokenIDs  []int
	DeltaTokenIDs    []int
}

// NextStep builds the step that appends fragment to previous.
func NextStep(previous, fragment string) StreamStep {
	return StreamStep{
		PreviousText: previous,
		CurrentText:  previous + fragment,
		DeltaText:    fragment,
	}
}
