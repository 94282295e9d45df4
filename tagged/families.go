package tagged

import "github.com/spetersoncode/toolcall"

const (
	// FamilyDeepSeekR1 is the DeepSeek R1 chat template family.
	FamilyDeepSeekR1 = "deepseek_r1"
	// FamilyHermes is the Hermes <tool_call> family.
	FamilyHermes = "hermes"
)

// DeepSeekR1Markers are the DeepSeek R1 tool call sentinels.
var DeepSeekR1Markers = Markers{
	SectionBegin: "<｜tool▁calls▁begin｜>",
	SectionEnd:   "<｜tool▁calls▁end｜>",
	CallBegin:    "<｜tool▁call▁begin｜>",
	CallEnd:      "<｜tool▁call▁end｜>",
}

// HermesMarkers wrap each call in <tool_call>...</tool_call> with no section.
var HermesMarkers = Markers{
	CallBegin: "<tool_call>",
	CallEnd:   "</tool_call>",
}

// DeepSeekR1 creates a parser for DeepSeek R1 output, whose call objects
// carry their arguments under "parameters".
func DeepSeekR1(opts ...toolcall.Option) toolcall.Parser {
	return New(FamilyDeepSeekR1, DeepSeekR1Markers, []string{"parameters", "arguments"}, opts...)
}

// Hermes creates a parser for Hermes-style <tool_call> output.
func Hermes(opts ...toolcall.Option) toolcall.Parser {
	return New(FamilyHermes, HermesMarkers, nil, opts...)
}

// Register adds the tagged families to r.
func Register(r *toolcall.Registry) error {
	if err := r.Register(FamilyDeepSeekR1, DeepSeekR1); err != nil {
		return err
	}
	return r.Register(FamilyHermes, Hermes)
}
