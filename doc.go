// Package toolcall extracts structured tool calls from raw language model
// output.
//
// Models that were trained to call tools emit their calls inline, wrapped in
// family-specific markers or as bare JSON objects. A [Parser] recognizes one
// such family and turns a completed output into a [Result]: the calls in
// textual order plus any prose that preceded them.
//
// # Families
//
// Parsers are constructed by family name through a [Registry]:
//
//   - deepseek_r1 and hermes: tag-delimited, see the tagged package
//   - phi4_reasoning: implicit JSON, see the implicit package
//
// Use [github.com/spetersoncode/toolcall/builtin] for a registry holding all of them.
//
// # Basic Usage
//
//	r := builtin.Registry()
//	p, err := r.New("hermes")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res := p.Extract(ctx, output)
//	for _, c := range res.Calls {
//	    fmt.Println(c.Name, c.Arguments)
//	}
//
// Extract never fails. Blocks that do not decode are skipped and logged, and
// when nothing decodes the output is returned unchanged as content.
//
// # Streaming
//
// A [Tracker] follows an output as it grows. Each step returns prose to
// forward and at most one newly completed call:
//
//	s := p.NewStream()
//	text := ""
//	for fragment := range fragments {
//	    step := toolcall.NextStep(text, fragment)
//	    text = step.CurrentText
//	    if d := s.Step(ctx, step); d != nil {
//	        send(d)
//	    }
//	}
//	for _, tc := range s.Finish(ctx, text) {
//	    sendCall(tc)
//	}
//
// Streamed call i always equals Extract(text).Calls[i].
//
// # Custom Grammars
//
// New families implement [Grammar] and reuse the shared [Tracker] and
// [Decoder]. Register them with [Registry.Register].
package toolcall
