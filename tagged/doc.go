// Package tagged extracts tool calls wrapped in literal begin/end markers.
//
// Two marker pairs are recognized: a section pair around the whole tool call
// region and a call pair around each JSON call object. Either pair may share
// its literals with the other, and a begin marker may equal its end marker.
//
//	p := tagged.DeepSeekR1()
//	res := p.Extract(ctx, output)
//	for _, c := range res.Calls {
//	    fmt.Println(c.Name, c.Arguments)
//	}
//
// Blocks that are empty, not JSON, or lack a name/arguments field are skipped
// and logged; the remaining blocks are still extracted.
package tagged
