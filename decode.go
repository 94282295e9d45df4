package toolcall

import (
	"encoding/json"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// DefaultArgumentKeys lists the object keys that may carry call arguments,
// in lookup order.
var DefaultArgumentKeys = []string{"arguments", "parameters"}

// Decoder turns the JSON text of a candidate span into a Call.
// The zero value accepts both "arguments" and "parameters" keys.
type Decoder struct {
	// ArgumentKeys overrides DefaultArgumentKeys. The first key present wins.
	ArgumentKeys []string
	// Repair runs malformed JSON through jsonrepair once before giving up.
	Repair bool
}

// Decode parses text as a {"name": ..., "<argument key>": ...} object.
//
// It returns ErrEmptySpan for blank input, a *DecodeError for malformed JSON
// or missing fields, and the *MalformedCallError from NewCall when the name
// is not a non-empty string.
func (d Decoder) Decode(text string) (Call, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Call{}, ErrEmptySpan
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		if !d.Repair {
			return Call{}, &DecodeError{Kind: KindMalformedJSON, Span: text, Err: err}
		}
		repaired, rerr := jsonrepair.JSONRepair(text)
		if rerr != nil {
			return Call{}, &DecodeError{Kind: KindMalformedJSON, Span: text, Err: err}
		}
		if err := json.Unmarshal([]byte(repaired), &obj); err != nil {
			return Call{}, &DecodeError{Kind: KindMalformedJSON, Span: text, Err: err}
		}
	}
	if obj == nil {
		return Call{}, &DecodeError{Kind: KindMalformedJSON, Span: text, Err: errNotObject}
	}

	rawName, ok := lookup(obj, "name")
	if !ok {
		return Call{}, &DecodeError{Kind: KindMissingField, Span: text, Field: "name"}
	}
	keys := d.ArgumentKeys
	if len(keys) == 0 {
		keys = DefaultArgumentKeys
	}
	var rawArgs json.RawMessage
	found := false
	for _, k := range keys {
		if rawArgs, found = lookup(obj, k); found {
			break
		}
	}
	if !found {
		return Call{}, &DecodeError{Kind: KindMissingField, Span: text, Field: strings.Join(keys, "|")}
	}

	var name any
	if err := json.Unmarshal(rawName, &name); err != nil {
		return Call{}, &DecodeError{Kind: KindMalformedJSON, Span: text, Err: err}
	}
	return NewCall(name, rawArgs)
}

// lookup finds key exactly, then case-insensitively.
func lookup(obj map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	if v, ok := obj[key]; ok {
		return v, true
	}
	for k, v := range obj {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}
