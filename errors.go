package toolcall

import (
	"errors"
	"fmt"
)

// ErrEmptySpan is returned when a candidate span holds only whitespace.
// Empty spans are skipped silently.
var ErrEmptySpan = errors.New("empty candidate span")

// ErrIncomplete is returned when a candidate span has not fully arrived yet.
var ErrIncomplete = errors.New("incomplete candidate span")

var errNotObject = errors.New("not a JSON object")

// ErrorKind classifies why a candidate span did not yield a call.
type ErrorKind string

const (
	// KindMalformedJSON indicates the span is not valid JSON.
	KindMalformedJSON ErrorKind = "malformed_json"

	// KindMissingField indicates the decoded object lacks the name or arguments field.
	KindMissingField ErrorKind = "missing_required_field"

	// KindMalformedCall indicates the fields exist but cannot form a call,
	// e.g. a non-string name.
	KindMalformedCall ErrorKind = "malformed_call"

	// KindUnexpected covers anything else: scan failures and recovered panics.
	KindUnexpected ErrorKind = "unexpected_extraction_failure"
)

// DecodeError reports a candidate span that could not be turned into a Call.
type DecodeError struct {
	Kind  ErrorKind
	Span  string // the trimmed span text
	Field string // missing field, for KindMissingField
	Err   error  // underlying error
}

// Error returns a formatted message including the kind and cause.
func (e *DecodeError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("toolcall: %s: %s", e.Kind, e.Field)
	case e.Err != nil:
		return fmt.Sprintf("toolcall: %s: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("toolcall: %s", e.Kind)
	}
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// MalformedCallError is returned by NewCall when the name is not a non-empty
// string or the arguments cannot be encoded.
type MalformedCallError struct {
	Reason string
	Err    error
}

// Error returns a formatted message including the reason.
func (e *MalformedCallError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("toolcall: malformed call: %s: %v", e.Reason, e.Err)
	}
	return "toolcall: malformed call: " + e.Reason
}

// Unwrap returns the underlying error.
func (e *MalformedCallError) Unwrap() error {
	return e.Err
}

// KindOf returns the ErrorKind of err, or "" for nil and for the empty and
// incomplete sentinels, which are not failures.
func KindOf(err error) ErrorKind {
	if err == nil || errors.Is(err, ErrEmptySpan) || errors.Is(err, ErrIncomplete) {
		return ""
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return de.Kind
	}
	var me *MalformedCallError
	if errors.As(err, &me) {
		return KindMalformedCall
	}
	return KindUnexpected
}

// IsMalformedJSON reports whether err is a KindMalformedJSON failure.
func IsMalformedJSON(err error) bool {
	return KindOf(err) == KindMalformedJSON
}

// IsMissingField reports whether err is a KindMissingField failure.
func IsMissingField(err error) bool {
	return KindOf(err) == KindMissingField
}

// IsMalformedCall reports whether err is a KindMalformedCall failure.
func IsMalformedCall(err error) bool {
	return KindOf(err) == KindMalformedCall
}

// ErrFamilyAlreadyRegistered is returned when registering a duplicate family name.
type ErrFamilyAlreadyRegistered struct {
	Family string
}

// Error returns a formatted error message including the duplicate family.
func (e *ErrFamilyAlreadyRegistered) Error() string {
	return fmt.Sprintf("toolcall: family already registered: %s", e.Family)
}

// ErrUnknownFamily is returned when looking up a family that was never registered.
type ErrUnknownFamily struct {
	Family string
}

// Error returns a formatted error message including the requested family.
func (e *ErrUnknownFamily) Error() string {
	return fmt.Sprintf("toolcall: unknown family: %s", e.Family)
}
