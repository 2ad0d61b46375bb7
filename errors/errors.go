package errors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseInsert   Phase = "insert"   // tree insertion
	PhaseEncode   Phase = "encode"   // tree to text
	PhaseDecode   Phase = "decode"   // text to tree
	PhaseValidate Phase = "validate" // ordering checks
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidArgument Kind = "invalid_argument"
	KindFormat          Kind = "format"
	KindUnbalanced      Kind = "unbalanced"
	KindInvalidKey      Kind = "invalid_key"
	KindDuplicateChild  Kind = "duplicate_child"
	KindOrderViolation  Kind = "order_violation"
)

// Sentinels for errors.Is. An empty phase matches any phase.
var (
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
	ErrFormat          = &Error{Kind: KindFormat}
	ErrUnbalanced      = &Error{Kind: KindUnbalanced}
	ErrInvalidKey      = &Error{Kind: KindInvalidKey}
	ErrDuplicateChild  = &Error{Kind: KindDuplicateChild}
	ErrOrderViolation  = &Error{Kind: KindOrderViolation}
)

// noOffset marks errors that are not tied to an input position.
const noOffset = -1

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Input  string
	Detail string
	Path   []string
	Offset int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Offset >= 0 && e.Input != "" {
		b.WriteString(" (offset ")
		b.WriteString(strconv.Itoa(e.Offset))
		b.WriteString(" near ")
		b.WriteString(strconv.Quote(excerpt(e.Input, e.Offset)))
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase != "" && e.Phase != t.Phase {
		return false
	}
	return e.Kind == t.Kind
}

// IsFormat reports whether err rejects malformed encoded text.
// Every decode-side kind counts.
func (e *Error) IsFormat() bool {
	switch e.Kind {
	case KindFormat, KindUnbalanced, KindInvalidKey, KindDuplicateChild, KindOrderViolation:
		return true
	}
	return false
}

// IsFormat reports whether any error in err's chain is a decode-side *Error.
func IsFormat(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.IsFormat()
}

// IsInvalidArgument reports whether err was caused by a bad argument to
// an insert or attach call.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// excerpt returns up to 8 bytes of input starting at offset.
func excerpt(input string, offset int) string {
	if offset > len(input) {
		offset = len(input)
	}
	end := offset + 8
	if end > len(input) {
		end = len(input)
	}
	return input[offset:end]
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: noOffset,
		},
	}
}

// Path sets the child path, e.g. "l", "r", "l"
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// At records the input text and the offending byte offset
func (b *Builder) At(input string, offset int) *Builder {
	b.err.Input = input
	b.err.Offset = offset
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidArgument creates an invalid argument error
func InvalidArgument(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidArgument,
		Detail: detail,
		Offset: noOffset,
	}
}

// Format creates a generic malformed input error at offset
func Format(input string, offset int, detail string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindFormat,
		Input:  input,
		Offset: offset,
		Detail: detail,
	}
}

// Unbalanced creates an error for a brace that is never closed or never opened
func Unbalanced(input string, offset, depth int) *Error {
	detail := "unexpected ')'"
	if depth > 0 {
		detail = fmt.Sprintf("%d unterminated group(s)", depth)
	}
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindUnbalanced,
		Input:  input,
		Offset: offset,
		Detail: detail,
		Value:  depth,
	}
}

// InvalidKey creates a key parse error
func InvalidKey(input string, offset int, text string, cause error) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidKey,
		Input:  input,
		Offset: offset,
		Detail: fmt.Sprintf("cannot parse key %q", text),
		Value:  text,
		Cause:  cause,
	}
}

// DuplicateChild creates an error for a child slot that is written twice
func DuplicateChild(input string, offset int, side string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindDuplicateChild,
		Input:  input,
		Offset: offset,
		Detail: fmt.Sprintf("%s child already set", side),
		Value:  side,
	}
}

// OrderViolation creates an error for a key placed on the wrong side of an ancestor
func OrderViolation(path []string, key, bound any, side string) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindOrderViolation,
		Path:   path,
		Detail: fmt.Sprintf("key %v must be %s than %v", key, side, bound),
		Value:  key,
		Offset: noOffset,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
		Offset: noOffset,
	}
}
