// Package errors provides structured error types for the bstcodec module.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: the decoded input, byte offset, child
// path and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindFormat).
//		At(input, 4).
//		Path("l", "r").
//		Detail("expected side symbol, got %q", 'x').
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidKey(input, 2, "abc", cause)
//	err := errors.Unbalanced(input, len(input), 1)
//
// All errors implement the standard error interface and support errors.Is/As.
// The package-level sentinels match on Kind alone:
//
//	if errors.Is(err, bsterrors.ErrInvalidKey) { ... }
package errors
