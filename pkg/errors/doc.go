// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Every error surfaced over HTTP carries an ErrorCode. pkg/server maps codes to
// status codes and retry hints, so handlers only decide which code applies.
//
// Example usage:
//
//	err := errors.Wrap(errors.ErrCodeUnavailable, "prediction server unreachable", cause)
//	if errors.CodeOf(err) == errors.ErrCodeUnavailable {
//	    // retry later
//	}
//
// Validation failures use ErrCodeValidation and keep the per-field errors in
// the context:
//
//	errors.NewWithContext(errors.ErrCodeValidation, "Request validation failed",
//	    map[string]any{"detail": fieldErrors})
package errors
