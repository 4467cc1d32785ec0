// Package errors provides structured error types for the test-resources library.
//
// Errors are categorized by Phase (where resolution failed) and Kind (error category).
// The Error type carries the resource name, the Go parameter type and the cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLoad, errors.KindReadFailure).
//		Resource("sub/anton.txt").
//		Detail("read lines").
//		Cause(ioErr).
//		Build()
//
// Or use convenience constructors for the fault taxonomy:
//
//	err := errors.ResourceNotFound("sub/anton.txt")
//	err := errors.ResourceReadFailure("sub/anton.txt", ioErr)
//	err := errors.MissingConfiguration(1, "testresources.ContentLines")
//
// All errors implement the standard error interface and support errors.Is/As.
// Two errors match under errors.Is when Phase and Kind are equal, so the
// exported sentinels can be used directly:
//
//	if errors.Is(err, errors.ErrResourceNotFound) { ... }
package errors
