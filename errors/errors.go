package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in resolution the error occurred
type Phase string

const (
	PhaseLookup    Phase = "lookup"    // classpath lookup
	PhaseLoad      Phase = "load"      // reading located content
	PhaseConfigure Phase = "configure" // resource configuration and encodings
	PhaseClassify  Phase = "classify"  // parameter shape classification
	PhaseInvoke    Phase = "invoke"    // test function invocation
)

// Kind categorizes the error
type Kind string

const (
	KindNotFound             Kind = "not_found"
	KindReadFailure          Kind = "read_failure"
	KindMissingConfiguration Kind = "missing_configuration"
	KindUnsupportedEncoding  Kind = "unsupported_encoding"
	KindUnsupported          Kind = "unsupported"
	KindTypeMismatch         Kind = "type_mismatch"
	KindInvalidInput         Kind = "invalid_input"
)

// Sentinels for errors.Is matching.
var (
	ErrResourceNotFound      = &Error{Phase: PhaseLookup, Kind: KindNotFound}
	ErrResourceReadFailure   = &Error{Phase: PhaseLoad, Kind: KindReadFailure}
	ErrMissingConfiguration  = &Error{Phase: PhaseConfigure, Kind: KindMissingConfiguration}
	ErrUnsupportedEncoding   = &Error{Phase: PhaseConfigure, Kind: KindUnsupportedEncoding}
	ErrUnresolvableParameter = &Error{Phase: PhaseInvoke, Kind: KindUnsupported}
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause    error
	Phase    Phase
	Kind     Kind
	Resource string
	GoType   string
	Detail   string
	Param    int // parameter index, -1 when not tied to a parameter
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Resource != "" {
		b.WriteString(" resource '")
		b.WriteString(e.Resource)
		b.WriteByte('\'')
	}

	if e.Param >= 0 && e.GoType != "" {
		fmt.Fprintf(&b, " at parameter %d (%s)", e.Param, e.GoType)
	} else if e.GoType != "" {
		b.WriteString(" for Go type ")
		b.WriteString(e.GoType)
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
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
			Param: -1,
		},
	}
}

// Resource sets the resource name
func (b *Builder) Resource(name string) *Builder {
	b.err.Resource = name
	return b
}

// Param sets the parameter index
func (b *Builder) Param(index int) *Builder {
	b.err.Param = index
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
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

// ResourceNotFound creates a lookup failure for a name without a classpath match
func ResourceNotFound(name string) *Error {
	return &Error{
		Phase:    PhaseLookup,
		Kind:     KindNotFound,
		Resource: name,
		Detail:   "no match on the classpath",
		Param:    -1,
	}
}

// ResourceReadFailure creates a load failure for a located resource
func ResourceReadFailure(name string, cause error) *Error {
	return &Error{
		Phase:    PhaseLoad,
		Kind:     KindReadFailure,
		Resource: name,
		Detail:   "could not be read",
		Cause:    cause,
		Param:    -1,
	}
}

// MissingConfiguration creates an error for a parameter that needs a resource name
// but has none configured on the parameter or its test function
func MissingConfiguration(param int, goType string) *Error {
	return &Error{
		Phase:  PhaseConfigure,
		Kind:   KindMissingConfiguration,
		Param:  param,
		GoType: goType,
		Detail: "no resource configured on the parameter nor on the test function",
	}
}

// UnsupportedEncoding creates an error for an unknown or unsupported charset name
func UnsupportedEncoding(name string, cause error) *Error {
	return &Error{
		Phase:  PhaseConfigure,
		Kind:   KindUnsupportedEncoding,
		Detail: fmt.Sprintf("encoding %q is not supported", name),
		Cause:  cause,
		Param:  -1,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
		Param:  -1,
	}
}

// UnresolvableParameter creates an error for a parameter no resolver supports
func UnresolvableParameter(param int, goType string) *Error {
	return &Error{
		Phase:  PhaseInvoke,
		Kind:   KindUnsupported,
		Param:  param,
		GoType: goType,
		Detail: "no resolver supports this parameter",
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, goType, expected string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		GoType: goType,
		Detail: fmt.Sprintf("expected %s", expected),
		Param:  -1,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
		Param:  -1,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
		Param:  -1,
	}
}
