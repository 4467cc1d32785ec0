package testresources

import (
	"reflect"

	"github.com/wippyai/test-resources/content"
	"github.com/wippyai/test-resources/errors"
)

// ResourceRead configures which resource a parameter reads. It can be
// attached to a whole test function (Read) or to one parameter (Param).
type ResourceRead struct {
	Name     string
	Encoding string
}

// Reference is the effective resource of one parameter.
type Reference struct {
	Name     string
	Encoding string
}

// ResolveReference picks the configuration for p. The parameter slot wins in
// full; the method slot applies only when the parameter has none. An empty
// name in the chosen slot is a missing configuration, even when the other
// slot has one.
func ResolveReference(p Parameter, m *Method) (Reference, error) {
	read := p.Read
	if read == nil && m != nil {
		read = m.Read
	}
	if read == nil || read.Name == "" {
		return Reference{}, errors.MissingConfiguration(p.Index, typeName(p.Type))
	}

	enc := read.Encoding
	if enc == "" {
		enc = content.DefaultEncoding
	}
	return Reference{Name: read.Name, Encoding: enc}, nil
}

// PreferLines decides the sub-form of a holder parameter. ContentLines is
// always lines. Any other holder is loaded as lines only when the parameter
// itself is configured; configuration inherited from the test function keeps
// the string form.
func PreferLines(t reflect.Type, paramAnnotated bool) bool {
	if t == contentLinesType {
		return true
	}
	return paramAnnotated
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
