package testresources

import (
	"reflect"

	"github.com/wippyai/test-resources/content"
)

// Shape is the representation a parameter requests.
type Shape uint8

const (
	ShapeUnsupported Shape = iota
	ShapeFile
	ShapePath
	ShapeString
	ShapeLines
	ShapeStream
	ShapeStringHolder
	ShapeLinesHolder
)

var shapeNames = [...]string{
	ShapeUnsupported:  "unsupported",
	ShapeFile:         "file",
	ShapePath:         "path",
	ShapeString:       "string",
	ShapeLines:        "lines",
	ShapeStream:       "stream",
	ShapeStringHolder: "string-holder",
	ShapeLinesHolder:  "lines-holder",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "unknown"
}

// NeedsResource reports whether loading the shape requires a resource name.
func (s Shape) NeedsResource() bool {
	switch s {
	case ShapeString, ShapeLines, ShapeStream, ShapeStringHolder, ShapeLinesHolder:
		return true
	default:
		return false
	}
}

// Outer is the container part of a parameterized type.
type Outer uint8

const (
	OuterNone Outer = iota
	OuterList
	OuterStream
	OuterOther
)

// TypeDescriptor is the static view of a parameter type the classifier
// works from: the declared type, its container and its type arguments.
type TypeDescriptor struct {
	Type  reflect.Type
	Args  []reflect.Type
	Outer Outer
}

var (
	stringType        = reflect.TypeFor[string]()
	contentLinesType  = reflect.TypeFor[ContentLines]()
	contentStringType = reflect.TypeFor[ContentString]()
	resourceFileType  = reflect.TypeFor[*ResourceFile]()
	resourcePathType  = reflect.TypeFor[*ResourcePath]()
)

// Describe derives the descriptor of t.
func Describe(t reflect.Type) TypeDescriptor {
	if t == nil {
		return TypeDescriptor{}
	}
	if elem, ok := content.StreamElem(t); ok {
		return TypeDescriptor{Type: t, Outer: OuterStream, Args: []reflect.Type{elem}}
	}

	switch t.Kind() {
	case reflect.Slice:
		return TypeDescriptor{Type: t, Outer: OuterList, Args: []reflect.Type{t.Elem()}}
	case reflect.Map:
		return TypeDescriptor{Type: t, Outer: OuterOther, Args: []reflect.Type{t.Key(), t.Elem()}}
	case reflect.Array, reflect.Chan:
		return TypeDescriptor{Type: t, Outer: OuterOther, Args: []reflect.Type{t.Elem()}}
	default:
		return TypeDescriptor{Type: t}
	}
}

// Classify maps a descriptor to the shape it requests. paramAnnotated
// reports whether the parameter itself carries a resource configuration;
// configuration on the test function does not count.
//
// Classification never touches resource names or content.
func Classify(d TypeDescriptor, paramAnnotated bool) Shape {
	if d.Type == nil || len(d.Args) > 1 {
		return ShapeUnsupported
	}

	if len(d.Args) == 1 {
		if d.Args[0] != stringType {
			return ShapeUnsupported
		}
		switch d.Outer {
		case OuterList:
			return ShapeLines
		case OuterStream:
			return ShapeStream
		default:
			return ShapeUnsupported
		}
	}

	switch d.Type {
	case contentLinesType:
		return ShapeLinesHolder
	case contentStringType:
		return ShapeStringHolder
	case resourceFileType:
		return ShapeFile
	case resourcePathType:
		return ShapePath
	}

	if d.Type == stringType && paramAnnotated {
		return ShapeString
	}
	return ShapeUnsupported
}
