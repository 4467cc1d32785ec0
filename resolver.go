package testresources

import (
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/wippyai/test-resources/classpath"
	"github.com/wippyai/test-resources/content"
	"github.com/wippyai/test-resources/errors"
)

// Parameter describes one parameter of a test function.
type Parameter struct {
	Type  reflect.Type
	Read  *ResourceRead // parameter-level configuration, nil when absent
	Index int
}

// Annotated reports whether the parameter carries its own configuration.
func (p Parameter) Annotated() bool {
	return p.Read != nil
}

// Method describes a test function.
type Method struct {
	Read   *ResourceRead // function-level configuration, nil when absent
	Name   string
	Params []Parameter
}

// ParameterContext is what a resolver sees of the parameter being resolved.
type ParameterContext struct {
	Method    *Method
	Parameter Parameter
}

// Context carries the running test and the classpath it reads from.
type Context struct {
	TB     testing.TB
	Loader classpath.Loader
}

// ParameterResolver supplies values for test function parameters.
type ParameterResolver interface {
	// Supports reports whether the resolver can supply the parameter.
	// It must not perform I/O and may be called any number of times.
	Supports(pc ParameterContext) bool

	// Resolve produces the value for a supported parameter.
	Resolve(pc ParameterContext, ec *Context) (any, error)
}

// Resolver supplies classpath resources in the shapes listed in the package
// documentation. It holds no state and is safe for concurrent use.
type Resolver struct{}

// NewResolver creates a resource resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Supports implements ParameterResolver.
func (r *Resolver) Supports(pc ParameterContext) bool {
	return classifyParameter(pc.Parameter) != ShapeUnsupported
}

// Resolve implements ParameterResolver. Failures from lookup and loading are
// returned unchanged.
func (r *Resolver) Resolve(pc ParameterContext, ec *Context) (any, error) {
	p := pc.Parameter
	shape := classifyParameter(p)
	if shape == ShapeUnsupported {
		return nil, errors.UnresolvableParameter(p.Index, typeName(p.Type))
	}
	if ec == nil || ec.Loader == nil {
		return nil, errors.InvalidInput(errors.PhaseLookup, "no classpath in the test context")
	}

	if !shape.NeedsResource() {
		if shape == ShapeFile {
			return NewResourceFile(ec.Loader), nil
		}
		return NewResourcePath(ec.Loader), nil
	}

	ref, err := ResolveReference(p, pc.Method)
	if err != nil {
		return nil, err
	}

	loc, err := classpath.Locate(ec.Loader, ref.Name)
	if err != nil {
		return nil, err
	}

	Logger().Debug("resolving parameter",
		zap.Int("index", p.Index),
		zap.Stringer("shape", shape),
		zap.String("resource", ref.Name),
		zap.String("encoding", ref.Encoding),
		zap.Stringer("location", loc),
	)

	return load(shape, p, loc, ref.Encoding)
}

func load(shape Shape, p Parameter, loc classpath.Location, encoding string) (any, error) {
	switch shape {
	case ShapeString:
		return content.String(loc, encoding)
	case ShapeLines:
		return content.Lines(loc, encoding)
	case ShapeStream:
		return content.OpenLines(loc, encoding)
	case ShapeLinesHolder:
		lines, err := content.Lines(loc, encoding)
		if err != nil {
			return nil, err
		}
		return ContentLines{Lines: lines}, nil
	case ShapeStringHolder:
		if PreferLines(p.Type, p.Annotated()) {
			lines, err := content.Lines(loc, encoding)
			if err != nil {
				return nil, err
			}
			return ContentString{Content: strings.Join(lines, "\n")}, nil
		}
		text, err := content.String(loc, encoding)
		if err != nil {
			return nil, err
		}
		return ContentString{Content: text}, nil
	default:
		return nil, errors.Unsupported(errors.PhaseClassify, "shape "+shape.String())
	}
}

func classifyParameter(p Parameter) Shape {
	return Classify(Describe(p.Type), p.Annotated())
}
