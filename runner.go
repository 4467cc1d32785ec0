package testresources

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"reflect"
	"runtime"
	"testing"

	"go.uber.org/zap"

	"github.com/wippyai/test-resources/classpath"
	"github.com/wippyai/test-resources/config"
	"github.com/wippyai/test-resources/content"
	"github.com/wippyai/test-resources/errors"
	"github.com/wippyai/test-resources/resource"
)

var errorType = reflect.TypeFor[error]()

// Run calls fn with every parameter resolved and fails tb when resolution
// or fn itself returns an error.
func Run(tb testing.TB, fn any, opts ...Option) {
	tb.Helper()
	if err := Invoke(tb, fn, opts...); err != nil {
		tb.Fatal(err)
	}
}

// Invoke resolves the parameters of fn and calls it.
//
// fn is a non-variadic function returning nothing or a single error. For each
// parameter the resolvers are asked in order: the built-in resolver for
// testing.TB, *testing.T, *testing.B and context.Context, the resource
// Resolver, then any WithResolver additions. The first one that supports the
// parameter supplies it. Resolution errors are returned as produced; fn is
// not called in that case.
//
// Injected values that hold open handles are closed when tb cleans up.
func Invoke(tb testing.TB, fn any, opts ...Option) error {
	tb.Helper()
	rc := newRunConfig(opts)

	fv := reflect.ValueOf(fn)
	if !fv.IsValid() || fv.Kind() != reflect.Func {
		return errors.TypeMismatch(errors.PhaseInvoke, typeName(reflect.TypeOf(fn)), "a test function")
	}
	if fv.IsNil() {
		return errors.InvalidInput(errors.PhaseInvoke, "test function is nil")
	}
	if err := checkSignature(fv.Type()); err != nil {
		return err
	}

	cfg, err := rc.config()
	if err != nil {
		return err
	}
	loader := rc.loader
	if loader == nil {
		loader = classpath.FromDirs(cfg.Classpath...)
	}

	method, err := describeMethod(fv, rc, cfg)
	if err != nil {
		return err
	}

	table := resource.NewTable()
	rl := &releaseLogger{method: method.Name}
	table.Subscribe(rl)
	tb.Cleanup(func() {
		open := table.Len()
		err := table.Close()
		table.Unsubscribe(rl)

		Logger().Debug("released test resources",
			zap.String("name", method.Name),
			zap.Int("open", open),
			zap.Error(err),
		)
		if err != nil {
			tb.Errorf("release resources of %s: %v", method.Name, err)
		}
	})

	chain := make([]ParameterResolver, 0, 2+len(rc.resolvers))
	chain = append(chain, testingResolver{}, NewResolver())
	chain = append(chain, rc.resolvers...)

	ec := &Context{TB: tb, Loader: loader}
	args := make([]reflect.Value, len(method.Params))
	for _, p := range method.Params {
		pc := ParameterContext{Method: method, Parameter: p}

		r := pickResolver(chain, pc)
		if r == nil {
			return errors.UnresolvableParameter(p.Index, typeName(p.Type))
		}

		v, err := r.Resolve(pc, ec)
		if err != nil {
			return err
		}
		if c, ok := v.(io.Closer); ok {
			table.Insert(closerKind(v), c)
		}

		arg, err := argValue(v, p)
		if err != nil {
			return err
		}
		args[p.Index] = arg
	}

	Logger().Debug("invoking test function",
		zap.String("name", method.Name),
		zap.Int("params", len(args)),
		zap.Stringer("classpath", stringerOf(loader)),
	)

	out := fv.Call(args)
	if len(out) == 1 && !out[0].IsNil() {
		return out[0].Interface().(error)
	}
	return nil
}

// config returns the explicit configuration, or loads testresources.yaml when
// the classpath or a default encoding is still needed from it.
func (rc *runConfig) config() (*config.Config, error) {
	if rc.cfg != nil {
		return rc.cfg, nil
	}
	if rc.loader != nil && !rc.needsDefaultEncoding() {
		return config.Default(), nil
	}
	return config.Load(config.DefaultFile)
}

func (rc *runConfig) needsDefaultEncoding() bool {
	if rc.method != nil && rc.method.Encoding == "" {
		return true
	}
	for _, r := range rc.params {
		if r.Encoding == "" {
			return true
		}
	}
	return false
}

func checkSignature(ft reflect.Type) error {
	if ft.IsVariadic() {
		return errors.InvalidInput(errors.PhaseInvoke, "variadic test functions are not supported")
	}
	switch {
	case ft.NumOut() == 0:
		return nil
	case ft.NumOut() == 1 && ft.Out(0) == errorType:
		return nil
	default:
		return errors.InvalidInput(errors.PhaseInvoke, fmt.Sprintf("test function must return nothing or error, got %s", ft))
	}
}

func describeMethod(fv reflect.Value, rc *runConfig, cfg *config.Config) (*Method, error) {
	ft := fv.Type()

	name := rc.name
	if name == "" {
		if f := runtime.FuncForPC(fv.Pointer()); f != nil {
			name = f.Name()
		}
	}

	m := &Method{
		Name:   name,
		Read:   withDefaultEncoding(rc.method, cfg.Encoding),
		Params: make([]Parameter, ft.NumIn()),
	}
	for i := range m.Params {
		m.Params[i] = Parameter{Index: i, Type: ft.In(i)}
	}
	for idx, read := range rc.params {
		if idx < 0 || idx >= len(m.Params) {
			return nil, errors.InvalidInput(errors.PhaseConfigure,
				fmt.Sprintf("resource configured for parameter %d, but %s has %d parameters", idx, name, len(m.Params)))
		}
		m.Params[idx].Read = withDefaultEncoding(read, cfg.Encoding)
	}
	return m, nil
}

func withDefaultEncoding(r *ResourceRead, enc string) *ResourceRead {
	if r == nil {
		return nil
	}
	out := *r
	if out.Encoding == "" {
		out.Encoding = enc
	}
	return &out
}

func pickResolver(chain []ParameterResolver, pc ParameterContext) ParameterResolver {
	for _, r := range chain {
		if r.Supports(pc) {
			return r
		}
	}
	return nil
}

// argValue adapts a resolved value to the declared parameter type. Named
// types with the same underlying kind, such as `type Lines []string`, are
// converted.
func argValue(v any, p Parameter) (reflect.Value, error) {
	if v == nil {
		switch p.Type.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
			return reflect.Zero(p.Type), nil
		}
		return reflect.Value{}, errors.New(errors.PhaseInvoke, errors.KindTypeMismatch).
			Param(p.Index).
			GoType(typeName(p.Type)).
			Detail("resolver returned nil").
			Build()
	}

	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(p.Type) {
		return rv, nil
	}
	if rv.Kind() == p.Type.Kind() && rv.Type().ConvertibleTo(p.Type) {
		return rv.Convert(p.Type), nil
	}
	return reflect.Value{}, errors.New(errors.PhaseInvoke, errors.KindTypeMismatch).
		Param(p.Index).
		GoType(typeName(p.Type)).
		Detail("resolver returned %s", rv.Type()).
		Build()
}

func closerKind(v any) resource.Kind {
	if _, ok := content.StreamElem(reflect.TypeOf(v)); ok {
		return resource.KindStream
	}
	if _, ok := v.(fs.File); ok {
		return resource.KindFile
	}
	return resource.KindOther
}

func stringerOf(l classpath.Loader) fmt.Stringer {
	if s, ok := l.(fmt.Stringer); ok {
		return s
	}
	return loaderName{l}
}

type loaderName struct {
	l classpath.Loader
}

func (n loaderName) String() string {
	return fmt.Sprintf("%T", n.l)
}

type releaseLogger struct {
	method string
}

func (l *releaseLogger) OnResourceEvent(e resource.Event) {
	if e.Type != resource.EventReleased {
		return
	}
	Logger().Debug("released test resource",
		zap.String("name", l.method),
		zap.Stringer("kind", e.Kind),
		zap.Uint32("handle", uint32(e.Handle)),
		zap.Error(e.Err),
	)
}

var (
	tbType  = reflect.TypeFor[testing.TB]()
	tType   = reflect.TypeFor[*testing.T]()
	bType   = reflect.TypeFor[*testing.B]()
	ctxType = reflect.TypeFor[context.Context]()
)

// testingResolver supplies the running test and its context.
type testingResolver struct{}

func (testingResolver) Supports(pc ParameterContext) bool {
	switch pc.Parameter.Type {
	case tbType, tType, bType, ctxType:
		return true
	}
	return false
}

func (testingResolver) Resolve(pc ParameterContext, ec *Context) (any, error) {
	p := pc.Parameter
	if ec == nil || ec.TB == nil {
		return nil, errors.InvalidInput(errors.PhaseInvoke, "no test in the context")
	}

	switch p.Type {
	case tbType:
		return ec.TB, nil
	case ctxType:
		return ec.TB.Context(), nil
	case tType:
		if t, ok := ec.TB.(*testing.T); ok {
			return t, nil
		}
	case bType:
		if b, ok := ec.TB.(*testing.B); ok {
			return b, nil
		}
	}
	return nil, errors.New(errors.PhaseInvoke, errors.KindTypeMismatch).
		Param(p.Index).
		GoType(typeName(p.Type)).
		Detail("running test is %T", ec.TB).
		Build()
}
