package testresources

import (
	"github.com/wippyai/test-resources/classpath"
	"github.com/wippyai/test-resources/config"
)

// Option configures a Run or Invoke call.
type Option func(*runConfig)

// ReadOption configures a ResourceRead.
type ReadOption func(*ResourceRead)

type runConfig struct {
	name      string
	method    *ResourceRead
	params    map[int]*ResourceRead
	loader    classpath.Loader
	cfg       *config.Config
	resolvers []ParameterResolver
}

func newRunConfig(opts []Option) *runConfig {
	rc := &runConfig{params: make(map[int]*ResourceRead)}
	for _, opt := range opts {
		opt(rc)
	}
	return rc
}

// Encoding names the charset of the resource. Defaults to UTF-8.
func Encoding(name string) ReadOption {
	return func(r *ResourceRead) {
		r.Encoding = name
	}
}

// Read configures the resource for every parameter of the test function that
// has no configuration of its own.
func Read(name string, opts ...ReadOption) Option {
	return func(rc *runConfig) {
		rc.method = newRead(name, opts)
	}
}

// Param configures the resource of the parameter at index. Index counts all
// parameters of the test function, including *testing.T.
func Param(index int, name string, opts ...ReadOption) Option {
	return func(rc *runConfig) {
		rc.params[index] = newRead(name, opts)
	}
}

// WithClasspath sets the classpath resources are located on.
func WithClasspath(loader classpath.Loader) Option {
	return func(rc *runConfig) {
		rc.loader = loader
	}
}

// WithRoots sets a classpath made of roots.
func WithRoots(roots ...classpath.Root) Option {
	return func(rc *runConfig) {
		rc.loader = classpath.New(roots...)
	}
}

// WithConfig uses cfg instead of loading testresources.yaml.
func WithConfig(cfg *config.Config) Option {
	return func(rc *runConfig) {
		rc.cfg = cfg
	}
}

// WithResolver appends a resolver consulted after the built-in ones.
func WithResolver(r ParameterResolver) Option {
	return func(rc *runConfig) {
		if r != nil {
			rc.resolvers = append(rc.resolvers, r)
		}
	}
}

// Named sets the name reported for the test function.
func Named(name string) Option {
	return func(rc *runConfig) {
		rc.name = name
	}
}

func newRead(name string, opts []ReadOption) *ResourceRead {
	r := &ResourceRead{Name: name}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
