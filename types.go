package testresources

import (
	"io/fs"
	"strings"

	"github.com/wippyai/test-resources/classpath"
	"github.com/wippyai/test-resources/content"
	"github.com/wippyai/test-resources/errors"
)

// Stream is a lazy, single-pass sequence over a resource.
type Stream[T any] = content.Stream[T]

// ContentLines carries the lines of a resource.
type ContentLines struct {
	Lines []string
}

// ContentString carries the content of a resource.
type ContentString struct {
	Content string
}

func (c ContentLines) String() string {
	return strings.Join(c.Lines, "\n")
}

func (c ContentString) String() string {
	return c.Content
}

// ResourceFile opens resources from the classpath of the running test.
type ResourceFile struct {
	loader classpath.Loader
}

// NewResourceFile binds a ResourceFile to loader.
func NewResourceFile(loader classpath.Loader) *ResourceFile {
	return &ResourceFile{loader: loader}
}

// Loader returns the classpath the handle reads from.
func (r *ResourceFile) Loader() classpath.Loader {
	return r.loader
}

// Get opens the named resource. The caller closes the file.
func (r *ResourceFile) Get(name string) (fs.File, error) {
	loc, err := classpath.Locate(r.loader, name)
	if err != nil {
		return nil, err
	}
	f, err := loc.Open()
	if err != nil {
		return nil, errors.ResourceReadFailure(name, err)
	}
	return f, nil
}

// ResourcePath resolves resources from the classpath of the running test to
// OS paths and reads them by name.
type ResourcePath struct {
	loader classpath.Loader
}

// NewResourcePath binds a ResourcePath to loader.
func NewResourcePath(loader classpath.Loader) *ResourcePath {
	return &ResourcePath{loader: loader}
}

// Loader returns the classpath the handle reads from.
func (r *ResourcePath) Loader() classpath.Loader {
	return r.loader
}

// Get returns the OS path of the named resource. Resources on roots that are
// not directories on disk have no path.
func (r *ResourcePath) Get(name string) (string, error) {
	loc, err := classpath.Locate(r.loader, name)
	if err != nil {
		return "", err
	}
	p, ok := loc.Path()
	if !ok {
		return "", errors.New(errors.PhaseLookup, errors.KindUnsupported).
			Resource(name).
			Detail("resource is not stored in a directory on disk").
			Build()
	}
	return p, nil
}

// Lines opens a lazy UTF-8 line stream over the named resource.
func (r *ResourcePath) Lines(name string) (*Stream[string], error) {
	return r.LinesEncoding(name, content.DefaultEncoding)
}

// LinesEncoding opens a lazy line stream decoded with encoding.
func (r *ResourcePath) LinesEncoding(name, encoding string) (*Stream[string], error) {
	loc, err := classpath.Locate(r.loader, name)
	if err != nil {
		return nil, err
	}
	return content.OpenLines(loc, encoding)
}

// ReadAllLines returns the UTF-8 lines of the named resource.
func (r *ResourcePath) ReadAllLines(name string) ([]string, error) {
	return r.ReadAllLinesEncoding(name, content.DefaultEncoding)
}

// ReadAllLinesEncoding returns the lines of the named resource decoded with
// encoding.
func (r *ResourcePath) ReadAllLinesEncoding(name, encoding string) ([]string, error) {
	loc, err := classpath.Locate(r.loader, name)
	if err != nil {
		return nil, err
	}
	return content.Lines(loc, encoding)
}

// ReadAllBytes returns the raw content of the named resource.
func (r *ResourcePath) ReadAllBytes(name string) ([]byte, error) {
	loc, err := classpath.Locate(r.loader, name)
	if err != nil {
		return nil, err
	}
	return content.Bytes(loc)
}
