// Package classpath locates named test resources across an ordered set of
// filesystem roots.
//
// A Classpath plays the part of a class loader: resource names are
// '/'-separated and relative to each root, and the first root that holds a
// name wins. Roots are either disk-backed (Dir), in which case a located
// resource also reports an OS path, or any fs.FS (FS), such as an embed.FS.
//
//	cp := classpath.New(classpath.Dir("testdata"), classpath.FS(fixtures))
//	loc, err := classpath.Locate(cp, "sub/anton.txt")
//
// Lookups never mutate the classpath, so one Classpath can serve concurrent
// tests.
package classpath

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/wippyai/test-resources/errors"
)

// Loader finds resources by name.
type Loader interface {
	// Resource returns the location of name, or false when no root holds it.
	Resource(name string) (Location, bool)
}

// Root is one entry of a classpath.
type Root struct {
	fsys fs.FS
	dir  string
}

// Dir returns a disk-backed root. Relative dirs are made absolute against
// the working directory at the time of the call.
func Dir(dir string) Root {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return Root{fsys: os.DirFS(dir), dir: dir}
}

// FS returns a root over an arbitrary filesystem. Resources located through
// it have no OS path.
func FS(fsys fs.FS) Root {
	return Root{fsys: fsys}
}

// FileSystem returns the filesystem the root reads from.
func (r Root) FileSystem() fs.FS {
	return r.fsys
}

// Dir returns the OS directory of a disk-backed root, or "".
func (r Root) Dir() string {
	return r.dir
}

func (r Root) String() string {
	if r.dir != "" {
		return r.dir
	}
	return "fs"
}

// Classpath is an ordered list of roots.
type Classpath struct {
	roots []Root
}

// New creates a classpath searching roots in order.
func New(roots ...Root) *Classpath {
	rs := make([]Root, 0, len(roots))
	for _, r := range roots {
		if r.fsys != nil {
			rs = append(rs, r)
		}
	}
	return &Classpath{roots: rs}
}

// FromDirs creates a classpath of disk-backed roots. Directories that do not
// exist stay on the classpath and simply never match.
func FromDirs(dirs ...string) *Classpath {
	roots := make([]Root, 0, len(dirs))
	for _, d := range dirs {
		if d == "" {
			continue
		}
		roots = append(roots, Dir(d))
	}
	return New(roots...)
}

// Roots returns a copy of the roots in search order.
func (c *Classpath) Roots() []Root {
	out := make([]Root, len(c.roots))
	copy(out, c.roots)
	return out
}

// Resource implements Loader.
func (c *Classpath) Resource(name string) (Location, bool) {
	if !fs.ValidPath(name) || name == "." {
		return Location{}, false
	}
	for _, r := range c.roots {
		if _, err := fs.Stat(r.fsys, name); err == nil {
			return Location{Root: r, Name: name}, true
		}
	}
	return Location{}, false
}

func (c *Classpath) String() string {
	parts := make([]string, len(c.roots))
	for i, r := range c.roots {
		parts[i] = r.String()
	}
	return strings.Join(parts, string(os.PathListSeparator))
}

// Locate resolves name through loader. A miss is reported as a resource
// not-found error carrying the name.
func Locate(loader Loader, name string) (Location, error) {
	if loader == nil {
		return Location{}, errors.InvalidInput(errors.PhaseLookup, "loader cannot be nil")
	}
	loc, ok := loader.Resource(name)
	if !ok {
		return Location{}, errors.ResourceNotFound(name)
	}
	return loc, nil
}
