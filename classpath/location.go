package classpath

import (
	"io/fs"
	"path/filepath"
)

// Location is a resource found on a classpath root.
type Location struct {
	Root Root
	Name string
}

// Open opens the resource. Every call returns an independent handle.
func (l Location) Open() (fs.File, error) {
	return l.Root.fsys.Open(l.Name)
}

// Path returns the OS path of the resource when its root is disk-backed.
func (l Location) Path() (string, bool) {
	if l.Root.dir == "" {
		return "", false
	}
	return filepath.Join(l.Root.dir, filepath.FromSlash(l.Name)), true
}

// IsZero reports whether l is the zero Location.
func (l Location) IsZero() bool {
	return l.Root.fsys == nil && l.Name == ""
}

func (l Location) String() string {
	if p, ok := l.Path(); ok {
		return p
	}
	return "fs:" + l.Name
}
