package content

import (
	"io"
	"iter"
	"reflect"
	"sync"

	"github.com/wippyai/test-resources/errors"
)

// Stream is a lazy, single-pass sequence backed by an open resource.
//
// The underlying handle is released when iteration reaches the end, when the
// consumer stops early, or when Close is called, whichever comes first.
// A Stream that is never iterated must be closed by its consumer.
type Stream[T any] struct {
	next   func() (T, bool, error)
	closer io.Closer
	err    error
	mu     sync.Mutex
	used   bool
	closed bool
}

// NewStream creates a stream pulling values from next. next reports false
// at the end of the sequence. closer may be nil.
func NewStream[T any](next func() (T, bool, error), closer io.Closer) *Stream[T] {
	return &Stream[T]{next: next, closer: closer}
}

// All returns the stream as an iterator. Only the first call yields values;
// later calls yield nothing and record an error.
func (s *Stream[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.mu.Lock()
		if s.used || s.closed {
			if s.err == nil {
				s.err = errors.InvalidInput(errors.PhaseLoad, "stream has already been consumed or closed")
			}
			s.mu.Unlock()
			return
		}
		s.used = true
		s.mu.Unlock()

		defer s.Close()

		for {
			v, ok, err := s.next()
			if err != nil {
				s.setErr(err)
				return
			}
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect drains the stream into a slice.
func (s *Stream[T]) Collect() ([]T, error) {
	var out []T
	for v := range s.All() {
		out = append(out, v)
	}
	return out, s.Err()
}

// Err returns the first error met while iterating.
func (s *Stream[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close releases the underlying handle. It is safe to call more than once.
func (s *Stream[T]) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	c := s.closer
	s.closer = nil
	s.mu.Unlock()

	if c == nil {
		return nil
	}
	return c.Close()
}

// Closed reports whether the underlying handle has been released.
func (s *Stream[T]) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Stream[T]) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		s.err = err
	}
}

func (s *Stream[T]) elemType() reflect.Type {
	return reflect.TypeFor[T]()
}

type elemTyper interface {
	elemType() reflect.Type
}

var (
	elemTyperType = reflect.TypeFor[elemTyper]()
	streamPkgPath = reflect.TypeFor[Stream[struct{}]]().PkgPath()
)

// StreamElem reports the element type when t is *Stream[E].
func StreamElem(t reflect.Type) (reflect.Type, bool) {
	if t == nil || t.Kind() != reflect.Pointer {
		return nil, false
	}
	if t.Elem().PkgPath() != streamPkgPath || !t.Implements(elemTyperType) {
		return nil, false
	}
	et, ok := reflect.Zero(t).Interface().(elemTyper)
	if !ok {
		return nil, false
	}
	return et.elemType(), true
}
