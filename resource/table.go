package resource

import (
	"io"
	"sync"

	"go.uber.org/multierr"
)

// Table tracks open values and closes them on release.
type Table struct {
	backend   *localBackend
	observers []Observer
	obsMu     sync.RWMutex
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		backend: newLocalBackend(),
	}
}

// Insert tracks value and returns its handle, or 0 once the table is closed.
func (t *Table) Insert(kind Kind, value io.Closer) Handle {
	if value == nil {
		return 0
	}

	handle, err := t.backend.create(kind, value)
	if err != nil {
		return 0
	}

	t.notify(Event{
		Type:   EventTracked,
		Handle: handle,
		Kind:   kind,
		Value:  value,
	})

	return handle
}

// Release closes the value behind handle and stops tracking it.
// Releasing an unknown handle is a no-op.
func (t *Table) Release(handle Handle) error {
	e, ok := t.backend.drop(handle)
	if !ok {
		return nil
	}

	err := e.value.Close()

	t.notify(Event{
		Type:   EventReleased,
		Handle: handle,
		Kind:   e.kind,
		Value:  e.value,
		Err:    err,
	})

	return err
}

// Subscribe adds an observer for lifecycle events.
func (t *Table) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Table) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// Len returns the number of tracked values.
func (t *Table) Len() int {
	return t.backend.len()
}

// Close releases every tracked value and stops accepting new ones.
// Close errors of individual values are combined.
func (t *Table) Close() error {
	var err error
	for _, h := range t.backend.seal() {
		err = multierr.Append(err, t.Release(h))
	}
	return err
}

func (t *Table) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnResourceEvent(e)
	}
}
