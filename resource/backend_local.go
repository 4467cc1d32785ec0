package resource

import (
	"errors"
	"io"
	"sync"
)

var errClosed = errors.New("resource table closed")

// localBackend stores tracked values in a slice indexed by handle-1 and
// reuses freed handles.
type localBackend struct {
	entries  []entry
	freeList []Handle
	mu       sync.RWMutex
	closed   bool
}

type entry struct {
	value io.Closer
	kind  Kind
	valid bool
}

func newLocalBackend() *localBackend {
	return &localBackend{
		entries:  make([]entry, 0, 16),
		freeList: make([]Handle, 0, 4),
	}
}

func (b *localBackend) create(kind Kind, value io.Closer) (Handle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0, errClosed
	}

	e := entry{
		kind:  kind,
		value: value,
		valid: true,
	}

	if len(b.freeList) > 0 {
		handle := b.freeList[len(b.freeList)-1]
		b.freeList = b.freeList[:len(b.freeList)-1]
		b.entries[handle-1] = e
		return handle, nil
	}

	b.entries = append(b.entries, e)
	return Handle(len(b.entries)), nil
}

// drop forgets handle and returns its entry so the caller can close it
// outside the lock.
func (b *localBackend) drop(handle Handle) (entry, bool) {
	if handle == 0 {
		return entry{}, false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	idx := handle - 1
	if int(idx) >= len(b.entries) {
		return entry{}, false
	}

	e := b.entries[idx]
	if !e.valid {
		return entry{}, false
	}

	b.entries[idx] = entry{}
	b.freeList = append(b.freeList, handle)
	return e, true
}

// seal stops accepting values and returns the handles still live.
func (b *localBackend) seal() []Handle {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	var live []Handle
	for i, e := range b.entries {
		if e.valid {
			live = append(live, Handle(i+1))
		}
	}
	return live
}

func (b *localBackend) len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	count := 0
	for _, e := range b.entries {
		if e.valid {
			count++
		}
	}
	return count
}
