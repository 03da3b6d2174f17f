package sharedptr

import (
	"fmt"
	"sync"
	"weak"
)

type mutexBox[T any] struct {
	mu    sync.Mutex
	value T
}

// Mutex is the exclusive-lock shared handle. Read and Write acquire the
// same sync.Mutex, so every access serializes against every other —
// there is no reader concurrency. Both operations block until the lock
// is free and return the same guard type, since read access is exclusive
// here anyway.
//
// Mutex is safe for concurrent use by multiple goroutines.
type Mutex[T any] struct {
	box *mutexBox[T]
}

// NewMutex wraps v in fresh shared storage and returns a handle to it.
func NewMutex[T any](v T) Mutex[T] {
	return Mutex[T]{box: &mutexBox[T]{value: v}}
}

// Clone returns a new handle aliasing the same storage. The payload is
// not copied.
func (m Mutex[T]) Clone() Mutex[T] {
	return m
}

// Read locks the storage and returns a guard granting access to the
// payload. It blocks until the lock is free.
func (m Mutex[T]) Read() *MutexGuard[T] {
	m.box.mu.Lock()

	return &MutexGuard[T]{box: m.box}
}

// Write locks the storage and returns a guard granting exclusive access
// to the payload. It blocks until the lock is free.
func (m Mutex[T]) Write() *MutexGuard[T] {
	m.box.mu.Lock()

	return &MutexGuard[T]{box: m.box}
}

// Get returns a copy of the payload, holding the lock only for the
// duration of the copy.
func (m Mutex[T]) Get() T {
	g := m.Read()
	defer g.Release()

	return g.Get()
}

// Set replaces the payload, holding the lock only for the duration of
// the store.
func (m Mutex[T]) Set(v T) {
	g := m.Write()
	defer g.Release()

	g.Set(v)
}

// Downgrade returns a weak handle to the same storage. Weak handles do
// not keep the storage alive.
func (m Mutex[T]) Downgrade() WeakMutex[T] {
	return WeakMutex[T]{p: weak.Make(m.box)}
}

// String formats the payload under the lock. It blocks like Read; do not
// call it while holding a guard on the same storage.
func (m Mutex[T]) String() string {
	g := m.Read()
	defer g.Release()

	return fmt.Sprintf("Mutex(%v)", g.Get())
}

// MutexGuard is an active hold of a Mutex handle's lock. It is returned
// by both Read and Write and grants full access to the payload.
type MutexGuard[T any] struct {
	box      *mutexBox[T]
	released bool
}

// Get returns a copy of the payload. It panics if the guard has been
// released.
func (g *MutexGuard[T]) Get() T {
	if g.released {
		panic("sharedptr: use of released guard")
	}

	return g.box.value
}

// Set replaces the payload. It panics if the guard has been released.
func (g *MutexGuard[T]) Set(v T) {
	if g.released {
		panic("sharedptr: use of released guard")
	}
	g.box.value = v
}

// Ptr returns a pointer to the payload for in-place mutation. The
// pointer must not be used after the guard is released. It panics if the
// guard has already been released.
func (g *MutexGuard[T]) Ptr() *T {
	if g.released {
		panic("sharedptr: use of released guard")
	}

	return &g.box.value
}

// Release unlocks the storage. It panics if called twice.
func (g *MutexGuard[T]) Release() {
	if g.released {
		panic("sharedptr: release of released guard")
	}
	g.released = true
	g.box.mu.Unlock()
}

// WeakMutex is a weak handle to a Mutex handle's storage. The zero value
// is a dangling weak handle that never upgrades.
type WeakMutex[T any] struct {
	p weak.Pointer[mutexBox[T]]
}

// NewWeakMutex returns a dangling weak handle. Upgrade on it always
// reports false.
func NewWeakMutex[T any]() WeakMutex[T] {
	return WeakMutex[T]{}
}

// Upgrade returns a strong handle to the storage, or reports false if
// the storage has been reclaimed.
func (w WeakMutex[T]) Upgrade() (Mutex[T], bool) {
	box := w.p.Value()
	if box == nil {
		return Mutex[T]{}, false
	}

	return Mutex[T]{box: box}, true
}
