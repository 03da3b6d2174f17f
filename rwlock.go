package sharedptr

import (
	"fmt"
	"sync"
	"weak"
)

type rwBox[T any] struct {
	mu    sync.RWMutex
	value T
}

// RWLock is the reader/writer shared handle. Read acquires the lock
// shared, so any number of readers proceed concurrently; Write acquires
// it exclusively, blocking until all readers and any writer have
// released.
//
// RWLock inherits sync.RWMutex semantics: a blocked Write excludes new
// readers, so recursive read locking on the same storage can deadlock if
// a writer is waiting in between.
//
// RWLock is safe for concurrent use by multiple goroutines.
type RWLock[T any] struct {
	box *rwBox[T]
}

// NewRWLock wraps v in fresh shared storage and returns a handle to it.
func NewRWLock[T any](v T) RWLock[T] {
	return RWLock[T]{box: &rwBox[T]{value: v}}
}

// Clone returns a new handle aliasing the same storage. The payload is
// not copied.
func (r RWLock[T]) Clone() RWLock[T] {
	return r
}

// Read acquires the lock shared and returns a guard granting read access
// to the payload. It blocks only while a writer holds or is acquiring
// the lock.
func (r RWLock[T]) Read() *RWReadGuard[T] {
	r.box.mu.RLock()

	return &RWReadGuard[T]{box: r.box}
}

// Write acquires the lock exclusively and returns a guard granting write
// access to the payload. It blocks until no readers and no other writer
// hold the lock.
func (r RWLock[T]) Write() *RWWriteGuard[T] {
	r.box.mu.Lock()

	return &RWWriteGuard[T]{box: r.box}
}

// Get returns a copy of the payload, holding a shared lock only for the
// duration of the copy.
func (r RWLock[T]) Get() T {
	g := r.Read()
	defer g.Release()

	return g.Get()
}

// Set replaces the payload, holding the exclusive lock only for the
// duration of the store.
func (r RWLock[T]) Set(v T) {
	g := r.Write()
	defer g.Release()

	g.Set(v)
}

// Downgrade returns a weak handle to the same storage. Weak handles do
// not keep the storage alive.
func (r RWLock[T]) Downgrade() WeakRWLock[T] {
	return WeakRWLock[T]{p: weak.Make(r.box)}
}

// String formats the payload under a shared lock.
func (r RWLock[T]) String() string {
	g := r.Read()
	defer g.Release()

	return fmt.Sprintf("RWLock(%v)", g.Get())
}

// RWReadGuard is an active shared hold of an RWLock handle's lock.
type RWReadGuard[T any] struct {
	box      *rwBox[T]
	released bool
}

// Get returns a copy of the payload. It panics if the guard has been
// released.
func (g *RWReadGuard[T]) Get() T {
	if g.released {
		panic("sharedptr: use of released guard")
	}

	return g.box.value
}

// Release drops the shared lock. It panics if called twice.
func (g *RWReadGuard[T]) Release() {
	if g.released {
		panic("sharedptr: release of released guard")
	}
	g.released = true
	g.box.mu.RUnlock()
}

// RWWriteGuard is an active exclusive hold of an RWLock handle's lock.
type RWWriteGuard[T any] struct {
	box      *rwBox[T]
	released bool
}

// Get returns a copy of the payload. It panics if the guard has been
// released.
func (g *RWWriteGuard[T]) Get() T {
	if g.released {
		panic("sharedptr: use of released guard")
	}

	return g.box.value
}

// Set replaces the payload. It panics if the guard has been released.
func (g *RWWriteGuard[T]) Set(v T) {
	if g.released {
		panic("sharedptr: use of released guard")
	}
	g.box.value = v
}

// Ptr returns a pointer to the payload for in-place mutation. The
// pointer must not be used after the guard is released. It panics if the
// guard has already been released.
func (g *RWWriteGuard[T]) Ptr() *T {
	if g.released {
		panic("sharedptr: use of released guard")
	}

	return &g.box.value
}

// Release drops the exclusive lock. It panics if called twice.
func (g *RWWriteGuard[T]) Release() {
	if g.released {
		panic("sharedptr: release of released guard")
	}
	g.released = true
	g.box.mu.Unlock()
}

// WeakRWLock is a weak handle to an RWLock handle's storage. The zero
// value is a dangling weak handle that never upgrades.
type WeakRWLock[T any] struct {
	p weak.Pointer[rwBox[T]]
}

// NewWeakRWLock returns a dangling weak handle. Upgrade on it always
// reports false.
func NewWeakRWLock[T any]() WeakRWLock[T] {
	return WeakRWLock[T]{}
}

// Upgrade returns a strong handle to the storage, or reports false if
// the storage has been reclaimed.
func (w WeakRWLock[T]) Upgrade() (RWLock[T], bool) {
	box := w.p.Value()
	if box == nil {
		return RWLock[T]{}, false
	}

	return RWLock[T]{box: box}, true
}
