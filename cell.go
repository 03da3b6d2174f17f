package sharedptr

import (
	"fmt"
	"weak"
)

// borrowWriter marks an outstanding write guard in a cell's borrow
// counter. Positive values count outstanding read guards.
const borrowWriter = -1

type cellBox[T any] struct {
	value  T
	borrow int
}

// Cell is the single-goroutine shared handle with runtime borrow
// checking. Read and Write never block: a conflicting borrow is a
// programming error and panics immediately, before the conflicting
// access can observe or mutate the payload.
//
// Cell is not safe for concurrent use. Its borrow counter is not
// synchronized; sharing a Cell across goroutines is a misuse that the
// race detector will report. Use [Mutex] or [RWLock] for cross-goroutine
// sharing.
type Cell[T any] struct {
	box *cellBox[T]
}

// NewCell wraps v in fresh shared storage and returns a handle to it.
func NewCell[T any](v T) Cell[T] {
	return Cell[T]{box: &cellBox[T]{value: v}}
}

// Clone returns a new handle aliasing the same storage. The payload is
// not copied. Plain assignment of a Cell is equivalent; Clone exists so
// aliasing is explicit and the surface matches the other backends.
func (c Cell[T]) Clone() Cell[T] {
	return c
}

// Read grants shared access to the payload until the guard is released.
// Any number of read guards may be outstanding at once.
//
// Read panics if a write guard is outstanding on the same storage.
func (c Cell[T]) Read() *CellReadGuard[T] {
	if c.box.borrow == borrowWriter {
		panic("sharedptr: Cell is already exclusively borrowed")
	}
	c.box.borrow++

	return &CellReadGuard[T]{box: c.box}
}

// Write grants exclusive access to the payload until the guard is
// released.
//
// Write panics if any guard, read or write, is outstanding on the same
// storage.
func (c Cell[T]) Write() *CellWriteGuard[T] {
	if c.box.borrow != 0 {
		panic("sharedptr: Cell is already borrowed")
	}
	c.box.borrow = borrowWriter

	return &CellWriteGuard[T]{box: c.box}
}

// Get returns a copy of the payload, acquiring and releasing a read
// guard around the access.
func (c Cell[T]) Get() T {
	g := c.Read()
	defer g.Release()

	return g.Get()
}

// Set replaces the payload, acquiring and releasing a write guard around
// the store.
func (c Cell[T]) Set(v T) {
	g := c.Write()
	defer g.Release()

	g.Set(v)
}

// Downgrade returns a weak handle to the same storage. Weak handles do
// not keep the storage alive.
func (c Cell[T]) Downgrade() WeakCell[T] {
	return WeakCell[T]{p: weak.Make(c.box)}
}

// String formats the payload under a read guard.
func (c Cell[T]) String() string {
	g := c.Read()
	defer g.Release()

	return fmt.Sprintf("Cell(%v)", g.Get())
}

// CellReadGuard is an active shared borrow of a Cell's payload.
type CellReadGuard[T any] struct {
	box      *cellBox[T]
	released bool
}

// Get returns a copy of the payload. It panics if the guard has been
// released.
func (g *CellReadGuard[T]) Get() T {
	if g.released {
		panic("sharedptr: use of released guard")
	}

	return g.box.value
}

// Release ends the borrow. It panics if called twice.
func (g *CellReadGuard[T]) Release() {
	if g.released {
		panic("sharedptr: release of released guard")
	}
	g.released = true
	g.box.borrow--
}

// CellWriteGuard is an active exclusive borrow of a Cell's payload.
type CellWriteGuard[T any] struct {
	box      *cellBox[T]
	released bool
}

// Get returns a copy of the payload. It panics if the guard has been
// released.
func (g *CellWriteGuard[T]) Get() T {
	if g.released {
		panic("sharedptr: use of released guard")
	}

	return g.box.value
}

// Set replaces the payload. It panics if the guard has been released.
func (g *CellWriteGuard[T]) Set(v T) {
	if g.released {
		panic("sharedptr: use of released guard")
	}
	g.box.value = v
}

// Ptr returns a pointer to the payload for in-place mutation. The
// pointer must not be used after the guard is released. It panics if the
// guard has already been released.
func (g *CellWriteGuard[T]) Ptr() *T {
	if g.released {
		panic("sharedptr: use of released guard")
	}

	return &g.box.value
}

// Release ends the borrow. It panics if called twice.
func (g *CellWriteGuard[T]) Release() {
	if g.released {
		panic("sharedptr: release of released guard")
	}
	g.released = true
	g.box.borrow = 0
}

// WeakCell is a weak handle to a Cell's storage. The zero value is a
// dangling weak handle that never upgrades.
type WeakCell[T any] struct {
	p weak.Pointer[cellBox[T]]
}

// NewWeakCell returns a dangling weak handle. Upgrade on it always
// reports false.
func NewWeakCell[T any]() WeakCell[T] {
	return WeakCell[T]{}
}

// Upgrade returns a strong handle to the storage, or reports false if
// the storage has been reclaimed.
func (w WeakCell[T]) Upgrade() (Cell[T], bool) {
	box := w.p.Value()
	if box == nil {
		return Cell[T]{}, false
	}

	return Cell[T]{box: box}, true
}
