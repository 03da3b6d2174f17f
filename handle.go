package sharedptr

import "cmp"

// The interfaces in this file are type constraints. They exist so code
// can be generic over the choice of backend at compile time; no
// interface value is ever created for a handle or a guard, and the
// backends share no dynamic dispatch.

// ReadGuard is the surface common to every read guard: *CellReadGuard,
// *MutexGuard, and *RWReadGuard all satisfy it.
type ReadGuard[T any] interface {
	// Get returns a copy of the payload.
	Get() T

	// Release ends the access grant.
	Release()
}

// WriteGuard is the surface common to every write guard: *CellWriteGuard,
// *MutexGuard, and *RWWriteGuard all satisfy it.
type WriteGuard[T any] interface {
	// Get returns a copy of the payload.
	Get() T

	// Set replaces the payload.
	Set(T)

	// Ptr returns a pointer to the payload for in-place mutation.
	Ptr() *T

	// Release ends the access grant.
	Release()
}

// Handle is the full backend contract: construction aside, it is
// everything Cell, Mutex, and RWLock have in common. H is the handle
// type itself, RG and WG its guard types. A function generic over Handle
// compiles once per backend and its call sites are identical across all
// three:
//
//	func bump[RG sharedptr.ReadGuard[int], WG sharedptr.WriteGuard[int], H sharedptr.Handle[H, int, RG, WG]](h H) {
//		g := h.Write()
//		defer g.Release()
//		*g.Ptr()++
//	}
type Handle[H any, T any, RG ReadGuard[T], WG WriteGuard[T]] interface {
	// Clone returns a new handle aliasing the same storage.
	Clone() H

	// Read grants shared access for the guard's lifetime.
	Read() RG

	// Write grants exclusive access for the guard's lifetime.
	Write() WG

	// Get returns a copy of the payload under a transient read grant.
	Get() T

	// Set replaces the payload under a transient write grant.
	Set(T)
}

// Value is the guardless slice of the contract, enough for helpers that
// only need one-shot payload access. All three backends satisfy it.
type Value[T any] interface {
	Get() T
	Set(T)
}

// Equal reports whether two handles of the same backend hold equal
// payloads. Each payload is copied out under its own transient read
// grant, one handle at a time, so Equal follows the backend's blocking
// or panicking policy; do not call it while holding a conflicting guard
// on either handle.
//
// The payload type cannot be inferred; supply it explicitly:
//
//	sharedptr.Equal[int](a, b)
func Equal[T comparable, H Value[T]](a, b H) bool {
	return a.Get() == b.Get()
}

// Compare orders two handles of the same backend by payload, returning
// -1, 0, or 1 like [cmp.Compare]. The same access caveats as [Equal]
// apply.
func Compare[T cmp.Ordered, H Value[T]](a, b H) int {
	return cmp.Compare(a.Get(), b.Get())
}
