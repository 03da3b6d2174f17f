// Package sharedptr abstracts over three kinds of shared pointers with
// interior mutability behind a single Read/Write surface.
//
// Concurrency primitives do not share an API: a runtime-checked cell
// borrows and releases, a mutex locks and unlocks, and a reader/writer
// lock distinguishes read locking from write locking. Switching a data
// structure from one to another means rewriting every call site. This
// package provides three handle types that expose the same two-operation
// surface, so changing concurrency-control strategy is a type change, not
// a refactor:
//
//   - [Cell]: single-goroutine sharing with runtime borrow checking.
//     Conflicting borrows panic immediately; nothing ever blocks. Not
//     safe for concurrent use.
//   - [Mutex]: any-goroutine sharing over a sync.Mutex. Read and Write
//     acquire the same exclusive lock, so all access serializes.
//   - [RWLock]: any-goroutine sharing over a sync.RWMutex. Readers run
//     concurrently; a writer excludes everyone.
//
// Callers pick a backend by constructing the concrete type; the choice is
// a blocking/failure policy, not just a performance profile, and it is
// fixed for the handle's lifetime.
//
// # Quick Start
//
// Construct a handle, share it by cloning, and access the payload through
// scoped guards:
//
//	counts := sharedptr.NewRWLock(map[string]int{})
//
//	alias := counts.Clone() // same storage, independent handle
//
//	w := alias.Write()
//	(*w.Ptr())["hits"]++
//	w.Release()
//
//	r := counts.Read()
//	defer r.Release()
//	fmt.Println(r.Get()["hits"]) // 1
//
// Release a guard with defer so it runs on every exit path, including
// panic unwind. For one-shot access the [Cell.Get] and [Cell.Set]
// conveniences (and their Mutex/RWLock counterparts) acquire and release
// in a single call.
//
// # Guards
//
// Read and Write return guard values that represent the active access
// grant. A guard keeps the shared storage reachable and holds the
// underlying lock or borrow until Release is called. Using or releasing a
// guard after Release panics; this catches the double-unlock bugs that
// sync.Mutex reports as unrecoverable fatal errors.
//
// Read guards expose Get. Write guards additionally expose Set and Ptr;
// Ptr grants in-place access for payloads such as maps and slices. The
// Mutex backend hands out the same [MutexGuard] for both operations
// because its read access is exclusive anyway.
//
// # Uniform contract without dynamic dispatch
//
// The three backends are independent concrete types; no interface value
// is ever created for them. Code generic over the backend uses the
// [Handle], [ReadGuard], and [WriteGuard] constraints, which exist only
// for compile-time parameterization. See [Equal] and [Compare] for the
// pattern.
//
// # Weak handles
//
// Each backend has a weak counterpart ([WeakCell], [WeakMutex],
// [WeakRWLock]) built on the runtime's weak pointers. Downgrade produces
// one from a strong handle; Upgrade recovers a strong handle until the
// storage has been reclaimed, after which it reports false. Shared
// ownership itself is the garbage collector's job: storage lives exactly
// as long as some strong handle or guard references it.
//
// # Interface payloads
//
// A handle can hold an interface-typed payload directly, for example
// sharedptr.NewMutex[io.Reader](f): the interface value carries its own
// indirection, so no extra boxing layer is needed.
//
// # Policy notes
//
// Locks are not poisoned. A goroutine that panics while holding a guard
// releases it during unwind if Release was deferred; a guard that is
// never released leaves the lock held forever, exactly as sync behaves.
// No fairness is guaranteed beyond what sync.Mutex and sync.RWMutex
// document; callers must not assume FIFO ordering between competing
// writers. None of the operations support cancellation or timeouts.
//
// The zero value of a handle is not usable; always construct with
// [NewCell], [NewMutex], or [NewRWLock].
package sharedptr
