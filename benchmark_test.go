package sharedptr_test

import (
	"testing"

	sharedptr "github.com/dillonhicks/shared-ptr"
)

// The cost of the abstraction is one allocation per guard on top of the
// underlying primitive. The benchmarks exist to keep that visible.

func BenchmarkCell_ReadGuard(b *testing.B) {
	c := sharedptr.NewCell(0)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		g := c.Read()
		_ = g.Get()
		g.Release()
	}
}

func BenchmarkCell_WriteGuard(b *testing.B) {
	c := sharedptr.NewCell(0)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		g := c.Write()
		*g.Ptr()++
		g.Release()
	}
}

func BenchmarkMutex_WriteGuard(b *testing.B) {
	m := sharedptr.NewMutex(0)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		g := m.Write()
		*g.Ptr()++
		g.Release()
	}
}

func BenchmarkMutex_WriteGuardContended(b *testing.B) {
	m := sharedptr.NewMutex(0)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			g := m.Write()
			*g.Ptr()++
			g.Release()
		}
	})
}

func BenchmarkRWLock_ReadGuardParallel(b *testing.B) {
	r := sharedptr.NewRWLock(42)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			g := r.Read()
			_ = g.Get()
			g.Release()
		}
	})
}

func BenchmarkRWLock_WriteGuard(b *testing.B) {
	r := sharedptr.NewRWLock(0)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		g := r.Write()
		*g.Ptr()++
		g.Release()
	}
}
