package testing

import (
	"math/rand"
	"testing"

	"github.com/ValentinKolb/tinycoll/lib/store"
)

const (
	// benchmarkWindow bounds the size of stores that grow during a benchmark
	benchmarkWindow = 4096
	// benchmarkPrefill is the number of elements read-only benchmarks start with
	benchmarkPrefill = 1024
)

// RunStoreBenchmarks runs all benchmarks for a store implementation
func RunStoreBenchmarks(b *testing.B, name string, factory StoreFactory) {
	b.Run(name, func(b *testing.B) {
		b.Run("Append", func(b *testing.B) {
			BenchmarkAppend(b, factory)
		})

		b.Run("InsertFront", func(b *testing.B) {
			BenchmarkInsertFront(b, factory)
		})

		b.Run("Contains", func(b *testing.B) {
			BenchmarkContains(b, factory)
		})

		b.Run("RemoveAt", func(b *testing.B) {
			BenchmarkRemoveAt(b, factory)
		})

		b.Run("Churn", func(b *testing.B) {
			BenchmarkChurn(b, factory, nil)
		})
	})
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

// insertFront adds item so that it becomes the first element
func insertFront(s store.Store[int], f Feature, item int) bool {
	switch {
	case f.Has(FeatureAppend):
		s.(appender).Prepend(item)
		return true
	case f.Has(FeatureAscending):
		return s.Insert(-item, 0)
	case f.Has(FeatureDescending):
		return s.Insert(item, 0)
	default:
		return s.Insert(item, 0)
	}
}

// prefill adds the items 0..n-1
func prefill(s store.Store[int], n int) {
	for i := 0; i < n; i++ {
		appendItem(s, i)
	}
}

// --------------------------------------------------------------------------
// Benchmark functions
// --------------------------------------------------------------------------

// BenchmarkAppend measures adding elements at the end of a store.
// The store is cleared whenever it reaches the benchmark window.
func BenchmarkAppend(b *testing.B, factory StoreFactory) {
	s := factory()
	b.Cleanup(s.Clear)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if s.Size() >= benchmarkWindow {
			s.Clear()
		}
		if !appendItem(s, i) {
			b.Fatalf("Append failed for %d", i)
		}
	}
}

// BenchmarkInsertFront measures adding elements in front of all others
func BenchmarkInsertFront(b *testing.B, factory StoreFactory) {
	s := factory()
	f := FeaturesOf(s)
	b.Cleanup(s.Clear)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if s.Size() >= benchmarkWindow {
			s.Clear()
		}
		if !insertFront(s, f, i) {
			b.Fatalf("Insert at the front failed for %d", i)
		}
	}
}

// BenchmarkContains measures membership tests, half of them for absent elements
func BenchmarkContains(b *testing.B, factory StoreFactory) {
	s := factory()
	prefill(s, benchmarkPrefill)
	b.Cleanup(s.Clear)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Contains(i % (2 * benchmarkPrefill))
	}
}

// BenchmarkRemoveAt measures removing the first element.
// The store is refilled (outside of the timer) when it runs empty.
func BenchmarkRemoveAt(b *testing.B, factory StoreFactory) {
	s := factory()
	b.Cleanup(s.Clear)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if s.Size() == 0 {
			b.StopTimer()
			prefill(s, benchmarkPrefill)
			b.StartTimer()
		}
		s.RemoveAt(0)
	}
}

// BenchmarkChurn measures a random mix of insertions and removals that keeps
// the size of the store fluctuating. If observe is not nil it is called with
// the store after every operation (inside the timer).
func BenchmarkChurn(b *testing.B, factory StoreFactory, observe func(s store.Store[int])) {
	s := factory()
	f := FeaturesOf(s)
	rng := rand.New(rand.NewSource(42))
	b.Cleanup(s.Clear)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		item := rng.Intn(benchmarkWindow)
		switch rng.Intn(4) {
		case 0, 1:
			if s.Size() < benchmarkWindow {
				appendItem(s, item)
			}
		case 2:
			insertFront(s, f, item)
		default:
			if s.Size() > 0 {
				s.RemoveAt(rng.Intn(s.Size()))
			}
		}
		if observe != nil {
			observe(s)
		}
	}
}
