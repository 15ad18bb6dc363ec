// Package testing provides standardised tests and benchmarks for
// storage engines that satisfy the store.Store interface.
//
// The package contains:
//   - testing: A conformance suite validating the store contract (bounds,
//     removals, cursors, ordering, duplicate policy and the capacity band)
//     including a randomised comparison against a slice based model
//   - benchmark: Workloads measuring the cost of common store operations,
//     exported so that they can also be driven outside of `go test`
//
// The suite adapts to the store it is given: FeaturesOf probes for ordering
// (Order), duplicate policy (AllowsDuplicates), capacity (store.Resizable)
// and linked insertion (Append, Prepend) and skips tests for features the
// store does not have.
//
// Example usage:
//
//	// Creating a factory function for your implementation
//	factory := func() store.Store[int] {
//		return NewMyStore[int]()
//	}
//
//	// Running the standard test suite
//	testing.RunStoreTests(t, "MyStore", factory)
//
//	// Running performance benchmarks
//	testing.RunStoreBenchmarks(b, "MyStore", factory)
package testing
