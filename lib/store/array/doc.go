// Package array implements the array backed storage engines of tinycoll.
//
// All array stores share one storage core: an owned contiguous buffer with a
// logical size. The core manages the capacity and shifts elements on insertion
// and removal. Two variants are layered on top of it:
//
//   - Unordered (NewUnordered, NewUnorderedFunc): membership is a forward linear
//     scan, the insertion index is chosen by the caller (Size() appends).
//   - Ordered (NewOrdered, NewOrderedFunc): elements are kept sorted in
//     ascending or descending order, membership and insertion points are computed
//     by binary search, caller supplied indices are ignored.
//
// Both variants honour the duplicate policy of their store.Options.
//
// Capacity management:
//
//	The buffer starts with MinCapacity (3) slots. When an insertion would make
//	the size equal to the capacity, the buffer doubles. After removals the buffer
//	halves while its capacity exceeds MinCapacity and twice the size. Every resize
//	copies the live elements in order into a fresh buffer. Freed slots are reset
//	to the zero value so the store never keeps removed elements reachable.
//
// Cursors iterate the live elements in storage order, which for ordered stores
// is the sort order.
//
// Thread-safety: stores of this package are not thread-safe.
package array
