// Package collection provides ready to use containers on top of the storage
// engines in lib/store.
//
// Every container owns exactly one store and fixes its configuration:
//
//   - ArrayList: unordered array store, duplicates allowed, caller chosen positions
//   - ArraySet: unordered array store, duplicates refused
//   - OrderedList / OrderedSet: ordered array store with or without duplicates
//   - ArrayMap: ordered array store of KeyValue entries compared by key
//   - LinkedList: chain store, caller chosen positions
//   - LinkedSet: LinkedList that refuses duplicates
//   - Stack / Queue: chain store used as LIFO / FIFO
//
// Containers for comparable (or cmp.Ordered) element types are created with
// NewX, containers for other types with NewXFunc and an equality or
// comparison function.
//
// All containers expose cursors (see store.Cursor) and, where it makes sense,
// a range-over-func sequence:
//
//	set := collection.NewOrderedSet[int](store.Ascending)
//	set.Add(3)
//	set.Add(1)
//	for v := range set.All() {
//		fmt.Println(v) // 1, 3
//	}
//
// Thread-safety: containers are not thread-safe.
package collection
