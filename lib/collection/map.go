package collection

import (
	"cmp"
	"iter"

	"github.com/ValentinKolb/tinycoll/lib/store"
	"github.com/ValentinKolb/tinycoll/lib/store/array"
)

// KeyValue is one entry of an ArrayMap
type KeyValue[K, V any] struct {
	Key   K
	Value V
}

// ArrayMap is a sorted map: an ordered array store of entries compared by
// key only. Lookups by key are binary searches, lookups by value are linear
// scans.
//
// Thread-safety: ArrayMap is not thread-safe.
type ArrayMap[K, V any] struct {
	entries     array.OrderedStore[KeyValue[K, V]]
	equalValues func(a, b V) bool
}

// NewArrayMap creates an empty map with ascending keys
func NewArrayMap[K cmp.Ordered, V comparable]() *ArrayMap[K, V] {
	return NewArrayMapFunc[K, V](cmp.Compare[K], func(a, b V) bool { return a == b })
}

// NewArrayMapFunc creates an empty map ordering keys with compareKeys and
// comparing values with equalValues
func NewArrayMapFunc[K, V any](compareKeys func(a, b K) int, equalValues func(a, b V) bool) *ArrayMap[K, V] {
	compare := func(a, b KeyValue[K, V]) int { return compareKeys(a.Key, b.Key) }
	return &ArrayMap[K, V]{
		entries:     array.NewOrderedFunc(compare, &store.Options{AllowDuplicates: false, Order: store.Ascending}),
		equalValues: equalValues,
	}
}

// Add inserts a new entry. Returns false (and keeps the present value) if
// key is already mapped.
func (m *ArrayMap[K, V]) Add(key K, value V) bool {
	return m.entries.Insert(KeyValue[K, V]{Key: key, Value: value}, 0)
}

// Put maps key to value, replacing a present value
func (m *ArrayMap[K, V]) Put(key K, value V) {
	if index, found := m.entries.Contains(KeyValue[K, V]{Key: key}); found {
		m.entries.At(index).Value = value
		return
	}
	m.entries.Insert(KeyValue[K, V]{Key: key, Value: value}, 0)
}

// Remove removes the entry of key. No-op if absent.
func (m *ArrayMap[K, V]) Remove(key K) {
	m.entries.Remove(KeyValue[K, V]{Key: key})
}

// RemoveAll removes every entry whose value equals value
func (m *ArrayMap[K, V]) RemoveAll(value V) {
	for i := m.entries.Size() - 1; i >= 0; i-- {
		if m.equalValues(m.entries.At(i).Value, value) {
			m.entries.RemoveAt(i)
		}
	}
}

// TryGet returns the value mapped to key
func (m *ArrayMap[K, V]) TryGet(key K) (V, bool) {
	if index, found := m.entries.Contains(KeyValue[K, V]{Key: key}); found {
		return m.entries.At(index).Value, true
	}
	var zero V
	return zero, false
}

// ContainsKey reports whether key is mapped
func (m *ArrayMap[K, V]) ContainsKey(key K) bool {
	_, found := m.entries.Contains(KeyValue[K, V]{Key: key})
	return found
}

// Contains reports whether any key is mapped to value
func (m *ArrayMap[K, V]) Contains(value V) bool {
	for c := m.entries.Cursor(); c.HasNext(); c.Next() {
		if m.equalValues(c.Get().Value, value) {
			return true
		}
	}
	return false
}

// At returns the entry at index in key order.
// CAUTION: index must be within [0, Size()).
func (m *ArrayMap[K, V]) At(index int) KeyValue[K, V] {
	return *m.entries.At(index)
}

// Size returns the number of entries
func (m *ArrayMap[K, V]) Size() int { return m.entries.Size() }

// Clear removes all entries
func (m *ArrayMap[K, V]) Clear() { m.entries.Clear() }

// Cursor iterates the entries in key order
func (m *ArrayMap[K, V]) Cursor() store.Cursor[KeyValue[K, V]] {
	return m.entries.Cursor()
}

// All returns a sequence over all entries in key order
func (m *ArrayMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for c := m.entries.Cursor(); c.HasNext(); c.Next() {
			entry := c.Get()
			if !yield(entry.Key, entry.Value) {
				return
			}
		}
	}
}
