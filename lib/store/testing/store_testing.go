package testing

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/ValentinKolb/tinycoll/lib/store"
)

// StoreFactory is a function that creates a new, empty store implementation
type StoreFactory func() store.Store[int]

// RunStoreTests runs a comprehensive test suite for a store implementation.
// The behaviour the suite expects (index semantics, ordering, duplicate
// policy, capacity management) is derived from the interfaces the store
// implements, see FeaturesOf.
func RunStoreTests(t *testing.T, name string, factory StoreFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Insert&At", func(t *testing.T) {
			testInsertAt(t, factory())
		})

		t.Run("InsertBounds", func(t *testing.T) {
			testInsertBounds(t, factory())
		})

		t.Run("Remove", func(t *testing.T) {
			testRemove(t, factory())
		})

		t.Run("RemoveAt", func(t *testing.T) {
			testRemoveAt(t, factory())
		})

		t.Run("RemoveAll", func(t *testing.T) {
			testRemoveAll(t, factory())
		})

		t.Run("Contains", func(t *testing.T) {
			testContains(t, factory())
		})

		t.Run("Clear", func(t *testing.T) {
			testClear(t, factory())
		})

		t.Run("Cursor", func(t *testing.T) {
			testCursor(t, factory())
		})

		t.Run("InsertRemoveRoundTrip", func(t *testing.T) {
			testRoundTrip(t, factory())
		})

		t.Run("DuplicateRejection", func(t *testing.T) {
			testDuplicateRejection(t, factory())
		})

		t.Run("Sortedness", func(t *testing.T) {
			testSortedness(t, factory())
		})

		t.Run("CapacityPolicy", func(t *testing.T) {
			testCapacityPolicy(t, factory())
		})

		t.Run("AppendPrepend", func(t *testing.T) {
			testAppendPrepend(t, factory())
		})

		t.Run("LargeStore", func(t *testing.T) {
			testLargeStore(t, factory())
		})

		t.Run("RandomOperations", func(t *testing.T) {
			testRandomOperations(t, factory)
		})
	})
}

// --------------------------------------------------------------------------
// Features
// --------------------------------------------------------------------------

// Feature describes a behaviour of a store that the suite adapts to
type Feature uint32

const (
	FeatureIndexedInsert Feature = 1 << iota // Insert accepts an index in [0, Size()]
	FeatureLinkedInsert                      // Insert accepts an index in [0, Size())
	FeatureAscending                         // Insert ignores the index, elements ascend
	FeatureDescending                        // Insert ignores the index, elements descend
	FeatureUnique                            // equal elements are refused
	FeatureCapacity                          // the store manages an explicit capacity
	FeatureAppend                            // the store has Append and Prepend
)

// Has reports whether all bits of other are set
func (f Feature) Has(other Feature) bool {
	return f&other == other
}

// sorted reports whether the store decides positions on its own
func (f Feature) sorted() bool {
	return f.Has(FeatureAscending) || f.Has(FeatureDescending)
}

type appender interface {
	Append(item int)
	Prepend(item int)
}

type duplicatePolicy interface {
	AllowsDuplicates() bool
}

type ordered interface {
	Order() store.Order
}

// FeaturesOf probes the interfaces s implements and returns its feature set
func FeaturesOf(s store.Store[int]) Feature {
	var f Feature

	if o, ok := s.(ordered); ok {
		if o.Order() == store.Descending {
			f |= FeatureDescending
		} else {
			f |= FeatureAscending
		}
	}
	if _, ok := s.(appender); ok {
		f |= FeatureAppend | FeatureLinkedInsert
	} else if !f.sorted() {
		f |= FeatureIndexedInsert
	}
	if d, ok := s.(duplicatePolicy); ok && !d.AllowsDuplicates() {
		f |= FeatureUnique
	}
	if _, ok := s.(store.Resizable); ok {
		f |= FeatureCapacity
	}
	return f
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

// Checks if the store supports the specified feature
// Skip the test if it is not supported
func requireFeature(t testing.TB, s store.Store[int], feature Feature) {
	if !FeaturesOf(s).Has(feature) {
		t.Skip()
	}
}

// appendItem adds item behind the last element (or at its sorted position)
func appendItem(s store.Store[int], item int) bool {
	if a, ok := s.(appender); ok {
		a.Append(item)
		return true
	}
	return s.Insert(item, s.Size())
}

// fill appends all items in order
func fill(t testing.TB, s store.Store[int], items ...int) {
	t.Helper()
	for _, item := range items {
		if !appendItem(s, item) {
			t.Fatalf("Failed to add item %d", item)
		}
	}
}

// arrange returns the sequence a store holds after items were appended
// (distinct items only)
func arrange(f Feature, items ...int) []int {
	result := slices.Clone(items)
	switch {
	case f.Has(FeatureAscending):
		slices.Sort(result)
	case f.Has(FeatureDescending):
		slices.Sort(result)
		slices.Reverse(result)
	}
	return result
}

// contents returns all elements of s by index
func contents(s store.Store[int]) []int {
	items := make([]int, 0, s.Size())
	for i := 0; i < s.Size(); i++ {
		items = append(items, *s.At(i))
	}
	return items
}

// expectContents fails the test if s does not hold exactly expected, both by
// index and by cursor
func expectContents(t testing.TB, s store.Store[int], expected []int) {
	t.Helper()
	if s.Size() != len(expected) {
		t.Fatalf("Expected size %d, got %d", len(expected), s.Size())
	}
	if got := contents(s); !slices.Equal(got, expected) {
		t.Fatalf("Expected elements %v by index, got %v", expected, got)
	}
	if got := store.Collect(s.Cursor()); !slices.Equal(got, expected) {
		t.Fatalf("Expected elements %v by cursor, got %v", expected, got)
	}
}

// expectCapacityBand checks the capacity invariants of resizable stores
func expectCapacityBand(t testing.TB, s store.Store[int]) {
	t.Helper()
	r, ok := s.(store.Resizable)
	if !ok {
		return
	}
	capacity, size := r.Capacity(), s.Size()
	if capacity < store.MinCapacity {
		t.Fatalf("Capacity %d is below the minimum %d", capacity, store.MinCapacity)
	}
	if size >= capacity {
		t.Fatalf("Capacity %d is not larger than size %d", capacity, size)
	}
	if capacity > 2*max(size, store.MinCapacity) {
		t.Fatalf("Capacity %d is more than twice max(size %d, %d)", capacity, size, store.MinCapacity)
	}
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testInsertAt(t *testing.T, s store.Store[int]) {
	f := FeaturesOf(s)

	if s.Size() != 0 {
		t.Fatalf("Expected a new store to be empty, got size %d", s.Size())
	}

	items := []int{42, 7, 19, 3, 88}
	fill(t, s, items...)
	expectContents(t, s, arrange(f, items...))

	// At returns a reference into the store
	ref := s.At(1)
	old := *ref
	*ref = -1
	if *s.At(1) != -1 {
		t.Errorf("Expected write through reference to be visible, got %d", *s.At(1))
	}
	*ref = old

	if f.Has(FeatureIndexedInsert) || f.Has(FeatureLinkedInsert) {
		if !s.Insert(100, 0) {
			t.Fatalf("Insert at the front failed")
		}
		if *s.At(0) != 100 {
			t.Errorf("Expected 100 at index 0, got %d", *s.At(0))
		}
		if !s.Insert(200, 2) {
			t.Fatalf("Insert in the middle failed")
		}
		expected := append([]int{100, items[0], 200}, items[1:]...)
		expectContents(t, s, expected)
	}
}

func testInsertBounds(t *testing.T, s store.Store[int]) {
	f := FeaturesOf(s)

	switch {
	case f.sorted():
		// the index is ignored entirely
		for _, index := range []int{-5, 0, 1000} {
			if !s.Insert(index, index) {
				t.Errorf("Insert with ignored index %d failed", index)
			}
		}
		expectContents(t, s, arrange(f, -5, 0, 1000))

	case f.Has(FeatureIndexedInsert):
		if s.Insert(1, -1) {
			t.Errorf("Insert at negative index should fail")
		}
		if s.Insert(1, 1) {
			t.Errorf("Insert behind the end of an empty store should fail")
		}
		if !s.Insert(1, 0) {
			t.Errorf("Insert at index 0 of an empty store should succeed")
		}
		if !s.Insert(2, 1) {
			t.Errorf("Insert at index Size() should append")
		}
		if s.Insert(3, 3) {
			t.Errorf("Insert at index Size()+1 should fail")
		}
		expectContents(t, s, []int{1, 2})

	case f.Has(FeatureLinkedInsert):
		if s.Insert(1, 0) {
			t.Errorf("Insert into an empty chain should fail")
		}
		fill(t, s, 1)
		if s.Insert(2, 1) {
			t.Errorf("Insert at index Size() should fail")
		}
		if s.Insert(2, -1) {
			t.Errorf("Insert at negative index should fail")
		}
		if !s.Insert(0, 0) {
			t.Errorf("Insert before the first element should succeed")
		}
		expectContents(t, s, []int{0, 1})
	}
	expectCapacityBand(t, s)
}

func testRemove(t *testing.T, s store.Store[int]) {
	f := FeaturesOf(s)

	// remove on an empty store is a no-op
	s.Remove(1)
	expectContents(t, s, []int{})

	fill(t, s, 10, 20, 30, 40)
	s.Remove(20)
	expectContents(t, s, arrange(f, 10, 30, 40))

	s.Remove(99)
	expectContents(t, s, arrange(f, 10, 30, 40))

	s.Remove(10)
	s.Remove(40)
	expectContents(t, s, []int{30})
	expectCapacityBand(t, s)

	if !f.Has(FeatureUnique) {
		fill(t, s, 5, 5)
		s.Remove(5)
		if s.Size() != 2 {
			t.Errorf("Remove should only drop one of two equal elements, size is %d", s.Size())
		}
	}
}

func testRemoveAt(t *testing.T, s store.Store[int]) {
	f := FeaturesOf(s)

	s.RemoveAt(0)
	s.RemoveAt(-1)
	expectContents(t, s, []int{})

	fill(t, s, 1, 2, 3, 4, 5)
	expected := arrange(f, 1, 2, 3, 4, 5)

	s.RemoveAt(-1)
	s.RemoveAt(5)
	expectContents(t, s, expected)

	s.RemoveAt(2)
	expected = slices.Delete(expected, 2, 3)
	expectContents(t, s, expected)

	s.RemoveAt(0)
	expected = expected[1:]
	expectContents(t, s, expected)

	s.RemoveAt(s.Size() - 1)
	expected = expected[:len(expected)-1]
	expectContents(t, s, expected)
	expectCapacityBand(t, s)
}

func testRemoveAll(t *testing.T, s store.Store[int]) {
	f := FeaturesOf(s)

	s.RemoveAll(1)
	expectContents(t, s, []int{})

	if f.Has(FeatureUnique) {
		fill(t, s, 1, 2, 3)
		s.RemoveAll(2)
		expectContents(t, s, arrange(f, 1, 3))
		return
	}

	// adjacent matches, including the first and the last element
	fill(t, s, 5, 5, 1, 5, 5, 2, 5)
	s.RemoveAll(5)
	expectContents(t, s, arrange(f, 1, 2))
	expectCapacityBand(t, s)

	s.RemoveAll(7)
	expectContents(t, s, arrange(f, 1, 2))

	// only matches
	s.Clear()
	fill(t, s, 9, 9, 9, 9, 9, 9, 9)
	s.RemoveAll(9)
	expectContents(t, s, []int{})
	expectCapacityBand(t, s)
}

func testContains(t *testing.T, s store.Store[int]) {
	f := FeaturesOf(s)

	if index, found := s.Contains(1); found || index != 0 {
		t.Errorf("Expected (0, false) on an empty store, got (%d, %v)", index, found)
	}

	items := []int{8, 3, 12, 6}
	fill(t, s, items...)
	expected := arrange(f, items...)

	for i, item := range expected {
		index, found := s.Contains(item)
		if !found {
			t.Errorf("Expected to find %d", item)
			continue
		}
		if index != i {
			t.Errorf("Expected %d at index %d, got %d", item, i, index)
		}
	}

	if _, found := s.Contains(100); found {
		t.Errorf("Did not expect to find 100")
	}
}

func testClear(t *testing.T, s store.Store[int]) {
	s.Clear()
	expectContents(t, s, []int{})

	for i := 0; i < 100; i++ {
		appendItem(s, i)
	}
	s.Clear()
	expectContents(t, s, []int{})

	if r, ok := s.(store.Resizable); ok && r.Capacity() != store.MinCapacity {
		t.Errorf("Expected capacity %d after clear, got %d", store.MinCapacity, r.Capacity())
	}
	if s.Cursor().HasNext() {
		t.Errorf("Expected cursor of a cleared store to be exhausted")
	}

	// the store is reusable after clear
	fill(t, s, 1)
	expectContents(t, s, []int{1})
}

func testCursor(t *testing.T, s store.Store[int]) {
	f := FeaturesOf(s)

	c := s.Cursor()
	if c.HasNext() {
		t.Fatalf("Expected cursor of an empty store to be exhausted")
	}

	items := []int{4, 9, 1, 7}
	fill(t, s, items...)
	expected := arrange(f, items...)

	// Get is valid before the first Next
	c = s.Cursor()
	if !c.HasNext() {
		t.Fatalf("Expected cursor to have an element")
	}
	if *c.Get() != expected[0] {
		t.Errorf("Expected first element %d, got %d", expected[0], *c.Get())
	}

	visited := 0
	for c = s.Cursor(); c.HasNext(); c.Next() {
		if *c.Get() != *s.At(visited) {
			t.Errorf("Cursor position %d yields %d, At yields %d", visited, *c.Get(), *s.At(visited))
		}
		visited++
	}
	if visited != s.Size() {
		t.Errorf("Cursor visited %d elements, expected %d", visited, s.Size())
	}

	// independent cursors
	a, b := s.Cursor(), s.Cursor()
	a.Next()
	if *b.Get() != expected[0] || *a.Get() != expected[1] {
		t.Errorf("Cursors are not independent")
	}

	var seq []int
	for item := range store.Values(s.Cursor()) {
		seq = append(seq, item)
	}
	if !slices.Equal(seq, expected) {
		t.Errorf("Expected sequence %v, got %v", expected, seq)
	}
}

func testRoundTrip(t *testing.T, s store.Store[int]) {
	requireFeature(t, s, FeatureIndexedInsert)

	fill(t, s, 1, 2, 3, 4)
	before := contents(s)

	for i := 0; i <= s.Size(); i++ {
		if !s.Insert(99, i) {
			t.Fatalf("Insert at %d failed", i)
		}
		s.RemoveAt(i)
		expectContents(t, s, before)
		expectCapacityBand(t, s)
	}
}

func testDuplicateRejection(t *testing.T, s store.Store[int]) {
	requireFeature(t, s, FeatureUnique)

	fill(t, s, 1, 2, 3)
	for _, item := range []int{1, 2, 3} {
		if s.Insert(item, 0) {
			t.Errorf("Insert of duplicate %d should fail", item)
		}
		if s.Size() != 3 {
			t.Errorf("Refused insert changed the size to %d", s.Size())
		}
	}
	if !s.Insert(4, 0) {
		t.Errorf("Insert of a new element should succeed")
	}
}

func testSortedness(t *testing.T, s store.Store[int]) {
	f := FeaturesOf(s)
	if !f.sorted() {
		t.Skip()
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		item := rng.Intn(100)
		if rng.Intn(3) == 0 {
			s.Remove(item)
		} else {
			s.Insert(item, rng.Intn(10)-5)
		}

		items := contents(s)
		if !slices.Equal(items, arrange(f, items...)) {
			t.Fatalf("Store lost its order after %d operations: %v", i+1, items)
		}
	}
}

func testCapacityPolicy(t *testing.T, s store.Store[int]) {
	requireFeature(t, s, FeatureCapacity)
	r := s.(store.Resizable)

	if r.Capacity() != store.MinCapacity {
		t.Fatalf("Expected initial capacity %d, got %d", store.MinCapacity, r.Capacity())
	}

	// sizes 1..2 keep the initial buffer, size 3 doubles it
	expected := []int{3, 3, 6, 6, 6, 12, 12, 12, 12, 12, 12, 24}
	for i, capacity := range expected {
		appendItem(s, i)
		if r.Capacity() != capacity {
			t.Errorf("Expected capacity %d at size %d, got %d", capacity, s.Size(), r.Capacity())
		}
	}

	// shrinking back down
	for s.Size() > 0 {
		s.RemoveAt(0)
		expectCapacityBand(t, s)
	}
	if r.Capacity() != store.MinCapacity {
		t.Errorf("Expected capacity %d after removing everything, got %d", store.MinCapacity, r.Capacity())
	}

	// removal by value shrinks as well
	for i := 0; i < 50; i++ {
		appendItem(s, i)
	}
	for i := 0; i < 50; i++ {
		s.Remove(i)
	}
	if r.Capacity() != store.MinCapacity {
		t.Errorf("Expected capacity %d, got %d", store.MinCapacity, r.Capacity())
	}
}

func testAppendPrepend(t *testing.T, s store.Store[int]) {
	requireFeature(t, s, FeatureAppend)
	a := s.(appender)

	a.Append(2)
	a.Prepend(1)
	a.Append(3)
	a.Prepend(0)
	expectContents(t, s, []int{0, 1, 2, 3})

	// append then remove drops exactly one element and keeps the order
	a.Append(2)
	s.Remove(2)
	expectContents(t, s, []int{0, 1, 3, 2})
}

func testLargeStore(t *testing.T, s store.Store[int]) {
	const n = 10000

	for i := 0; i < n; i++ {
		if a, ok := s.(appender); ok {
			a.Prepend(i)
		} else {
			appendItem(s, i)
		}
	}
	if s.Size() != n {
		t.Fatalf("Expected size %d, got %d", n, s.Size())
	}

	if _, found := s.Contains(n / 2); !found {
		t.Errorf("Expected to find %d", n/2)
	}

	count := 0
	for c := s.Cursor(); c.HasNext(); c.Next() {
		count++
	}
	if count != n {
		t.Errorf("Cursor visited %d elements, expected %d", count, n)
	}

	s.RemoveAll(0)
	s.Clear()
	expectContents(t, s, []int{})
}

// testRandomOperations applies random operations to a store and to a slice
// based model of it and compares both after every step
func testRandomOperations(t *testing.T, factory StoreFactory) {
	for seed := int64(1); seed <= 5; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			s := factory()
			f := FeaturesOf(s)
			m := &model{features: f}
			rng := rand.New(rand.NewSource(seed))

			for step := 0; step < 2000; step++ {
				op := m.apply(rng, s)
				if s.Size() != len(m.items) {
					t.Fatalf("step %d (%s): expected size %d, got %d", step, op, len(m.items), s.Size())
				}
				if got := contents(s); !slices.Equal(got, m.items) {
					t.Fatalf("step %d (%s): expected %v, got %v", step, op, m.items, got)
				}
				if m.err != "" {
					t.Fatalf("step %d (%s): %s", step, op, m.err)
				}
				expectCapacityBand(t, s)
			}
		})
	}
}

// --------------------------------------------------------------------------
// Model
// --------------------------------------------------------------------------

// model mirrors the expected contents of a store in a plain slice
type model struct {
	features Feature
	items    []int
	err      string
}

// position returns the insertion point of item in the sorted model
func (m *model) position(item int) int {
	if m.features.Has(FeatureDescending) {
		i, _ := slices.BinarySearchFunc(m.items, item, func(e, target int) int { return target - e })
		return i
	}
	i, _ := slices.BinarySearch(m.items, item)
	return i
}

// apply performs one random operation on s and on the model.
// Mismatches in return values are recorded in m.err.
func (m *model) apply(rng *rand.Rand, s store.Store[int]) string {
	item := rng.Intn(16)
	index := rng.Intn(len(m.items)+3) - 1
	m.err = ""

	switch op := rng.Intn(100); {
	case op < 45:
		ok := s.Insert(item, index)
		want := m.insert(item, index)
		if ok != want {
			m.err = fmt.Sprintf("Insert(%d, %d) returned %v, expected %v", item, index, ok, want)
		}
		return fmt.Sprintf("Insert(%d, %d)", item, index)

	case op < 55 && m.features.Has(FeatureAppend):
		a := s.(appender)
		if rng.Intn(2) == 0 {
			a.Append(item)
			m.items = append(m.items, item)
			return fmt.Sprintf("Append(%d)", item)
		}
		a.Prepend(item)
		m.items = slices.Insert(m.items, 0, item)
		return fmt.Sprintf("Prepend(%d)", item)

	case op < 70:
		s.Remove(item)
		if i := slices.Index(m.items, item); i >= 0 {
			m.items = slices.Delete(m.items, i, i+1)
		}
		return fmt.Sprintf("Remove(%d)", item)

	case op < 85:
		s.RemoveAt(index)
		if index >= 0 && index < len(m.items) {
			m.items = slices.Delete(m.items, index, index+1)
		}
		return fmt.Sprintf("RemoveAt(%d)", index)

	case op < 93:
		s.RemoveAll(item)
		m.items = slices.DeleteFunc(m.items, func(e int) bool { return e == item })
		return fmt.Sprintf("RemoveAll(%d)", item)

	case op < 99:
		got, found := s.Contains(item)
		want := slices.Index(m.items, item)
		switch {
		case found != (want >= 0):
			m.err = fmt.Sprintf("Contains(%d) reported found=%v", item, found)
		case found && m.items[got] != item:
			m.err = fmt.Sprintf("Contains(%d) reported index %d holding %d", item, got, m.items[got])
		case found && !m.features.sorted() && got != want:
			m.err = fmt.Sprintf("Contains(%d) reported index %d, first match is %d", item, got, want)
		case !found && m.features.sorted() && len(m.items) > 0 && got != m.position(item):
			m.err = fmt.Sprintf("Contains(%d) reported insertion point %d, expected %d", item, got, m.position(item))
		}
		return fmt.Sprintf("Contains(%d)", item)

	default:
		s.Clear()
		m.items = m.items[:0]
		return "Clear()"
	}
}

// insert applies an insertion to the model and reports whether it succeeds
func (m *model) insert(item, index int) bool {
	if m.features.Has(FeatureUnique) && slices.Contains(m.items, item) {
		return false
	}
	switch {
	case m.features.sorted():
		index = m.position(item)
	case m.features.Has(FeatureLinkedInsert):
		if index < 0 || index >= len(m.items) {
			return false
		}
	default:
		if index < 0 || index > len(m.items) {
			return false
		}
	}
	m.items = slices.Insert(m.items, index, item)
	return true
}
