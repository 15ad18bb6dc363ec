package collection

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ValentinKolb/tinycoll/lib/store"
)

func TestArrayList(t *testing.T) {
	l := NewArrayList[string]()
	l.Append("b")
	require.True(t, l.Add("a", 0))
	l.Append("c")
	l.Append("b")
	assert.False(t, l.Add("x", 10))

	assert.Equal(t, []string{"a", "b", "c", "b"}, slices.Collect(l.All()))
	assert.Equal(t, 4, l.Size())
	assert.Equal(t, 6, l.Capacity())

	index, found := l.Contains("c")
	assert.True(t, found)
	assert.Equal(t, 2, index)

	l.RemoveAll("b")
	assert.Equal(t, []string{"a", "c"}, slices.Collect(l.All()))

	l.RemoveAt(0)
	assert.Equal(t, "c", *l.At(0))

	l.Clear()
	assert.True(t, l.IsEmpty())
}

func TestArrayListFunc(t *testing.T) {
	l := NewArrayListFunc(strings.EqualFold)
	l.Append("Go")
	l.Append("GO")
	l.Remove("go")
	assert.Equal(t, []string{"GO"}, slices.Collect(l.All()))
}

func TestArraySet(t *testing.T) {
	s := NewArraySet[int]()
	assert.True(t, s.Add(3))
	assert.True(t, s.Add(1))
	assert.False(t, s.Add(3))
	assert.True(t, s.Has(1))
	assert.False(t, s.Has(2))

	// insertion order is kept
	assert.Equal(t, []int{3, 1}, slices.Collect(s.All()))
}

func TestOrderedSet(t *testing.T) {
	s := NewOrderedSet[int](store.Descending)
	for _, item := range []int{4, 8, 1, 8} {
		s.Add(item)
	}
	assert.Equal(t, []int{8, 4, 1}, slices.Collect(s.All()))
	assert.Equal(t, store.Descending, s.Order())

	s.Remove(4)
	assert.False(t, s.Has(4))
	assert.Equal(t, 2, s.Size())
}

func TestOrderedSetFunc(t *testing.T) {
	byLength := func(a, b string) int { return len(a) - len(b) }
	s := NewOrderedSetFunc(byLength, store.Ascending)

	assert.True(t, s.Add("ccc"))
	assert.True(t, s.Add("a"))
	assert.False(t, s.Add("b"), "same length means same member")
	assert.Equal(t, []string{"a", "ccc"}, slices.Collect(s.All()))
}

func TestOrderedList(t *testing.T) {
	l := NewOrderedList[float64](store.Ascending)
	for _, item := range []float64{2.5, 1, 2.5, -3} {
		l.Add(item)
	}
	assert.Equal(t, []float64{-3, 1, 2.5, 2.5}, slices.Collect(l.All()))

	l.RemoveAll(2.5)
	assert.Equal(t, 2, l.Size())
	assert.Equal(t, 3, l.Capacity())
}

func TestArrayMap(t *testing.T) {
	m := NewArrayMap[string, int]()
	assert.True(t, m.Add("b", 2))
	assert.True(t, m.Add("a", 1))
	assert.True(t, m.Add("c", 2))
	assert.False(t, m.Add("a", 100), "existing key")

	value, ok := m.TryGet("a")
	assert.True(t, ok)
	assert.Equal(t, 1, value)

	_, ok = m.TryGet("z")
	assert.False(t, ok)

	assert.True(t, m.ContainsKey("c"))
	assert.True(t, m.Contains(2))
	assert.False(t, m.Contains(3))
	assert.Equal(t, KeyValue[string, int]{Key: "a", Value: 1}, m.At(0))

	var keys []string
	for k := range m.All() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"a", "b", "c"}, keys)

	m.RemoveAll(2)
	assert.Equal(t, 1, m.Size())
	assert.False(t, m.ContainsKey("b"))

	m.Put("a", 10)
	m.Put("d", 4)
	value, _ = m.TryGet("a")
	assert.Equal(t, 10, value)
	assert.Equal(t, 2, m.Size())

	m.Remove("a")
	assert.False(t, m.ContainsKey("a"))

	m.Clear()
	assert.Equal(t, 0, m.Size())
	assert.False(t, m.Cursor().HasNext())
}

func TestLinkedList(t *testing.T) {
	l := NewLinkedList[int]()
	assert.False(t, l.Add(1, 0), "no element at index 0")

	l.Append(2)
	l.Append(4)
	require.True(t, l.Add(3, 1))
	l.Prepend(1)
	assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(l.All()))

	l.Remove(3)
	l.RemoveAt(0)
	assert.Equal(t, []int{2, 4}, slices.Collect(l.All()))
	assert.Equal(t, 4, *l.At(1))
}

func TestLinkedSet(t *testing.T) {
	s := NewLinkedSet[string]()
	assert.True(t, s.Append("b"))
	assert.True(t, s.Prepend("a"))
	assert.False(t, s.Append("a"))
	assert.False(t, s.Add("b", 0))
	assert.True(t, s.Add("c", 1))

	assert.Equal(t, []string{"a", "c", "b"}, slices.Collect(s.All()))
	assert.Equal(t, []string{"a", "c", "b"}, store.Collect(s.Cursor()))

	s.Remove("c")
	assert.False(t, s.Has("c"))
	assert.True(t, s.Append("c"))
	assert.Equal(t, 3, s.Size())
}

func TestStack(t *testing.T) {
	s := NewStack[int]()
	assert.Equal(t, 0, s.Pop(), "empty stack pops the zero value")

	_, ok := s.Peek()
	assert.False(t, ok)

	for i := 1; i <= 3; i++ {
		s.Push(i)
	}
	assert.Equal(t, []int{3, 2, 1}, store.Collect(s.Cursor()))

	top, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, 3, top)

	assert.Equal(t, 3, s.Pop())
	assert.Equal(t, 2, s.Pop())
	assert.Equal(t, 1, s.Size())

	s.Clear()
	assert.True(t, s.IsEmpty())
}

func TestQueue(t *testing.T) {
	q := NewQueue[string]()
	assert.Equal(t, "", q.Pop())

	q.Push("first")
	q.Push("second")
	q.Push("third")

	front, ok := q.Peek()
	assert.True(t, ok)
	assert.Equal(t, "first", front)

	assert.Equal(t, "first", q.Pop())
	assert.Equal(t, []string{"second", "third"}, store.Collect(q.Cursor()))
	assert.Equal(t, 2, q.Size())
	assert.False(t, q.IsEmpty())
}
