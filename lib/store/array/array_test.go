package array

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ValentinKolb/tinycoll/lib/store"
)

func TestOrdered_AscendingWithoutDuplicates(t *testing.T) {
	s := NewOrdered[int](&store.Options{AllowDuplicates: false})

	for _, item := range []int{5, 1, 3} {
		require.True(t, s.Insert(item, 0))
	}
	assert.Equal(t, []int{1, 3, 5}, store.Collect(s.Cursor()))

	assert.False(t, s.Insert(3, 0), "duplicate must be refused")
	assert.Equal(t, 3, s.Size())

	index, found := s.Contains(3)
	assert.True(t, found)
	assert.Equal(t, 1, index)
	assert.Equal(t, store.Ascending, s.Order())
	assert.False(t, s.AllowsDuplicates())
}

func TestOrdered_InsertionPoint(t *testing.T) {
	s := NewOrdered[int](nil)
	for _, item := range []int{10, 20, 30, 40} {
		s.Insert(item, 0)
	}

	cases := []struct {
		item  int
		index int
	}{
		{5, 0},
		{15, 1},
		{25, 2},
		{35, 3},
		{45, 4},
	}
	for _, tc := range cases {
		index, found := s.Contains(tc.item)
		assert.False(t, found, "item %d", tc.item)
		assert.Equal(t, tc.index, index, "insertion point of %d", tc.item)
	}
}

func TestOrdered_Descending(t *testing.T) {
	s := NewOrdered[string](&store.Options{AllowDuplicates: true, Order: store.Descending})
	for _, item := range []string{"b", "d", "a", "c", "b"} {
		require.True(t, s.Insert(item, 0))
	}
	assert.Equal(t, []string{"d", "c", "b", "b", "a"}, store.Collect(s.Cursor()))

	index, found := s.Contains("bb")
	assert.False(t, found)
	assert.Equal(t, 2, index)
}

func TestOrderedFunc_CompareByField(t *testing.T) {
	type user struct {
		name string
		age  int
	}
	s := NewOrderedFunc(func(a, b user) int { return a.age - b.age }, &store.Options{AllowDuplicates: false})

	require.True(t, s.Insert(user{"bob", 40}, 0))
	require.True(t, s.Insert(user{"alice", 30}, 0))
	assert.False(t, s.Insert(user{"carol", 30}, 0), "equal by compare means duplicate")

	index, found := s.Contains(user{age: 40})
	assert.True(t, found)
	assert.Equal(t, "bob", s.At(index).name)
}

func TestUnordered_RemoveAllShrinksToMinimum(t *testing.T) {
	s := NewUnordered[string](nil)
	for i := 0; i < 3; i++ {
		require.True(t, s.Insert("a", 0))
	}
	assert.Equal(t, []string{"a", "a", "a"}, store.Collect(s.Cursor()))
	assert.Equal(t, 6, s.Capacity())

	s.RemoveAll("a")
	assert.Equal(t, 0, s.Size())
	assert.Equal(t, MinCapacity, s.Capacity())
}

func TestUnorderedFunc_CaseInsensitive(t *testing.T) {
	s := NewUnorderedFunc(strings.EqualFold, &store.Options{AllowDuplicates: false})

	require.True(t, s.Insert("Hello", 0))
	assert.False(t, s.Insert("HELLO", 1))

	index, found := s.Contains("hello")
	assert.True(t, found)
	assert.Equal(t, 0, index)
}

func TestUnordered_Holes(t *testing.T) {
	s := NewUnordered[*int](nil).(*unorderedImpl[*int])
	for i := 0; i < 5; i++ {
		v := i
		s.Insert(&v, s.Size())
	}

	s.RemoveAt(0)
	s.RemoveAt(0)
	for i := s.size; i < len(s.data); i++ {
		assert.Nil(t, s.data[i], "slot %d must be reset", i)
	}

	s.Clear()
	for i := range s.data {
		assert.Nil(t, s.data[i], "slot %d must be reset", i)
	}
}

func TestAt_OutOfRangePanics(t *testing.T) {
	s := NewUnordered[int](nil)
	s.Insert(1, 0)

	// the buffer has spare slots, they must not be reachable
	assert.Panics(t, func() { s.At(1) })
	assert.Panics(t, func() { s.At(-1) })
}
