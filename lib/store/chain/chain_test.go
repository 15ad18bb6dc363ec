package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ValentinKolb/tinycoll/lib/store"
)

func TestChain_RemoveAtMiddle(t *testing.T) {
	c := NewChain[string]()
	c.Append("A")
	c.Append("B")
	c.Append("C")

	c.RemoveAt(1)
	assert.Equal(t, []string{"A", "C"}, store.Collect(c.Cursor()))
	assert.Equal(t, 2, c.Size())
}

func TestChain_InsertAt(t *testing.T) {
	c := NewChain[int]()
	assert.False(t, c.InsertAt(1, 0), "empty chain has no index 0")

	c.Append(3)
	require.True(t, c.InsertAt(1, 0))
	require.True(t, c.InsertAt(2, 1))
	assert.False(t, c.InsertAt(4, 3))
	assert.Equal(t, []int{1, 2, 3}, store.Collect(c.Cursor()))
}

func TestChain_SharedHeader(t *testing.T) {
	c := NewChain[int]().(*chainImpl[int])
	for i := 0; i < 4; i++ {
		c.Append(i)
	}

	for l := c.head; l != nil; l = l.next {
		assert.Same(t, c.head.hdr, l.hdr)
		assert.Equal(t, 4, l.Len())
	}

	c.RemoveAt(2)
	for l := c.head; l != nil; l = l.next {
		assert.Equal(t, 3, l.Len())
	}
}

func TestChain_RemoveAllConsecutive(t *testing.T) {
	c := NewChain[int]()
	for _, item := range []int{1, 1, 2, 1, 1} {
		c.Append(item)
	}
	c.RemoveAll(1)
	assert.Equal(t, []int{2}, store.Collect(c.Cursor()))
}

func TestChainFunc(t *testing.T) {
	type point struct{ x, y int }
	c := NewChainFunc(func(a, b point) bool { return a.x == b.x })
	c.Append(point{1, 1})
	c.Append(point{2, 2})

	index, found := c.Contains(point{x: 2})
	assert.True(t, found)
	assert.Equal(t, 1, index)
	assert.Equal(t, 2, c.At(index).y)
}

func TestChain_LongChainClear(t *testing.T) {
	c := NewChain[int]()
	for i := 0; i < 100000; i++ {
		c.Prepend(i)
	}
	assert.Equal(t, 99999, *c.At(0))
	c.RemoveAll(-1)
	c.Clear()
	assert.Equal(t, 0, c.Size())
	assert.False(t, c.Cursor().HasNext())
}
