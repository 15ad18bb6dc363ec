package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceCursor is a minimal cursor over a slice
type sliceCursor struct {
	items []int
	index int
}

func (c *sliceCursor) HasNext() bool { return c.index < len(c.items) }
func (c *sliceCursor) Get() *int     { return &c.items[c.index] }
func (c *sliceCursor) Next()         { c.index++ }

func TestParseKind(t *testing.T) {
	for input, expected := range map[string]Kind{
		"unordered": KindUnordered,
		"Ordered":   KindOrdered,
		" chain ":   KindChain,
	} {
		kind, err := ParseKind(input)
		require.NoError(t, err)
		assert.Equal(t, expected, kind)
	}

	_, err := ParseKind("hash")
	assert.Error(t, err)
}

func TestParseOrder(t *testing.T) {
	for input, expected := range map[string]Order{
		"":           Ascending,
		"asc":        Ascending,
		"Descending": Descending,
		"desc":       Descending,
	} {
		order, err := ParseOrder(input)
		require.NoError(t, err)
		assert.Equal(t, expected, order)
	}

	_, err := ParseOrder("random")
	assert.Error(t, err)
	assert.Equal(t, "descending", Descending.String())
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.True(t, opts.AllowDuplicates)
	assert.Equal(t, Ascending, opts.Order)
}

func TestValues(t *testing.T) {
	var got []int
	for v := range Values[int](&sliceCursor{items: []int{1, 2, 3, 4}}) {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2}, got)
}

func TestCollect(t *testing.T) {
	assert.Equal(t, []int{}, Collect[int](&sliceCursor{}))
	assert.Equal(t, []int{5, 6}, Collect[int](&sliceCursor{items: []int{5, 6}}))
}
