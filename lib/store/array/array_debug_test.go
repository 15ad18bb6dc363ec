//go:build tinycoll_debug

package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursor_PanicsAfterMutation(t *testing.T) {
	s := NewUnordered[int](nil)
	s.Insert(1, 0)

	it := s.Cursor()
	s.RemoveAt(0)
	assert.Panics(t, func() { it.HasNext() })

	// a fresh cursor is fine
	assert.NotPanics(t, func() { s.Cursor().HasNext() })
}
