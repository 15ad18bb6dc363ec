//go:build tinycoll_debug

package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursor_PanicsAfterMutation(t *testing.T) {
	c := NewChain[int]()
	c.Append(1)
	c.Append(2)

	it := c.Cursor()
	c.Append(3)
	assert.Panics(t, func() { it.Get() })
}
