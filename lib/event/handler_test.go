package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type button struct {
	name string
}

func TestHandler_CallOrder(t *testing.T) {
	h := NewHandler[*button, int]()
	var calls []string

	h.Register(func(b *button, n int) { calls = append(calls, "first") })
	h.Register(func(b *button, n int) { calls = append(calls, "second") })
	h.Register(func(b *button, n int) { calls = append(calls, b.name) })

	h.Call(&button{name: "ok"}, 1)
	assert.Equal(t, []string{"first", "second", "ok"}, calls)
	assert.Equal(t, 3, h.Len())
}

func TestHandler_Unregister(t *testing.T) {
	h := NewHandler[string, int]()
	sum := 0
	add := func(_ string, n int) { sum += n }

	first := h.Register(add)
	second := h.Register(add)
	assert.NotEqual(t, first.String(), second.String())

	h.Call("sender", 2)
	assert.Equal(t, 4, sum)

	require.True(t, h.Unregister(first))
	assert.False(t, h.Unregister(first), "already removed")

	h.Call("sender", 2)
	assert.Equal(t, 6, sum)
	assert.Equal(t, 1, h.Len())
}

func TestHandler_Nested(t *testing.T) {
	outer := NewHandler[string, string]()
	inner := NewHandler[string, string]()

	var got []string
	inner.Register(func(sender, args string) { got = append(got, sender+":"+args) })
	outer.RegisterCallable(inner)
	outer.Register(func(sender, args string) { got = append(got, "outer") })

	outer.Call("x", "y")
	assert.Equal(t, []string{"x:y", "outer"}, got)
}

func TestHandler_UnregisterDuringCall(t *testing.T) {
	h := NewHandler[int, int]()
	calls := 0

	var sub Subscription
	sub = h.Register(func(_, _ int) {
		calls++
		h.Unregister(sub)
	})
	h.Register(func(_, _ int) { calls++ })

	h.Call(0, 0)
	assert.Equal(t, 2, calls)

	h.Call(0, 0)
	assert.Equal(t, 3, calls)

	h.Clear()
	assert.Equal(t, 0, h.Len())
}
