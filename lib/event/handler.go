package event

import (
	"github.com/ValentinKolb/tinycoll/lib/collection"
	"github.com/ValentinKolb/tinycoll/lib/store"
	"github.com/google/uuid"
	"github.com/lni/dragonboat/v4/logger"
)

var plog = logger.GetLogger("event")

// --------------------------------------------------------------------------
// Interface
// --------------------------------------------------------------------------

// Callable is implemented by everything that can be notified of an event:
// plain functions (Func) and handlers themselves.
type Callable[S, A any] interface {
	// Call notifies the callable. sender is the instigator of the event, args
	// describes it.
	Call(sender S, args A)
}

// Func adapts an ordinary function to a Callable
type Func[S, A any] func(sender S, args A)

// Call calls f(sender, args)
func (f Func[S, A]) Call(sender S, args A) {
	f(sender, args)
}

// Subscription identifies one registration of a Handler
type Subscription struct {
	id uuid.UUID
}

// String returns the subscription id
func (s Subscription) String() string {
	return s.id.String()
}

// --------------------------------------------------------------------------
// Handler
// --------------------------------------------------------------------------

// entry is one registered callable
type entry[S, A any] struct {
	id     uuid.UUID
	target Callable[S, A]
}

// Handler notifies a set of registered callables in registration order.
// A Handler is a Callable itself, so handlers can be registered with other
// handlers to build event chains.
//
// Thread-safety: Handler is not thread-safe.
type Handler[S, A any] struct {
	callbacks *collection.LinkedSet[entry[S, A]]
}

// NewHandler creates a handler without registrations
func NewHandler[S, A any]() *Handler[S, A] {
	return &Handler[S, A]{
		callbacks: collection.NewLinkedSetFunc(func(a, b entry[S, A]) bool { return a.id == b.id }),
	}
}

// Register subscribes fn to the handler
func (h *Handler[S, A]) Register(fn func(sender S, args A)) Subscription {
	return h.RegisterCallable(Func[S, A](fn))
}

// RegisterCallable subscribes c to the handler. The same callable may be
// registered more than once, every registration gets its own subscription.
func (h *Handler[S, A]) RegisterCallable(c Callable[S, A]) Subscription {
	e := entry[S, A]{id: uuid.New(), target: c}
	h.callbacks.Append(e)
	plog.Debugf("registered %s (%d subscriptions)", e.id, h.callbacks.Size())
	return Subscription{id: e.id}
}

// Unregister removes the registration of sub.
// Returns false if sub is not registered with this handler.
func (h *Handler[S, A]) Unregister(sub Subscription) bool {
	e := entry[S, A]{id: sub.id}
	if !h.callbacks.Has(e) {
		return false
	}
	h.callbacks.Remove(e)
	plog.Debugf("unregistered %s (%d subscriptions)", sub.id, h.callbacks.Size())
	return true
}

// Call notifies every registered callable in registration order.
// Registrations changed by a callable take effect with the next Call.
func (h *Handler[S, A]) Call(sender S, args A) {
	for _, e := range store.Collect(h.callbacks.Cursor()) {
		e.target.Call(sender, args)
	}
}

// Len returns the number of registrations
func (h *Handler[S, A]) Len() int {
	return h.callbacks.Size()
}

// Clear removes all registrations
func (h *Handler[S, A]) Clear() {
	h.callbacks.Clear()
}
