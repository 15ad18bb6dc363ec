// Package event implements an observer list on top of the containers in
// lib/collection.
//
// A Handler stores its registrations in a collection.LinkedSet keyed by a
// random subscription id, so one function can be registered several times
// and every registration can be removed individually:
//
//	clicked := event.NewHandler[*Button, Point]()
//	sub := clicked.Register(func(b *Button, p Point) { ... })
//	clicked.Call(button, Point{X: 1, Y: 2})
//	clicked.Unregister(sub)
//
// Handlers implement Callable themselves and can be nested with
// RegisterCallable.
package event
