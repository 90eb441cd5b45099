// Package store provides a small observable state container.
//
// A Store holds one immutable value of type T. Writers replace the value
// through SetState or Update; subscribers are told that something changed and
// read the fresh value themselves through GetState.
package store

import (
	"reflect"
	"sync"
)

// Listener is notified after an accepted state change. It receives no
// arguments; call GetState to observe the new value.
type Listener func()

// Option configures a Store.
type Option[T any] func(*Store[T])

// WithEqual replaces the equality used to drop no-op writes.
func WithEqual[T any](equal func(a, b T) bool) Option[T] {
	return func(s *Store[T]) {
		s.equal = equal
	}
}

type subscription struct {
	id uint64
	fn Listener
}

// Store is an observable container for a value of type T.
//
// Writes that happen while listeners are being notified are committed
// immediately and trigger one further notification round once the current
// round finishes. Each round iterates a snapshot of the listener list, so
// subscribing or unsubscribing from inside a listener is safe.
type Store[T any] struct {
	mu        sync.Mutex
	state     T
	equal     func(a, b T) bool
	listeners []subscription
	nextID    uint64

	notifying bool
	pending   bool
}

// New creates a store holding initial.
func New[T any](initial T, opts ...Option[T]) *Store[T] {
	s := &Store[T]{
		state: initial,
		equal: func(a, b T) bool { return reflect.DeepEqual(a, b) },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetState returns the current value.
func (s *Store[T]) GetState() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetState replaces the value. Nothing happens when next equals the current value.
func (s *Store[T]) SetState(next T) {
	s.Update(func(T) T { return next })
}

// Update computes the next value from the current one. Nothing happens when
// the result equals the current value.
func (s *Store[T]) Update(fn func(prev T) T) {
	next := fn(s.GetState())

	s.mu.Lock()
	if s.equal(s.state, next) {
		s.mu.Unlock()
		return
	}
	s.state = next

	if s.notifying {
		s.pending = true
		s.mu.Unlock()
		return
	}
	s.notifying = true
	s.mu.Unlock()

	s.notify()
}

// notify runs notification rounds until no write is pending.
func (s *Store[T]) notify() {
	for {
		s.mu.Lock()
		listeners := s.listeners
		s.pending = false
		s.mu.Unlock()

		for _, l := range listeners {
			l.fn()
		}

		s.mu.Lock()
		if !s.pending {
			s.notifying = false
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()
	}
}

// Subscribe registers a listener and returns a function removing it.
// Listeners run in subscription order.
func (s *Store[T]) Subscribe(listener Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID

	// Copy on write so in-flight notification rounds keep their snapshot.
	listeners := make([]subscription, len(s.listeners), len(s.listeners)+1)
	copy(listeners, s.listeners)
	s.listeners = append(listeners, subscription{id: id, fn: listener})

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

func (s *Store[T]) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listeners := make([]subscription, 0, len(s.listeners))
	for _, l := range s.listeners {
		if l.id != id {
			listeners = append(listeners, l)
		}
	}
	s.listeners = listeners
}

// Len returns the number of subscribed listeners.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}
