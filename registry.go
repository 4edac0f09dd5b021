package emit

import (
	"reflect"
	"sync"
)

type entry[A, R any] struct {
	handler Handler[A, R]
	ptr     uintptr
	once    bool
}

// Registry holds, per event, the ordered listeners of one emitter. Insertion
// order defines invocation order. There is no deduplication: registering the
// same handler twice yields two independent entries.
//
// Removal matches handlers by code pointer, since func values are not
// comparable in Go. Closures built from the same literal share a pointer;
// callers that need to tell such instances apart keep the registered Handler
// value and remove that one.
type Registry[K comparable, A, R any] struct {
	mu        sync.Mutex
	listeners map[K][]*entry[A, R]
	log       Logger
}

// NewRegistry creates an empty Registry.
func NewRegistry[K comparable, A, R any](opts ...Option) *Registry[K, A, R] {
	s := defaultSettings()
	for _, opt := range opts {
		opt(s)
	}
	return &Registry[K, A, R]{
		listeners: make(map[K][]*entry[A, R]),
		log:       s.log,
	}
}

func handlerPtr[A, R any](h Handler[A, R]) uintptr {
	return reflect.ValueOf(h).Pointer()
}

// Add appends a persistent listener for the given event.
func (r *Registry[K, A, R]) Add(event K, handler Handler[A, R]) {
	r.append(event, handler, false)
}

// AddOnce appends a single-shot listener for the given event. The entry
// unregisters itself as part of its first invocation.
func (r *Registry[K, A, R]) AddOnce(event K, handler Handler[A, R]) {
	r.append(event, handler, true)
}

func (r *Registry[K, A, R]) append(event K, handler Handler[A, R], once bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.listeners[event] = append(r.listeners[event], &entry[A, R]{
		handler: handler,
		ptr:     handlerPtr(handler),
		once:    once,
	})
	r.log.WithField("event", event).Debugf("listener registered (once=%t)", once)
}

// Remove unregisters the earliest entry whose handler matches. Later
// duplicates stay registered. Removing a handler that was never registered
// is a no-op.
func (r *Registry[K, A, R]) Remove(event K, handler Handler[A, R]) {
	ptr := handlerPtr(handler)

	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.listeners[event]
	for i, e := range entries {
		if e.ptr == ptr {
			r.listeners[event] = append(entries[:i], entries[i+1:]...)
			r.log.WithField("event", event).Debugf("listener removed")
			return
		}
	}
}

// RemoveAll drops every listener registered for the given event.
func (r *Registry[K, A, R]) RemoveAll(event K) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.listeners, event)
}

// Clear drops all listeners for all events.
func (r *Registry[K, A, R]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.listeners = make(map[K][]*entry[A, R])
}

// Len returns the number of listeners currently registered for the given
// event.
func (r *Registry[K, A, R]) Len(event K) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.listeners[event])
}

// take hands a traversal the entry at pos, unregistering it first when it is
// single-shot. The bool reports whether pos was still within the live list.
func (r *Registry[K, A, R]) take(event K, pos int) (*entry[A, R], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.listeners[event]
	if pos >= len(entries) {
		return nil, false
	}
	e := entries[pos]
	if e.once {
		r.listeners[event] = append(entries[:pos], entries[pos+1:]...)
	}
	return e, true
}
