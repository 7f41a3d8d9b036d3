// Package event implements a synchronous observer list.
package event

// Listener receives event payloads. Implementations must be comparable;
// pointer types are the usual choice.
type Listener[T any] interface {
	Notify(payload T)
}

// FuncListener adapts a function to a Listener. Each call to Func returns a
// distinct listener, so keep the pointer around to remove it later.
type FuncListener[T any] struct {
	fn func(T)
}

func Func[T any](fn func(T)) *FuncListener[T] {
	return &FuncListener[T]{fn: fn}
}

func (l *FuncListener[T]) Notify(payload T) {
	l.fn(payload)
}

// Event is an ordered set of listeners owned by the publisher.
type Event[T any] struct {
	listeners []Listener[T]
}

// Add registers l. Adding a listener that is already registered is ignored.
func (e *Event[T]) Add(l Listener[T]) bool {
	if e.index(l) >= 0 {
		return false
	}
	e.listeners = append(e.listeners, l)
	return true
}

// Remove unregisters l. Removing an absent listener is ignored.
func (e *Event[T]) Remove(l Listener[T]) bool {
	i := e.index(l)
	if i < 0 {
		return false
	}
	e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
	return true
}

// Invoke calls every listener registered when Invoke starts, in registration
// order. Listeners may add or remove listeners while being notified.
func (e *Event[T]) Invoke(payload T) {
	snapshot := e.listeners
	for _, l := range snapshot {
		l.Notify(payload)
	}
}

func (e *Event[T]) Len() int {
	return len(e.listeners)
}

func (e *Event[T]) index(l Listener[T]) int {
	for i, existing := range e.listeners {
		if existing == l {
			return i
		}
	}
	return -1
}
