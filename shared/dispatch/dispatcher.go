package dispatch

import (
	"iter"
	"slices"
	"strings"
	"sync"
)

// Handler receives the dispatched arguments in registration order.
type Handler[T Kinded, R any] func(args ...T) R

type registration[T Kinded, R any] struct {
	kinds    []Kind
	handlers []Handler[T, R]
}

type candidate[T Kinded, R any] struct {
	reg      *registration[T, R]
	distance int
}

// Dispatcher maps tuples of kinds to handlers. A handler registered for
// ancestor kinds also matches descendants; when several registrations match,
// a more specific one hides any less specific one it is comparable with.
// Resolutions are cached per exact kind tuple.
type Dispatcher[T Kinded, R any] struct {
	hierarchy *Hierarchy

	mu            sync.RWMutex
	registrations []*registration[T, R]
	byKey         map[string]*registration[T, R]
	cache         map[string][]Handler[T, R]
}

func New[T Kinded, R any](h *Hierarchy) *Dispatcher[T, R] {
	return &Dispatcher[T, R]{
		hierarchy: h,
		byKey:     make(map[string]*registration[T, R]),
		cache:     make(map[string][]Handler[T, R]),
	}
}

// Register appends fn to the handler list for the given kind tuple.
func (d *Dispatcher[T, R]) Register(fn Handler[T, R], kinds ...Kind) {
	d.mu.Lock()
	defer d.mu.Unlock()

	key := cacheKey(kinds)
	reg, ok := d.byKey[key]
	if !ok {
		reg = &registration[T, R]{kinds: slices.Clone(kinds)}
		d.byKey[key] = reg
		d.registrations = append(d.registrations, reg)
	}
	reg.handlers = append(reg.handlers, fn)

	clear(d.cache)
}

// Register2 registers a two-argument handler with typed parameters. The
// arguments are asserted to A and B, so kinds ka and kb must only be carried
// by values implementing those types.
func Register2[T Kinded, R any, A, B any](d *Dispatcher[T, R], ka, kb Kind, fn func(A, B) R) {
	d.Register(func(args ...T) R {
		return fn(any(args[0]).(A), any(args[1]).(B))
	}, ka, kb)
}

// Resolve returns the handlers that apply to the given actual kinds.
func (d *Dispatcher[T, R]) Resolve(kinds ...Kind) []Handler[T, R] {
	return slices.Clone(d.lookup(kinds))
}

// Dispatch returns a sequence of handler results. Handlers run while the
// sequence is consumed, again on every consumption.
func (d *Dispatcher[T, R]) Dispatch(args ...T) iter.Seq[R] {
	return func(yield func(R) bool) {
		for _, h := range d.lookup(kindsOf(args)) {
			if !yield(h(args...)) {
				return
			}
		}
	}
}

// DispatchNoCollect runs every matching handler for its side effects.
func (d *Dispatcher[T, R]) DispatchNoCollect(args ...T) {
	for _, h := range d.lookup(kindsOf(args)) {
		h(args...)
	}
}

func (d *Dispatcher[T, R]) lookup(kinds []Kind) []Handler[T, R] {
	key := cacheKey(kinds)

	d.mu.RLock()
	handlers, ok := d.cache[key]
	d.mu.RUnlock()
	if ok {
		return handlers
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if handlers, ok := d.cache[key]; ok {
		return handlers
	}
	handlers = d.resolve(kinds)
	d.cache[key] = handlers
	return handlers
}

// resolve must be called with d.mu held.
func (d *Dispatcher[T, R]) resolve(kinds []Kind) []Handler[T, R] {
	var candidates []candidate[T, R]
	for _, reg := range d.registrations {
		if distance, ok := d.distance(kinds, reg.kinds); ok {
			candidates = append(candidates, candidate[T, R]{reg: reg, distance: distance})
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	var handlers []Handler[T, R]
	for i, c := range candidates {
		if d.dominated(i, c, candidates) {
			continue
		}
		handlers = append(handlers, c.reg.handlers...)
	}
	return handlers
}

// distance sums the per-position is-a steps from actual to registered kinds.
func (d *Dispatcher[T, R]) distance(actual, registered []Kind) (int, bool) {
	if len(actual) != len(registered) {
		return 0, false
	}
	total := 0
	for i, k := range actual {
		step := d.hierarchy.Distance(k, registered[i])
		if step == MaxDistance {
			return 0, false
		}
		total += step
	}
	return total, true
}

func (d *Dispatcher[T, R]) dominated(i int, c candidate[T, R], all []candidate[T, R]) bool {
	for j, other := range all {
		if i == j || other.distance >= c.distance {
			continue
		}
		if d.comparable(other.reg.kinds, c.reg.kinds) {
			return true
		}
	}
	return false
}

func (d *Dispatcher[T, R]) comparable(a, b []Kind) bool {
	for i := range a {
		if !d.hierarchy.Comparable(a[i], b[i]) {
			return false
		}
	}
	return true
}

func kindsOf[T Kinded](args []T) []Kind {
	kinds := make([]Kind, len(args))
	for i, a := range args {
		kinds[i] = a.Kind()
	}
	return kinds
}

func cacheKey(kinds []Kind) string {
	var b strings.Builder
	for i, k := range kinds {
		if i > 0 {
			b.WriteByte(0)
		}
		b.WriteString(string(k))
	}
	return b.String()
}
