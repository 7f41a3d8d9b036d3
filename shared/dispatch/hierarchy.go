// Package dispatch routes calls to handlers selected by the runtime kinds of
// all their arguments (multiple dispatch) over a closed kind hierarchy.
package dispatch

import (
	"math"
	"slices"
)

// Kind identifies a node of a Hierarchy.
type Kind string

// Kinded is implemented by values that can be dispatched on.
type Kinded interface {
	Kind() Kind
}

// MaxDistance is the distance reported between unrelated kinds.
const MaxDistance = math.MaxInt32

// Hierarchy is a directed "is-a" graph. A kind may have several parents.
type Hierarchy struct {
	parents map[Kind][]Kind
}

func NewHierarchy() *Hierarchy {
	return &Hierarchy{parents: make(map[Kind][]Kind)}
}

// Declare registers kind with the given direct parents. Parents are
// searched in declaration order. Declaring a kind twice appends parents.
func (h *Hierarchy) Declare(kind Kind, parents ...Kind) *Hierarchy {
	existing := h.parents[kind]
	for _, p := range parents {
		if !slices.Contains(existing, p) {
			existing = append(existing, p)
		}
	}
	h.parents[kind] = existing
	for _, p := range parents {
		if _, ok := h.parents[p]; !ok {
			h.parents[p] = nil
		}
	}
	return h
}

// Parents returns the direct parents of kind.
func (h *Hierarchy) Parents(kind Kind) []Kind {
	return h.parents[kind]
}

// Distance is the minimal number of is-a steps from kind up to ancestor,
// found breadth first. It is 0 when kind == ancestor and MaxDistance when
// ancestor is not reachable.
func (h *Hierarchy) Distance(kind, ancestor Kind) int {
	if kind == ancestor {
		return 0
	}

	visited := map[Kind]bool{kind: true}
	frontier := []Kind{kind}
	for depth := 1; len(frontier) > 0; depth++ {
		var next []Kind
		for _, k := range frontier {
			for _, p := range h.parents[k] {
				if p == ancestor {
					return depth
				}
				if visited[p] {
					continue
				}
				visited[p] = true
				next = append(next, p)
			}
		}
		frontier = next
	}
	return MaxDistance
}

// IsA reports whether kind is ancestor or a descendant of it.
func (h *Hierarchy) IsA(kind, ancestor Kind) bool {
	return h.Distance(kind, ancestor) != MaxDistance
}

// Comparable reports whether one kind is an ancestor of the other.
func (h *Hierarchy) Comparable(a, b Kind) bool {
	return h.IsA(a, b) || h.IsA(b, a)
}
