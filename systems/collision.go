package systems

import (
	"cmp"
	"slices"

	"github.com/automoto/riftbrawl/components"
	"github.com/automoto/riftbrawl/entities"
	"github.com/automoto/riftbrawl/tags"
)

type contact struct {
	entity    entities.Entity
	proximity float64
}

// collide dispatches e against every live entity overlapping it, nearest
// first.
func (l *Level) collide(e entities.Entity) {
	h, ok := l.handles[e]
	if !ok {
		return
	}

	check := l.object(h).Check(0, 0, tags.ResolvEntity)
	if check == nil {
		return
	}

	box := e.Box()
	var contacts []contact
	for _, obj := range check.Objects {
		other, ok := obj.Data.(entities.Entity)
		if !ok || other == e || other.Destroyed() {
			continue
		}
		if !box.Intersects(other.Box()) {
			continue
		}
		if slices.ContainsFunc(contacts, func(c contact) bool { return c.entity == other }) {
			continue
		}
		contacts = append(contacts, contact{entity: other, proximity: proximity(box, other.Box())})
	}

	slices.SortStableFunc(contacts, func(a, b contact) int {
		return cmp.Compare(a.proximity, b.proximity)
	})

	for _, c := range contacts {
		// A handler earlier in this pass may have destroyed the candidate.
		if c.entity.Destroyed() {
			continue
		}
		l.dispatcher.DispatchNoCollect(e, c.entity)
	}
}

// proximity approximates both boxes by their bounding circles: the squared
// center distance minus both squared half diagonals, floored at zero.
func proximity(a, b *components.Box) float64 {
	d := a.Center().Sub(b.Center()).LengthSquared() - halfDiagonalSq(a) - halfDiagonalSq(b)
	return max(0, d)
}

func halfDiagonalSq(b *components.Box) float64 {
	return (b.Width*b.Width + b.Height*b.Height) / 4
}
