package archetypes

import (
	"slices"

	"github.com/automoto/riftbrawl/components"
	"github.com/automoto/riftbrawl/tags"
	"github.com/yohamta/donburi"
)

var (
	Body = newArchetype(
		tags.Body,
		components.Object,
	)
	Character = newArchetype(
		tags.Character,
		components.Object,
	)
	Attack = newArchetype(
		tags.Attack,
		components.Object,
	)
)

// Archetype is a fixed component set spawned together.
type Archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *Archetype {
	return &Archetype{
		components: cs,
	}
}

func (a *Archetype) Spawn(world donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := world.Entry(world.Create(
		slices.Concat(a.components, cs)...,
	))
	return e
}
