// Package entities holds the simulated objects of a level: characters and
// the transient attacks they spawn.
package entities

import (
	"image"
	"iter"

	"github.com/automoto/riftbrawl/components"
	"github.com/automoto/riftbrawl/shared/dispatch"
)

// World is the part of a level entities talk back to.
type World interface {
	AddEntity(es ...Entity)
	RequestEntityRemoval(e Entity)
}

// Entity is a simulated object with a box and a velocity.
type Entity interface {
	dispatch.Kinded

	Box() *components.Box
	Velocity() *components.Vector
	Reversed() bool

	// Destroyed is set by Destroy. The entity stays in its world until the
	// world processes removals at the end of the tick.
	Destroyed() bool
	Destroy()

	Update(dt float64)

	World() World
	SetWorld(w World)

	// Draw data for renderers.
	Image() image.Image
	ImageRect() image.Rectangle
	Layers() iter.Seq[image.Image]
}

// Base implements the shared parts of Entity. Concrete types embed it and
// call Init with themselves so Destroy can report the outer value.
type Base struct {
	self      Entity
	world     World
	box       components.Box
	velocity  components.Vector
	reversed  bool
	destroyed bool
}

func (b *Base) Init(self Entity, world World) {
	b.self = self
	b.world = world
}

func (b *Base) Box() *components.Box         { return &b.box }
func (b *Base) Velocity() *components.Vector { return &b.velocity }
func (b *Base) Reversed() bool               { return b.reversed }
func (b *Base) SetReversed(r bool)           { b.reversed = r }
func (b *Base) Destroyed() bool              { return b.destroyed }
func (b *Base) World() World                 { return b.world }
func (b *Base) SetWorld(w World)             { b.world = w }

func (b *Base) Destroy() {
	b.destroyed = true
	if b.world != nil {
		b.world.RequestEntityRemoval(b.self)
	}
}

// Update integrates the position. Gravity and bounds belong to the world.
func (b *Base) Update(dt float64) {
	b.box.X += b.velocity.X * dt
	b.box.Y += b.velocity.Y * dt
}

func (b *Base) ImageRect() image.Rectangle {
	return b.box.Rect()
}

func (b *Base) Layers() iter.Seq[image.Image] {
	return func(yield func(image.Image) bool) {
		yield(b.self.Image())
	}
}
