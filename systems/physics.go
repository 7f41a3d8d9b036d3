package systems

import (
	"math"

	"github.com/automoto/riftbrawl/components"
	"github.com/automoto/riftbrawl/entities"
	"github.com/automoto/riftbrawl/shared/gamemath"
	"github.com/solarlune/resolv"
)

// applyPhysics applies gravity, clamps the box to the world bounds and caps
// horizontal speed. Touching a bound zeroes the velocity on that axis.
func (l *Level) applyPhysics(dt float64, e entities.Entity) {
	box := e.Box()
	vel := e.Velocity()
	origin := l.cfg.Origin

	vel.Y += l.cfg.Gravity * dt

	if box.Bottom() > origin.Y {
		box.SetBottom(origin.Y)
		vel.Y = 0
	}
	if box.Top() < origin.Y-l.cfg.Height {
		box.SetTop(origin.Y - l.cfg.Height)
		vel.Y = 0
	}
	if box.Left() < origin.X {
		box.SetLeft(origin.X)
		vel.X = 0
	}
	if box.Right() > origin.X+l.cfg.Width {
		box.SetRight(origin.X + l.cfg.Width)
		vel.X = 0
	}

	vel.X = gamemath.ClampAbs(vel.X, l.cfg.MaxVelocityX)
}

// updateGrounded uses exact equality with the floor line. The bounds clamp
// assigns the floor value directly, so a resting character compares equal.
func (l *Level) updateGrounded(c *entities.Character) {
	c.SetOnGround(c.Box().Bottom() == l.cfg.Origin.Y)
}

// broadphaseMargin pads resolv bodies on every side so that sub-unit
// overlaps across a cell border still share a cell. Exact overlap is tested
// on the boxes.
const broadphaseMargin = 1

// spaceExtent is the padded level extent rounded up to whole cells. resolv
// sizes its grid by integer division, so a partial last cell would be
// dropped and bodies near the far walls would sit in no cell.
func spaceExtent(extent float64, cell int) int {
	padded := math.Ceil(extent) + 2*broadphaseMargin
	return int(math.Ceil(padded/float64(cell))) * cell
}

// syncObject moves a resolv body to a box. The space starts one margin above
// and left of the level's top left corner, and the body starts one margin
// above and left of the box, so an in-bounds box always lies inside the
// space.
func (l *Level) syncObject(obj *resolv.Object, b *components.Box) {
	spaceLeft := l.cfg.Origin.X - broadphaseMargin
	spaceTop := l.cfg.Origin.Y - l.cfg.Height - broadphaseMargin
	obj.X = (b.X - broadphaseMargin) - spaceLeft
	obj.Y = (b.Y - broadphaseMargin) - spaceTop
	obj.W = b.Width + 2*broadphaseMargin
	obj.H = b.Height + 2*broadphaseMargin
	obj.Update()
}
