package systems

import (
	"image"
	"testing"

	"github.com/automoto/riftbrawl/components"
	"github.com/automoto/riftbrawl/config"
	"github.com/automoto/riftbrawl/entities"
	"github.com/automoto/riftbrawl/entities/entitiestest"
	"github.com/automoto/riftbrawl/shared/dispatch"
	"github.com/automoto/riftbrawl/shared/event"
	"github.com/automoto/riftbrawl/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 60

type crate struct {
	entities.Base
}

func newCrate(x, y, w, h float64) *crate {
	c := &crate{}
	c.Init(c, nil)
	*c.Box() = components.Box{X: x, Y: y, Width: w, Height: h}
	return c
}

func (c *crate) Kind() dispatch.Kind { return tags.KindEntity }
func (c *crate) Image() image.Image  { return nil }

func arenaConfig() LevelConfig {
	spawns := make([]components.Vector, 11)
	for i := range spawns {
		spawns[i] = components.Vector{X: float64(i) * 50}
	}
	return LevelConfig{
		Name:         "test",
		Width:        500,
		Height:       1000,
		Gravity:      1500,
		MaxVelocityX: 800,
		SpawnPoints:  spawns,
	}
}

type pair [2]entities.Entity

func recordingDispatcher(pairs *[]pair) *CollisionDispatcher {
	d := dispatch.New[entities.Entity, struct{}](tags.NewKindHierarchy())
	d.Register(func(args ...entities.Entity) struct{} {
		*pairs = append(*pairs, pair{args[0], args[1]})
		return struct{}{}
	}, tags.KindEntity, tags.KindEntity)
	return d
}

func newCharacter(l *Level, spawn int, group components.FriendGroup) *entities.Character {
	c := entities.NewCharacter(l, entitiestest.CharacterData(), l.SpawnPoints()[spawn], group)
	l.AddCharacter(c)
	return c
}

func TestFloorClamp(t *testing.T) {
	l := NewLevel(arenaConfig(), NewCollisionDispatcher())
	c := newCrate(10, -20, 10, 10)
	c.Velocity().Y = 1000
	l.AddEntity(c)

	l.Update(0.0625)

	assert.Equal(t, 0.0, c.Box().Bottom())
	assert.Equal(t, 0.0, c.Velocity().Y)
}

func TestCeilingAndWallClamp(t *testing.T) {
	cfg := arenaConfig()
	cfg.Gravity = 0
	l := NewLevel(cfg, NewCollisionDispatcher())

	up := newCrate(100, -995, 10, 10)
	up.Velocity().Y = -160
	left := newCrate(5, -10, 10, 10)
	left.Velocity().X = -160
	right := newCrate(485, -10, 10, 10)
	right.Velocity().X = 160
	l.AddEntity(up, left, right)

	l.Update(0.0625)

	assert.Equal(t, -1000.0, up.Box().Top())
	assert.Equal(t, 0.0, up.Velocity().Y)
	assert.Equal(t, 0.0, left.Box().Left())
	assert.Equal(t, 0.0, left.Velocity().X)
	assert.Equal(t, 500.0, right.Box().Right())
	assert.Equal(t, 0.0, right.Velocity().X)
}

func TestHorizontalSpeedCap(t *testing.T) {
	cfg := arenaConfig()
	cfg.Gravity = 0
	l := NewLevel(cfg, NewCollisionDispatcher())

	fast := newCrate(200, -100, 10, 10)
	fast.Velocity().X = -1200
	l.AddEntity(fast)

	l.Update(0.0625)
	assert.Equal(t, -800.0, fast.Velocity().X)
}

func TestOriginOffsetBounds(t *testing.T) {
	cfg := arenaConfig()
	cfg.Origin = components.Vector{X: -100, Y: 300}
	l := NewLevel(cfg, NewCollisionDispatcher())

	c := newCrate(-150, 290, 10, 10)
	c.Velocity().Y = 500
	l.AddEntity(c)
	l.Update(0.0625)

	assert.Equal(t, -100.0, c.Box().Left())
	assert.Equal(t, 300.0, c.Box().Bottom())
}

func TestGroundedIsExactFloorContact(t *testing.T) {
	l := NewLevel(arenaConfig(), NewCollisionDispatcher())
	c := newCharacter(l, 5, components.NewFriendGroup())

	l.Update(tick)
	assert.True(t, c.OnGround())

	c.Input(tick, components.NewInputs(config.CommandJump))
	l.Update(tick)
	assert.False(t, c.OnGround())
	assert.Less(t, c.Box().Bottom(), 0.0)
}

func TestJumpAndLand(t *testing.T) {
	l := NewLevel(arenaConfig(), NewCollisionDispatcher())
	c := newCharacter(l, 5, components.NewFriendGroup())

	c.Input(tick, components.NewInputs(config.CommandJump))
	landed := false
	for range 120 {
		l.Update(tick)
		if c.OnGround() {
			landed = true
			break
		}
	}
	assert.True(t, landed)
	assert.Equal(t, 0.0, c.Box().Bottom())
}

func TestAddAndRemoveAreDeduplicated(t *testing.T) {
	l := NewLevel(arenaConfig(), NewCollisionDispatcher())
	c := newCrate(10, -20, 10, 10)
	ch := entities.NewCharacter(l, entitiestest.CharacterData(), components.Vector{X: 100}, components.NewFriendGroup())

	l.AddEntity(c, c)
	l.AddCharacter(ch)
	l.AddCharacter(ch)
	l.AddEntity(ch)

	assert.Len(t, l.Entities(), 2)
	assert.Equal(t, []*entities.Character{ch}, l.Characters())
	assert.True(t, l.HasCharacter(ch))
	assert.Same(t, l, c.World())

	l.RemoveCharacter(ch, ch)
	assert.False(t, l.Contains(ch))
	assert.Empty(t, l.Characters())

	l.RemoveEntity(c)
	l.RemoveEntity(c)
	assert.Empty(t, l.Entities())
}

func TestPlainEntityPromotedToCharacter(t *testing.T) {
	l := NewLevel(arenaConfig(), NewCollisionDispatcher())
	ch := entities.NewCharacter(l, entitiestest.CharacterData(), components.Vector{X: 100}, components.NewFriendGroup())

	l.AddEntity(ch)
	assert.False(t, l.HasCharacter(ch))
	assert.Empty(t, l.Characters())

	l.AddCharacter(ch)
	assert.True(t, l.HasCharacter(ch))
	assert.Len(t, l.Entities(), 1)

	ch.Box().SetBottom(-5)
	l.Update(tick)
	assert.False(t, ch.OnGround())
}

func TestRemovalIsDeferredToEndOfTick(t *testing.T) {
	cfg := arenaConfig()
	cfg.Gravity = 0
	var pairs []pair
	l := NewLevel(cfg, recordingDispatcher(&pairs))

	a := newCrate(100, -50, 20, 20)
	b := newCrate(110, -50, 20, 20)
	l.AddEntity(a, b)

	b.Destroy()
	assert.True(t, b.Destroyed())
	assert.True(t, l.Contains(b))

	l.Update(tick)
	assert.False(t, l.Contains(b))
	assert.True(t, l.Contains(a))

	// b still collided as the checking entity, but was skipped as a candidate.
	assert.Equal(t, []pair{{b, a}}, pairs)
}

func TestCollisionsSortedByProximity(t *testing.T) {
	cfg := arenaConfig()
	cfg.Gravity = 0
	var pairs []pair
	l := NewLevel(cfg, recordingDispatcher(&pairs))

	a := newCrate(0, -200, 100, 100)  // center (50, -150)
	far := newCrate(99, -101, 100, 100) // corner overlap, proximity 9602
	near := newCrate(60, -160, 10, 10)  // inside a, proximity 0
	l.AddEntity(a, far, near)

	l.Update(tick)

	assert.Equal(t, []pair{{a, near}, {a, far}, {far, a}, {near, a}}, pairs)
}

func TestProximity(t *testing.T) {
	a := components.NewBox(0, -200, 100, 100)
	b := components.NewBox(99, -101, 100, 100)
	assert.Equal(t, 9602.0, proximity(a, b))
	assert.Equal(t, 0.0, proximity(a, components.NewBox(60, -160, 10, 10)))
}

func TestTouchingAndEmptyBoxesDoNotCollide(t *testing.T) {
	cfg := arenaConfig()
	cfg.Gravity = 0
	var pairs []pair
	l := NewLevel(cfg, recordingDispatcher(&pairs))

	l.AddEntity(
		newCrate(100, -50, 20, 20),
		newCrate(120, -50, 20, 20),
		newCrate(105, -45, 0, 0),
	)
	l.Update(tick)

	assert.Empty(t, pairs)
}

func TestAttackHitsOpponentOnce(t *testing.T) {
	l := NewLevel(arenaConfig(), NewCollisionDispatcher())
	a := newCharacter(l, 0, components.NewFriendGroup())
	b := newCharacter(l, 10, components.NewFriendGroup())

	for i := 0; i < 600 && a.Box().Right() < b.Box().Left()-120; i++ {
		a.Input(tick, components.NewInputs(config.CommandMoveRight))
		l.Update(tick)
	}
	for range 60 {
		a.Input(tick, components.NewInputs())
		l.Update(tick)
	}
	require.Less(t, a.Box().Right(), b.Box().Left())
	require.Equal(t, 100.0, b.Health())

	hitTick := -1
	for i := 0; i < 60; i++ {
		if i == 0 {
			a.Input(tick, components.NewInputs(config.CommandPrimaryAction))
		} else {
			a.Input(tick, components.NewInputs())
		}
		l.Update(tick)

		if hitTick < 0 && b.Health() < 100 {
			hitTick = i
			// Velocities read after the tick equal those seen by the hit.
			aBox, aVel := a.Box(), a.Velocity()
			knockback := components.Vector{
				X: aBox.Width*5 + 0.5*aVel.X,
				Y: -aBox.Height*3 + 0.5*aVel.Y,
			}
			assert.InDelta(t, knockback.X, b.Velocity().X, 1e-9)
			// b rested on the floor, so gravity had just added one tick of fall speed.
			assert.InDelta(t, 1500*tick+knockback.Y, b.Velocity().Y, 1e-9)
		}
	}

	require.GreaterOrEqual(t, hitTick, 0)
	assert.Equal(t, 100.0-entitiestest.PrimaryDamage, b.Health())
	assert.Equal(t, 100.0, a.Health())

	// The attack removed itself once its trajectory completed.
	for _, e := range l.Entities() {
		assert.Equal(t, tags.KindCharacter, e.Kind())
	}
}

func TestDeathRemovesCharacterAtEndOfTick(t *testing.T) {
	l := NewLevel(arenaConfig(), NewCollisionDispatcher())
	c := newCharacter(l, 5, components.NewFriendGroup())

	deaths := 0
	c.OnDeath.Add(event.Func(func(dead *entities.Character) {
		deaths++
		// The death fires during the entity update phase.
		assert.True(t, l.Contains(dead))
	}))

	c.TakeDamage(components.DamageData{Amount: 1000})
	for i := 0; i < 120 && deaths == 0; i++ {
		l.Update(tick)
		if deaths == 0 {
			require.True(t, l.Contains(c))
		}
	}

	require.Equal(t, 1, deaths)
	assert.False(t, l.Contains(c))
	assert.False(t, l.HasCharacter(c))
	assert.Empty(t, l.Characters())

	l.Update(tick)
	assert.Equal(t, 1, deaths)
}

func TestAttacksRemovedWithOwnerHit(t *testing.T) {
	l := NewLevel(arenaConfig(), NewCollisionDispatcher())
	a := newCharacter(l, 0, components.NewFriendGroup())

	a.Input(tick, components.NewInputs(config.CommandPrimaryAction))
	l.Update(tick)
	require.Len(t, l.Entities(), 2)

	a.TakeDamage(components.DamageData{Amount: 1})
	assert.Len(t, l.Entities(), 2)
	l.Update(tick)
	assert.Len(t, l.Entities(), 1)
}

func TestCollisionsAlongFarWalls(t *testing.T) {
	tests := []struct {
		name    string
		width   float64
		height  float64
		gravity float64
		a, b    *crate
	}{
		{"right wall", 500, 1000, 0, newCrate(496.5, -500, 3, 3), newCrate(497, -500, 3, 3)},
		{"floor", 500, 1000, 1500, newCrate(200, -5, 4, 5), newCrate(202, -5, 4, 5)},
		{"corner of an odd sized level", 400, 640, 0, newCrate(396, -3, 3, 3), newCrate(397, -3, 3, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := arenaConfig()
			cfg.Width, cfg.Height, cfg.Gravity = tt.width, tt.height, tt.gravity
			var pairs []pair
			l := NewLevel(cfg, recordingDispatcher(&pairs))
			l.AddEntity(tt.a, tt.b)

			l.Update(tick)

			assert.Equal(t, []pair{{tt.a, tt.b}, {tt.b, tt.a}}, pairs)
		})
	}
}

func TestSpaceExtentCoversWholeCells(t *testing.T) {
	assert.Equal(t, 512, spaceExtent(500, 16))
	assert.Equal(t, 1008, spaceExtent(1000, 16))
	assert.Equal(t, 16, spaceExtent(14, 16))
	assert.Equal(t, 32, spaceExtent(14.5, 16))
}

func TestResolvTagsFollowKind(t *testing.T) {
	l := NewLevel(arenaConfig(), NewCollisionDispatcher())
	c := newCrate(10, -20, 10, 10)
	l.AddEntity(c)
	ch := newCharacter(l, 5, components.NewFriendGroup())
	ch.Input(tick, components.NewInputs(config.CommandPrimaryAction))

	var attack entities.Entity
	for _, e := range l.Entities() {
		if e.Kind() == tags.KindMeleeAttack {
			attack = e
		}
	}
	require.NotNil(t, attack)

	body := func(e entities.Entity) interface{ HasTags(...string) bool } {
		return l.object(l.handles[e])
	}
	assert.True(t, body(ch).HasTags(tags.ResolvCharacter))
	assert.True(t, body(attack).HasTags(tags.ResolvAttack))
	assert.False(t, body(c).HasTags(tags.ResolvCharacter))
	assert.False(t, body(c).HasTags(tags.ResolvAttack))
	for _, e := range []entities.Entity{c, ch, attack} {
		assert.True(t, body(e).HasTags(tags.ResolvEntity))
	}
}

func TestCharactersKeepInsertionOrder(t *testing.T) {
	l := NewLevel(arenaConfig(), NewCollisionDispatcher())
	first := entities.NewCharacter(l, entitiestest.CharacterData(), components.Vector{X: 100}, components.NewFriendGroup())
	second := entities.NewCharacter(l, entitiestest.CharacterData(), components.Vector{X: 200}, components.NewFriendGroup())

	l.AddEntity(first)
	l.AddCharacter(second)
	l.AddCharacter(first)

	assert.Equal(t, []*entities.Character{first, second}, l.Characters())
}
