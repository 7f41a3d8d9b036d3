// Package entitiestest provides small character fixtures and a recording
// world for tests.
package entitiestest

import (
	"image"

	"github.com/automoto/riftbrawl/components"
	"github.com/automoto/riftbrawl/config"
	"github.com/automoto/riftbrawl/entities"
)

// World records additions and removal requests.
type World struct {
	Added   []entities.Entity
	Removed []entities.Entity
}

func (w *World) AddEntity(es ...entities.Entity) {
	w.Added = append(w.Added, es...)
}

func (w *World) RequestEntityRemoval(e entities.Entity) {
	w.Removed = append(w.Removed, e)
}

// Frames returns n blank frames.
func Frames(n int) []image.Image {
	frames := make([]image.Image, n)
	for i := range frames {
		frames[i] = image.NewNRGBA(image.Rect(0, 0, 8, 16))
	}
	return frames
}

type animationSpec struct {
	state  config.StateID
	frames int
	total  float64
	loop   bool
}

// Priority order, lowest first. Timings are binary fractions so repeated
// float additions stay exact.
var animationSpecs = []animationSpec{
	{config.Idle, 4, 0.5, true},
	{config.Running, 4, 0.5, true},
	{config.Falling, 2, 0.25, true},
	{config.Jumping, 2, 0.25, false},
	{config.PrimaryAttack, 2, 0.25, false},
	{config.SecondaryAttack, 2, 0.25, false},
	{config.Hurt, 2, 0.25, false},
	{config.Death, 4, 0.5, false},
}

// DeathDuration is the total time of the fixture death animation.
const DeathDuration = 0.5

func Animations() *components.CharacterAnimation {
	entries := make([]components.AnimationEntry, len(animationSpecs))
	for i, s := range animationSpecs {
		entries[i] = components.AnimationEntry{
			State:     s.state,
			Priority:  i,
			Animation: components.NewAnimation(Frames(s.frames), s.total, s.loop),
		}
	}
	return components.NewCharacterAnimation(entries...)
}

// AttackFrames is the fixture trajectory: three 100ms keyframes reaching
// further forward each step.
var AttackFrames = []components.AttackFrame{
	{TimeMs: 100, Offset: components.Vector{X: 40, Y: 0}, Size: components.Vector{X: 40, Y: 20}},
	{TimeMs: 100, Offset: components.Vector{X: 70, Y: 0}, Size: components.Vector{X: 60, Y: 20}},
	{TimeMs: 100, Offset: components.Vector{X: 100, Y: 0}, Size: components.Vector{X: 80, Y: 20}},
}

func AttackFactory(health, damage float64) entities.AttackFactory {
	return func(w entities.World, owner entities.Entity, group components.FriendGroup) *entities.MeleeAttack {
		return entities.NewMeleeAttack(w, owner, group,
			components.NewAttackTrajectory(AttackFrames),
			components.NewAnimation(Frames(2), 0.25, false),
			health, damage)
	}
}

// Stats used by CharacterData.
var Stats = entities.CharacterStats{
	HitboxSize: components.Vector{X: 20, Y: 40},
	Health:     100,
	Speed:      1000,
	JumpForce:  600,
}

const (
	PrimaryDamage     = 10
	SecondaryDamage   = 20
	PrimaryCooldown   = 0.25
	SecondaryCooldown = 0.5
	AttackHealth      = 5
)

func CharacterData() entities.CharacterData {
	return entities.CharacterData{
		Name:         "tester",
		Stats:        Stats,
		Animations:   Animations(),
		OffsetCenter: components.Vector{X: 2, Y: 0},
		Primary:      entities.NewMeleeAttackExecutor(AttackFactory(AttackHealth, PrimaryDamage), PrimaryCooldown),
		Secondary:    entities.NewMeleeAttackExecutor(AttackFactory(AttackHealth, SecondaryDamage), SecondaryCooldown),
	}
}
