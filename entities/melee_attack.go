package entities

import (
	"image"

	"github.com/automoto/riftbrawl/components"
	"github.com/automoto/riftbrawl/config"
	"github.com/automoto/riftbrawl/shared/dispatch"
	"github.com/automoto/riftbrawl/tags"
)

// MeleeAttack is a short lived hitbox that follows its owner along a
// trajectory. It deals damage and can itself be destroyed by damage.
type MeleeAttack struct {
	Base
	components.HealthData
	dealer components.DealerData

	owner      Entity
	trajectory *components.AttackTrajectory
	animation  *components.Animation
}

func NewMeleeAttack(world World, owner Entity, group components.FriendGroup, trajectory *components.AttackTrajectory, animation *components.Animation, health, damage float64) *MeleeAttack {
	a := &MeleeAttack{
		HealthData: components.NewHealth(health, group),
		dealer:     components.DealerData{Damage: damage, Group: group},
		owner:      owner,
		trajectory: trajectory,
		animation:  animation,
	}
	a.Init(a, world)
	return a
}

func (a *MeleeAttack) Kind() dispatch.Kind { return tags.KindMeleeAttack }

func (a *MeleeAttack) Owner() Entity                           { return a.owner }
func (a *MeleeAttack) Trajectory() *components.AttackTrajectory { return a.trajectory }
func (a *MeleeAttack) Damage() float64                          { return a.dealer.Damage }
func (a *MeleeAttack) FriendGroup() components.FriendGroup      { return a.dealer.Group }

func (a *MeleeAttack) Update(dt float64) {
	if a.trajectory.Complete() {
		a.Destroy()
		return
	}

	if a.animation != nil {
		a.animation.Update(dt)
	}
	a.trajectory.Update(dt)

	offset := a.trajectory.CurrentRect()
	a.box.SetSize(offset.Size())

	ownerBox := a.owner.Box()
	x := ownerBox.CenterX() + offset.X
	if a.owner.Reversed() {
		x = ownerBox.CenterX() - offset.X
	}
	a.box.SetCenter(components.Vector{X: x, Y: ownerBox.CenterY() + offset.Y})
	a.reversed = a.owner.Reversed()
}

// Knockback pushes away from the owner and up, scaled by the owner's size,
// and carries part of the owner's momentum.
func (a *MeleeAttack) Knockback() components.Vector {
	facing := 1.0
	if a.owner.Reversed() {
		facing = -1.0
	}
	ownerBox := a.owner.Box()
	force := components.Vector{
		X: facing * ownerBox.Width * config.Combat.KnockbackX,
		Y: -ownerBox.Height * config.Combat.KnockbackY,
	}
	return force.Add(a.owner.Velocity().Scale(config.Combat.MomentumCarry))
}

func (a *MeleeAttack) DealDamage(target components.Damageable) {
	a.dealer.DealDamageWithKnockback(target, a.Knockback())
}

// TakeDamage lets attacks clash. An attack reduced to zero health is
// destroyed early.
func (a *MeleeAttack) TakeDamage(data components.DamageData) {
	a.HealthData.TakeDamage(data)
	if a.IsDead() {
		a.Destroy()
	}
}

func (a *MeleeAttack) Image() image.Image {
	if a.animation == nil {
		return nil
	}
	return a.animation.Frame(a.reversed)
}

// ImageRect centers the current frame on the hitbox.
func (a *MeleeAttack) ImageRect() image.Rectangle {
	img := a.Image()
	if img == nil {
		return a.box.Rect()
	}
	size := img.Bounds().Size()
	center := a.box.Center()
	topLeft := image.Pt(int(center.X)-size.X/2, int(center.Y)-size.Y/2)
	return image.Rectangle{Min: topLeft, Max: topLeft.Add(size)}
}

// AttackFactory builds a new attack for owner.
type AttackFactory func(world World, owner Entity, group components.FriendGroup) *MeleeAttack

// MeleeAttackExecutor spawns attacks from a factory, gated by a cooldown.
// It keeps at most one live attack.
type MeleeAttackExecutor struct {
	factory  AttackFactory
	cooldown float64
	remain   float64
	current  *MeleeAttack
}

func NewMeleeAttackExecutor(factory AttackFactory, cooldown float64) *MeleeAttackExecutor {
	return &MeleeAttackExecutor{factory: factory, cooldown: cooldown}
}

func (e *MeleeAttackExecutor) Update(dt float64) {
	e.remain -= dt
}

func (e *MeleeAttackExecutor) CanExecute() bool {
	return e.remain <= 0
}

// Execute replaces the previous attack with a new one registered in world.
func (e *MeleeAttackExecutor) Execute(world World, owner Entity, group components.FriendGroup) {
	if !e.CanExecute() {
		return
	}
	if e.current != nil {
		e.current.Destroy()
	}
	e.remain = e.cooldown
	e.current = e.factory(world, owner, group)
	world.AddEntity(e.current)
}

// Cancel destroys the live attack. The cooldown keeps running.
func (e *MeleeAttackExecutor) Cancel() {
	if e.current != nil {
		e.current.Destroy()
	}
}

func (e *MeleeAttackExecutor) Current() *MeleeAttack { return e.current }
func (e *MeleeAttackExecutor) Cooldown() float64     { return e.cooldown }
