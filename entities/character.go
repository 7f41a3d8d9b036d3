package entities

import (
	"image"

	"github.com/automoto/riftbrawl/components"
	"github.com/automoto/riftbrawl/config"
	"github.com/automoto/riftbrawl/shared/dispatch"
	"github.com/automoto/riftbrawl/shared/event"
	"github.com/automoto/riftbrawl/tags"
)

// CharacterStats are the per character tuning values.
type CharacterStats struct {
	HitboxSize components.Vector
	Health     float64
	Speed      float64 // Horizontal acceleration per second
	JumpForce  float64 // Upward velocity impulse
}

// CharacterData is everything needed to build one Character. Animations and
// executors are stateful, so each Character needs its own CharacterData.
type CharacterData struct {
	Name         string
	Stats        CharacterStats
	Animations   *components.CharacterAnimation
	OffsetCenter components.Vector // Image midbottom offset from the hitbox midbottom
	Primary      *MeleeAttackExecutor
	Secondary    *MeleeAttackExecutor
}

// Character is a player controlled fighter. Its behavior is driven by timers
// and flags rather than a state enum: grounded, invulnerable while the
// invulnerability timer runs, locked out of attacks while the lockout timer
// runs, and dead for good once health reaches zero.
type Character struct {
	Base
	components.HealthData

	name         string
	speed        float64
	jumpForce    float64
	offsetCenter components.Vector
	animations   *components.CharacterAnimation
	primary      *MeleeAttackExecutor
	secondary    *MeleeAttackExecutor

	moving        bool
	onGround      bool
	invulnTimer   float64
	lockoutTimer  float64
	deathNotified bool

	// OnDeath fires once, after the death animation has played.
	OnDeath event.Event[*Character]
}

// NewCharacter places a character with its hitbox midbottom at position.
func NewCharacter(world World, data CharacterData, position components.Vector, group components.FriendGroup) *Character {
	c := &Character{
		HealthData:   components.NewHealth(data.Stats.Health, group),
		name:         data.Name,
		speed:        data.Stats.Speed,
		jumpForce:    data.Stats.JumpForce,
		offsetCenter: data.OffsetCenter,
		animations:   data.Animations,
		primary:      data.Primary,
		secondary:    data.Secondary,
		onGround:     true,
	}
	c.Init(c, world)
	c.box.SetSize(data.Stats.HitboxSize)
	c.box.SetMidBottom(position)
	return c
}

func (c *Character) Kind() dispatch.Kind { return tags.KindCharacter }

func (c *Character) Name() string                               { return c.name }
func (c *Character) String() string                             { return c.name }
func (c *Character) Animations() *components.CharacterAnimation { return c.animations }
func (c *Character) Primary() *MeleeAttackExecutor              { return c.primary }
func (c *Character) Secondary() *MeleeAttackExecutor            { return c.secondary }
func (c *Character) OnGround() bool                             { return c.onGround }
func (c *Character) SetOnGround(v bool)                         { c.onGround = v }
func (c *Character) Moving() bool                               { return c.moving }
func (c *Character) Invulnerable() bool                         { return c.invulnTimer > 0 }
func (c *Character) AttackLocked() bool                         { return c.lockoutTimer > 0 }

// TakeDamage is ignored while invulnerable or dead. A hit sets horizontal
// velocity to the knockback, adds the vertical knockback and cancels both
// attacks.
func (c *Character) TakeDamage(data components.DamageData) {
	if c.Invulnerable() || c.IsDead() {
		return
	}

	c.HealthData.TakeDamage(data)
	if c.IsDead() {
		c.animations.Request(config.Death)
	} else {
		c.animations.Request(config.Hurt)
	}

	c.velocity.X = data.Knockback.X
	c.velocity.Y += data.Knockback.Y
	c.invulnTimer = config.Combat.InvulnTime

	c.cancelAttacks()
}

func (c *Character) cancelAttacks() {
	c.primary.Cancel()
	c.secondary.Cancel()

	c.lockoutTimer = config.Combat.AttackLockout

	c.animations.RequestStop(config.PrimaryAttack)
	c.animations.RequestStop(config.SecondaryAttack)
}

func (c *Character) Update(dt float64) {
	c.animations.Request(config.Idle)
	c.animations.Update(dt)

	if !c.onGround {
		c.animations.Request(config.Falling)
	}
	c.applyMovement(dt)

	c.invulnTimer -= dt
	c.lockoutTimer -= dt

	if c.IsDead() && !c.deathNotified && c.animations.Pending(config.Death) == nil {
		c.deathNotified = true
		c.OnDeath.Invoke(c)
		c.Destroy()
	}

	c.primary.Update(dt)
	c.secondary.Update(dt)

	c.Base.Update(dt)
}

// applyMovement shows the running animation while moving and damps velocity
// otherwise, harder on the ground than in the air.
func (c *Character) applyMovement(dt float64) {
	if c.moving {
		c.animations.Request(config.Running)
		return
	}

	c.animations.RequestStop(config.Running)
	if c.onGround {
		c.velocity.X *= 1 - dt*config.Combat.GroundDamping
		if c.velocity.Y > 0 {
			c.velocity.Y = 0
		}
	} else {
		c.velocity.X *= 1 - dt*config.Combat.AirDamping
	}
}

// Input applies one frame of commands. Movement accelerates rather than
// setting velocity.
func (c *Character) Input(dt float64, in components.Inputs) {
	c.moving = true
	switch {
	case in.Pressed(config.CommandMoveRight):
		c.velocity.X += c.speed * dt
		c.reversed = false
	case in.Pressed(config.CommandMoveLeft):
		c.velocity.X -= c.speed * dt
		c.reversed = true
	default:
		c.moving = false
	}

	if in.Pressed(config.CommandJump) {
		c.jump()
	}
	if in.Pressed(config.CommandMoveDown) {
		c.velocity.Y += c.speed * dt
	}
	if in.Pressed(config.CommandPrimaryAction) {
		c.attack(c.primary, config.PrimaryAttack)
	}
	if in.Pressed(config.CommandSecondaryAction) {
		c.attack(c.secondary, config.SecondaryAttack)
	}
}

func (c *Character) jump() {
	if !c.onGround || c.velocity.Y < 0 {
		return
	}
	c.velocity.Y -= c.jumpForce
	c.onGround = false
	c.animations.Request(config.Jumping)
}

func (c *Character) attack(executor *MeleeAttackExecutor, state config.StateID) {
	if !executor.CanExecute() || c.AttackLocked() {
		return
	}
	c.animations.Request(state)
	executor.Execute(c.world, c, c.Group)
	c.lockoutTimer = config.Combat.AttackLockout
}

func (c *Character) Image() image.Image {
	return c.animations.Frame(c.reversed)
}

// ImageRect sizes the rect to the current frame, with its midbottom at the
// hitbox midbottom shifted by the facing adjusted image offset.
func (c *Character) ImageRect() image.Rectangle {
	img := c.Image()
	if img == nil {
		return c.box.Rect()
	}

	facing := 1.0
	if c.reversed {
		facing = -1.0
	}
	anchor := c.offsetCenter.Scale(facing).Add(c.box.MidBottom())
	size := img.Bounds().Size()
	topLeft := image.Pt(int(anchor.X)-size.X/2, int(anchor.Y)-size.Y)
	return image.Rectangle{Min: topLeft, Max: topLeft.Add(size)}
}
