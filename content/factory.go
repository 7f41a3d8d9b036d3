package content

import (
	"fmt"
	"image"
	"math"

	"github.com/automoto/riftbrawl/components"
	"github.com/automoto/riftbrawl/entities"
)

type attackTemplate struct {
	frames   []components.AttackFrame
	cooldown float64
	health   float64
	damage   float64
}

func (a attackTemplate) factory() entities.AttackFactory {
	return func(world entities.World, owner entities.Entity, group components.FriendGroup) *entities.MeleeAttack {
		return entities.NewMeleeAttack(world, owner, group, components.NewAttackTrajectory(a.frames), nil, a.health, a.damage)
	}
}

func (a attackTemplate) executor() *entities.MeleeAttackExecutor {
	return entities.NewMeleeAttackExecutor(a.factory(), a.cooldown)
}

// CharacterFactory holds a scaled, validated character. Frames are loaded
// once and shared; every call to New gets its own animation and executor
// state.
type CharacterFactory struct {
	name         string
	stats        entities.CharacterStats
	offsetCenter components.Vector
	animations   []components.AnimationEntry
	primary      attackTemplate
	secondary    attackTemplate
}

// NewCharacterFactory scales def and loads its frames from source.
func NewCharacterFactory(def *CharacterDef, source FrameSource) (*CharacterFactory, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	scale := def.Scale

	f := &CharacterFactory{
		name: def.Name,
		stats: entities.CharacterStats{
			HitboxSize: scaleVec(def.Stats.HitboxSize, scale),
			Health:     def.Stats.Health,
			Speed:      def.Stats.Speed * scale,
			JumpForce:  def.Stats.JumpForce * scale,
		},
		offsetCenter: scaleVec(def.Animations.OffsetCenter, scale),
		primary:      newAttackTemplate(def.Attacks.Primary, scale),
		secondary:    newAttackTemplate(def.Attacks.Secondary, scale),
	}

	size := image.Pt(int(def.Animations.Size.X), int(def.Animations.Size.Y))
	for priority, a := range def.Animations.List {
		frames, err := source.Frames(def.Name, a.Type, a.Frames, size)
		if err != nil {
			return nil, fmt.Errorf("content: %s: animation %s: %w", def.Name, a.Type, err)
		}
		f.animations = append(f.animations, components.AnimationEntry{
			State:     a.Type,
			Priority:  priority,
			Animation: components.NewAnimation(scaleFrames(frames, scale), a.TotalTimeMs/1000, a.Looping()),
		})
	}

	return f, nil
}

func newAttackTemplate(def AttackDef, scale float64) attackTemplate {
	t := attackTemplate{
		cooldown: def.Cooldown,
		health:   def.Health,
		damage:   def.Damage,
	}
	for _, frame := range def.Trajectory.Frames {
		t.frames = append(t.frames, components.AttackFrame{
			TimeMs: def.Trajectory.TimeMs(frame),
			Offset: scaleVec(frame.OffsetCenter, scale),
			Size:   scaleVec(frame.Size, scale),
		})
	}
	return t
}

// scaleVec truncates to whole units.
func scaleVec(v Vec, scale float64) components.Vector {
	return components.Vector{X: math.Trunc(v.X * scale), Y: math.Trunc(v.Y * scale)}
}

func (f *CharacterFactory) Name() string                   { return f.name }
func (f *CharacterFactory) Stats() entities.CharacterStats { return f.stats }

// New returns fresh data for one character.
func (f *CharacterFactory) New() entities.CharacterData {
	entries := make([]components.AnimationEntry, len(f.animations))
	for i, e := range f.animations {
		entries[i] = components.AnimationEntry{
			State:     e.State,
			Priority:  e.Priority,
			Animation: e.Animation.Clone(),
		}
	}

	return entities.CharacterData{
		Name:         f.name,
		Stats:        f.stats,
		Animations:   components.NewCharacterAnimation(entries...),
		OffsetCenter: f.offsetCenter,
		Primary:      f.primary.executor(),
		Secondary:    f.secondary.executor(),
	}
}
