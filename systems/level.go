package systems

import (
	"slices"

	"github.com/automoto/riftbrawl/archetypes"
	"github.com/automoto/riftbrawl/components"
	"github.com/automoto/riftbrawl/config"
	"github.com/automoto/riftbrawl/entities"
	"github.com/automoto/riftbrawl/shared/dispatch"
	"github.com/automoto/riftbrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// CollisionDispatcher routes colliding entity pairs to handlers.
type CollisionDispatcher = dispatch.Dispatcher[entities.Entity, struct{}]

// LevelConfig holds the construction parameters of a Level. The world spans
// x in [Origin.X, Origin.X+Width] and y in [Origin.Y-Height, Origin.Y]; the
// floor is at Origin.Y.
type LevelConfig struct {
	Name         string
	Width        float64
	Height       float64
	Origin       components.Vector
	Gravity      float64
	MaxVelocityX float64
	SpawnPoints  []components.Vector
	Background   string
}

// Level owns the entities of one arena and steps them. Entities live in a
// donburi world for stable handles and in a resolv space for the broad phase.
type Level struct {
	cfg        LevelConfig
	dispatcher *CollisionDispatcher
	logger     *zap.Logger

	world   donburi.World
	space   *resolv.Space
	handles map[entities.Entity]donburi.Entity
	order   []entities.Entity

	removals []entities.Entity
}

type Option func(*Level)

func WithLogger(logger *zap.Logger) Option {
	return func(l *Level) {
		l.logger = logger
	}
}

func NewLevel(cfg LevelConfig, dispatcher *CollisionDispatcher, opts ...Option) *Level {
	l := &Level{
		cfg:        cfg,
		dispatcher: dispatcher,
		logger:     zap.NewNop(),
		world:      donburi.NewWorld(),
		handles:    make(map[entities.Entity]donburi.Entity),
	}
	for _, opt := range opts {
		opt(l)
	}

	cw, ch := config.Broadphase.CellWidth, config.Broadphase.CellHeight
	l.space = resolv.NewSpace(
		spaceExtent(cfg.Width, cw),
		spaceExtent(cfg.Height, ch),
		cw,
		ch,
	)

	l.logger.Debug("level created",
		zap.String("name", cfg.Name),
		zap.Float64("width", cfg.Width),
		zap.Float64("height", cfg.Height),
		zap.Float64("gravity", cfg.Gravity),
		zap.Int("spawn_points", len(cfg.SpawnPoints)))

	return l
}

func (l *Level) Name() string                     { return l.cfg.Name }
func (l *Level) Width() float64                   { return l.cfg.Width }
func (l *Level) Height() float64                  { return l.cfg.Height }
func (l *Level) Origin() components.Vector        { return l.cfg.Origin }
func (l *Level) Gravity() float64                 { return l.cfg.Gravity }
func (l *Level) MaxVelocityX() float64            { return l.cfg.MaxVelocityX }
func (l *Level) Background() string               { return l.cfg.Background }
func (l *Level) SpawnPoints() []components.Vector { return l.cfg.SpawnPoints }

// Floor is the y coordinate of the ground line.
func (l *Level) Floor() float64 { return l.cfg.Origin.Y }

// Entities returns the live entities in insertion order.
func (l *Level) Entities() []entities.Entity {
	return slices.Clone(l.order)
}

// Characters returns the live characters in insertion order.
func (l *Level) Characters() []*entities.Character {
	var cs []*entities.Character
	tags.Character.Each(l.world, func(entry *donburi.Entry) {
		cs = append(cs, components.Object.Get(entry).Data.(*entities.Character))
	})
	slices.SortFunc(cs, func(a, b *entities.Character) int {
		return slices.Index(l.order, entities.Entity(a)) - slices.Index(l.order, entities.Entity(b))
	})
	return cs
}

func (l *Level) Contains(e entities.Entity) bool {
	_, ok := l.handles[e]
	return ok
}

func (l *Level) HasCharacter(c *entities.Character) bool {
	return l.isCharacter(c)
}

func (l *Level) isCharacter(e entities.Entity) bool {
	h, ok := l.handles[e]
	if !ok {
		return false
	}
	return l.world.Entry(h).HasComponent(tags.Character)
}

// AddCharacter adds characters to the level and to the character group.
// Characters already in the group are ignored.
func (l *Level) AddCharacter(cs ...*entities.Character) {
	for _, c := range cs {
		if l.isCharacter(c) {
			continue
		}
		if h, ok := l.handles[c]; ok {
			// Present as a plain entity: move it to the character archetype.
			obj := l.object(h)
			l.world.Remove(h)
			l.handles[c] = l.spawn(archetypes.Character, obj).Entity()
			continue
		}
		l.add(c, archetypes.Character)
	}
}

// RemoveCharacter removes characters that are in the character group.
func (l *Level) RemoveCharacter(cs ...*entities.Character) {
	for _, c := range cs {
		if l.isCharacter(c) {
			l.RemoveEntity(c)
		}
	}
}

// AddEntity adds entities that are not already present.
func (l *Level) AddEntity(es ...entities.Entity) {
	for _, e := range es {
		if l.Contains(e) {
			continue
		}
		arch := archetypes.Body
		if e.Kind() == tags.KindMeleeAttack {
			arch = archetypes.Attack
		}
		l.add(e, arch)
	}
}

// RemoveEntity removes entities immediately. Use RequestEntityRemoval while
// the level is updating.
func (l *Level) RemoveEntity(es ...entities.Entity) {
	for _, e := range es {
		h, ok := l.handles[e]
		if !ok {
			continue
		}
		l.space.Remove(l.object(h))
		l.world.Remove(h)
		delete(l.handles, e)
		if i := slices.Index(l.order, e); i >= 0 {
			l.order = slices.Delete(l.order, i, i+1)
		}
		l.logger.Debug("entity removed",
			zap.String("kind", string(e.Kind())),
			zap.Int("entities", len(l.order)))
	}
}

// RequestEntityRemoval queues e for removal at the end of the current tick.
func (l *Level) RequestEntityRemoval(e entities.Entity) {
	l.removals = append(l.removals, e)
}

func (l *Level) add(e entities.Entity, arch *archetypes.Archetype) {
	if e.World() == nil {
		e.SetWorld(l)
	}

	obj := resolv.NewObject(0, 0, 0, 0, resolvTags(e)...)
	obj.Data = e
	l.syncObject(obj, e.Box())
	l.space.Add(obj)

	l.handles[e] = l.spawn(arch, obj).Entity()
	l.order = append(l.order, e)

	l.logger.Debug("entity added",
		zap.String("kind", string(e.Kind())),
		zap.Int("entities", len(l.order)))
}

// resolvTags follows the entity's kind, not its group membership.
func resolvTags(e entities.Entity) []string {
	switch e.Kind() {
	case tags.KindCharacter:
		return []string{tags.ResolvEntity, tags.ResolvCharacter}
	case tags.KindMeleeAttack:
		return []string{tags.ResolvEntity, tags.ResolvAttack}
	default:
		return []string{tags.ResolvEntity}
	}
}

func (l *Level) spawn(arch *archetypes.Archetype, obj *resolv.Object) *donburi.Entry {
	entry := arch.Spawn(l.world)
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	return entry
}

func (l *Level) object(h donburi.Entity) *resolv.Object {
	return components.Object.Get(l.world.Entry(h)).Object
}

// Update steps the level. All entities move and are clamped before any
// collision is evaluated, and all collisions are evaluated before queued
// removals are applied.
func (l *Level) Update(dt float64) {
	for _, e := range slices.Clone(l.order) {
		e.Update(dt)
	}

	for _, e := range l.order {
		l.applyPhysics(dt, e)
		l.syncObject(l.object(l.handles[e]), e.Box())
	}

	tags.Character.Each(l.world, func(entry *donburi.Entry) {
		c := components.Object.Get(entry).Data.(*entities.Character)
		l.updateGrounded(c)
	})

	for _, e := range slices.Clone(l.order) {
		l.collide(e)
	}

	l.processRemovals()
}

func (l *Level) processRemovals() {
	if len(l.removals) == 0 {
		return
	}
	pending := l.removals
	l.removals = nil
	l.RemoveEntity(pending...)
}
