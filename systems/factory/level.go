package factory

import (
	"github.com/automoto/riftbrawl/components"
	"github.com/automoto/riftbrawl/shared/leveldata"
	"github.com/automoto/riftbrawl/systems"
)

// LevelConfig converts a level definition to Level parameters.
func LevelConfig(def *leveldata.LevelDef) systems.LevelConfig {
	spawns := make([]components.Vector, len(def.SpawnPoints))
	for i, p := range def.SpawnPoints {
		spawns[i] = components.Vector{X: p.X, Y: p.Y}
	}
	return systems.LevelConfig{
		Name:         def.Name,
		Width:        def.Width,
		Height:       def.Height,
		Origin:       components.Vector{X: def.Origin.X, Y: def.Origin.Y},
		Gravity:      def.Gravity,
		MaxVelocityX: def.MaxVelocityX,
		SpawnPoints:  spawns,
		Background:   def.Background,
	}
}

// CreateLevel builds a Level from def with the damage handler registered.
func CreateLevel(def *leveldata.LevelDef, opts ...systems.Option) *systems.Level {
	return systems.NewLevel(LevelConfig(def), systems.NewCollisionDispatcher(), opts...)
}
