package factory

import (
	"github.com/automoto/riftbrawl/components"
	"github.com/automoto/riftbrawl/entities"
	"github.com/automoto/riftbrawl/systems"
)

// CharacterSource builds fresh data for one character.
type CharacterSource interface {
	New() entities.CharacterData
}

// CreateCharacter places a new character at position and adds it to the
// level's character group.
func CreateCharacter(level *systems.Level, src CharacterSource, position components.Vector, group components.FriendGroup) *entities.Character {
	c := entities.NewCharacter(level, src.New(), position, group)
	level.AddCharacter(c)
	return c
}
