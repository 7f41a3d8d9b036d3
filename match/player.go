package match

import (
	"github.com/automoto/riftbrawl/components"
	"github.com/automoto/riftbrawl/config"
	"github.com/automoto/riftbrawl/entities"
	"github.com/automoto/riftbrawl/shared/event"
)

// Player owns a sequence of characters over a match. Every character it
// controls shares the player's friend group.
type Player struct {
	name         string
	index        int
	group        components.FriendGroup
	character    *entities.Character
	lives        int
	respawnPoint components.Vector
	deathHandler *event.FuncListener[*entities.Character]

	// OnCharacterDeath fires after lives have been decremented.
	OnCharacterDeath event.Event[*Player]
}

func NewPlayer(name string, index int, group components.FriendGroup, character *entities.Character, respawnPoint components.Vector) *Player {
	p := &Player{
		name:         name,
		index:        index,
		group:        group,
		lives:        config.Match.StartingLives,
		respawnPoint: respawnPoint,
	}
	p.deathHandler = event.Func(p.onDeath)
	p.SetCharacter(character)
	return p
}

func (p *Player) Name() string                        { return p.name }
func (p *Player) Index() int                          { return p.index }
func (p *Player) Group() components.FriendGroup       { return p.group }
func (p *Player) Character() *entities.Character      { return p.character }
func (p *Player) Lives() int                          { return p.lives }
func (p *Player) RespawnPoint() components.Vector     { return p.respawnPoint }
func (p *Player) SetRespawnPoint(v components.Vector) { p.respawnPoint = v }
func (p *Player) HasLost() bool                       { return p.lives <= 0 }

// Input forwards commands to the character unless it is dead.
func (p *Player) Input(dt float64, in components.Inputs) {
	if p.character == nil || p.character.IsDead() {
		return
	}
	p.character.Input(dt, in)
}

// SetCharacter moves the death subscription to c and places c at the
// respawn point.
func (p *Player) SetCharacter(c *entities.Character) {
	if p.character != nil {
		p.character.OnDeath.Remove(p.deathHandler)
	}
	p.character = c
	c.OnDeath.Add(p.deathHandler)
	c.Box().SetMidBottom(p.respawnPoint)
}

func (p *Player) onDeath(*entities.Character) {
	p.lives--
	p.OnCharacterDeath.Invoke(p)
}
