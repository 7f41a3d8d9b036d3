// Package match runs two player matches on top of a Level: lives, respawns,
// bots and the fixed step loop.
package match

import (
	"fmt"
	"math/rand"

	"github.com/automoto/riftbrawl/components"
	"github.com/automoto/riftbrawl/config"
	"github.com/automoto/riftbrawl/shared/event"
	"github.com/automoto/riftbrawl/shared/leveldata"
	"github.com/automoto/riftbrawl/systems"
	"github.com/automoto/riftbrawl/systems/factory"
	"go.uber.org/zap"
)

// Contender is one side of a match.
type Contender struct {
	Name      string
	Character factory.CharacterSource
}

// Result summarizes a finished or stopped match.
type Result struct {
	Level    string
	Winner   string // Empty on a draw
	Ticks    int
	Lives    [2]int
	KOs      [2]int // Knockouts scored by each player
	TimedOut bool
}

type Match struct {
	level    *systems.Level
	players  [2]*Player
	sources  [2]factory.CharacterSource
	rng      *rand.Rand
	logger   *zap.Logger
	maxTicks int

	ticks    int
	kos      [2]int
	winner   *Player
	finished bool
	timedOut bool
}

type Option func(*Match)

func WithLogger(logger *zap.Logger) Option {
	return func(m *Match) {
		m.logger = logger
	}
}

// WithSeed fixes the respawn point sequence.
func WithSeed(seed int64) Option {
	return func(m *Match) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxTicks ends the match after n ticks. Zero means no limit.
func WithMaxTicks(n int) Option {
	return func(m *Match) {
		m.maxTicks = n
	}
}

// New places the first contender at the leftmost spawn point and the second
// at the rightmost one.
func New(def *leveldata.LevelDef, contenders [2]Contender, opts ...Option) (*Match, error) {
	if len(def.SpawnPoints) == 0 {
		return nil, fmt.Errorf("match: level %s has no spawn points", def.Name)
	}

	m := &Match{
		logger:   zap.NewNop(),
		rng:      rand.New(rand.NewSource(42)),
		maxTicks: config.Match.MaxTicks,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.level = factory.CreateLevel(def, systems.WithLogger(m.logger))
	spawns := m.level.SpawnPoints()
	starts := [2]components.Vector{spawns[0], spawns[len(spawns)-1]}

	for i, c := range contenders {
		group := components.NewFriendGroup()
		character := factory.CreateCharacter(m.level, c.Character, starts[i], group)
		p := NewPlayer(c.Name, i, group, character, starts[i])
		p.OnCharacterDeath.Add(event.Func(m.onCharacterDeath))
		m.players[i] = p
		m.sources[i] = c.Character
	}

	m.logger.Info("match started",
		zap.String("level", def.Name),
		zap.String("player1", m.players[0].Name()),
		zap.String("player2", m.players[1].Name()))

	return m, nil
}

func (m *Match) Level() *systems.Level  { return m.level }
func (m *Match) Player(i int) *Player   { return m.players[i] }
func (m *Match) Opponent(i int) *Player { return m.players[1-i] }
func (m *Match) Ticks() int             { return m.ticks }
func (m *Match) Finished() bool         { return m.finished }
func (m *Match) Winner() *Player        { return m.winner }
func (m *Match) Players() [2]*Player    { return m.players }

// Step applies one tick of input for both players and advances the level.
// A finished match ignores further steps.
func (m *Match) Step(dt float64, inputs [2]components.Inputs) {
	if m.finished {
		return
	}

	for i, p := range m.players {
		p.Input(dt, inputs[i])
	}
	m.level.Update(dt)
	m.ticks++

	if !m.finished && m.maxTicks > 0 && m.ticks >= m.maxTicks {
		m.timeout()
	}
}

func (m *Match) onCharacterDeath(p *Player) {
	if m.finished {
		return
	}
	other := m.Opponent(p.Index())
	m.kos[other.Index()]++

	if p.HasLost() {
		m.finish(other)
		return
	}

	spawns := m.level.SpawnPoints()
	spawn := spawns[m.rng.Intn(len(spawns))]
	p.SetRespawnPoint(spawn)
	p.SetCharacter(factory.CreateCharacter(m.level, m.sources[p.Index()], spawn, p.Group()))

	m.logger.Info("player respawned",
		zap.String("player", p.Name()),
		zap.Int("lives", p.Lives()),
		zap.Float64("x", spawn.X),
		zap.Int("tick", m.ticks))
}

// timeout decides by remaining lives, then by health fraction.
func (m *Match) timeout() {
	m.timedOut = true
	a, b := m.players[0], m.players[1]
	switch {
	case a.Lives() != b.Lives():
		m.finish(m.leader(a.Lives() > b.Lives()))
	case healthFraction(a) != healthFraction(b):
		m.finish(m.leader(healthFraction(a) > healthFraction(b)))
	default:
		m.finish(nil)
	}
}

func (m *Match) leader(firstAhead bool) *Player {
	if firstAhead {
		return m.players[0]
	}
	return m.players[1]
}

func healthFraction(p *Player) float64 {
	return p.Character().HealthPercentage()
}

func (m *Match) finish(winner *Player) {
	m.finished = true
	m.winner = winner

	name := "draw"
	if winner != nil {
		name = winner.Name()
	}
	m.logger.Info("match finished",
		zap.String("winner", name),
		zap.Int("ticks", m.ticks),
		zap.Bool("timed_out", m.timedOut))
}

func (m *Match) Result() Result {
	r := Result{
		Level:    m.level.Name(),
		Ticks:    m.ticks,
		KOs:      m.kos,
		TimedOut: m.timedOut,
	}
	if m.winner != nil {
		r.Winner = m.winner.Name()
	}
	for i, p := range m.players {
		r.Lives[i] = p.Lives()
	}
	return r
}
