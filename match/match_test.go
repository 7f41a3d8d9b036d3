package match

import (
	"context"
	"testing"

	"github.com/automoto/riftbrawl/components"
	"github.com/automoto/riftbrawl/config"
	"github.com/automoto/riftbrawl/entities"
	"github.com/automoto/riftbrawl/entities/entitiestest"
	"github.com/automoto/riftbrawl/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 60

type sourceFunc func() entities.CharacterData

func (f sourceFunc) New() entities.CharacterData { return f() }

func testLevel() *leveldata.LevelDef {
	def := &leveldata.LevelDef{
		Name:         "test",
		Width:        500,
		Height:       1000,
		Gravity:      1500,
		MaxVelocityX: 800,
	}
	def.SpawnPoints = leveldata.EvenSpawnPoints(def.Origin, def.Width, 11)
	return def
}

func newMatch(t *testing.T, opts ...Option) *Match {
	t.Helper()
	src := sourceFunc(entitiestest.CharacterData)
	m, err := New(testLevel(), [2]Contender{{"p1", src}, {"p2", src}}, opts...)
	require.NoError(t, err)
	return m
}

// stepUntil steps with no input until cond holds or n ticks pass.
func stepUntil(m *Match, n int, cond func() bool) {
	for i := 0; i < n && !cond(); i++ {
		m.Step(tick, [2]components.Inputs{})
	}
}

func TestNewPlacesPlayersAtOuterSpawns(t *testing.T) {
	m := newMatch(t)
	spawns := m.Level().SpawnPoints()

	assert.Equal(t, spawns[0], m.Player(0).Character().Box().MidBottom())
	assert.Equal(t, spawns[len(spawns)-1], m.Player(1).Character().Box().MidBottom())
	assert.Len(t, m.Level().Characters(), 2)
	assert.NotEqual(t, m.Player(0).Group(), m.Player(1).Group())
	assert.Same(t, m.Player(1), m.Opponent(0))

	for _, p := range m.Players() {
		assert.Equal(t, config.Match.StartingLives, p.Lives())
		assert.False(t, p.HasLost())
	}
}

func TestNewRequiresSpawnPoints(t *testing.T) {
	def := testLevel()
	def.SpawnPoints = nil
	_, err := New(def, [2]Contender{})
	assert.Error(t, err)
}

func TestDeathRespawnsFreshCharacter(t *testing.T) {
	m := newMatch(t, WithSeed(7))
	p := m.Player(0)
	old := p.Character()

	old.TakeDamage(components.DamageData{Amount: 1000})
	stepUntil(m, 120, func() bool { return p.Lives() < config.Match.StartingLives })

	require.Equal(t, config.Match.StartingLives-1, p.Lives())
	assert.NotSame(t, old, p.Character())
	assert.False(t, m.Level().Contains(old))
	assert.True(t, m.Level().HasCharacter(p.Character()))
	assert.Equal(t, 100.0, p.Character().Health())
	assert.Equal(t, p.Group(), p.Character().FriendGroup())
	assert.Contains(t, m.Level().SpawnPoints(), p.RespawnPoint())
	assert.Equal(t, [2]int{0, 1}, m.Result().KOs)
	assert.False(t, m.Finished())
}

func TestLosingEveryLifeEndsMatch(t *testing.T) {
	m := newMatch(t)
	p := m.Player(0)

	for lives := config.Match.StartingLives; lives > 0; lives-- {
		p.Character().TakeDamage(components.DamageData{Amount: 1000})
		stepUntil(m, 120, func() bool { return p.Lives() < lives })
		require.Equal(t, lives-1, p.Lives())
	}

	require.True(t, m.Finished())
	assert.Same(t, m.Player(1), m.Winner())
	assert.False(t, m.Level().HasCharacter(p.Character()))

	r := m.Result()
	assert.Equal(t, "p2", r.Winner)
	assert.Equal(t, [2]int{0, 3}, r.KOs)
	assert.Equal(t, [2]int{0, 3}, r.Lives)
	assert.False(t, r.TimedOut)

	ticks := m.Ticks()
	m.Step(tick, [2]components.Inputs{})
	assert.Equal(t, ticks, m.Ticks())
}

func TestInputIgnoredWhileDead(t *testing.T) {
	m := newMatch(t)
	p := m.Player(0)
	p.Character().TakeDamage(components.DamageData{Amount: 1000})

	p.Input(tick, components.NewInputs(config.CommandMoveRight))
	assert.Equal(t, 0.0, p.Character().Velocity().X)
}

func TestTimeoutFavorsHealthier(t *testing.T) {
	m := newMatch(t, WithMaxTicks(10))
	m.Player(1).Character().TakeDamage(components.DamageData{Amount: 30})

	stepUntil(m, 20, m.Finished)

	r := m.Result()
	assert.Equal(t, 10, r.Ticks)
	assert.True(t, r.TimedOut)
	assert.Equal(t, "p1", r.Winner)
}

func TestTimeoutDraw(t *testing.T) {
	m := newMatch(t, WithMaxTicks(5))
	stepUntil(m, 20, m.Finished)

	assert.Nil(t, m.Winner())
	assert.Empty(t, m.Result().Winner)
	assert.True(t, m.Result().TimedOut)
}

func TestBotsPlayToCompletion(t *testing.T) {
	m := newMatch(t, WithMaxTicks(3000), WithSeed(3))
	loop := NewGameLoop(m, [2]InputSource{
		NewBot(config.BotDifficultyHard, 1),
		NewBot(config.BotDifficultyNormal, 2),
	}, 60, false)

	r, err := loop.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, m.Finished())
	assert.LessOrEqual(t, r.Ticks, 3000)
	assert.Positive(t, r.Ticks)
}

func TestLoopStopsOnCanceledContext(t *testing.T) {
	m := newMatch(t, WithMaxTicks(0))
	loop := NewGameLoop(m, [2]InputSource{Idle{}, Idle{}}, 60, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := loop.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, r.Ticks)
}

func TestLoopStop(t *testing.T) {
	m := newMatch(t, WithMaxTicks(0))
	loop := NewGameLoop(m, [2]InputSource{Idle{}, Idle{}}, 60, true)
	loop.Stop()
	loop.Stop()

	r, err := loop.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, r.Ticks)
}

func TestRealtimeLoopRunsToMaxTicks(t *testing.T) {
	m := newMatch(t, WithMaxTicks(5))
	loop := NewGameLoop(m, [2]InputSource{Idle{}, Idle{}}, 1000, true)

	r, err := loop.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, r.Ticks)
}
