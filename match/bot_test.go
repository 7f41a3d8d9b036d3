package match

import (
	"testing"

	"github.com/automoto/riftbrawl/components"
	"github.com/automoto/riftbrawl/config"
	"github.com/stretchr/testify/assert"
)

func TestBotChasesDistantOpponent(t *testing.T) {
	m := newMatch(t)
	bot := NewBot(config.BotDifficultyHard, 1)

	in := bot.Inputs(m, 0)
	assert.Equal(t, BotStateChase, bot.State())
	assert.True(t, in.Pressed(config.CommandMoveRight))
	assert.False(t, in.Pressed(config.CommandPrimaryAction))

	in = NewBot(config.BotDifficultyHard, 1).Inputs(m, 1)
	assert.True(t, in.Pressed(config.CommandMoveLeft))
}

func TestBotAttacksInRange(t *testing.T) {
	m := newMatch(t)
	m.Player(1).Character().Box().SetMidBottom(components.Vector{X: 40})
	bot := NewBot(config.BotDifficultyHard, 1)

	in := bot.Inputs(m, 0)
	assert.Equal(t, BotStateAttack, bot.State())
	assert.True(t, in.Pressed(config.CommandPrimaryAction) || in.Pressed(config.CommandSecondaryAction))

	// Cooldown holds the next attack back.
	in = bot.Inputs(m, 0)
	assert.False(t, in.Pressed(config.CommandPrimaryAction) || in.Pressed(config.CommandSecondaryAction))
}

func TestBotRetreatsWhenHurt(t *testing.T) {
	m := newMatch(t)
	m.Player(0).Character().TakeDamage(components.DamageData{Amount: 80})
	bot := NewBot(config.BotDifficultyHard, 1)

	bot.Inputs(m, 0)
	assert.Equal(t, BotStateRetreat, bot.State())
}

func TestBotIdlesWhenOpponentDead(t *testing.T) {
	m := newMatch(t)
	m.Player(1).Character().TakeDamage(components.DamageData{Amount: 1000})
	bot := NewBot(config.BotDifficultyEasy, 1)

	assert.Equal(t, components.Inputs{}, bot.Inputs(m, 0))
	assert.Equal(t, BotStateIdle, bot.State())
}

func TestHorizontalGap(t *testing.T) {
	a := components.NewBox(0, 0, 10, 10)
	assert.Equal(t, 5.0, horizontalGap(a, components.NewBox(15, 0, 10, 10)))
	assert.Equal(t, 5.0, horizontalGap(a, components.NewBox(-15, 0, 10, 10)))
	assert.Equal(t, 0.0, horizontalGap(a, components.NewBox(5, 0, 10, 10)))
}
