package match

import (
	"math"
	"math/rand"

	"github.com/automoto/riftbrawl/components"
	"github.com/automoto/riftbrawl/config"
)

// InputSource produces one tick of commands for the player at index.
type InputSource interface {
	Inputs(m *Match, index int) components.Inputs
}

// Idle sends no commands.
type Idle struct{}

func (Idle) Inputs(*Match, int) components.Inputs { return components.Inputs{} }

type BotState int

const (
	BotStateIdle BotState = iota
	BotStateChase
	BotStateAttack
	BotStateRetreat
)

func (s BotState) String() string {
	switch s {
	case BotStateChase:
		return "chase"
	case BotStateAttack:
		return "attack"
	case BotStateRetreat:
		return "retreat"
	default:
		return "idle"
	}
}

// Bot is a simple opponent. It re-evaluates its state every few ticks and
// generates movement and attack commands from it.
type Bot struct {
	cfg config.BotDifficultyConfig
	rng *rand.Rand

	state          BotState
	decisionTimer  int
	attackCooldown int
	jumpCooldown   int
}

// NewBot returns a bot for difficulty. The seed fixes its random choices.
func NewBot(difficulty config.BotDifficulty, seed int64) *Bot {
	cfg, ok := config.Bot.Difficulties[difficulty]
	if !ok {
		cfg = config.Bot.Difficulties[config.BotDifficultyNormal]
	}
	return &Bot{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (b *Bot) State() BotState { return b.state }

func (b *Bot) Inputs(m *Match, index int) components.Inputs {
	var in components.Inputs

	if b.decisionTimer > 0 {
		b.decisionTimer--
	}
	if b.attackCooldown > 0 {
		b.attackCooldown--
	}
	if b.jumpCooldown > 0 {
		b.jumpCooldown--
	}

	self := m.Player(index).Character()
	target := m.Opponent(index).Character()
	if self == nil || self.IsDead() || target == nil || target.IsDead() {
		b.state = BotStateIdle
		return in
	}

	me, them := self.Box(), target.Box()
	dx := them.CenterX() - me.CenterX()
	dy := them.CenterY() - me.CenterY()
	gap := horizontalGap(me, them)

	if b.decisionTimer <= 0 {
		b.updateState(gap, self.HealthPercentage())
		b.decisionTimer = max(1, b.cfg.ReactionDelay/3)
	}

	switch b.state {
	case BotStateChase:
		b.chase(&in, dx, dy, self.OnGround())
	case BotStateAttack:
		b.attack(&in, dx, gap)
	case BotStateRetreat:
		b.retreat(&in, dx, gap, self.OnGround())
	}
	return in
}

func (b *Bot) updateState(gap, healthPercent float64) {
	switch {
	case healthPercent < b.cfg.RetreatThreshold:
		b.state = BotStateRetreat
	case gap < b.cfg.AttackRange:
		b.state = BotStateAttack
	default:
		b.state = BotStateChase
	}
}

func (b *Bot) chase(in *components.Inputs, dx, dy float64, onGround bool) {
	moveToward(in, dx, 10)

	// Jump if the target is well above us
	if dy < -b.cfg.JumpHeight && onGround && b.jumpCooldown <= 0 {
		in[config.CommandJump] = true
		b.jumpCooldown = 45
	}
}

func (b *Bot) attack(in *components.Inputs, dx, gap float64) {
	// Keep pressure on until the boxes are close
	if gap > b.cfg.AttackRange/2 {
		moveToward(in, dx, 0)
	}
	if b.attackCooldown > 0 {
		return
	}

	if b.rng.Float64() < 0.25 {
		in[config.CommandSecondaryAction] = true
	} else {
		in[config.CommandPrimaryAction] = true
	}
	b.attackCooldown = 20 + b.cfg.ReactionDelay/2
}

func (b *Bot) retreat(in *components.Inputs, dx, gap float64, onGround bool) {
	if gap < 120 {
		moveToward(in, -dx, 0)
	}

	// Jump to escape if very close
	if onGround && b.jumpCooldown <= 0 && gap < b.cfg.AttackRange/2 {
		in[config.CommandJump] = true
		b.jumpCooldown = 60
	}

	// Counter-attack when cornered
	if b.attackCooldown <= 0 && gap < b.cfg.AttackRange/2 {
		in[config.CommandPrimaryAction] = true
		b.attackCooldown = 30
	}
}

func moveToward(in *components.Inputs, dx, deadzone float64) {
	if dx > deadzone {
		in[config.CommandMoveRight] = true
	} else if dx < -deadzone {
		in[config.CommandMoveLeft] = true
	}
}

// horizontalGap is the space between two boxes, zero when they overlap.
func horizontalGap(a, b *components.Box) float64 {
	return math.Max(0, math.Max(b.Left()-a.Right(), a.Left()-b.Right()))
}
