package config

// BotDifficulty affects reaction time and decision quality
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

// BotDifficultyConfig holds tuning values for bot behavior at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay    int     // Ticks between decisions
	AttackRange      float64 // Horizontal distance to start attacking
	RetreatThreshold float64 // Health % to start retreating
	JumpHeight       float64 // Opponent this far above triggers a jump
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay:    30, // 0.5 second reaction time
				AttackRange:      40.0,
				RetreatThreshold: 0.2, // Retreat at 20% health
				JumpHeight:       80.0,
			},
			BotDifficultyNormal: {
				ReactionDelay:    15,
				AttackRange:      50.0,
				RetreatThreshold: 0.25,
				JumpHeight:       60.0,
			},
			BotDifficultyHard: {
				ReactionDelay:    5,
				AttackRange:      60.0,
				RetreatThreshold: 0.3,
				JumpHeight:       40.0,
			},
		},
	}
}
