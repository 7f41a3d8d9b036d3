package config

// PhysicsConfig contains the default world physics used when a level does not override them
type PhysicsConfig struct {
	Gravity      float64 // Downward acceleration in world units per second squared
	MaxVelocityX float64 // Horizontal speed cap applied every tick

	// Default arena dimensions
	LevelWidth  float64
	LevelHeight float64
	SpawnCount  int
}

// CombatConfig contains character and attack tuning values
type CombatConfig struct {
	InvulnTime    float64 // Seconds of invulnerability after a hit
	AttackLockout float64 // Seconds before a character may attack again after a hit

	// Knockback = (facing * owner.W * KnockbackX, -owner.H * KnockbackY) + owner.Velocity * MomentumCarry
	KnockbackX    float64
	KnockbackY    float64
	MomentumCarry float64

	GroundDamping float64 // velocity.x *= 1 - GroundDamping*dt while idle on ground
	AirDamping    float64 // velocity.x *= 1 - AirDamping*dt while idle in the air
}

// MatchConfig contains match rules
type MatchConfig struct {
	StartingLives int
	MaxTicks      int // Hard stop for headless matches (0 = unlimited)
}

// LoopConfig contains the fixed-step loop settings
type LoopConfig struct {
	TickRate int // Ticks per second
}

// BroadphaseConfig contains spatial hash settings
type BroadphaseConfig struct {
	CellWidth  int
	CellHeight int
}

var Physics PhysicsConfig
var Combat CombatConfig
var Match MatchConfig
var Loop LoopConfig
var Broadphase BroadphaseConfig

func init() {
	// Physics Config
	Physics = PhysicsConfig{
		Gravity:      1500,
		MaxVelocityX: 800,

		LevelWidth:  500,
		LevelHeight: 1000,
		SpawnCount:  11,
	}

	// Combat Config
	Combat = CombatConfig{
		InvulnTime:    0.5,
		AttackLockout: 0.5,

		KnockbackX:    5,
		KnockbackY:    3,
		MomentumCarry: 0.5,

		GroundDamping: 10,
		AirDamping:    1,
	}

	// Match Config
	Match = MatchConfig{
		StartingLives: 3,
		MaxTicks:      60 * 60 * 5, // 5 minutes at 60 TPS
	}

	Loop = LoopConfig{
		TickRate: 60,
	}

	Broadphase = BroadphaseConfig{
		CellWidth:  16,
		CellHeight: 16,
	}
}
