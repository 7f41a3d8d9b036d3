package config

// StateID names an animation state of a character. Content files refer to
// animations by these names.
type StateID string

const (
	Idle            StateID = "IDLE"
	Running         StateID = "RUNNING"
	Jumping         StateID = "JUMPING"
	Falling         StateID = "FALLING"
	Hurt            StateID = "HURT"
	Death           StateID = "DEATH"
	PrimaryAttack   StateID = "PRIMARY_ATTACK"
	SecondaryAttack StateID = "SECONDARY_ATTACK"
)

// States lists every state a character animation set must provide.
var States = []StateID{Idle, Running, Jumping, Falling, Hurt, Death, PrimaryAttack, SecondaryAttack}

// AttackType identifies how an attack definition is executed
type AttackType string

const (
	AttackMelee AttackType = "MELEE"
)
