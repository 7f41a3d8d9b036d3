package components

import "github.com/google/uuid"

// DamageData is passed from a dealer to a damageable at the moment of a hit.
type DamageData struct {
	Amount    float64
	Knockback Vector
}

// FriendGroup is an opaque token shared by everything one player controls.
// Dealers never damage targets of the same group.
type FriendGroup uuid.UUID

func NewFriendGroup() FriendGroup {
	return FriendGroup(uuid.New())
}

func (g FriendGroup) String() string {
	return uuid.UUID(g).String()
}

// Damageable is implemented by anything that can take damage.
type Damageable interface {
	TakeDamage(data DamageData)
	FriendGroup() FriendGroup
	IsDead() bool
}

// DamageDealer is implemented by anything that can deal damage.
type DamageDealer interface {
	DealDamage(target Damageable)
	FriendGroup() FriendGroup
}
