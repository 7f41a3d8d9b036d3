package tags

import (
	"github.com/automoto/riftbrawl/shared/dispatch"
	"github.com/yohamta/donburi"
)

var (
	Character = donburi.NewTag().SetName("Character")
	Attack    = donburi.NewTag().SetName("Attack")
	Body      = donburi.NewTag().SetName("Body")
)

// Resolv tags for broad phase queries
const (
	ResolvEntity    = "entity"
	ResolvCharacter = "character"
	ResolvAttack    = "attack"
)

// Dispatch kinds. Values implementing a kind must also implement the Go
// interfaces of every ancestor kind.
const (
	KindEntity       dispatch.Kind = "Entity"
	KindDamageable   dispatch.Kind = "Damageable"
	KindDamageDealer dispatch.Kind = "DamageDealer"
	KindCharacter    dispatch.Kind = "Character"
	KindMeleeAttack  dispatch.Kind = "MeleeAttack"
)

// NewKindHierarchy returns the closed kind hierarchy of simulated entities.
func NewKindHierarchy() *dispatch.Hierarchy {
	return dispatch.NewHierarchy().
		Declare(KindEntity).
		Declare(KindDamageable).
		Declare(KindDamageDealer).
		Declare(KindCharacter, KindEntity, KindDamageable).
		Declare(KindMeleeAttack, KindEntity, KindDamageDealer, KindDamageable)
}
