package systems

import (
	"github.com/automoto/riftbrawl/components"
	"github.com/automoto/riftbrawl/entities"
	"github.com/automoto/riftbrawl/shared/dispatch"
	"github.com/automoto/riftbrawl/tags"
)

// NewCollisionDispatcher returns a dispatcher over the entity kind hierarchy
// with the damage handler registered.
func NewCollisionDispatcher() *CollisionDispatcher {
	d := dispatch.New[entities.Entity, struct{}](tags.NewKindHierarchy())
	RegisterDamageHandler(d)
	return d
}

// RegisterDamageHandler makes every damage dealer deal damage to every
// damageable it touches. Friendly groups are filtered by the dealer.
func RegisterDamageHandler(d *CollisionDispatcher) {
	dispatch.Register2(d, tags.KindDamageDealer, tags.KindDamageable, HandleDamageCollision)
}

func HandleDamageCollision(dealer components.DamageDealer, target components.Damageable) struct{} {
	dealer.DealDamage(target)
	return struct{}{}
}
