package components

// HealthData implements Damageable. Embed it to give an entity health.
type HealthData struct {
	Current float64
	Max     float64
	Dead    bool
	Group   FriendGroup
}

func NewHealth(max float64, group FriendGroup) HealthData {
	return HealthData{Current: max, Max: max, Group: group}
}

// TakeDamage subtracts the damage amount. Health is clamped to [0, Max] and
// reaching 0 kills permanently. Knockback is ignored here.
func (h *HealthData) TakeDamage(data DamageData) {
	h.Current -= data.Amount
	if h.Current <= 0 {
		h.Current = 0
		h.Dead = true
	}
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

func (h *HealthData) FriendGroup() FriendGroup { return h.Group }
func (h *HealthData) IsDead() bool             { return h.Dead }
func (h *HealthData) Health() float64          { return h.Current }
func (h *HealthData) MaxHealth() float64       { return h.Max }

// HealthPercentage is in [0, 1]. A zero max health reports 0.
func (h *HealthData) HealthPercentage() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

// DealerData implements DamageDealer with zero knockback.
type DealerData struct {
	Damage float64
	Group  FriendGroup
}

func (d *DealerData) FriendGroup() FriendGroup { return d.Group }

func (d *DealerData) IsFriendly(target Damageable) bool {
	return d.Group == target.FriendGroup()
}

func (d *DealerData) DealDamage(target Damageable) {
	d.DealDamageWithKnockback(target, Vector{})
}

// DealDamageWithKnockback is the shared path for dealers that compute their
// own knockback.
func (d *DealerData) DealDamageWithKnockback(target Damageable, knockback Vector) {
	if d.IsFriendly(target) {
		return
	}
	target.TakeDamage(DamageData{Amount: d.Damage, Knockback: knockback})
}
