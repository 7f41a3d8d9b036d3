package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthClampsAndDiesOnce(t *testing.T) {
	h := NewHealth(100, NewFriendGroup())

	h.TakeDamage(DamageData{Amount: 30})
	assert.Equal(t, 70.0, h.Health())
	assert.InDelta(t, 0.7, h.HealthPercentage(), 1e-12)
	assert.False(t, h.IsDead())

	h.TakeDamage(DamageData{Amount: -500})
	assert.Equal(t, 100.0, h.Health())

	h.TakeDamage(DamageData{Amount: 250})
	assert.Equal(t, 0.0, h.Health())
	assert.True(t, h.IsDead())

	// Death is permanent even if health comes back.
	h.TakeDamage(DamageData{Amount: -50})
	assert.Equal(t, 50.0, h.Health())
	assert.True(t, h.IsDead())
}

func TestHealthPercentageWithZeroMax(t *testing.T) {
	h := NewHealth(0, NewFriendGroup())
	assert.Equal(t, 0.0, h.HealthPercentage())
}

func TestDealerSkipsFriendlyTargets(t *testing.T) {
	ours, theirs := NewFriendGroup(), NewFriendGroup()
	assert.NotEqual(t, ours, theirs)

	dealer := &DealerData{Damage: 15, Group: ours}
	friend := NewHealth(100, ours)
	enemy := NewHealth(100, theirs)

	dealer.DealDamage(&friend)
	dealer.DealDamage(&enemy)

	assert.Equal(t, 100.0, friend.Health())
	assert.Equal(t, 85.0, enemy.Health())
	assert.True(t, dealer.IsFriendly(&friend))
	assert.False(t, dealer.IsFriendly(&enemy))
}

type recordingTarget struct {
	HealthData
	hits []DamageData
}

func (r *recordingTarget) TakeDamage(data DamageData) {
	r.hits = append(r.hits, data)
	r.HealthData.TakeDamage(data)
}

func TestDealerPassesKnockback(t *testing.T) {
	dealer := &DealerData{Damage: 5, Group: NewFriendGroup()}
	target := &recordingTarget{HealthData: NewHealth(10, NewFriendGroup())}

	dealer.DealDamageWithKnockback(target, Vector{X: 3, Y: -4})
	dealer.DealDamage(target)

	assert.Equal(t, []DamageData{
		{Amount: 5, Knockback: Vector{X: 3, Y: -4}},
		{Amount: 5},
	}, target.hits)
	assert.True(t, target.IsDead())
}

func TestFriendGroupString(t *testing.T) {
	g := NewFriendGroup()
	assert.Len(t, g.String(), 36)
	assert.Equal(t, g.String(), g.String())
}
