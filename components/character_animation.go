package components

import (
	"fmt"
	"image"

	"github.com/automoto/riftbrawl/config"
)

// AnimationEntry binds an animation to a state tag and a priority. Higher
// priorities override lower ones while both are pending.
type AnimationEntry struct {
	State     config.StateID
	Priority  int
	Animation *Animation
}

type pendingSlot struct {
	state     config.StateID
	animation *Animation
}

// CharacterAnimation resolves which of several concurrently requested
// animations is displayed. Every pending animation keeps running; the highest
// priority one still pending after an update is the current one.
type CharacterAnimation struct {
	entries map[config.StateID]AnimationEntry
	pending []*pendingSlot
	current config.StateID
}

func NewCharacterAnimation(entries ...AnimationEntry) *CharacterAnimation {
	ca := &CharacterAnimation{
		entries: make(map[config.StateID]AnimationEntry, len(entries)),
		current: config.Idle,
	}

	maxPriority := -1
	for _, e := range entries {
		ca.entries[e.State] = e
		maxPriority = max(maxPriority, e.Priority)
	}
	ca.pending = make([]*pendingSlot, maxPriority+1)
	return ca
}

func (ca *CharacterAnimation) entry(state config.StateID) AnimationEntry {
	e, ok := ca.entries[state]
	if !ok {
		panic(fmt.Sprintf("components: unknown animation state %q", state))
	}
	return e
}

// Request marks state pending without restarting it.
func (ca *CharacterAnimation) Request(state config.StateID) {
	e := ca.entry(state)
	ca.pending[e.Priority] = &pendingSlot{state: state, animation: e.Animation}
}

// RequestRestart rewinds the animation for state and marks it pending.
func (ca *CharacterAnimation) RequestRestart(state config.StateID) {
	ca.entry(state).Animation.Reset()
	ca.Request(state)
}

// RequestStop clears the priority slot of state.
func (ca *CharacterAnimation) RequestStop(state config.StateID) {
	ca.pending[ca.entry(state).Priority] = nil
}

// Pending returns the pending animation for state, or nil if state is not
// pending or unknown.
func (ca *CharacterAnimation) Pending(state config.StateID) *Animation {
	e, ok := ca.entries[state]
	if !ok {
		return nil
	}
	slot := ca.pending[e.Priority]
	if slot == nil || slot.state != state {
		return nil
	}
	return slot.animation
}

// Update advances every pending animation from the highest priority down,
// clears the ones that finished and selects the current animation.
func (ca *CharacterAnimation) Update(dt float64) {
	foundCurrent := false
	for priority := len(ca.pending) - 1; priority >= 0; priority-- {
		slot := ca.pending[priority]
		if slot == nil {
			continue
		}

		slot.animation.Update(dt)
		if slot.animation.Finished() {
			slot.animation.Reset()
			ca.pending[priority] = nil
			continue
		}

		if !foundCurrent {
			ca.current = slot.state
			foundCurrent = true
		}
	}
}

func (ca *CharacterAnimation) CurrentState() config.StateID {
	return ca.current
}

func (ca *CharacterAnimation) Current() *Animation {
	e, ok := ca.entries[ca.current]
	if !ok {
		return nil
	}
	return e.Animation
}

func (ca *CharacterAnimation) Frame(reversed bool) image.Image {
	if a := ca.Current(); a != nil {
		return a.Frame(reversed)
	}
	return nil
}
