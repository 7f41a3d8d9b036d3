package components

import "github.com/automoto/riftbrawl/config"

// Inputs holds which commands are active this frame for one player.
type Inputs [config.CommandCount]bool

func NewInputs(active ...config.Command) Inputs {
	var in Inputs
	for _, c := range active {
		in[c] = true
	}
	return in
}

func (in Inputs) Pressed(c config.Command) bool {
	return in[c]
}
