package engine

import "fmt"

// State is the lifecycle label of an engine.
type State int

// The engine states. An engine cycles through them in declaration order.
const (
	StateIdle State = iota
	StateInstalling
	StateInstalled
	StateUninstalling
)

var stateNames = map[State]string{
	StateIdle:         "IDLE",
	StateInstalling:   "INSTALLING",
	StateInstalled:    "INSTALLED",
	StateUninstalling: "UNINSTALLING",
}

func (s State) String() string {
	name, ok := stateNames[s]
	if !ok {
		return fmt.Sprintf("State(%d)", int(s))
	}

	return name
}

// Next returns the state that follows s in the lifecycle.
func (s State) Next() State {
	return (s + 1) % State(len(stateNames))
}
