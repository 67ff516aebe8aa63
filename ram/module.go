// Package ram defines the simulated memory modules and the heuristics that
// pick their technology.
package ram

import (
	"fmt"
	"strconv"
)

// FullHealth is the health percentage of a freshly allocated module.
const FullHealth = 100

// Module is a simulated memory unit. It has no identity beyond its ID.
type Module struct {
	ID         string
	Slot       string
	CapacityGB int
	Technology Technology
	Installed  bool
	Health     int
}

// NewModule creates an uninstalled module at full health.
func NewModule(id, slot string, capacityGB int, tech Technology) Module {
	return Module{
		ID:         id,
		Slot:       slot,
		CapacityGB: capacityGB,
		Technology: tech,
		Health:     FullHealth,
	}
}

// Degrade lowers the health by amount. Health stays within [0, FullHealth].
func (m *Module) Degrade(amount int) {
	m.Health -= amount

	switch {
	case m.Health < 0:
		m.Health = 0
	case m.Health > FullHealth:
		m.Health = FullHealth
	}
}

func (m Module) String() string {
	return fmt.Sprintf("<MemoryBlock %dGB %s installed=%t>",
		m.CapacityGB, m.Technology, m.Installed)
}

// SlotName returns the name of the i-th memory slot.
func SlotName(i int) string {
	return "RAM_SLOT_" + strconv.Itoa(i)
}
