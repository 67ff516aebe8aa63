package engine

import "github.com/sarchlab/ramsim/ram"

// A Degrader decides how much health a module loses in one diagnostics or
// maintenance pass. Random policies draw from chooser, which belongs to the
// pass that asks.
type Degrader interface {
	Degradation(m ram.Module, chooser ram.Chooser) int
}

// NoDegradation never takes health away. It is the default policy.
type NoDegradation struct{}

// Degradation returns 0.
func (NoDegradation) Degradation(ram.Module, ram.Chooser) int {
	return 0
}

// RandomDegradation takes away a random amount in [0, Max] from installed
// modules.
type RandomDegradation struct {
	Max int
}

// Degradation draws the amount to take away.
func (d RandomDegradation) Degradation(m ram.Module, chooser ram.Chooser) int {
	if d.Max <= 0 || !m.Installed {
		return 0
	}

	return chooser.IntN(d.Max + 1)
}

// degradeAll applies the degradation policy to every module under the engine
// lock and returns copies of the updated records.
func (e *Engine) degradeAll(chooser ram.Chooser) []ram.Module {
	e.lock.Lock()
	defer e.lock.Unlock()

	for i := range e.modules {
		e.modules[i].Degrade(e.degrader.Degradation(e.modules[i], chooser))
	}

	modules := make([]ram.Module, len(e.modules))
	copy(modules, e.modules)

	return modules
}
