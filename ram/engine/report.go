package engine

import (
	"fmt"
	"io"
	"strings"

	"github.com/sarchlab/ramsim/ram"
	"github.com/syifan/goseth"
)

// Snapshot is a point-in-time copy of the engine.
type Snapshot struct {
	Name       string
	State      string
	Technology ram.Technology
	Modules    []ram.Module
}

// Snapshot copies the engine state under the engine lock.
func (e *Engine) Snapshot() Snapshot {
	e.lock.Lock()
	defer e.lock.Unlock()

	modules := make([]ram.Module, len(e.modules))
	copy(modules, e.modules)

	return Snapshot{
		Name:       e.name,
		State:      e.state.String(),
		Technology: e.technology,
		Modules:    modules,
	}
}

// WriteReport writes the human readable memory report.
func (e *Engine) WriteReport(w io.Writer) error {
	var b strings.Builder

	b.WriteString("\n=== MEMORY REPORT ===\n")

	for _, m := range e.Modules() {
		installed := "No"
		if m.Installed {
			installed = "Yes"
		}

		fmt.Fprintf(&b, "Module: %s | Size: %dGB | Installed: %s\n",
			m.Slot, m.CapacityGB, installed)
	}

	b.WriteString("=====================\n")

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// WriteSnapshot dumps the engine snapshot as a JSON object graph.
func (e *Engine) WriteSnapshot(w io.Writer) error {
	snapshot := e.Snapshot()

	serializer := goseth.NewSerializer()
	serializer.SetRoot(&snapshot)
	serializer.SetMaxDepth(3)

	err := serializer.Serialize(w)
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	return nil
}
