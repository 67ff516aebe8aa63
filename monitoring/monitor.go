// Package monitoring keeps track of the progress of the running passes and
// of the resources the simulator process uses.
package monitoring

import (
	"fmt"
	"os"
	"sync"

	"github.com/sarchlab/ramsim/sim/id"
	"github.com/shirou/gopsutil/v3/process"
)

// Monitor keeps the progress bars of the passes in flight.
type Monitor struct {
	idGenerator id.IDGenerator

	progressBarsLock sync.Mutex
	progressBars     []*ProgressBar
}

// NewMonitor creates a new Monitor
func NewMonitor(idGenerator id.IDGenerator) *Monitor {
	return &Monitor{idGenerator: idGenerator}
}

// CreateProgressBar creates a new progress bar.
func (m *Monitor) CreateProgressBar(name string, total uint64) *ProgressBar {
	bar := &ProgressBar{
		ID:    m.idGenerator.Generate(),
		Name:  name,
		Total: total,
	}

	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	m.progressBars = append(m.progressBars, bar)

	return bar
}

// CompleteProgressBar removes a bar from the monitor.
func (m *Monitor) CompleteProgressBar(pb *ProgressBar) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	newBars := make([]*ProgressBar, 0, len(m.progressBars))
	for _, b := range m.progressBars {
		if b != pb {
			newBars = append(newBars, b)
		}
	}

	m.progressBars = newBars
}

// ProgressBars returns the bars that are not completed.
func (m *Monitor) ProgressBars() []*ProgressBar {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	bars := make([]*ProgressBar, len(m.progressBars))
	copy(bars, m.progressBars)

	return bars
}

// ResourceUsage is a sample of the simulator process resource consumption.
type ResourceUsage struct {
	CPUPercent float64
	MemorySize uint64
}

func (r ResourceUsage) String() string {
	return fmt.Sprintf("cpu=%.1f%% rss=%dMB", r.CPUPercent, r.MemorySize>>20)
}

// Resources samples the CPU and memory usage of the current process.
func (m *Monitor) Resources() (ResourceUsage, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return ResourceUsage{}, fmt.Errorf("inspect process: %w", err)
	}

	cpuPercent, err := proc.CPUPercent()
	if err != nil {
		return ResourceUsage{}, fmt.Errorf("read cpu usage: %w", err)
	}

	memoryInfo, err := proc.MemoryInfo()
	if err != nil {
		return ResourceUsage{}, fmt.Errorf("read memory usage: %w", err)
	}

	return ResourceUsage{
		CPUPercent: cpuPercent,
		MemorySize: memoryInfo.RSS,
	}, nil
}
