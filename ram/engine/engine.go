// Package engine implements the simulated RAM installation engine.
//
// An Engine owns a list of module records and walks them through install,
// diagnostics and uninstall passes. Every step is published through hooks,
// which is how logging, tracing and tests observe the engine. A maintenance
// goroutine can run next to the foreground passes; all module records are
// guarded by the engine lock.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sarchlab/ramsim/monitoring"
	"github.com/sarchlab/ramsim/ram"
	"github.com/sarchlab/ramsim/sim/hooking"
	"github.com/sarchlab/ramsim/sim/id"
	"github.com/sarchlab/ramsim/sim/timing"
)

// Name and version reported when the engine bootstraps.
const (
	EngineName    = "ram_engine"
	EngineVersion = "0.9.0"
)

var (
	// ErrInvalidTransition is returned when a pass is requested in a state
	// that it cannot start from.
	ErrInvalidTransition = errors.New("invalid engine state transition")

	// ErrShutdownTimeout is returned when the background tasks do not stop
	// within the shutdown grace period.
	ErrShutdownTimeout = errors.New("background tasks did not stop in time")
)

// Engine is the simulation driver.
type Engine struct {
	hooking.HookableBase

	name string

	lock       sync.Mutex
	state      State
	modules    []ram.Module
	technology ram.Technology
	detectOnce sync.Once

	detector    ram.TechnologyDetector
	sleeper     timing.Sleeper
	jitter      *timing.Jitter
	degrader    Degrader
	idGenerator id.IDGenerator
	monitor     *monitoring.Monitor
	bus         *MemoryBus
	timings     Timings

	// maintenanceJitter is only drawn from by the maintenance loop, so the
	// foreground draws do not depend on goroutine scheduling.
	maintenanceJitter *timing.Jitter

	bgLock   sync.Mutex
	bgCancel context.CancelFunc
	bgDone   chan struct{}
}

// Name returns the name of the engine.
func (e *Engine) Name() string {
	return e.name
}

// State returns the current engine state.
func (e *Engine) State() State {
	e.lock.Lock()
	defer e.lock.Unlock()

	return e.state
}

// Modules returns a copy of the module records.
func (e *Engine) Modules() []ram.Module {
	e.lock.Lock()
	defer e.lock.Unlock()

	modules := make([]ram.Module, len(e.modules))
	copy(modules, e.modules)

	return modules
}

// Monitor returns the monitor that tracks the pass progress.
func (e *Engine) Monitor() *monitoring.Monitor {
	return e.monitor
}

// Technology returns the memory technology of the host. It is detected on
// first use.
func (e *Engine) Technology() ram.Technology {
	e.detectOnce.Do(func() {
		tech := e.detector.Detect()

		e.lock.Lock()
		e.technology = tech
		e.lock.Unlock()
	})

	e.lock.Lock()
	defer e.lock.Unlock()

	return e.technology
}

// Bootstrap announces the engine and detects the memory technology.
func (e *Engine) Bootstrap() {
	e.invokeHook(HookPosBootstrap, EngineInfo{
		Name:    EngineName,
		Version: EngineVersion,
	}, nil)

	e.Technology()

	e.invokeHook(HookPosInitialized, e.name, nil)
}

// Scan pretends to probe the memory interface and reports the detected
// technology.
func (e *Engine) Scan(ctx context.Context) (ram.Technology, error) {
	taskID := e.startTask(TaskKindScan, "scan memory interface")
	defer e.endTask(taskID)

	err := e.sleeper.Sleep(ctx, e.jitter.Duration(e.timings.Scan))
	if err != nil {
		return "", fmt.Errorf("scan: %w", err)
	}

	tech := e.Technology()
	e.invokeHook(HookPosScanDone, tech, nil)

	return tech, nil
}

// Allocate appends a new module record and returns a copy of it.
func (e *Engine) Allocate(capacityGB int, tech ram.Technology) ram.Module {
	e.lock.Lock()
	m := ram.NewModule(
		e.idGenerator.Generate(),
		ram.SlotName(len(e.modules)),
		capacityGB,
		tech,
	)
	e.modules = append(e.modules, m)
	e.lock.Unlock()

	e.invokeHook(HookPosModuleAllocated, m, nil)

	return m
}

// AllocateRandom allocates n modules of the detected technology with
// capacities drawn from the standard sizes.
func (e *Engine) AllocateRandom(n int) []ram.Module {
	tech := e.Technology()
	modules := make([]ram.Module, 0, n)

	for i := 0; i < n; i++ {
		modules = append(modules, e.Allocate(ram.RandomCapacity(e.jitter), tech))
	}

	return modules
}

func (e *Engine) numModules() int {
	e.lock.Lock()
	defer e.lock.Unlock()

	return len(e.modules)
}

func (e *Engine) invokeHook(pos *hooking.HookPos, item, detail any) {
	if e.NumHooks() == 0 {
		return
	}

	e.InvokeHook(hooking.HookCtx{
		Domain: e,
		Pos:    pos,
		Item:   item,
		Detail: detail,
	})
}

func (e *Engine) startTask(kind, what string) string {
	taskID := e.idGenerator.Generate()

	e.invokeHook(hooking.HookPosTaskStart, hooking.TaskStart{
		ID:    taskID,
		Kind:  kind,
		What:  what,
		Where: e.name,
	}, nil)

	return taskID
}

func (e *Engine) tagTask(taskID, what, detail string) {
	e.invokeHook(hooking.HookPosTaskTag, hooking.TaskTag{
		TaskID: taskID,
		What:   what,
		Detail: detail,
	}, nil)
}

func (e *Engine) endTask(taskID string) {
	e.invokeHook(hooking.HookPosTaskEnd, hooking.TaskEnd{ID: taskID}, nil)
}
