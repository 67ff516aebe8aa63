package logging

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/sarchlab/ramsim/monitoring"
	"github.com/sarchlab/ramsim/ram"
	"github.com/sarchlab/ramsim/ram/engine"
	"github.com/sarchlab/ramsim/sim/hooking"
)

// taskMessages holds the lines printed when a task of a kind starts and ends.
// An empty line prints nothing.
var taskMessages = map[string][2]string{
	engine.TaskKindScan:        {"Scanning system memory interface...", ""},
	engine.TaskKindInstall:     {"Beginning RAM installation sequence", "Installation completed"},
	engine.TaskKindUninstall:   {"Removing installed RAM modules", "Uninstall complete"},
	engine.TaskKindDiagnostics: {"Running diagnostics", "Diagnostics finished"},
	engine.TaskKindSelfTest:    {"Running self-test...", ""},
	engine.TaskKindRegionDump:  {"Dumping memory state...", ""},
}

// LogHook prints the engine events through a zerolog logger.
type LogHook struct {
	logger zerolog.Logger

	lock          sync.Mutex
	inflightTasks map[string]*loggedTask
}

type loggedTask struct {
	kind    string
	aborted bool
}

// NewLogHook creates a LogHook that writes to logger.
func NewLogHook(logger zerolog.Logger) *LogHook {
	return &LogHook{
		logger:        logger,
		inflightTasks: make(map[string]*loggedTask),
	}
}

// Func prints the line that matches the hook position.
func (h *LogHook) Func(ctx hooking.HookCtx) {
	switch ctx.Pos {
	case hooking.HookPosTaskStart:
		h.startTask(ctx.Item.(hooking.TaskStart))
	case hooking.HookPosTaskTag:
		h.tagTask(ctx.Item.(hooking.TaskTag))
	case hooking.HookPosTaskEnd:
		h.endTask(ctx.Item.(hooking.TaskEnd))
	case engine.HookPosBootstrap:
		info := ctx.Item.(engine.EngineInfo)
		h.logger.Info().Msgf("Bootstrapping %s v%s", info.Name, info.Version)
	case engine.HookPosInitialized:
		h.logger.Info().Msg("RAM Engine initialized")
	case engine.HookPosScanDone:
		h.logger.Info().Msgf("Detected RAM type: %s", ctx.Item.(ram.Technology))
	case engine.HookPosModuleAllocated:
		h.logger.Info().Msgf("Allocated virtual block: %s", ctx.Item.(ram.Module))
	case engine.HookPosStateChange:
		h.logStateChange(ctx.Item.(engine.StateChange))
	default:
		h.logModuleEvent(ctx)
	}
}

func (h *LogHook) logModuleEvent(ctx hooking.HookCtx) {
	switch ctx.Pos {
	case engine.HookPosModuleInstalled:
		m := ctx.Item.(ram.Module)
		h.logger.Info().Msgf("Installed %dGB module (%s)", m.CapacityGB, m.Technology)
		h.logProgress(ctx.Detail)
	case engine.HookPosModuleRemoved:
		m := ctx.Item.(ram.Module)
		h.logger.Info().Msgf("Removed %dGB module", m.CapacityGB)
		h.logProgress(ctx.Detail)
	case engine.HookPosModuleDiagnosed:
		m := ctx.Item.(ram.Module)
		h.logger.Info().Msgf("Module %dGB | DDR=%s | Health=%d%%",
			m.CapacityGB, m.Technology, m.Health)
	case engine.HookPosBusSync:
		h.logger.Debug().
			Dur("latency", ctx.Item.(time.Duration)).
			Msg("[MemoryBus] Sync complete")
	case engine.HookPosSelfTestDone:
		if ctx.Item.(engine.SelfTestResult).Passed {
			h.logger.Info().Msg("[Diagnostics] No issues found")
		} else {
			h.logger.Warn().Msg("[Diagnostics] Self-test failed")
		}
	case engine.HookPosRegionDumped:
		region := ctx.Item.(engine.RegionStatus)
		status := "OK"
		if !region.OK {
			status = "FAULT"
		}
		h.logger.Info().Msgf("Region %d: %s", region.Index, status)
	case engine.HookPosMaintenanceTick:
		tick := ctx.Item.(engine.MaintenanceTick)
		h.logger.Debug().
			Uint64("tick", tick.Tick).
			Int("modules", tick.Modules).
			Msg("Background maintenance pass")
	case engine.HookPosShutdown:
		h.logger.Info().Msg("RAM Engine shutdown")
	}
}

func (h *LogHook) logStateChange(change engine.StateChange) {
	event := h.logger.Debug()
	if change.Aborted {
		event = h.logger.Warn()
	}

	event.
		Str("from", change.From.String()).
		Str("to", change.To.String()).
		Bool("aborted", change.Aborted).
		Msg("Engine state changed")
}

func (h *LogHook) logProgress(detail any) {
	bar, ok := detail.(*monitoring.ProgressBar)
	if !ok {
		return
	}

	h.logger.Debug().Str("pass", bar.Name).Msgf("Progress: %d%%", bar.Percent())
}

func (h *LogHook) startTask(start hooking.TaskStart) {
	messages, ok := taskMessages[start.Kind]
	if !ok {
		return
	}

	h.lock.Lock()
	h.inflightTasks[start.ID] = &loggedTask{kind: start.Kind}
	h.lock.Unlock()

	if messages[0] != "" {
		h.logger.Info().Msg(messages[0])
	}
}

func (h *LogHook) tagTask(tag hooking.TaskTag) {
	if tag.What != engine.TagAborted {
		return
	}

	h.lock.Lock()
	defer h.lock.Unlock()

	if t, ok := h.inflightTasks[tag.TaskID]; ok {
		t.aborted = true
		h.logger.Warn().Str("cause", tag.Detail).Msgf("Aborted %s", t.kind)
	}
}

func (h *LogHook) endTask(end hooking.TaskEnd) {
	h.lock.Lock()
	t, ok := h.inflightTasks[end.ID]
	delete(h.inflightTasks, end.ID)
	h.lock.Unlock()

	if !ok || t.aborted {
		return
	}

	if message := taskMessages[t.kind][1]; message != "" {
		h.logger.Info().Msg(message)
	}
}
