package cmd

import (
	"github.com/rs/zerolog"
	"github.com/sarchlab/ramsim/ram/engine"
	"github.com/sarchlab/ramsim/sim/hooking"
	"github.com/sarchlab/ramsim/sim/timing"
)

var trackedKinds = []string{
	engine.TaskKindScan,
	engine.TaskKindInstall,
	engine.TaskKindUninstall,
}

// taskStats times the passes of an engine and counts the tags they emit.
type taskStats struct {
	timers map[string]*hooking.TotalAvgTimeTracer
	tags   *hooking.TagCountTracer
}

func attachTaskStats(e *engine.Engine) *taskStats {
	clock := timing.NewWallClock()

	s := &taskStats{
		timers: make(map[string]*hooking.TotalAvgTimeTracer),
		tags:   hooking.NewTagCountTracer(hooking.AcceptAllTasks),
	}

	for _, kind := range trackedKinds {
		tracer := hooking.NewAverageTimeTracer(clock, hooking.KindIs(kind))
		s.timers[kind] = tracer
		e.AcceptHook(tracer)
	}

	e.AcceptHook(s.tags)

	return s
}

func (s *taskStats) log(logger zerolog.Logger) {
	for _, kind := range trackedKinds {
		tracer := s.timers[kind]
		if tracer.TotalCount() == 0 {
			continue
		}

		logger.Debug().
			Str("task", kind).
			Uint64("count", tracer.TotalCount()).
			Float64("avg_s", tracer.AverageTime()).
			Msg("Task timing")
	}

	for _, tag := range s.tags.GetTagNames() {
		logger.Debug().
			Str("tag", tag).
			Uint64("count", s.tags.GetTagCount(tag)).
			Msg("Task tags")
	}
}
