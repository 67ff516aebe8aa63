package engine

import (
	"context"
	"fmt"
)

// NumRegions is the number of memory regions reported by DumpRegions.
const NumRegions = 5

// Diagnostics applies the degradation policy to every module and reports
// their health.
func (e *Engine) Diagnostics() {
	taskID := e.startTask(TaskKindDiagnostics, "diagnose memory modules")
	defer e.endTask(taskID)

	modules := e.degradeAll(e.jitter)
	for _, m := range modules {
		e.tagTask(taskID, "diagnosed", m.ID)
		e.invokeHook(HookPosModuleDiagnosed, m, nil)
	}
}

// SelfTest runs the simulated self-test. It always passes.
func (e *Engine) SelfTest(ctx context.Context) error {
	taskID := e.startTask(TaskKindSelfTest, "run self-test")
	defer e.endTask(taskID)

	err := e.sleeper.Sleep(ctx, e.jitter.Duration(e.timings.SelfTest))
	if err != nil {
		return fmt.Errorf("self-test: %w", err)
	}

	e.invokeHook(HookPosSelfTestDone, SelfTestResult{Passed: true}, nil)

	return nil
}

// DumpRegions reports the status of every memory region.
func (e *Engine) DumpRegions(ctx context.Context) error {
	taskID := e.startTask(TaskKindRegionDump, "dump memory state")
	defer e.endTask(taskID)

	for i := 0; i < NumRegions; i++ {
		err := e.sleeper.Sleep(ctx, e.jitter.Duration(e.timings.RegionDump))
		if err != nil {
			return fmt.Errorf("region dump: %w", err)
		}

		e.invokeHook(HookPosRegionDumped, RegionStatus{Index: i, OK: true}, nil)
	}

	return nil
}
