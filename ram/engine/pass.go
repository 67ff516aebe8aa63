package engine

import (
	"context"
	"fmt"

	"github.com/sarchlab/ramsim/ram"
	"github.com/sarchlab/ramsim/sim/hooking"
	"github.com/sarchlab/ramsim/sim/timing"
)

// pass describes one walk over all the modules that flips their installed
// flag. The per-module hooks carry the progress bar of the pass as detail.
type pass struct {
	kind      string
	what      string
	from      State
	delay     func(Timings) timing.DelayRange
	installed bool
	tag       string
	pos       *hooking.HookPos
}

var (
	installPass = pass{
		kind:      TaskKindInstall,
		what:      "install memory modules",
		from:      StateIdle,
		delay:     func(t Timings) timing.DelayRange { return t.Install },
		installed: true,
		tag:       "installed",
		pos:       HookPosModuleInstalled,
	}

	uninstallPass = pass{
		kind:      TaskKindUninstall,
		what:      "remove memory modules",
		from:      StateInstalled,
		delay:     func(t Timings) timing.DelayRange { return t.Uninstall },
		installed: false,
		tag:       "removed",
		pos:       HookPosModuleRemoved,
	}
)

// Install installs every allocated module. It can only start from IDLE and
// leaves the engine INSTALLED.
//
// If ctx is canceled half way, the engine goes back to IDLE and the modules
// that were already installed stay installed.
func (e *Engine) Install(ctx context.Context) error {
	return e.runPass(ctx, installPass)
}

// Uninstall removes every module. It can only start from INSTALLED and
// leaves the engine IDLE.
//
// If ctx is canceled half way, the engine goes back to INSTALLED and the
// modules that were already removed stay removed.
func (e *Engine) Uninstall(ctx context.Context) error {
	return e.runPass(ctx, uninstallPass)
}

func (e *Engine) runPass(ctx context.Context, p pass) error {
	if err := e.enterState(p.from, p.from.Next()); err != nil {
		return fmt.Errorf("%s: %w", p.kind, err)
	}

	taskID := e.startTask(p.kind, p.what)
	defer e.endTask(taskID)

	total := e.numModules()
	bar := e.monitor.CreateProgressBar(e.name+"."+p.kind, uint64(total))
	defer e.monitor.CompleteProgressBar(bar)

	for i := 0; i < total; i++ {
		bar.IncrementInProgress(1)

		err := e.sleeper.Sleep(ctx, e.jitter.Duration(p.delay(e.timings)))
		if err != nil {
			e.abortPass(p, taskID, err)
			return fmt.Errorf("%s: %w", p.kind, err)
		}

		m := e.setInstalled(i, p.installed)
		bar.MoveInProgressToFinished(1)

		e.tagTask(taskID, p.tag, m.ID)
		e.invokeHook(p.pos, m, bar)

		err = e.bus.Sync(ctx)
		if err != nil {
			e.abortPass(p, taskID, err)
			return fmt.Errorf("%s: %w", p.kind, err)
		}
	}

	return e.enterState(p.from.Next(), p.from.Next().Next())
}

func (e *Engine) setInstalled(i int, installed bool) ram.Module {
	e.lock.Lock()
	defer e.lock.Unlock()

	e.modules[i].Installed = installed

	return e.modules[i]
}

// enterState moves the engine from the expected state to the next one.
func (e *Engine) enterState(from, to State) error {
	e.lock.Lock()
	if e.state != from || from.Next() != to {
		current := e.state
		e.lock.Unlock()

		return fmt.Errorf("%w: %s -> %s while %s",
			ErrInvalidTransition, from, to, current)
	}

	e.state = to
	e.lock.Unlock()

	e.invokeHook(HookPosStateChange, StateChange{From: from, To: to}, nil)

	return nil
}

// TagAborted is the task tag attached to a pass that did not finish.
const TagAborted = "aborted"

func (e *Engine) abortPass(p pass, taskID string, cause error) {
	e.tagTask(taskID, TagAborted, cause.Error())

	e.lock.Lock()
	e.state = p.from
	e.lock.Unlock()

	e.invokeHook(HookPosStateChange, StateChange{
		From:    p.from.Next(),
		To:      p.from,
		Aborted: true,
	}, nil)
}
