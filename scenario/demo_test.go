package scenario_test

import (
	"bytes"
	"context"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"
	"github.com/sarchlab/ramsim/logging"
	"github.com/sarchlab/ramsim/ram"
	"github.com/sarchlab/ramsim/ram/engine"
	"github.com/sarchlab/ramsim/scenario"
	"github.com/sarchlab/ramsim/sim/hooking"
	"github.com/sarchlab/ramsim/sim/timing"
)

var _ = Describe("Demo", func() {
	var (
		logs   *bytes.Buffer
		out    *bytes.Buffer
		e      *engine.Engine
		states []engine.State
		demo   scenario.Demo
	)

	BeforeEach(func() {
		logs = new(bytes.Buffer)
		out = new(bytes.Buffer)
		states = nil
		logger := logging.NewLogger(logs, zerolog.InfoLevel)

		e = engine.MakeBuilder().
			WithTechnology(ram.DDR4).
			WithSeed(3).
			WithDelayScale(0.001).
			Build("RAMEngine")
		e.AcceptHook(logging.NewLogHook(logger))
		e.AcceptHook(hooking.HookFunc(func(ctx hooking.HookCtx) {
			if ctx.Pos == engine.HookPosStateChange {
				states = append(states, ctx.Item.(engine.StateChange).To)
			}
		}))

		demo = scenario.Demo{
			Engine:  e,
			Logger:  logger,
			Modules: []int{16, 32},
			Out:     out,
			Sleeper: timing.NoDelay{},
		}
	})

	It("should run the reference sequence", func() {
		Expect(demo.Run(context.Background())).To(Succeed())

		Expect(states).To(Equal([]engine.State{
			engine.StateInstalling,
			engine.StateInstalled,
			engine.StateUninstalling,
			engine.StateIdle,
		}))
		Expect(e.BackgroundTasksRunning()).To(BeFalse())
		Expect(e.Modules()).To(HaveLen(2))
		for _, m := range e.Modules() {
			Expect(m.Installed).To(BeFalse())
			Expect(m.Health).To(Equal(ram.FullHealth))
		}

		text := logs.String()
		Expect(text).To(ContainSubstring("Installed 16GB module (DDR4)"))
		Expect(text).To(ContainSubstring("RAM Engine shutdown"))
		Expect(strings.TrimSpace(text)).To(HaveSuffix("Engine exited cleanly"))
		Expect(out.String()).To(BeEmpty())
	})

	It("should print reports and the snapshot", func() {
		demo.Report = true
		demo.Snapshot = true
		demo.SelfTest = true

		Expect(demo.Run(context.Background())).To(Succeed())

		Expect(strings.Count(out.String(), "=== MEMORY REPORT ===")).To(Equal(2))
		Expect(out.String()).To(ContainSubstring("Installed: Yes"))
		Expect(out.String()).To(ContainSubstring("Installed: No"))
		Expect(logs.String()).To(ContainSubstring("[Diagnostics] No issues found"))
	})

	It("should allocate random modules", func() {
		demo.RandomModules = 6

		Expect(demo.Run(context.Background())).To(Succeed())

		Expect(e.Modules()).To(HaveLen(6))
	})

	It("should stop the background tasks when canceled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := demo.Run(ctx)

		Expect(err).To(MatchError(context.Canceled))
		Expect(e.BackgroundTasksRunning()).To(BeFalse())
		Expect(logs.String()).NotTo(ContainSubstring("Engine exited cleanly"))
	})
})
