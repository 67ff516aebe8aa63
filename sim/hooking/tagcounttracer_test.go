package hooking

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TagCountTracer", func() {
	var t *TagCountTracer

	BeforeEach(func() {
		t = NewTagCountTracer(KindIs("install"))
	})

	It("should count tags of tracked tasks", func() {
		t.StartTask(TaskStart{ID: "1", Kind: "install"})
		t.TagTask(TaskTag{TaskID: "1", What: "installed"})
		t.TagTask(TaskTag{TaskID: "1", What: "installed"})
		t.TagTask(TaskTag{TaskID: "1", What: "bus_sync"})
		t.EndTask(TaskEnd{ID: "1"})

		Expect(t.GetTagNames()).To(Equal([]string{"installed", "bus_sync"}))
		Expect(t.GetTagCount("installed")).To(Equal(uint64(2)))
		Expect(t.GetTagCount("bus_sync")).To(Equal(uint64(1)))
	})

	It("should ignore tags of filtered tasks", func() {
		t.StartTask(TaskStart{ID: "1", Kind: "diagnostics"})
		t.TagTask(TaskTag{TaskID: "1", What: "diagnosed"})

		Expect(t.GetTagNames()).To(BeEmpty())
	})

	It("should ignore tags after the task ends", func() {
		t.StartTask(TaskStart{ID: "1", Kind: "install"})
		t.EndTask(TaskEnd{ID: "1"})
		t.TagTask(TaskTag{TaskID: "1", What: "installed"})

		Expect(t.GetTagCount("installed")).To(BeZero())
	})

	It("should work as a hook", func() {
		t.Func(HookCtx{Pos: HookPosTaskStart, Item: TaskStart{ID: "1", Kind: "install"}})
		t.Func(HookCtx{Pos: HookPosTaskTag, Item: TaskTag{TaskID: "1", What: "installed"}})
		t.Func(HookCtx{Pos: HookPosTaskEnd, Item: TaskEnd{ID: "1"}})

		Expect(t.GetTagCount("installed")).To(Equal(uint64(1)))
	})
})
