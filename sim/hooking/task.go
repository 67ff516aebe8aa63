package hooking

// A list of hook poses for the hooks to apply to
var (
	HookPosTaskStart = &HookPos{Name: "HookPosTaskStart"}
	HookPosTaskTag   = &HookPos{Name: "HookPosTaskTag"}
	HookPosTaskEnd   = &HookPos{Name: "HookPosTaskEnd"}
)

// TaskStart is data that is passed to the hook when a task starts.
type TaskStart struct {
	ID       string
	ParentID string
	Kind     string
	What     string
	Where    string
}

// TaskTag is data attached to a task to provide more information about the
// task.
type TaskTag struct {
	TaskID string
	What   string
	Detail string
}

// TaskEnd is data that is passed to the hook when a task ends.
type TaskEnd struct {
	ID string
}

type task struct {
	ID        string
	Kind      string
	What      string
	StartTime float64
}

// TaskFilter is a function that can filter interesting tasks. If this function
// returns true, the task is considered useful.
type TaskFilter func(t TaskStart) bool

// AcceptAllTasks is a TaskFilter that keeps every task.
func AcceptAllTasks(TaskStart) bool {
	return true
}

// KindIs returns a TaskFilter that keeps tasks of the given kind.
func KindIs(kind string) TaskFilter {
	return func(t TaskStart) bool {
		return t.Kind == kind
	}
}

// A TimeTeller can tell the current time in seconds. This interface is
// recreated here to break a circular dependency between the timing package
// and the hooking package.
type TimeTeller interface {
	Now() float64
}
