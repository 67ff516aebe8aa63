package monitoring

import "sync"

// A ProgressBar tracks how many modules of a pass are being worked on and how
// many are done.
type ProgressBar struct {
	sync.Mutex
	ID         string
	Name       string
	Total      uint64
	Finished   uint64
	InProgress uint64
}

// IncrementInProgress marks amount more modules as being worked on.
func (b *ProgressBar) IncrementInProgress(amount uint64) {
	b.Lock()
	defer b.Unlock()

	b.InProgress += amount
}

// MoveInProgressToFinished marks amount in-progress modules as done. It never
// finishes more modules than are in progress.
func (b *ProgressBar) MoveInProgressToFinished(amount uint64) {
	b.Lock()
	defer b.Unlock()

	amount = min(amount, b.InProgress)

	b.InProgress -= amount
	b.Finished += amount
}

// Percent returns the finished share of the total, from 0 to 100. A bar with
// no work is complete.
func (b *ProgressBar) Percent() int {
	b.Lock()
	defer b.Unlock()

	if b.Total == 0 {
		return 100
	}

	return int(b.Finished * 100 / b.Total)
}

// Done tells if every module has finished.
func (b *ProgressBar) Done() bool {
	b.Lock()
	defer b.Unlock()

	return b.Finished >= b.Total
}
