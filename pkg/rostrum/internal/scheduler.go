package internal

// TaskQueue collects tasks to run after the current render pass has been
// committed. The navigator flushes it exactly once per commit.
//
// Tasks deferred while a flush is in progress are not run by that flush;
// they wait for the next commit. This keeps a flush from chasing its own
// tail when a task schedules further work.
type TaskQueue struct {
	tasks []func()
}

func NewTaskQueue() *TaskQueue {
	return &TaskQueue{}
}

// Defer appends a task to run at the next flush.
func (q *TaskQueue) Defer(task func()) {
	q.tasks = append(q.tasks, task)
}

// Flush runs every task deferred before the flush started, in FIFO order.
func (q *TaskQueue) Flush() {
	pending := q.tasks
	q.tasks = nil

	for _, task := range pending {
		task()
	}
}

// Len returns the number of tasks waiting for the next flush.
func (q *TaskQueue) Len() int {
	return len(q.tasks)
}
