package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskQueueFlushFIFO(t *testing.T) {
	q := NewTaskQueue()

	var ran []int
	q.Defer(func() { ran = append(ran, 1) })
	q.Defer(func() { ran = append(ran, 2) })
	q.Defer(func() { ran = append(ran, 3) })

	assert.Equal(t, 3, q.Len())
	q.Flush()

	assert.Equal(t, []int{1, 2, 3}, ran)
	assert.Equal(t, 0, q.Len())
}

func TestTaskQueueFlushOnEmpty(t *testing.T) {
	q := NewTaskQueue()
	q.Flush() // must not panic
	assert.Equal(t, 0, q.Len())
}

func TestTaskDeferredDuringFlushWaitsForNextCommit(t *testing.T) {
	q := NewTaskQueue()

	var ran []string
	q.Defer(func() {
		ran = append(ran, "first")
		q.Defer(func() { ran = append(ran, "second") })
	})

	q.Flush()
	assert.Equal(t, []string{"first"}, ran)
	assert.Equal(t, 1, q.Len())

	q.Flush()
	assert.Equal(t, []string{"first", "second"}, ran)
	assert.Equal(t, 0, q.Len())
}
