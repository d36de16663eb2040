// Package discussion specializes route resolution for paginated discussion
// pages: many "jump to post N" navigations within one discussion collapse
// onto a single mounted page, and the requested position is reached by a
// deferred scroll instead of a remount.
package discussion

import "go.uber.org/atomic"

const emptyTarget = -1

// PendingScroll is a single-slot cell holding the next position to scroll
// to. Setting a new target before the previous one is consumed overwrites
// it; Take consumes and clears in one step, so a stale deferred task that
// fires late simply finds the slot empty.
type PendingScroll struct {
	target atomic.Int64
}

// NewPendingScroll creates an empty slot.
func NewPendingScroll() *PendingScroll {
	p := &PendingScroll{}
	p.target.Store(emptyTarget)
	return p
}

// Set records target as the pending position, replacing any previous one.
// Negative targets are ignored.
func (p *PendingScroll) Set(target int) {
	if target < 0 {
		return
	}
	p.target.Store(int64(target))
}

// Take consumes and clears the pending position. The second return is false
// when no target was pending.
func (p *PendingScroll) Take() (int, bool) {
	old := p.target.Swap(emptyTarget)
	if old == emptyTarget {
		return 0, false
	}
	return int(old), true
}

// IsSet reports whether a position is pending without consuming it.
func (p *PendingScroll) IsSet() bool {
	return p.target.Load() != emptyTarget
}
