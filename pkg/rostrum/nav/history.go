package nav

// HistoryEntry is a single entry in the navigation history.
// It stores the path that was navigated to, the route it resolved to, and
// the viewport offset at the moment the user navigated away, so back
// navigation can restore position.
type HistoryEntry struct {
	Path      string
	RouteName string
	Scroll    int
}

// History manages the back-navigation trail. Entries are pushed when
// navigating forward and popped when going back.
type History struct {
	entries []HistoryEntry
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{
		entries: make([]HistoryEntry, 0),
	}
}

// Push adds an entry. Called when navigating away from a path.
func (h *History) Push(entry HistoryEntry) {
	h.entries = append(h.entries, entry)
}

// Pop removes and returns the most recent entry.
// Returns nil if the history is empty.
func (h *History) Pop() *HistoryEntry {
	if len(h.entries) == 0 {
		return nil
	}
	entry := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return &entry
}

// Peek returns the most recent entry without removing it.
// Returns nil if the history is empty.
func (h *History) Peek() *HistoryEntry {
	if len(h.entries) == 0 {
		return nil
	}
	return &h.entries[len(h.entries)-1]
}

// IsEmpty returns true if the history has no entries.
func (h *History) IsEmpty() bool {
	return len(h.entries) == 0
}

// Len returns the number of entries in the history.
func (h *History) Len() int {
	return len(h.entries)
}

// Clear removes all entries.
func (h *History) Clear() {
	h.entries = h.entries[:0]
}
