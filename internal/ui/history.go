package ui

// History keeps previous command line entries for Up/Down recall
type History struct {
	entries        []string
	currentIndex   int // -1 when not navigating
	maxEntries     int
	temporaryInput string // input typed before navigation started
}

// NewHistory creates a new History with a maximum number of entries
func NewHistory(maxEntries int) *History {
	return &History{
		currentIndex: -1,
		maxEntries:   maxEntries,
	}
}

// Add appends an entry, skipping empty entries and consecutive duplicates
func (h *History) Add(entry string) {
	if entry == "" {
		return
	}
	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == entry {
		h.Reset()
		return
	}

	h.entries = append(h.entries, entry)
	if len(h.entries) > h.maxEntries {
		h.entries = h.entries[len(h.entries)-h.maxEntries:]
	}
	h.Reset()
}

// Previous moves one entry back. The first call remembers current as the
// input to return to.
func (h *History) Previous(current string) (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.currentIndex == -1 {
		h.temporaryInput = current
		h.currentIndex = len(h.entries) - 1
	} else if h.currentIndex > 0 {
		h.currentIndex--
	} else {
		return "", false
	}
	return h.entries[h.currentIndex], true
}

// Next moves one entry forward, ending at the remembered input
func (h *History) Next() (string, bool) {
	if h.currentIndex == -1 {
		return "", false
	}
	if h.currentIndex < len(h.entries)-1 {
		h.currentIndex++
		return h.entries[h.currentIndex], true
	}
	input := h.temporaryInput
	h.Reset()
	return input, true
}

// Reset stops navigation
func (h *History) Reset() {
	h.currentIndex = -1
	h.temporaryInput = ""
}

// Len returns the number of stored entries
func (h *History) Len() int {
	return len(h.entries)
}
