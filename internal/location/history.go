package location

const maxHistory = 256

// History records the page fragments visited in a session.
type History struct {
	entries []int
	pos     int
}

// NewHistory starts a history at page start.
func NewHistory(start int) *History {
	return &History{entries: []int{start}}
}

// Current returns the fragment at the cursor.
func (h *History) Current() int {
	return h.entries[h.pos]
}

// Push records a page change. Re-pushing the current page is a no-op; pushing
// after Back drops the forward entries.
func (h *History) Push(page int) {
	if h.entries[h.pos] == page {
		return
	}
	h.entries = append(h.entries[:h.pos+1], page)
	if len(h.entries) > maxHistory {
		h.entries = h.entries[len(h.entries)-maxHistory:]
	}
	h.pos = len(h.entries) - 1
}

// Back steps to the previous fragment.
func (h *History) Back() (int, bool) {
	if h.pos == 0 {
		return h.Current(), false
	}
	h.pos--
	return h.Current(), true
}

// Forward steps to the next fragment.
func (h *History) Forward() (int, bool) {
	if h.pos >= len(h.entries)-1 {
		return h.Current(), false
	}
	h.pos++
	return h.Current(), true
}
