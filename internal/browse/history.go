package browse

// History is the back-navigation stack of previously-current directories.
// Push is unconditional; the state machine guards against pushing the
// path being navigated to. Lifetime is the session; there is no bound.
type History struct {
	stack []string
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Push appends a directory to the stack.
func (h *History) Push(path string) {
	h.stack = append(h.stack, path)
}

// Pop removes and returns the most recent directory. The second return
// is false when the stack is empty.
func (h *History) Pop() (string, bool) {
	if len(h.stack) == 0 {
		return "", false
	}
	last := h.stack[len(h.stack)-1]
	h.stack = h.stack[:len(h.stack)-1]
	return last, true
}

// Len returns the number of stacked directories.
func (h *History) Len() int {
	return len(h.stack)
}
