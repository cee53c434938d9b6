package model

// DefaultHistorySize is how many recent generations History remembers
const DefaultHistorySize = 5

// History keeps the hashes of recent generations to spot still lifes and short cycles
type History struct {
	size   int
	hashes []string
}

// NewHistory creates a history remembering up to size generations
func NewHistory(size int) *History {
	if size < 2 {
		size = DefaultHistorySize
	}
	return &History{size: size}
}

// Observe records a generation
func (h *History) Observe(g *Grid) {
	h.hashes = append(h.hashes, g.Hash())

	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets every recorded generation
func (h *History) Reset() {
	h.hashes = nil
}

// Period returns p when the latest generation repeats the one p generations
// earlier, so 1 is a still life and 2 a blinker. It returns 0 if no repeat is
// visible within the window.
func (h *History) Period() int {
	if len(h.hashes) < 2 {
		return 0
	}
	last := len(h.hashes) - 1
	for p := 1; p <= last; p++ {
		if h.hashes[last-p] == h.hashes[last] {
			return p
		}
	}
	return 0
}
