package rules

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Set is an immutable set of neighbor counts
type Set struct {
	members map[int]struct{}
}

// NewSet builds a Set from the given counts, collapsing duplicates
func NewSet(counts ...int) Set {
	members := make(map[int]struct{}, len(counts))
	for _, n := range counts {
		members[n] = struct{}{}
	}
	return Set{members: members}
}

// Contains reports whether n is a member of the set
func (s Set) Contains(n int) bool {
	_, ok := s.members[n]
	return ok
}

// Len returns the number of distinct members
func (s Set) Len() int {
	return len(s.members)
}

// Sorted returns the members in ascending order
func (s Set) Sorted() []int {
	out := make([]int, 0, len(s.members))
	for n := range s.members {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Equal reports whether both sets hold the same members
func (s Set) Equal(other Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for n := range s.members {
		if !other.Contains(n) {
			return false
		}
	}
	return true
}

// String renders the set as a sorted list, e.g. [2, 3]
func (s Set) String() string {
	parts := make([]string, 0, s.Len())
	for _, n := range s.Sorted() {
		parts = append(parts, strconv.Itoa(n))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Configuration is a birth/survival rule set.
//
// A dead cell with a neighbor count in Birth becomes alive, a live cell with a
// count in Survive stays alive, every other cell is dead in the next generation.
// Counts outside [0, 8] are accepted and simply never match.
type Configuration struct {
	Birth   Set
	Survive Set
}

// New builds a Configuration, failing if either side is empty
func New(birth, survive []int) (Configuration, error) {
	rc := Configuration{Birth: NewSet(birth...), Survive: NewSet(survive...)}
	if err := rc.Validate(); err != nil {
		return Configuration{}, errors.Wrapf(err, "[New] birth=%v survive=%v", birth, survive)
	}
	return rc, nil
}

// Validate checks that both sets are non-empty
func (rc Configuration) Validate() error {
	if rc.Birth.Len() == 0 {
		return errors.Wrap(ErrEmptyRuleSet, "birth")
	}
	if rc.Survive.Len() == 0 {
		return errors.Wrap(ErrEmptyRuleSet, "survive")
	}
	return nil
}

// Next returns the next state of a cell given its state and neighbor count
func (rc Configuration) Next(alive bool, neighbors int) bool {
	if alive {
		return rc.Survive.Contains(neighbors)
	}
	return rc.Birth.Contains(neighbors)
}

// Equal reports whether both configurations hold the same sets
func (rc Configuration) Equal(other Configuration) bool {
	return rc.Birth.Equal(other.Birth) && rc.Survive.Equal(other.Survive)
}

// String renders the configuration in B/S notation, e.g. B3/S23.
// Counts above 9 are comma separated so the notation stays unambiguous.
func (rc Configuration) String() string {
	return "B" + notation(rc.Birth) + "/S" + notation(rc.Survive)
}

func notation(s Set) string {
	var (
		b     strings.Builder
		comma bool
	)
	for _, n := range s.Sorted() {
		if n > 9 {
			comma = true
		}
	}
	for i, n := range s.Sorted() {
		if comma && i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}
