package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyRuleSet is returned when rule text holds no counts at all
	ErrEmptyRuleSet = errors.New("rule set is empty")
	// ErrRejected is returned by UpdateConfiguration when the update was not applied
	ErrRejected = errors.New("rule update rejected")
)

// ParseError describes a token that is not a non-negative integer
type ParseError struct {
	Text  string
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid neighbor count %q in %q", e.Token, e.Text)
}

// ParseRuleSet parses counts separated by commas and/or whitespace, e.g. "3 2,4".
// Every token must be a non-negative integer and at least one must be present.
func ParseRuleSet(text string) (Set, error) {
	tokens := strings.Fields(strings.ReplaceAll(text, ",", " "))
	if len(tokens) == 0 {
		return Set{}, ErrEmptyRuleSet
	}

	counts := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil || n < 0 {
			return Set{}, &ParseError{Text: text, Token: tok}
		}
		counts = append(counts, n)
	}
	return NewSet(counts...), nil
}

// UpdateConfiguration parses both sides of a rule update. The new configuration is
// returned only when both sides parse; otherwise current is returned untouched
// together with an error wrapping ErrRejected.
func UpdateConfiguration(current Configuration, birthText, surviveText string) (Configuration, error) {
	birth, err := ParseRuleSet(birthText)
	if err != nil {
		return current, rejected("birth", err)
	}
	survive, err := ParseRuleSet(surviveText)
	if err != nil {
		return current, rejected("survive", err)
	}
	return Configuration{Birth: birth, Survive: survive}, nil
}

type rejection struct {
	side  string
	cause error
}

func (r *rejection) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrRejected, r.side, r.cause)
}

func (r *rejection) Is(target error) bool { return target == ErrRejected }

func (r *rejection) Unwrap() error { return r.cause }

func rejected(side string, cause error) error {
	return errors.WithStack(&rejection{side: side, cause: cause})
}
