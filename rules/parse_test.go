package rules

import (
	"slices"
	"testing"

	"github.com/pkg/errors"
)

func TestParseRuleSet(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []int
	}{
		{"mixed separators", "3 2,4", []int{2, 3, 4}},
		{"single", "3", []int{3}},
		{"duplicates collapse", "2,2 3, 3", []int{2, 3}},
		{"padding", "  1 ,\t5  ", []int{1, 5}},
		{"out of neighborhood range", "0 9 12", []int{0, 9, 12}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := ParseRuleSet(tc.text)
			if err != nil {
				t.Fatalf("ParseRuleSet(%q): %v", tc.text, err)
			}
			if got := s.Sorted(); !slices.Equal(got, tc.want) {
				t.Fatalf("ParseRuleSet(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestParseRuleSetInvalid(t *testing.T) {
	for _, text := range []string{"3 x", "2.5", "-1", "3;4", "three"} {
		_, err := ParseRuleSet(text)
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("ParseRuleSet(%q) error = %v, want *ParseError", text, err)
		}
		if perr.Text != text {
			t.Fatalf("ParseError.Text = %q, want %q", perr.Text, text)
		}
	}
	for _, text := range []string{"", "   ", ",,", " , "} {
		if _, err := ParseRuleSet(text); !errors.Is(err, ErrEmptyRuleSet) {
			t.Fatalf("ParseRuleSet(%q) error = %v, want ErrEmptyRuleSet", text, err)
		}
	}
}

func TestUpdateConfigurationCommitsBothSides(t *testing.T) {
	next, err := UpdateConfiguration(Conway(), "3 6", "2,3")
	if err != nil {
		t.Fatalf("UpdateConfiguration: %v", err)
	}
	if !slices.Equal(next.Birth.Sorted(), []int{3, 6}) || !slices.Equal(next.Survive.Sorted(), []int{2, 3}) {
		t.Fatalf("got %s, want B36/S23", next)
	}
}

func TestUpdateConfigurationRejectionLeavesStateUnchanged(t *testing.T) {
	cases := []struct {
		name           string
		birth, survive string
	}{
		{"empty birth", "", "2 3"},
		{"empty survive", "3", "  "},
		{"invalid birth token", "3 q", "2 3"},
		{"invalid survive token", "3", "2,-3"},
		{"both invalid", "x", "y"},
	}
	current, err := New([]int{3, 6}, []int{2, 3})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := current.String()
			got, err := UpdateConfiguration(current, tc.birth, tc.survive)
			if !errors.Is(err, ErrRejected) {
				t.Fatalf("error = %v, want ErrRejected", err)
			}
			if !got.Equal(current) {
				t.Fatalf("returned %s, want unchanged %s", got, current)
			}
			if current.String() != before {
				t.Fatalf("current changed to %s", current)
			}
		})
	}
}

func TestUpdateConfigurationKeepsCause(t *testing.T) {
	_, err := UpdateConfiguration(Conway(), "3", "2 z")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want wrapped *ParseError", err)
	}
	if perr.Token != "z" {
		t.Fatalf("Token = %q, want %q", perr.Token, "z")
	}

	_, err = UpdateConfiguration(Conway(), "", "2")
	if !errors.Is(err, ErrEmptyRuleSet) {
		t.Fatalf("error = %v, want wrapped ErrEmptyRuleSet", err)
	}
}
