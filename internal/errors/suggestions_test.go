package errors

import (
	"strings"
	"testing"
)

func TestSuggestiveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *SuggestiveError
		contains []string
	}{
		{
			name:     "message only",
			err:      &SuggestiveError{Message: "something broke"},
			contains: []string{"something broke"},
		},
		{
			name: "with suggestions",
			err: &SuggestiveError{
				Message:     "unknown op",
				Suggestions: []string{"put", "get"},
			},
			contains: []string{"unknown op", "Did you mean", "put", "get"},
		},
		{
			name: "with help command",
			err: &SuggestiveError{
				Message:     "bad input",
				HelpCommand: "hoard run --help",
			},
			contains: []string{"bad input", "Run 'hoard run --help'"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q, missing %q", msg, want)
				}
			}
		})
	}
}

func TestInvalidCapacityError(t *testing.T) {
	err := InvalidCapacityError(0)
	if !strings.Contains(err.Error(), "invalid capacity 0") {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if !strings.Contains(err.Error(), "--capacity") {
		t.Errorf("expected a usage suggestion, got %q", err.Error())
	}
}

func TestUnknownOpError_Suggestions(t *testing.T) {
	known := []string{"put", "get", "peek", "has", "len", "keys", "oldest"}

	err := UnknownOpError("gte", 4, known)
	msg := err.Error()
	if !strings.Contains(msg, `line 4: unknown operation "gte"`) {
		t.Errorf("unexpected message: %q", msg)
	}
	if !strings.Contains(msg, "get") {
		t.Errorf("expected %q to suggest get", msg)
	}
}

func TestFindSimilar(t *testing.T) {
	candidates := []string{"put", "get", "peek", "keys", "oldest"}

	tests := []struct {
		name    string
		target  string
		first   string
		wantAny bool
	}{
		{"close typo", "gey", "get", true},
		{"case insensitive", "PUT", "put", true},
		{"nothing close", "zzzzzzzzzz", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := findSimilar(tt.target, candidates, 3)
			if !tt.wantAny {
				if len(got) != 0 {
					t.Errorf("findSimilar(%q) = %v, want none", tt.target, got)
				}
				return
			}
			if len(got) == 0 || got[0] != tt.first {
				t.Errorf("findSimilar(%q) = %v, want first %q", tt.target, got, tt.first)
			}
		})
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1},
		{"put", "get", 2},
		{"kitten", "sitting", 3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			if got := levenshtein(tt.a, tt.b); got != tt.want {
				t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
