// Package errors provides CLI error messages with suggestions.
package errors

import (
	"fmt"
	"sort"
	"strings"
)

// SuggestiveError is an error that includes suggestions for fixing the
// problem.
type SuggestiveError struct {
	Message     string
	Suggestions []string
	HelpCommand string
}

func (e *SuggestiveError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nDid you mean one of these?\n")
		for _, s := range e.Suggestions {
			b.WriteString("  ")
			b.WriteString(s)
			b.WriteString("\n")
		}
	}

	if e.HelpCommand != "" {
		b.WriteString("\nRun '")
		b.WriteString(e.HelpCommand)
		b.WriteString("' for more information.")
	}

	return b.String()
}

// InvalidCapacityError creates an error for a non-positive cache capacity.
func InvalidCapacityError(capacity int) error {
	return &SuggestiveError{
		Message: fmt.Sprintf("invalid capacity %d: must be a positive integer", capacity),
		Suggestions: []string{
			"hoard demo --capacity 2     - Run the demo with a 2-entry cache",
			"hoard run ops.txt -c 100    - Run a script with a 100-entry cache",
		},
	}
}

// UnknownOpError creates an error for an unrecognized script operation.
func UnknownOpError(op string, line int, known []string) error {
	similar := findSimilar(op, known, 3)
	return &SuggestiveError{
		Message:     fmt.Sprintf("line %d: unknown operation %q", line, op),
		Suggestions: similar,
		HelpCommand: "hoard run --help",
	}
}

// ScriptNotFoundError creates an error for an unreadable script file.
func ScriptNotFoundError(path string) error {
	return &SuggestiveError{
		Message: fmt.Sprintf("cannot read script %q", path),
		Suggestions: []string{
			"hoard run ops.txt   - Execute operations from a file",
			"hoard run -         - Read operations from stdin",
			"hoard demo          - Run the built-in demonstration script",
		},
	}
}

// findSimilar finds strings similar to target using Levenshtein distance.
func findSimilar(target string, candidates []string, maxDistance int) []string {
	type match struct {
		value    string
		distance int
	}

	var matches []match
	targetLower := strings.ToLower(target)

	for _, c := range candidates {
		d := levenshtein(targetLower, strings.ToLower(c))
		if d <= maxDistance {
			matches = append(matches, match{value: c, distance: d})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})

	var result []string
	for i := 0; i < len(matches) && i < 3; i++ {
		result = append(result, matches[i].value)
	}
	return result
}

// levenshtein calculates the edit distance between two strings.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
