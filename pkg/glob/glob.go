// Package glob matches shell-style globs against input. Only '*' is special:
// it matches any run of bytes, including none.
package glob

import "strings"

type glob struct {
	fold bool
}

// An Option modifies the behavior of a call to Glob.
type Option func(*glob)

// IgnoreCase matches ASCII letters regardless of case.
var IgnoreCase Option = func(g *glob) {
	g.fold = true
}

// Glob matches input against pattern. It returns true if there is a match.
// Options change comparison behavior.
func Glob(pattern, input string, opts ...Option) bool {
	var g glob
	for _, o := range opts {
		o(&g)
	}
	if g.fold {
		pattern = strings.ToLower(pattern)
		input = strings.ToLower(input)
	}

	// Greedy scan that backtracks to the most recent '*' on mismatch.
	i, j := 0, 0
	star, mark := -1, 0
	for j < len(input) {
		switch {
		case i < len(pattern) && pattern[i] == '*':
			star, mark = i, j
			i++
		case i < len(pattern) && pattern[i] == input[j]:
			i++
			j++
		case star >= 0:
			mark++
			i, j = star+1, mark
		default:
			return false
		}
	}
	for i < len(pattern) && pattern[i] == '*' {
		i++
	}
	return i == len(pattern)
}

// Filter returns the names that match any of the patterns, in the order of
// names and without duplicates.
func Filter(names []string, patterns []string, opts ...Option) []string {
	var out []string
	for _, n := range names {
		for _, p := range patterns {
			if Glob(p, n, opts...) {
				out = append(out, n)
				break
			}
		}
	}
	return out
}
