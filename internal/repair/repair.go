package repair

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyPattern is returned when a pair has nothing to search for.
var ErrEmptyPattern = errors.New("empty pattern")

// Pair is one literal substitution.
type Pair struct {
	Name        string
	Pattern     string
	Replacement string
}

// Result is the outcome of applying a Pass to a document.
type Result struct {
	Text   string
	Counts []int // replacements per pair, in pass order
}

// Total returns the number of replacements across all pairs.
func (r Result) Total() int {
	total := 0
	for _, c := range r.Counts {
		total += c
	}
	return total
}

// Changed reports whether any pair matched.
func (r Result) Changed() bool {
	return r.Total() > 0
}

// Match reports how often a pair's pattern occurs in a document.
type Match struct {
	Pair  Pair
	Count int
}

// Pass applies an ordered list of literal pairs.
type Pass struct {
	pairs []Pair
}

// NewPass creates a Pass over pairs. Pairs run in the given order.
func NewPass(pairs ...Pair) (*Pass, error) {
	for i, p := range pairs {
		if p.Pattern == "" {
			return nil, fmt.Errorf("pair %d (%q): %w", i, p.Name, ErrEmptyPattern)
		}
	}
	owned := make([]Pair, len(pairs))
	copy(owned, pairs)
	return &Pass{pairs: owned}, nil
}

// Pairs returns the pairs of the pass in application order.
func (p *Pass) Pairs() []Pair {
	pairs := make([]Pair, len(p.pairs))
	copy(pairs, p.pairs)
	return pairs
}

// Apply replaces every non-overlapping occurrence of each pattern, pair by
// pair, each one working on the output of the previous.
func (p *Pass) Apply(text string) Result {
	res := Result{Counts: make([]int, len(p.pairs))}
	for i, pair := range p.pairs {
		n := strings.Count(text, pair.Pattern)
		if n == 0 {
			continue
		}
		text = strings.ReplaceAll(text, pair.Pattern, pair.Replacement)
		res.Counts[i] = n
	}
	res.Text = text
	return res
}

// Scan counts pattern occurrences in text without replacing anything.
func (p *Pass) Scan(text string) []Match {
	matches := make([]Match, 0, len(p.pairs))
	for _, pair := range p.pairs {
		matches = append(matches, Match{Pair: pair, Count: strings.Count(text, pair.Pattern)})
	}
	return matches
}
