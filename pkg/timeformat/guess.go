/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: guess.go
Description: Time format guessing entry points. Runs every example through the
matchers in priority order, keeps the first hit per example and merges the hits
into one consensus strftime format.
*/

package timeformat

// defaultMatchers is the fixed priority order. Specialized shapes come before
// the permissive generic matcher; equal-frequency ties depend on this order.
var defaultMatchers = []Matcher{
	matchRFC2822,
	matchApacheCLF,
	matchAsctime,
	matchPattern,
}

// Result describes one guess
type Result struct {
	Format    string `json:"format,omitempty"`
	Found     bool   `json:"found"`
	Attempted int    `json:"attempted"`
	Matched   int    `json:"matched"`
	GroupSize int    `json:"group_size"`
}

// Guesser guesses strftime formats. The zero value is not usable; use NewGuesser.
type Guesser struct {
	matchers []Matcher
}

// NewGuesser creates a guesser with the built-in matchers
func NewGuesser() *Guesser {
	return &Guesser{matchers: defaultMatchers}
}

// NewGuesserWithMatchers creates a guesser with a custom matcher order
func NewGuesserWithMatchers(matchers ...Matcher) *Guesser {
	return &Guesser{matchers: matchers}
}

var defaultGuesser = NewGuesser()

// Guess returns the consensus format for examples using the built-in matchers
func Guess(examples []string) (string, bool) {
	return defaultGuesser.Guess(examples)
}

// Guess returns the consensus format for examples, or false when no example matched
func (g *Guesser) Guess(examples []string) (string, bool) {
	r := g.GuessDetailed(examples)
	return r.Format, r.Found
}

// GuessDetailed is Guess with match statistics
func (g *Guesser) GuessDetailed(examples []string) Result {
	var result Result
	matches := make([]Match, 0, len(examples))
	for _, example := range examples {
		if example == "" {
			continue
		}
		result.Attempted++
		if m, ok := g.matchOne(example); ok {
			matches = append(matches, m)
		}
	}
	result.Matched = len(matches)

	best, ok := mostFrequentGroup(matches)
	if !ok {
		return result
	}
	result.Format = best.fold().Format()
	result.Found = true
	result.GroupSize = len(best.members)
	return result
}

func (g *Guesser) matchOne(example string) (Match, bool) {
	for _, matcher := range g.matchers {
		if m, ok := matcher(example); ok {
			return m, true
		}
	}
	return nil, false
}
