/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: match.go
Description: Match and Matcher contracts for the time format guesser. A Match is one
candidate format for one example; matches sharing an identifier are merged into a
single consensus format.
*/

package timeformat

// Match is a candidate format produced for a single example
type Match interface {
	// Format returns the strftime-like format token.
	Format() string
	// Identifier returns the grouping signature used to cluster matches.
	Identifier() string
	// MergeFrom returns a copy of the match that has absorbed what a peer of
	// the same group observed. The receiver is not modified.
	MergeFrom(peer Match) Match
}

// Matcher recognizes one family of timestamp shapes
type Matcher func(example string) (Match, bool)

// SimpleMatch is a match whose identifier is its format.
// Fixed-shape matchers produce these; merging is a no-op.
type SimpleMatch struct {
	format string
}

// NewSimpleMatch creates a match for a fixed format
func NewSimpleMatch(format string) SimpleMatch {
	return SimpleMatch{format: format}
}

func (m SimpleMatch) Format() string          { return m.format }
func (m SimpleMatch) Identifier() string      { return m.format }
func (m SimpleMatch) MergeFrom(_ Match) Match { return m }
func (m SimpleMatch) String() string          { return "SimpleMatch(" + m.format + ")" }
