/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: merger.go
Description: Match merger. Groups candidate matches by identifier, picks the most
frequent group and folds the group into its first member to produce one format.
*/

package timeformat

// matchGroup is the set of matches sharing an identifier
type matchGroup struct {
	identifier string
	members    []Match
}

// groupMatches partitions matches by identifier in first-seen order
func groupMatches(matches []Match) []*matchGroup {
	index := make(map[string]*matchGroup)
	groups := make([]*matchGroup, 0)
	for _, m := range matches {
		id := m.Identifier()
		g, ok := index[id]
		if !ok {
			g = &matchGroup{identifier: id}
			index[id] = g
			groups = append(groups, g)
		}
		g.members = append(g.members, m)
	}
	return groups
}

// MergeMostFrequentMatches returns the consensus match of the largest group.
// Ties go to the group seen first. An empty pool yields false.
func MergeMostFrequentMatches(matches []Match) (Match, bool) {
	best, ok := mostFrequentGroup(matches)
	if !ok {
		return nil, false
	}
	return best.fold(), true
}

func mostFrequentGroup(matches []Match) (*matchGroup, bool) {
	groups := groupMatches(matches)
	if len(groups) == 0 {
		return nil, false
	}
	best := groups[0]
	for _, g := range groups[1:] {
		if len(g.members) > len(best.members) {
			best = g
		}
	}
	return best, true
}

// fold merges every other member into the first one
func (g *matchGroup) fold() Match {
	merged := g.members[0]
	for _, peer := range g.members[1:] {
		merged = merged.MergeFrom(peer)
	}
	return merged
}
