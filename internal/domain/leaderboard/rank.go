package leaderboard

import "sort"

// TopSize is how many entries the leaderboard view shows.
const TopSize = 8

// Ranked is an entry with its 1-based position after sorting.
type Ranked struct {
	Entry
	Rank int
}

// Rank sorts entries by total points descending and assigns 1-based
// ranks. The sort is stable, so ties stay in their pre-sort order.
func Rank(entries []Entry) []Ranked {
	ranked := make([]Ranked, len(entries))
	for i, e := range entries {
		ranked[i] = Ranked{Entry: e}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalPoints > ranked[j].TotalPoints
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// Top returns the first TopSize ranked entries plus, when email ranks
// below the cutoff, that employee's rank.
func Top(entries []Entry, email string) (top []Ranked, userRank *int) {
	ranked := Rank(entries)

	n := len(ranked)
	if n > TopSize {
		n = TopSize
	}
	top = ranked[:n]

	for _, r := range ranked {
		if r.Email == email {
			if r.Rank > TopSize {
				rank := r.Rank
				userRank = &rank
			}
			break
		}
	}
	return top, userRank
}
