package main

import (
	"sort"

	"github.com/charmbracelet/bubbles/list"
	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// fuzzyFilter implements list.FilterFunc using junegunn/fzf's scoring
// algorithm instead of bubbles' built-in Sahilm matcher, so the
// object-graph tree's "/" filter ranks the same way fzf does.
func fuzzyFilter(term string, targets []string) []list.Rank {
	if term == "" {
		ranks := make([]list.Rank, len(targets))
		for i := range targets {
			ranks[i] = list.Rank{Index: i}
		}
		return ranks
	}

	pattern := []rune(term)
	slab := util.MakeSlab(100*1024, 2048)

	type scoredRank struct {
		rank  list.Rank
		score int32
	}
	var scored []scoredRank
	for i, target := range targets {
		chars := util.ToChars([]byte(target))
		result, pos := algo.FuzzyMatchV2(false, true, true, &chars, pattern, true, slab)
		if result.Score <= 0 {
			continue
		}
		var matched []int
		if pos != nil {
			matched = *pos
		}
		scored = append(scored, scoredRank{
			rank:  list.Rank{Index: i, MatchedIndexes: matched},
			score: int32(result.Score),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	ranks := make([]list.Rank, len(scored))
	for i, s := range scored {
		ranks[i] = s.rank
	}
	return ranks
}
