package fuzzyfinder

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/meop/WinEnvEdit-sub001/pkg/model/menvvar"
)

type Rank struct {
	// Variable is the matched environment variable.
	Variable menvvar.EnvironmentVariable

	// Distance is the Levenshtein distance between the query and the
	// variable name.
	Distance int
}

// RankVariables matches query against variable names, case-insensitively,
// and returns the matches ordered best first.
func RankVariables(vars []menvvar.EnvironmentVariable, query string) []Rank {
	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = v.Name
	}

	ranksLib := fuzzy.RankFindNormalizedFold(query, names)
	sort.Sort(ranksLib)

	ranks := make([]Rank, ranksLib.Len())
	for i, r := range ranksLib {
		ranks[i] = Rank{
			Variable: vars[r.OriginalIndex],
			Distance: r.Distance,
		}
	}
	return ranks
}
