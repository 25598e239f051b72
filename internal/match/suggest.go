package match

import (
	"sort"
	"strings"
)

// DefaultSuggestions is the number of suggestions offered for an unknown name.
const DefaultSuggestions = 3

// Suggest returns up to limit candidates close to name, nearest first. Names
// are compared case-insensitively with hyphens removed, so "dayofmonth"
// suggests "day-of-month". A candidate qualifies when its edit distance is at
// most a third of the longer name, and never less than 2.
func Suggest(name string, candidates []string, limit int) []string {
	type scored struct {
		name     string
		distance int
	}

	normalized := normalizeName(name)

	var hits []scored

	for _, candidate := range candidates {
		if candidate == name {
			continue
		}

		other := normalizeName(candidate)
		distance := Levenshtein(normalized, other)

		if distance <= max(2, max(len(normalized), len(other))/3) {
			hits = append(hits, scored{name: candidate, distance: distance})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].distance != hits[j].distance {
			return hits[i].distance < hits[j].distance
		}

		return hits[i].name < hits[j].name
	})

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}

	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}

	return out
}

func normalizeName(s string) string {
	var b strings.Builder

	for _, r := range strings.ToLower(s) {
		if r != '-' && r != '_' && r != ' ' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
