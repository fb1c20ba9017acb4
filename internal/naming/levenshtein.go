package naming

import "sort"

// Levenshtein computes the Levenshtein distance (edit distance) between two strings.
// The distance is the minimum number of single-character edits (insertions, deletions,
// or substitutions) required to transform one string into the other.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Similarity is 1 - distance/max(len(a), len(b)): 1.0 for identical strings, 0.0 for
// nothing in common.
func Similarity(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(max(len(a), len(b)))
}

// MinSuggestionScore is the similarity a known name needs to be suggested.
const MinSuggestionScore = 0.6

type suggestion struct {
	name  string
	score float64
}

// Suggest ranks known names by similarity to name and returns at most limit of
// them scoring at least MinSuggestionScore. Both sides are compared in key and
// lax form, so case and underscores never count as edits. Ties keep the order of known.
func Suggest(name string, known []string, limit int) []string {
	if limit <= 0 {
		return nil
	}

	target := Lax(Key(name))

	var ranked []suggestion
	for _, k := range known {
		score := Similarity(target, Lax(Key(k)))
		if score >= MinSuggestionScore {
			ranked = append(ranked, suggestion{name: k, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, 0, len(ranked))
	for _, s := range ranked {
		out = append(out, s.name)
	}

	return out
}
