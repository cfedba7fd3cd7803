package dedupe

import (
	"regexp"
	"strings"

	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/agent"
)

const (
	// nameSimilarityThreshold is the fuzzy ratio above which two stripped
	// names are considered the same agent.
	nameSimilarityThreshold = 0.7
	// substringSimilarity is assigned when one stripped name contains the
	// other; containment is a strong duplicate signal regardless of the
	// literal ratio.
	substringSimilarity = 0.9
	// contentSimilarityThreshold is the fuzzy ratio above which two body
	// prefixes are considered the same underlying document.
	contentSimilarityThreshold = 0.8
	// contentPrefixLen bounds the content comparison; generic boilerplate
	// beyond the opening is too noisy to be a useful signal.
	contentPrefixLen = 500
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]`)
	// looseSuffix is a deliberately smaller synonym set than the
	// normalizer's, applied directly to raw names as a second net for
	// variants the broader rules over- or under-strip.
	looseSuffix = regexp.MustCompile(`[-_](pro|expert|developer|engineer|specialist)$`)
)

// IsDuplicate reports whether two records describe the same underlying agent.
// Four independent signals are OR-combined; any one of them is enough. The
// combination intentionally trades precision for recall: merging too eagerly
// produces fewer, larger groups for a curator to review, while a missed
// duplicate ships twice. Symmetric in its arguments.
func IsDuplicate(a, b *agent.Record) bool {
	if SemanticKey(a.DisplayName) == SemanticKey(b.DisplayName) {
		return true
	}
	if NameSimilarity(a.DisplayName, b.DisplayName) > nameSimilarityThreshold {
		return true
	}
	if ContentSimilarity(a.BodyContent, b.BodyContent) > contentSimilarityThreshold {
		return true
	}

	aStripped := looseSuffix.ReplaceAllString(strings.ToLower(a.DisplayName), "")
	bStripped := looseSuffix.ReplaceAllString(strings.ToLower(b.DisplayName), "")
	return aStripped != "" && aStripped == bStripped
}

// NameSimilarity computes a fuzzy similarity between two display names with
// all non-alphanumeric characters stripped. Substring containment short
// circuits to a high score.
func NameSimilarity(name1, name2 string) float64 {
	clean1 := nonAlphanumeric.ReplaceAllString(strings.ToLower(name1), "")
	clean2 := nonAlphanumeric.ReplaceAllString(strings.ToLower(name2), "")

	if clean1 != "" && clean2 != "" &&
		(strings.Contains(clean1, clean2) || strings.Contains(clean2, clean1)) {
		return substringSimilarity
	}
	return Ratio(clean1, clean2)
}

// ContentSimilarity computes the fuzzy similarity of two documents over their
// case-folded opening prefixes.
func ContentSimilarity(content1, content2 string) float64 {
	snippet1 := strings.ToLower(prefix(content1, contentPrefixLen))
	snippet2 := strings.ToLower(prefix(content2, contentPrefixLen))
	return Ratio(snippet1, snippet2)
}

func prefix(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// Ratio returns a sequence similarity ratio in [0, 1]: twice the total length
// of matched characters over the combined length, where matches are found by
// recursively taking the longest common substring and comparing the pieces on
// either side of it.
func Ratio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	return 2.0 * float64(matchedLen(a, b)) / float64(len(a)+len(b))
}

func matchedLen(a, b string) int {
	ai, bi, size := longestMatch(a, b)
	if size == 0 {
		return 0
	}
	return size + matchedLen(a[:ai], b[:bi]) + matchedLen(a[ai+size:], b[bi+size:])
}

// longestMatch finds the longest common substring of a and b, preferring the
// earliest occurrence in a and then in b so the result is deterministic.
func longestMatch(a, b string) (bestA, bestB, bestSize int) {
	b2j := make(map[byte][]int)
	for j := 0; j < len(b); j++ {
		b2j[b[j]] = append(b2j[b[j]], j)
	}

	j2len := make(map[int]int)
	for i := 0; i < len(a); i++ {
		newJ2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			k := j2len[j-1] + 1
			newJ2len[j] = k
			if k > bestSize {
				bestA, bestB, bestSize = i-k+1, j-k+1, k
			}
		}
		j2len = newJ2len
	}
	return bestA, bestB, bestSize
}
