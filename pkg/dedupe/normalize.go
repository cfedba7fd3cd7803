// Package dedupe detects and collapses near-duplicate agent records collected
// from independent sources. Grouping is single-pass and single-linkage against
// each group's seed; within a group the highest-quality record survives.
package dedupe

import (
	"regexp"
	"strings"
)

var numericPrefix = regexp.MustCompile(`^\d+[-_]`)

// roleSuffixes are name suffixes treated as interchangeable role variants.
// The first matching suffix wins; all of them strip down to the same stem, so
// "python-pro" and "python-expert" normalize to the same key.
var roleSuffixes = []string{
	"pro",
	"expert",
	"developer",
	"engineer",
	"specialist",
	"architect",
	"architecture",
	"tester",
	"testing",
	"qa",
	"debugger",
	"troubleshooter",
	"optimizer",
	"performance",
}

// SemanticKey maps a display name to the canonical key used for coarse
// duplicate pre-grouping: numeric prefixes stripped, separators folded to
// spaces, lowercased, and any known role suffix removed. A name that is
// nothing but a role word keeps itself as its own key.
func SemanticKey(name string) string {
	clean := numericPrefix.ReplaceAllString(name, "")
	clean = strings.NewReplacer("-", " ", "_", " ").Replace(clean)
	clean = strings.TrimSpace(strings.ToLower(clean))

	for _, suffix := range roleSuffixes {
		if strings.HasSuffix(clean, suffix) {
			if stem := strings.TrimSpace(strings.TrimSuffix(clean, suffix)); stem != "" {
				return stem
			}
		}
	}
	return clean
}
