package classify

import (
	"strings"

	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/agent"
)

// Match weights. A keyword in the display name is the strongest signal, the
// description is next, and the opening body content the weakest.
const (
	nameWeight        = 3
	descriptionWeight = 2
	contentWeight     = 1

	// contentSignalLen bounds how much body content contributes signal;
	// beyond the opening, keyword hits are mostly incidental.
	contentSignalLen = 1000
)

// Classifier assigns categories from an ordered taxonomy. The zero-argument
// constructor uses DefaultTaxonomy; this weighted mode is the pipeline's
// default classification.
type Classifier struct {
	taxonomy Taxonomy
}

// New creates a Classifier over the given taxonomy, falling back to
// DefaultTaxonomy when nil.
func New(taxonomy Taxonomy) *Classifier {
	if taxonomy == nil {
		taxonomy = DefaultTaxonomy
	}
	return &Classifier{taxonomy: taxonomy}
}

// Classify scores every (category, subcategory) pair against the record and
// returns the highest-scoring pair. Only a strictly higher score displaces
// the current best, so on ties the pair declared earlier in the taxonomy
// wins; when nothing matches at all the defaults apply. Deterministic for a
// fixed taxonomy: iteration follows declaration order, never map order.
func (c *Classifier) Classify(rec *agent.Record) (category, subcategory string) {
	nameLower := strings.ToLower(rec.DisplayName)
	descLower := strings.ToLower(rec.Description)
	contentLower := strings.ToLower(rec.BodyContent)
	if len(contentLower) > contentSignalLen {
		contentLower = contentLower[:contentSignalLen]
	}

	category = agent.DefaultCategory
	subcategory = agent.DefaultSubcategory
	bestScore := 0

	for _, cat := range c.taxonomy {
		for _, sub := range cat.Subcategories {
			score := 0
			for _, keyword := range sub.Keywords {
				if strings.Contains(nameLower, keyword) {
					score += nameWeight
				}
				if strings.Contains(descLower, keyword) {
					score += descriptionWeight
				}
				if strings.Contains(contentLower, keyword) {
					score += contentWeight
				}
			}
			if score > bestScore {
				bestScore = score
				category = cat.Name
				subcategory = sub.Name
			}
		}
	}

	return category, subcategory
}

// Apply classifies the record and writes the result onto it.
func (c *Classifier) Apply(rec *agent.Record) {
	rec.Category, rec.Subcategory = c.Classify(rec)
}
