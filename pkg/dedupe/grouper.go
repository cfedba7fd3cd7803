package dedupe

import (
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/agent"
)

// Group is a set of records judged to describe the same underlying agent.
// The first record is the seed; member order is input order.
type Group struct {
	Records []*agent.Record
}

// Seed returns the record the group was opened with.
func (g *Group) Seed() *agent.Record {
	return g.Records[0]
}

// Size returns the number of records in the group.
func (g *Group) Size() int {
	return len(g.Records)
}

// IsUnique reports whether the group holds a single record.
func (g *Group) IsUnique() bool {
	return len(g.Records) == 1
}

// GroupRecords partitions records into disjoint duplicate groups with a
// single pass over the input. Each unprocessed record opens a new group and
// every remaining unprocessed record is tested against that group's seed
// only, not against other members. A record that would have matched a
// non-seed member stays outside the group; callers depend on this
// seed-only (non-transitive) behavior, so it must not be replaced with full
// pairwise clustering. Group order is the input order of their seeds, which
// makes the whole partition deterministic and idempotent for a fixed input
// order.
func GroupRecords(records []*agent.Record) []*Group {
	groups := make([]*Group, 0, len(records))
	processed := make([]bool, len(records))

	for i, seed := range records {
		if processed[i] {
			continue
		}
		processed[i] = true
		group := &Group{Records: []*agent.Record{seed}}

		for j := i + 1; j < len(records); j++ {
			if processed[j] {
				continue
			}
			if IsDuplicate(seed, records[j]) {
				group.Records = append(group.Records, records[j])
				processed[j] = true
			}
		}

		groups = append(groups, group)
	}

	return groups
}
