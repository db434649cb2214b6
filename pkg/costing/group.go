package costing

import (
	domain "github.com/donaldgifford/repair-cost/pkg/types"
)

// Group holds the codes of one input row that belong to the same family.
type Group struct {
	Family domain.Family
	Codes  []domain.Code
}

// GroupCodes partitions codes by family. Absent entries are skipped and codes
// with no family are returned as dropped. Groups are ordered by the first
// appearance of their family and codes keep first-seen order; a code seen
// twice is grouped once.
func GroupCodes(c *Catalog, codes []domain.Code) (groups []Group, dropped []domain.Code) {
	seen := make(map[domain.Code]struct{}, len(codes))
	slot := make(map[domain.Family]int)

	for _, code := range codes {
		if code.IsAbsent() {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}

		family, ok := c.FamilyOf(code)
		if !ok {
			dropped = append(dropped, code)
			continue
		}

		i, ok := slot[family]
		if !ok {
			i = len(groups)
			slot[family] = i
			groups = append(groups, Group{Family: family})
		}
		groups[i].Codes = append(groups[i].Codes, code)
	}

	return groups, dropped
}
