package pattern

import (
	"sort"
	"strings"

	"github.com/katalvlaran/semgraph/internal/store"
)

// edgeConstraintLabel derives the design-level scoring label for an edge
// constraint: "<from>_<kind>_<to-role(s)>" (spec §4.2 "Constraint
// evaluation"). Multiple `to` roles are joined with "_or_" in sorted order
// so the label is deterministic regardless of declaration order.
func edgeConstraintLabel(from string, kind store.EdgeKind, to []string) string {
	sorted := append([]string{}, to...)
	sort.Strings(sorted)
	return from + "_" + string(kind) + "_" + strings.Join(sorted, "_or_")
}
