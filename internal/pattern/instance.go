package pattern

import (
	"github.com/katalvlaran/semgraph/internal/idgen"
	"github.com/katalvlaran/semgraph/internal/store"
)

// ToPatternInstance converts an accepted Match into a store.PatternInstance
// ready for store.AddPattern, minting a fresh id via idgen since a Match
// carries no identity of its own until it is persisted.
func ToPatternInstance(m Match) store.PatternInstance {
	return store.PatternInstance{
		ID:          idgen.PatternInstance(),
		TemplateID:  m.PatternID,
		Roles:       m.Roles,
		Confidence:  m.Confidence,
		Evidence:    m.Evidence,
		Explanation: m.Explanation.String(),
	}
}
