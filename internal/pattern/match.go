package pattern

import "github.com/katalvlaran/semgraph/internal/store"

// Table is a compiled set of pattern definitions the matcher can run
// against a store. It has no state of its own beyond the compiled
// definitions (spec §4.2 "State machine").
type Table struct {
	defs map[string]Def
}

// Compile builds a Table from a list of pattern definitions.
func Compile(defs ...Def) *Table {
	t := &Table{defs: make(map[string]Def, len(defs))}
	for _, d := range defs {
		t.defs[d.ID] = d
	}
	return t
}

// Run executes the named pattern against s. If scope is non-nil, every
// candidate node considered is first intersected with scope (spec §4.2
// "Candidate generation and binding"; testable property 8.1.7). Returns
// NotFoundError if id is unknown. A role with zero candidates yields zero
// matches, not an error.
func (t *Table) Run(s *store.Store, id string, scope []string) ([]Match, error) {
	def, ok := t.defs[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return RunDef(s, def, scope)
}

// RunDef runs a single, already-assembled pattern definition, without
// requiring it to live in a Table. Useful for callers assembling a Def
// directly rather than loading a compiled Table.
func RunDef(s *store.Store, def Def, scope []string) ([]Match, error) {
	scopeSet := toSet(scope)

	var matches []Match
	generateBindings(s, def, scopeSet, func(b binding) {
		results, accepted, grafted := evaluate(s, def, b)
		if !accepted {
			return
		}

		full := b.clone()
		for role, ids := range grafted {
			full[role] = ids
		}

		confidence := def.Scoring.Base
		for _, r := range results {
			if r.Satisfied {
				confidence += r.Weight
			}
		}
		confidence = clamp01(confidence)

		matches = append(matches, Match{
			PatternID:   def.ID,
			Roles:       full,
			Confidence:  confidence,
			Evidence:    evidenceList(def, results),
			Explanation: newExplanation(def, full, results, confidence),
		})
	})

	return Dedup(matches), nil
}
