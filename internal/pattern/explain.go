package pattern

import (
	"fmt"
	"strings"
)

// String renders the explanation as the flattened evidence-plus-breakdown
// text described by spec §4.2 "Scoring": role bindings (arrays rendered as
// their cardinality), constraint results, and the score breakdown.
func (e Explanation) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pattern %s: base=%.2f", e.PatternID, e.Base)
	for _, c := range e.Constraints {
		status := "fail"
		if c.Satisfied {
			status = "ok"
		}
		opt := ""
		if c.Optional {
			opt = " (optional)"
		}
		fmt.Fprintf(&b, "; %s%s=%s(+%.2f)", c.Label, opt, status, c.Weight)
	}
	for role, n := range e.RoleArity {
		fmt.Fprintf(&b, "; %s=%d node(s)", role, n)
	}
	fmt.Fprintf(&b, " => confidence=%.2f", e.Confidence)
	return b.String()
}

func newExplanation(def Def, b binding, results []ConstraintResult, confidence float64) Explanation {
	arity := make(map[string]int, len(b))
	for role, ids := range b {
		arity[role] = len(ids)
	}
	return Explanation{
		PatternID:   def.ID,
		RoleArity:   arity,
		Base:        def.Scoring.Base,
		Constraints: results,
		Confidence:  confidence,
	}
}

func evidenceList(def Def, results []ConstraintResult) []string {
	ev := []string{fmt.Sprintf("base=%.2f", def.Scoring.Base)}
	for _, r := range results {
		if r.Satisfied && r.Evidence != "" {
			ev = append(ev, r.Evidence)
		}
	}
	return ev
}
