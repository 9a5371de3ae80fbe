package pattern

import (
	"fmt"

	"github.com/katalvlaran/semgraph/internal/store"
)

// evaluateEdge checks whether at least one edge of kind exists from the
// bound node of `from` to the bound node of any role in `to`, with
// confidence >= minConfidence when set. It returns the first satisfying
// edge's destination id as the "matched" node for optional bind-as use.
func evaluateEdge(s *store.Store, b binding, kind store.EdgeKind, from string, to []string, minConfidence float64) (bool, string, string) {
	fromIDs, ok := b[from]
	if !ok || len(fromIDs) == 0 {
		return false, "", ""
	}

	targets := make(map[string]bool)
	for _, roleName := range to {
		for _, id := range b[roleName] {
			targets[id] = true
		}
	}

	for _, fromID := range fromIDs {
		for _, e := range s.EdgesOf(fromID, store.DirOut) {
			if e.Kind != kind {
				continue
			}
			if !targets[e.Dst] {
				continue
			}
			if minConfidence > 0 && e.Confidence < minConfidence {
				continue
			}
			return true, fmt.Sprintf("%s --%s--> %s", fromID, kind, e.Dst), e.Dst
		}
	}
	return false, "", ""
}

func evaluateGroup(b binding, role string, minSize, maxSize int) (bool, string) {
	n := len(b[role])
	if n < minSize {
		return false, ""
	}
	if maxSize > 0 && n > maxSize {
		return false, ""
	}
	return true, fmt.Sprintf("%s has %d members", role, n)
}

// evaluate runs every constraint in def against a single complete binding,
// returning the per-constraint results, whether the binding is accepted
// (every non-optional constraint satisfied), and any optional bind-as
// roles to graft onto the final Match.
func evaluate(s *store.Store, def Def, b binding) ([]ConstraintResult, bool, map[string][]string) {
	var results []ConstraintResult
	accepted := true
	grafted := make(map[string][]string)

	var run func(c Constraint, optional bool) (bool, string, string)
	run = func(c Constraint, optional bool) (bool, string, string) {
		switch cc := c.(type) {
		case EdgeConstraint:
			ok, evidence, matched := evaluateEdge(s, b, cc.Kind, cc.From, cc.To, cc.MinConfidence)
			return ok, evidence, matched
		case GroupConstraint:
			ok, evidence := evaluateGroup(b, cc.Role, cc.MinSize, cc.MaxSize)
			return ok, evidence, ""
		case OptionalConstraint:
			ok, evidence, matched := run(cc.Inner, true)
			if ok && cc.BindAs != "" {
				if matched != "" {
					grafted[cc.BindAs] = []string{matched}
				} else if inner, isGroup := cc.Inner.(GroupConstraint); isGroup {
					grafted[cc.BindAs] = b[inner.Role]
				}
			}
			return ok, evidence, matched
		default:
			return false, "", ""
		}
	}

	for _, c := range def.Constraints {
		_, isOptional := c.(OptionalConstraint)
		ok, evidence, _ := run(c, isOptional)

		weight := 0.0
		if ok {
			weight = def.Scoring.weightFor(c.constraintLabel())
		}
		results = append(results, ConstraintResult{
			Label:     c.constraintLabel(),
			Optional:  isOptional,
			Satisfied: ok,
			Weight:    weight,
			Evidence:  evidence,
		})

		if !ok && !isOptional {
			accepted = false
		}
	}

	return results, accepted, grafted
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
