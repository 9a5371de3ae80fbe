// Package pattern implements the declarative design-pattern matcher: named
// roles bound to concrete store nodes, required/optional constraints,
// weighted scoring, and deduplication of structurally equivalent matches.
//
// Example Usage:
//
//	def := pattern.Def{
//		ID: "observer",
//		Roles: map[string]pattern.RoleSpec{
//			"subject":  {Kind: store.NodeClass},
//			"observer": {Kind: store.NodeInterface},
//		},
//		Constraints: []pattern.Constraint{
//			pattern.EdgeConstraint{Kind: store.EdgeUses, From: "subject", To: []string{"observer"}},
//			pattern.GroupConstraint{Role: "observer", MinSize: 1},
//		},
//		Scoring: pattern.Scoring{Base: 0.5, Weights: map[string]float64{"group_observer": 0.2}},
//	}
//	matches, err := pattern.Compile(def).Run(s, "observer", nil)
package pattern

import "github.com/katalvlaran/semgraph/internal/store"

// RoleSpec describes the candidates a named role may bind to: a required
// node kind, an optional owning role, and any additional node-query fields
// forwarded to the store (name/route patterns are evaluated by the store's
// own FindNodes, which treats a regular-expression Pattern as a post-filter
// over the index-seeded candidate set).
type RoleSpec struct {
	Kind    store.NodeKind
	OwnedBy string
	Query   store.NodeQuery
}

// query returns the effective store.NodeQuery for this role, with Kind
// merged in.
func (r RoleSpec) query() store.NodeQuery {
	q := r.Query
	if r.Kind != "" {
		q.Kinds = []store.NodeKind{r.Kind}
	}
	return q
}

// Constraint is the sum type of edge, group, and optional constraints. Each
// concrete type implements it as a marker.
type Constraint interface {
	constraintLabel() string
}

// EdgeConstraint requires at least one edge of Kind from the node bound to
// From, to the node bound to one of the roles in To, with confidence
// >= MinConfidence when set.
type EdgeConstraint struct {
	Label         string // overrides the derived scoring label when set
	Kind          store.EdgeKind
	From          string
	To            []string
	MinConfidence float64
}

func (c EdgeConstraint) constraintLabel() string {
	if c.Label != "" {
		return c.Label
	}
	return edgeConstraintLabel(c.From, c.Kind, c.To)
}

// GroupConstraint declares Role a group role: it binds to the set of
// candidates satisfying its spec rather than a single node, and is
// satisfied when MinSize <= |binding| <= MaxSize (MaxSize == 0 means
// unbounded).
type GroupConstraint struct {
	Label   string
	Role    string
	MinSize int
	MaxSize int // 0 means unbounded
}

func (c GroupConstraint) constraintLabel() string {
	if c.Label != "" {
		return c.Label
	}
	return "group_" + c.Role
}

// OptionalConstraint wraps an edge or group constraint so that failing it
// never disqualifies a binding; BindAs, if set, receives the matched
// node(s) as a synthetic role on success.
type OptionalConstraint struct {
	Inner  Constraint
	BindAs string
}

func (c OptionalConstraint) constraintLabel() string { return c.Inner.constraintLabel() }

// Scoring holds a pattern's base confidence and per-constraint-label
// weights.
type Scoring struct {
	Base    float64
	Weights map[string]float64
}

// fallbackWeight is used when a constraint's derived label has no entry in
// Scoring.Weights (spec §4.2 "Missing labels default to a small non-zero
// fallback").
const fallbackWeight = 0.05

func (sc Scoring) weightFor(label string) float64 {
	if w, ok := sc.Weights[label]; ok {
		return w
	}
	return fallbackWeight
}

// Def is a compiled pattern definition.
type Def struct {
	ID          string
	Roles       map[string]RoleSpec
	Constraints []Constraint
	Scoring     Scoring
}

// ConstraintResult records one constraint's outcome for a single binding.
type ConstraintResult struct {
	Label      string
	Optional   bool
	Satisfied  bool
	Weight     float64
	Evidence   string
}

// Match is an accepted, scored binding.
type Match struct {
	PatternID    string
	Roles        map[string][]string // every role, including group roles, as a slice for uniformity
	Confidence   float64
	Evidence     []string
	Explanation  Explanation
}

// Explanation is the structured breakdown behind a Match's confidence,
// rendered as a flattened string by String() for callers that want plain
// text (spec §4.2 "Scoring").
type Explanation struct {
	PatternID   string
	RoleArity   map[string]int
	Base        float64
	Constraints []ConstraintResult
	Confidence  float64
}
