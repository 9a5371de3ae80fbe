// Package project implements the view projector: composing the graph
// store (and, optionally, the pattern matcher) into a bounded, filtered,
// collapsed subgraph ready for downstream layout and rendering.
package project

import (
	"github.com/katalvlaran/semgraph/internal/pattern"
	"github.com/katalvlaran/semgraph/internal/store"
)

// ViewClass names a predefined edge-kind selection (spec §4.3).
type ViewClass string

const (
	ViewCallGraph   ViewClass = "call_graph"
	ViewInheritance ViewClass = "inheritance"
	ViewModuleDeps  ViewClass = "module_deps"
	ViewFull        ViewClass = "full"
)

// defaultKindsByView maps each named view class to its default edge-kind
// selection (spec §4.3 step 1).
var defaultKindsByView = map[ViewClass][]store.EdgeKind{
	ViewCallGraph:   {store.EdgeCalls, store.EdgeUses},
	ViewInheritance: {store.EdgeInherits, store.EdgeImplements},
	ViewModuleDeps:  {store.EdgeImports, store.EdgeDefines},
	ViewFull: {
		store.EdgeDefines, store.EdgeImports, store.EdgeCalls, store.EdgeInherits,
		store.EdgeImplements, store.EdgeUses, store.EdgeReads, store.EdgeWrites, store.EdgeThrows,
	},
}

// ViewConfig configures a single projection (spec §4.3 "Defaults").
type ViewConfig struct {
	View          ViewClass
	EdgeKinds     []store.EdgeKind // overrides the view class's default selection when non-empty
	RootID        string           // empty means "no root": use the whole store
	Depth         *int             // nil means the default depth of 3; an explicit 0 requests root-only (spec §8.3)
	MinConfidence float64
	CollapseKinds []store.NodeKind
	ExcludePaths  []string

	// Patterns and PatternIDs together request the optional matcher pass
	// over the projected node scope (spec §2 "the Matcher runs over the
	// resulting node scope to produce pattern instances"). Leaving Patterns
	// nil skips the pass entirely.
	Patterns   *pattern.Table
	PatternIDs []string
}

// WithDefaults returns a copy of c with every unset field filled in from
// spec §4.3's authoritative defaults. Applying WithDefaults to an
// already-defaulted configuration is the identity (spec §8.2). Depth is
// only defaulted when nil; an explicit Depth of 0 is a valid request and
// survives untouched.
func (c ViewConfig) WithDefaults() ViewConfig {
	out := c
	if out.Depth == nil {
		d := 3
		out.Depth = &d
	}
	if out.View == "" {
		out.View = ViewFull
	}
	if len(out.EdgeKinds) == 0 {
		out.EdgeKinds = append([]store.EdgeKind{}, defaultKindsByView[out.View]...)
	}
	if out.CollapseKinds == nil {
		out.CollapseKinds = []store.NodeKind{}
	}
	if out.ExcludePaths == nil {
		out.ExcludePaths = []string{}
	}
	return out
}

// Stats summarizes how many nodes/edges were dropped at each projection
// stage.
type Stats struct {
	NodesBeforeFilter int
	EdgesBeforeFilter int
	EdgesDroppedByConfidence int
	NodesDroppedUnreferenced int
	NodesDroppedByExclude    int
	EdgesDroppedByExclude    int
	NodesCollapsed           int
	EdgesDroppedSelfLoop     int
	EdgesDroppedDangling     int
	EdgesDeduplicated        int
}

// Result is the projector's output: the view's nodes, edges, chosen root
// (if any), a summary of what was filtered out along the way, and any
// pattern instances produced by the optional matcher pass.
type Result struct {
	Nodes    []store.Node
	Edges    []store.Edge
	RootID   string
	Stats    Stats
	Patterns []store.PatternInstance
}
