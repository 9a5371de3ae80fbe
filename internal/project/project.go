package project

import (
	"regexp"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/semgraph/internal/pattern"
	"github.com/katalvlaran/semgraph/internal/store"
)

// Project composes s into a ProjectionResult following spec §4.3's five
// steps in order: edge-kind selection, node/edge collection, confidence
// thresholding, path exclusion, and hierarchical collapse.
func Project(s *store.Store, cfg ViewConfig) (*Result, error) {
	cfg = cfg.WithDefaults()

	nodes, edges, err := collect(s, cfg)
	if err != nil {
		return nil, err
	}

	st := Stats{NodesBeforeFilter: len(nodes), EdgesBeforeFilter: len(edges)}

	edges, dropped := filterConfidence(edges, cfg.MinConfidence)
	st.EdgesDroppedByConfidence = dropped

	if cfg.RootID != "" {
		before := len(nodes)
		nodes = pruneUnreferenced(nodes, edges, cfg.RootID)
		st.NodesDroppedUnreferenced = before - len(nodes)
	}

	nodes, edges, nDropped, eDropped := excludePaths(nodes, edges, cfg.ExcludePaths)
	st.NodesDroppedByExclude = nDropped
	st.EdgesDroppedByExclude = eDropped

	nodes, edges, collapseStats := collapse(nodes, edges, cfg.CollapseKinds)
	st.NodesCollapsed = collapseStats.NodesCollapsed
	st.EdgesDroppedSelfLoop = collapseStats.EdgesDroppedSelfLoop
	st.EdgesDroppedDangling = collapseStats.EdgesDroppedDangling
	st.EdgesDeduplicated = collapseStats.EdgesDeduplicated

	result := &Result{Nodes: nodes, Edges: edges, RootID: cfg.RootID, Stats: st}

	if cfg.Patterns != nil && len(cfg.PatternIDs) > 0 {
		instances, err := runPatterns(s, cfg.Patterns, cfg.PatternIDs, nodes)
		if err != nil {
			return nil, err
		}
		result.Patterns = instances
	}

	return result, nil
}

// runPatterns runs every named pattern over scope concurrently (spec §2:
// "the Matcher runs over the resulting node scope to produce pattern
// instances"), one errgroup task per pattern id since each run only reads
// s and writes to its own slot.
func runPatterns(s *store.Store, table *pattern.Table, ids []string, scope []store.Node) ([]store.PatternInstance, error) {
	scopeIDs := make([]string, len(scope))
	for i, n := range scope {
		scopeIDs[i] = n.ID
	}

	perPattern := make([][]store.PatternInstance, len(ids))
	var eg errgroup.Group
	for i, id := range ids {
		i, id := i, id
		eg.Go(func() error {
			matches, err := table.Run(s, id, scopeIDs)
			if err != nil {
				return err
			}
			instances := make([]store.PatternInstance, len(matches))
			for j, m := range matches {
				instances[j] = pattern.ToPatternInstance(m)
			}
			perPattern[i] = instances
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var out []store.PatternInstance
	for _, instances := range perPattern {
		out = append(out, instances...)
	}
	return out, nil
}

// collect implements spec §4.3 step 1-2: select the edge-kind set, then
// gather the working node/edge set either from a bounded subgraph around
// RootID or from the whole store.
func collect(s *store.Store, cfg ViewConfig) ([]store.Node, []store.Edge, error) {
	kinds := cfg.EdgeKinds

	if cfg.RootID != "" {
		return s.Subgraph(cfg.RootID, *cfg.Depth, kinds)
	}

	nodes := s.AllNodes()
	allowed := make(map[store.EdgeKind]bool, len(kinds))
	for _, k := range kinds {
		allowed[k] = true
	}
	var edges []store.Edge
	for _, e := range s.AllEdges() {
		if allowed[e.Kind] {
			edges = append(edges, e)
		}
	}
	return nodes, edges, nil
}

// filterConfidence drops edges below min; an edge with confidence exactly
// equal to min is retained (spec §8.3).
func filterConfidence(edges []store.Edge, min float64) ([]store.Edge, int) {
	out := make([]store.Edge, 0, len(edges))
	dropped := 0
	for _, e := range edges {
		if e.Confidence < min {
			dropped++
			continue
		}
		out = append(out, e)
	}
	return out, dropped
}

// pruneUnreferenced drops nodes no longer referenced by any remaining
// edge, except the root itself which is always preserved (spec §4.3 step
// 3, only applies when a RootID is present).
func pruneUnreferenced(nodes []store.Node, edges []store.Edge, rootID string) []store.Node {
	referenced := make(map[string]bool)
	referenced[rootID] = true
	for _, e := range edges {
		referenced[e.Src] = true
		referenced[e.Dst] = true
	}
	out := make([]store.Node, 0, len(nodes))
	for _, n := range nodes {
		if referenced[n.ID] {
			out = append(out, n)
		}
	}
	return out
}

// excludePaths drops every node whose File matches any translated glob
// pattern, and every edge with an endpoint in the dropped set (spec §4.3
// step 4). Patterns that fail to compile are skipped rather than treated
// as fatal, since the projector trusts a validated configuration (spec
// §4.3 "Failure modes"); a caller-facing validator should reject bad globs
// before they reach here.
func excludePaths(nodes []store.Node, edges []store.Edge, patterns []string) ([]store.Node, []store.Edge, int, int) {
	if len(patterns) == 0 {
		return nodes, edges, 0, 0
	}

	var res []*regexp.Regexp
	for _, p := range patterns {
		re, err := globToRegexp(p)
		if err != nil {
			continue
		}
		res = append(res, re)
	}

	dropped := make(map[string]bool)
	keptNodes := make([]store.Node, 0, len(nodes))
	for _, n := range nodes {
		excluded := false
		for _, re := range res {
			if re.MatchString(n.File) {
				excluded = true
				break
			}
		}
		if excluded {
			dropped[n.ID] = true
			continue
		}
		keptNodes = append(keptNodes, n)
	}

	keptEdges := make([]store.Edge, 0, len(edges))
	edgesDropped := 0
	for _, e := range edges {
		if dropped[e.Src] || dropped[e.Dst] {
			edgesDropped++
			continue
		}
		keptEdges = append(keptEdges, e)
	}

	return keptNodes, keptEdges, len(nodes) - len(keptNodes), edgesDropped
}
