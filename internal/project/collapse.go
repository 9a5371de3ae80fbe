package project

import "github.com/katalvlaran/semgraph/internal/store"

type collapseStats struct {
	NodesCollapsed       int
	EdgesDroppedSelfLoop int
	EdgesDroppedDangling int
	EdgesDeduplicated    int
}

// collapse implements spec §4.3 step 5: every node whose parent's kind is
// in collapseKinds is removed from the working set, and every edge
// incident to it is rewritten to use the parent's id instead. Self-loops,
// edges with an endpoint no longer present, and duplicate (src, dst, kind)
// triples (keeping the first occurrence) are then dropped.
func collapse(nodes []store.Node, edges []store.Edge, collapseKinds []store.NodeKind) ([]store.Node, []store.Edge, collapseStats) {
	if len(collapseKinds) == 0 {
		return nodes, edges, collapseStats{}
	}

	byID := make(map[string]store.Node, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}
	collapsible := make(map[store.NodeKind]bool, len(collapseKinds))
	for _, k := range collapseKinds {
		collapsible[k] = true
	}

	// redirect maps a collapsed node id to the surviving ancestor it is
	// rerouted through. A chain of collapsible ancestors redirects all the
	// way to the first non-collapsed ancestor.
	redirect := make(map[string]string)
	var resolve func(id string) string
	resolve = func(id string) string {
		n, ok := byID[id]
		if !ok || n.Parent == "" {
			return id
		}
		parent, ok := byID[n.Parent]
		if !ok || !collapsible[parent.Kind] {
			return id
		}
		target := resolve(n.Parent)
		return target
	}

	var stats collapseStats
	keptNodes := make([]store.Node, 0, len(nodes))
	for _, n := range nodes {
		target := resolve(n.ID)
		if target != n.ID {
			redirect[n.ID] = target
			stats.NodesCollapsed++
			continue
		}
		keptNodes = append(keptNodes, n)
	}

	survivors := make(map[string]bool, len(keptNodes))
	for _, n := range keptNodes {
		survivors[n.ID] = true
	}

	reroute := func(id string) string {
		if t, ok := redirect[id]; ok {
			return t
		}
		return id
	}

	seen := make(map[string]bool)
	keptEdges := make([]store.Edge, 0, len(edges))
	for _, e := range edges {
		src := reroute(e.Src)
		dst := reroute(e.Dst)

		if src == dst {
			stats.EdgesDroppedSelfLoop++
			continue
		}
		if !survivors[src] || !survivors[dst] {
			stats.EdgesDroppedDangling++
			continue
		}

		key := src + "|" + dst + "|" + string(e.Kind)
		if seen[key] {
			stats.EdgesDeduplicated++
			continue
		}
		seen[key] = true

		rewritten := e
		rewritten.Src = src
		rewritten.Dst = dst
		keptEdges = append(keptEdges, rewritten)
	}

	return keptNodes, keptEdges, stats
}
