package store

// Subgraph performs a breadth-first traversal from root along undirected
// edges, treating each edge as a single step. kinds, if non-empty,
// restricts which edges are followed. The returned node set is the closed
// ball of radius depth around root; the returned edge set is every stored
// edge whose endpoints are both in that node set and whose kind is in
// kinds (when given).
func (s *Store) Subgraph(root string, depth int, kinds []EdgeKind) ([]Node, []Edge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.nodes[root]; !ok {
		return nil, nil, errNodeNotFound(root)
	}

	allowed := func(EdgeKind) bool { return true }
	if len(kinds) > 0 {
		set := make(map[EdgeKind]bool, len(kinds))
		for _, k := range kinds {
			set[k] = true
		}
		allowed = func(k EdgeKind) bool { return set[k] }
	}

	visited := map[string]int{root: 0}
	frontier := []string{root}
	for hop := 0; hop < depth && len(frontier) > 0; hop++ {
		var next []string
		for _, id := range frontier {
			for _, e := range s.undirectedEdgesLocked(id) {
				if !allowed(e.Kind) {
					continue
				}
				other := otherEnd(e, id)
				if _, seen := visited[other]; seen {
					continue
				}
				visited[other] = hop + 1
				next = append(next, other)
			}
		}
		frontier = next
	}

	nodes := make([]Node, 0, len(visited))
	nodeSet := make(map[string]bool, len(visited))
	for id := range visited {
		if n, ok := s.nodes[id]; ok {
			nodes = append(nodes, n)
			nodeSet[id] = true
		}
	}

	var edges []Edge
	for _, e := range s.edges {
		if !nodeSet[e.Src] || !nodeSet[e.Dst] {
			continue
		}
		if len(kinds) > 0 && !allowed(e.Kind) {
			continue
		}
		edges = append(edges, e)
	}

	return nodes, edges, nil
}

// undirectedEdgesLocked returns every edge incident to id (either as src or
// dst), assuming s.mu is already held.
func (s *Store) undirectedEdgesLocked(id string) []Edge {
	ids := dedupeStrings(append(append([]string{}, s.idx.bySrc[id]...), s.idx.byDst[id]...))
	out := make([]Edge, 0, len(ids))
	for _, eid := range ids {
		out = append(out, s.edges[eid])
	}
	return out
}

func otherEnd(e Edge, from string) string {
	if e.Src == from {
		return e.Dst
	}
	return e.Src
}
