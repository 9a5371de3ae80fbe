package store

// GetPath returns the shortest path between from and to by hop count over
// undirected edges, grounded in the same traversal primitives as Subgraph
// (spec §8.4 S6). GetPath(a, a) returns a length-0 path. When the two nodes
// are not connected, the second return value is false.
func (s *Store) GetPath(from, to string) (Path, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.nodes[from]; !ok {
		return Path{}, false
	}
	if _, ok := s.nodes[to]; !ok {
		return Path{}, false
	}
	if from == to {
		return Path{Nodes: []string{from}}, true
	}

	prev := map[string]string{from: ""}
	queue := []string{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range s.undirectedEdgesLocked(cur) {
			other := otherEnd(e, cur)
			if _, seen := prev[other]; seen {
				continue
			}
			prev[other] = cur
			if other == to {
				return Path{Nodes: reconstructPath(prev, from, to)}, true
			}
			queue = append(queue, other)
		}
	}
	return Path{}, false
}

// reconstructPath walks prev (child -> parent) back from to until it
// reaches from, then reverses the result into source-to-destination order.
func reconstructPath(prev map[string]string, from, to string) []string {
	var rev []string
	for n := to; ; n = prev[n] {
		rev = append(rev, n)
		if n == from {
			break
		}
	}
	out := make([]string, len(rev))
	for i, n := range rev {
		out[len(rev)-1-i] = n
	}
	return out
}
