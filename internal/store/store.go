package store

import "sync"

// Store is a thread-safe, in-memory graph store.
//
// Thread Safety:
//
//	All public methods take the internal RWMutex. The contract required by
//	spec §5 is single-mutator correctness: concurrent readers are safe while
//	no writer is active, but the store does not attempt to serialize
//	concurrent mutators beyond the mutex already providing mutual exclusion
//	per call — each call is atomic, but a caller issuing two related calls
//	back to back must still treat them as two separate atomic steps.
type Store struct {
	mu sync.RWMutex

	nodes       map[string]Node
	edges       map[string]Edge
	annotations map[string]Annotation
	patterns    map[string]PatternInstance

	idx    indexes
	closed bool

	// maxNodes bounds AddNode; 0 means unbounded.
	maxNodes int
}

// New constructs an empty Store with all secondary indexes initialized and
// no limit on node count.
func New() *Store {
	return NewWithLimit(0)
}

// NewWithLimit constructs an empty Store that rejects AddNode once it holds
// maxNodes nodes; 0 means unbounded, matching config.StoreConfig.MaxNodes.
func NewWithLimit(maxNodes int) *Store {
	return &Store{
		nodes:       make(map[string]Node),
		edges:       make(map[string]Edge),
		annotations: make(map[string]Annotation),
		patterns:    make(map[string]PatternInstance),
		idx:         newIndexes(),
		maxNodes:    maxNodes,
	}
}

// Close releases the store's buffers by clearing everything, the same as
// Clear, and marks the store closed. Later calls are not rejected; they
// operate on the emptied store.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
	s.closed = true
	return nil
}

// Clear discards every entity in the store. There is no partial clear.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *Store) resetLocked() {
	s.nodes = make(map[string]Node)
	s.edges = make(map[string]Edge)
	s.annotations = make(map[string]Annotation)
	s.patterns = make(map[string]PatternInstance)
	s.idx = newIndexes()
}

// AddNode inserts a node. Fails with KindDuplicateNode if the id exists, or
// KindNodeLimitExceeded if the store was constructed with NewWithLimit and
// is already full.
func (s *Store) AddNode(n Node) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.nodes[n.ID]; ok {
		return errDuplicateNode(n.ID)
	}
	if s.maxNodes > 0 && len(s.nodes) >= s.maxNodes {
		return errNodeLimitExceeded(n.ID, s.maxNodes)
	}
	s.nodes[n.ID] = n
	s.idx.addNode(n)
	return nil
}

// AddEdge inserts an edge. Both endpoints must already resolve to nodes in
// the store (spec §3.2); fails with KindInvalidReference otherwise, or
// KindDuplicateEdge if the id exists.
func (s *Store) AddEdge(e Edge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.edges[e.ID]; ok {
		return errDuplicateEdge(e.ID)
	}
	if _, ok := s.nodes[e.Src]; !ok {
		return errInvalidReference(e.Src)
	}
	if _, ok := s.nodes[e.Dst]; !ok {
		return errInvalidReference(e.Dst)
	}
	s.edges[e.ID] = e
	s.idx.addEdge(e)
	return nil
}

// AddAnnotation attaches an annotation to an existing node. Fails with
// KindInvalidReference if the target does not resolve.
func (s *Store) AddAnnotation(a Annotation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.nodes[a.Target]; !ok {
		return errInvalidReference(a.Target)
	}
	s.annotations[a.ID] = a
	s.idx.addAnnotation(a)
	return nil
}

// AddPattern records a pattern instance as-is; it never fails (spec §4.1).
func (s *Store) AddPattern(p PatternInstance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patterns[p.ID] = p
	s.idx.addPattern(p)
	return nil
}

// GetNode returns the node for id, or (zero, false) if absent.
func (s *Store) GetNode(id string) (Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[id]
	return n, ok
}

// GetEdge returns the edge for id, or (zero, false) if absent.
func (s *Store) GetEdge(id string) (Edge, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.edges[id]
	return e, ok
}

// EdgesOf returns the edges incident to id in the given direction, with
// input (insertion) order preserved.
func (s *Store) EdgesOf(id string, dir Direction) []Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []string
	switch dir {
	case DirOut:
		ids = s.idx.bySrc[id]
	case DirIn:
		ids = s.idx.byDst[id]
	case DirBoth:
		ids = append(append([]string{}, s.idx.bySrc[id]...), s.idx.byDst[id]...)
	}
	out := make([]Edge, 0, len(ids))
	for _, eid := range ids {
		out = append(out, s.edges[eid])
	}
	return out
}

// Neighbors returns the distinct nodes reachable from id in the given
// direction.
func (s *Store) Neighbors(id string, dir Direction) []Node {
	edges := s.EdgesOf(id, dir)
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	out := make([]Node, 0, len(edges))
	for _, e := range edges {
		var nbr string
		switch {
		case e.Src == id:
			nbr = e.Dst
		case e.Dst == id:
			nbr = e.Src
		default:
			continue
		}
		if seen[nbr] {
			continue
		}
		seen[nbr] = true
		if n, ok := s.nodes[nbr]; ok {
			out = append(out, n)
		}
	}
	return out
}

// AnnotationsOf returns the annotations attached to id, in insertion order.
func (s *Store) AnnotationsOf(id string) []Annotation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.idx.byTarget[id]
	out := make([]Annotation, 0, len(ids))
	for _, aid := range ids {
		out = append(out, s.annotations[aid])
	}
	return out
}

// PatternsOf returns the pattern instances that mention id in any role.
func (s *Store) PatternsOf(id string) []PatternInstance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.idx.byPatternNode[id]
	out := make([]PatternInstance, 0, len(ids))
	for _, pid := range ids {
		out = append(out, s.patterns[pid])
	}
	return out
}

// Stats reports total and per-kind counts.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{
		NodeCount:       len(s.nodes),
		EdgeCount:       len(s.edges),
		AnnotationCount: len(s.annotations),
		PatternCount:    len(s.patterns),
		NodesByKind:     make(map[NodeKind]int),
		EdgesByKind:     make(map[EdgeKind]int),
	}
	for k, ids := range s.idx.byNodeKind {
		st.NodesByKind[k] = len(ids)
	}
	for k, ids := range s.idx.byEdgeKind {
		st.EdgesByKind[k] = len(ids)
	}
	return st
}
