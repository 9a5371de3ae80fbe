package store

// LoadResult reports what a LoadBundle call actually applied, plus any
// recoverable per-item errors collected along the way (spec §3.3, §7).
type LoadResult struct {
	NodesLoaded       int
	EdgesLoaded       int
	AnnotationsLoaded int
	PatternsLoaded    int
	Errors            []error
}

// LoadInput is the nodes/edges/annotations/patterns payload LoadBundle
// ingests, already validated by the caller (the bundle package owns
// bundle-shape validation; the store only enforces its own referential
// invariants during insertion).
type LoadInput struct {
	Nodes       []Node
	Edges       []Edge
	Annotations []Annotation
	Patterns    []PatternInstance
}

// LoadBundle performs nodes-first, then edges, then annotations, then
// pattern instances, so edge endpoint validation succeeds on a
// well-formed bundle. Duplicates and invalid references are collected into
// Errors and loading continues (partial-success policy); the counts
// reflect items actually applied.
func (s *Store) LoadBundle(in LoadInput) LoadResult {
	var res LoadResult

	for _, n := range in.Nodes {
		if err := s.AddNode(n); err != nil {
			res.Errors = append(res.Errors, err)
			continue
		}
		res.NodesLoaded++
	}
	for _, e := range in.Edges {
		if err := s.AddEdge(e); err != nil {
			res.Errors = append(res.Errors, err)
			continue
		}
		res.EdgesLoaded++
	}
	for _, a := range in.Annotations {
		if err := s.AddAnnotation(a); err != nil {
			res.Errors = append(res.Errors, err)
			continue
		}
		res.AnnotationsLoaded++
	}
	for _, p := range in.Patterns {
		_ = s.AddPattern(p)
		res.PatternsLoaded++
	}

	return res
}
