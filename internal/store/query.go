package store

import "regexp"

// Pattern is either a literal string (exact match) or a compiled regular
// expression, used for name/route predicate fields.
type Pattern struct {
	Literal string
	Regexp  *regexp.Regexp
}

// LiteralPattern constructs an exact-match Pattern.
func LiteralPattern(s string) Pattern { return Pattern{Literal: s} }

// RegexPattern constructs a regular-expression Pattern.
func RegexPattern(re *regexp.Regexp) Pattern { return Pattern{Regexp: re} }

func (p Pattern) empty() bool { return p.Literal == "" && p.Regexp == nil }

func (p Pattern) match(s string) bool {
	if p.Regexp != nil {
		return p.Regexp.MatchString(s)
	}
	return p.Literal == s
}

// NodeQuery is a node predicate: all non-empty fields are ANDed together.
// An empty NodeQuery matches every node.
type NodeQuery struct {
	Kinds      []NodeKind
	File       string
	Route      Pattern
	Visibility Visibility
	Parent     string
	Name       Pattern
	Language   string
}

func (q NodeQuery) hasKind() bool       { return len(q.Kinds) > 0 }
func (q NodeQuery) hasFile() bool       { return q.File != "" }
func (q NodeQuery) hasRoute() bool      { return !q.Route.empty() }
func (q NodeQuery) hasVisibility() bool { return q.Visibility != "" }
func (q NodeQuery) hasParent() bool     { return q.Parent != "" }
func (q NodeQuery) hasName() bool       { return !q.Name.empty() }
func (q NodeQuery) hasLanguage() bool   { return q.Language != "" }

func (q NodeQuery) matchesKind(k NodeKind) bool {
	for _, kk := range q.Kinds {
		if kk == k {
			return true
		}
	}
	return false
}

func (q NodeQuery) matches(n Node) bool {
	if q.hasKind() && !q.matchesKind(n.Kind) {
		return false
	}
	if q.hasFile() && n.File != q.File {
		return false
	}
	if q.hasRoute() && !q.Route.match(n.Route) {
		return false
	}
	if q.hasVisibility() && n.Visibility != q.Visibility {
		return false
	}
	if q.hasParent() && n.Parent != q.Parent {
		return false
	}
	if q.hasName() && !q.Name.match(n.Name) {
		return false
	}
	if q.hasLanguage() && n.Language != q.Language {
		return false
	}
	return true
}

// EdgeQuery is an edge predicate: all non-empty fields are ANDed together.
type EdgeQuery struct {
	Kinds          []EdgeKind
	Src            string
	Dst            string
	MinConfidence  float64
	AnyEvidence    []Evidence
}

func (q EdgeQuery) hasKind() bool { return len(q.Kinds) > 0 }

func (q EdgeQuery) matchesKind(k EdgeKind) bool {
	for _, kk := range q.Kinds {
		if kk == k {
			return true
		}
	}
	return false
}

func (q EdgeQuery) matches(e Edge) bool {
	if q.hasKind() && !q.matchesKind(e.Kind) {
		return false
	}
	if q.Src != "" && e.Src != q.Src {
		return false
	}
	if q.Dst != "" && e.Dst != q.Dst {
		return false
	}
	if q.MinConfidence > 0 && e.Confidence < q.MinConfidence {
		return false
	}
	if len(q.AnyEvidence) > 0 && !hasAnyEvidence(e.Evidence, q.AnyEvidence) {
		return false
	}
	return true
}

func hasAnyEvidence(have []Evidence, want []Evidence) bool {
	set := make(map[Evidence]bool, len(have))
	for _, e := range have {
		set[e] = true
	}
	for _, w := range want {
		if set[w] {
			return true
		}
	}
	return false
}

// FindNodes returns every node matching all provided fields of q. The
// store collects the id sets of the provided index-backed fields (kind,
// file, parent, language), seeds from the smallest of them and intersects
// the rest, then filters the residue with a linear scan; which field seeds
// the candidate set never changes the result set.
func (s *Store) FindNodes(q NodeQuery) []Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	candidates := s.seedNodeCandidates(q)
	out := make([]Node, 0, len(candidates))
	for _, id := range candidates {
		n, ok := s.nodes[id]
		if !ok {
			continue
		}
		if q.matches(n) {
			out = append(out, n)
		}
	}
	return out
}

// seedNodeCandidates chooses an index-backed field to seed from (if any)
// and intersects any other index-backed fields before returning to the
// caller for final linear-scan filtering.
func (s *Store) seedNodeCandidates(q NodeQuery) []string {
	var sets [][]string
	if q.hasKind() {
		var union []string
		for _, k := range q.Kinds {
			union = append(union, s.idx.byNodeKind[k]...)
		}
		sets = append(sets, dedupeStrings(union))
	}
	if q.hasFile() {
		sets = append(sets, s.idx.byFile[q.File])
	}
	if q.hasParent() {
		sets = append(sets, s.idx.byParent[q.Parent])
	}
	if q.hasLanguage() {
		sets = append(sets, s.idx.byLanguage[q.Language])
	}

	if len(sets) == 0 {
		return s.allNodeIDsLocked()
	}
	return intersectAll(sets)
}

// FindEdges returns every edge matching all provided fields of q.
func (s *Store) FindEdges(q EdgeQuery) []Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	candidates := s.seedEdgeCandidates(q)
	out := make([]Edge, 0, len(candidates))
	for _, id := range candidates {
		e, ok := s.edges[id]
		if !ok {
			continue
		}
		if q.matches(e) {
			out = append(out, e)
		}
	}
	return out
}

func (s *Store) seedEdgeCandidates(q EdgeQuery) []string {
	var sets [][]string
	if q.hasKind() {
		var union []string
		for _, k := range q.Kinds {
			union = append(union, s.idx.byEdgeKind[k]...)
		}
		sets = append(sets, dedupeStrings(union))
	}
	if q.Src != "" {
		sets = append(sets, s.idx.bySrc[q.Src])
	}
	if q.Dst != "" {
		sets = append(sets, s.idx.byDst[q.Dst])
	}

	if len(sets) == 0 {
		return s.allEdgeIDsLocked()
	}
	return intersectAll(sets)
}

func (s *Store) allNodeIDsLocked() []string {
	out := make([]string, 0, len(s.nodes))
	for id := range s.nodes {
		out = append(out, id)
	}
	return out
}

func (s *Store) allEdgeIDsLocked() []string {
	out := make([]string, 0, len(s.edges))
	for id := range s.edges {
		out = append(out, id)
	}
	return out
}

func dedupeStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// intersectAll intersects a list of id sets, seeding from the smallest one
// first so the intersection cost tracks the most selective field.
func intersectAll(sets [][]string) []string {
	if len(sets) == 0 {
		return nil
	}
	smallest := 0
	for i, s := range sets {
		if len(s) < len(sets[smallest]) {
			smallest = i
		}
	}
	result := make(map[string]bool, len(sets[smallest]))
	for _, id := range sets[smallest] {
		result[id] = true
	}
	for i, s := range sets {
		if i == smallest {
			continue
		}
		present := make(map[string]bool, len(s))
		for _, id := range s {
			present[id] = true
		}
		for id := range result {
			if !present[id] {
				delete(result, id)
			}
		}
	}
	out := make([]string, 0, len(result))
	for id := range result {
		out = append(out, id)
	}
	return out
}
