package pattern

import "github.com/katalvlaran/semgraph/internal/store"

// candidateSet computes the node ids a role may bind to: a store query,
// intersected with an explicit scope when the caller supplied one (spec
// §4.2 "Candidate generation and binding", testable property 8.1.7).
func candidateSet(s *store.Store, spec RoleSpec, scope map[string]bool) []string {
	nodes := s.FindNodes(spec.query())
	ids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if scope != nil && !scope[n.ID] {
			continue
		}
		ids = append(ids, n.ID)
	}
	return ids
}

// filterByOwner keeps only the candidates whose Parent equals ownerID. This
// satisfies the spec's weaker acceptable owned_by semantics: a role
// declared owned_by=R never binds to a node unreachable from binding[R] via
// the parent relationship (spec §4.2 "owned_by roles").
func filterByOwner(s *store.Store, ids []string, ownerID string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		n, ok := s.GetNode(id)
		if !ok {
			continue
		}
		if n.Parent == ownerID {
			out = append(out, id)
		}
	}
	return out
}

func toSet(ids []string) map[string]bool {
	if ids == nil {
		return nil
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
