package pattern

import (
	"sort"

	"github.com/katalvlaran/semgraph/internal/store"
)

// binding is one candidate assignment: every role name maps to the node
// ids currently bound to it (a single-element slice for ordinary roles, the
// full member set for group roles).
type binding map[string][]string

func (b binding) clone() binding {
	out := make(binding, len(b))
	for k, v := range b {
		cp := make([]string, len(v))
		copy(cp, v)
		out[k] = cp
	}
	return out
}

// groupRoleSet returns the set of role names declared as group roles by a
// GroupConstraint anywhere in def.Constraints (including inside an
// OptionalConstraint).
func groupRoleSet(def Def) map[string]bool {
	set := make(map[string]bool)
	var visit func(Constraint)
	visit = func(c Constraint) {
		switch cc := c.(type) {
		case GroupConstraint:
			set[cc.Role] = true
		case OptionalConstraint:
			visit(cc.Inner)
		}
	}
	for _, c := range def.Constraints {
		visit(c)
	}
	return set
}

// roleOrder returns role names ordered so that every role's OwnedBy owner
// (if any) precedes it; ties are broken alphabetically for determinism.
// A cycle (which the spec disallows for parent relations) falls back to
// alphabetical order for the remaining roles.
func roleOrder(def Def) []string {
	names := make([]string, 0, len(def.Roles))
	for name := range def.Roles {
		names = append(names, name)
	}
	sort.Strings(names)

	placed := make(map[string]bool, len(names))
	var order []string
	for len(order) < len(names) {
		progressed := false
		for _, name := range names {
			if placed[name] {
				continue
			}
			owner := def.Roles[name].OwnedBy
			if owner == "" || placed[owner] {
				order = append(order, name)
				placed[name] = true
				progressed = true
			}
		}
		if !progressed {
			// cycle guard: place remaining roles in alphabetical order.
			for _, name := range names {
				if !placed[name] {
					order = append(order, name)
					placed[name] = true
				}
			}
			break
		}
	}
	return order
}

// generateBindings enumerates the ordered Cartesian product over non-group
// roles, binding group roles to their entire (owner-filtered) candidate
// set. It calls emit for every complete binding.
func generateBindings(s *store.Store, def Def, scope map[string]bool, emit func(binding)) {
	order := roleOrder(def)
	groups := groupRoleSet(def)

	var rec func(i int, cur binding)
	rec = func(i int, cur binding) {
		if i == len(order) {
			emit(cur)
			return
		}
		name := order[i]
		spec := def.Roles[name]

		ids := candidateSet(s, spec, scope)
		if spec.OwnedBy != "" {
			if owner, ok := cur[spec.OwnedBy]; ok && len(owner) == 1 {
				ids = filterByOwner(s, ids, owner[0])
			}
		}

		if groups[name] {
			if len(ids) == 0 {
				return // zero candidates => pattern yields zero matches, not an error
			}
			next := cur.clone()
			next[name] = ids
			rec(i+1, next)
			return
		}

		for _, id := range ids {
			next := cur.clone()
			next[name] = []string{id}
			rec(i+1, next)
		}
	}

	rec(0, binding{})
}
