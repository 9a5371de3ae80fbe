package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semgraph/internal/pattern"
	"github.com/katalvlaran/semgraph/internal/store"
)

func mkNode(id string, kind store.NodeKind) store.Node {
	return store.Node{ID: id, Kind: kind, Name: id}
}

func mkEdge(id string, kind store.EdgeKind, src, dst string) store.Edge {
	return store.Edge{ID: id, Kind: kind, Src: src, Dst: dst, Confidence: 1, Evidence: []store.Evidence{store.EvidenceStaticAnalysis}}
}

// buildObserver constructs spec §8.4 S3: subject S:class, observers
// O1/O2:interface, edges S--uses-->O1, S--uses-->O2.
func buildObserver(t *testing.T) *store.Store {
	t.Helper()
	s := store.New()
	require.NoError(t, s.AddNode(mkNode("s-00000001", store.NodeClass)))
	require.NoError(t, s.AddNode(mkNode("o1-0000001", store.NodeInterface)))
	require.NoError(t, s.AddNode(mkNode("o2-0000001", store.NodeInterface)))
	require.NoError(t, s.AddEdge(mkEdge("e1-0000001", store.EdgeUses, "s-00000001", "o1-0000001")))
	require.NoError(t, s.AddEdge(mkEdge("e2-0000001", store.EdgeUses, "s-00000001", "o2-0000001")))
	return s
}

func observerDef() pattern.Def {
	return pattern.Def{
		ID: "observer",
		Roles: map[string]pattern.RoleSpec{
			"subject":  {Kind: store.NodeClass},
			"observer": {Kind: store.NodeInterface},
		},
		Constraints: []pattern.Constraint{
			pattern.EdgeConstraint{Kind: store.EdgeUses, From: "subject", To: []string{"observer"}},
			pattern.GroupConstraint{Role: "observer", MinSize: 1},
		},
		Scoring: pattern.Scoring{Base: 0.5, Weights: map[string]float64{"group_observer": 0.2}},
	}
}

func TestObserverPatternMatches(t *testing.T) {
	s := buildObserver(t)
	def := observerDef()

	matches, err := pattern.RunDef(s, def, nil)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	m := matches[0]
	assert.ElementsMatch(t, []string{"o1-0000001", "o2-0000001"}, m.Roles["observer"])
	assert.GreaterOrEqual(t, m.Confidence, 0.5+0.05) // base + at least the edge constraint's fallback weight
	assert.LessOrEqual(t, m.Confidence, 1.0)
}

func TestPatternNotFound(t *testing.T) {
	s := store.New()
	table := pattern.Compile(observerDef())

	_, err := table.Run(s, "nonexistent", nil)
	require.Error(t, err)

	var nf *pattern.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestZeroCandidatesYieldsZeroMatches(t *testing.T) {
	s := store.New() // no nodes at all
	def := observerDef()

	matches, err := pattern.RunDef(s, def, nil)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestScopeObedience(t *testing.T) {
	s := buildObserver(t)
	def := observerDef()

	scope := []string{"s-00000001", "o1-0000001"} // o2 excluded
	matches, err := pattern.RunDef(s, def, scope)
	require.NoError(t, err)

	scopeSet := map[string]bool{"s-00000001": true, "o1-0000001": true}
	for _, m := range matches {
		for _, ids := range m.Roles {
			for _, id := range ids {
				assert.True(t, scopeSet[id])
			}
		}
	}
}

func TestOwnedByNeverBindsOutsideOwner(t *testing.T) {
	s := store.New()
	require.NoError(t, s.AddNode(mkNode("mod-0000001", store.NodeModule)))
	require.NoError(t, s.AddNode(mkNode("mod-0000002", store.NodeModule)))
	require.NoError(t, s.AddNode(store.Node{ID: "meth-000001", Kind: store.NodeMethod, Name: "run", Parent: "mod-0000001"}))
	require.NoError(t, s.AddNode(store.Node{ID: "meth-000002", Kind: store.NodeMethod, Name: "run", Parent: "mod-0000002"}))

	def := pattern.Def{
		ID: "owned",
		Roles: map[string]pattern.RoleSpec{
			"owner":  {Kind: store.NodeModule, Query: store.NodeQuery{}},
			"member": {Kind: store.NodeMethod, OwnedBy: "owner"},
		},
		Constraints: []pattern.Constraint{},
		Scoring:     pattern.Scoring{Base: 0.1},
	}
	// restrict owner candidates to mod-0000001 only
	def.Roles["owner"] = pattern.RoleSpec{Kind: store.NodeModule, Query: store.NodeQuery{Name: store.LiteralPattern("mod-0000001")}}

	matches, err := pattern.RunDef(s, def, nil)
	require.NoError(t, err)
	for _, m := range matches {
		assert.Equal(t, []string{"mod-0000001"}, m.Roles["owner"])
		assert.Equal(t, []string{"meth-000001"}, m.Roles["member"])
	}
}

func TestDedupIdempotent(t *testing.T) {
	s := buildObserver(t)
	def := observerDef()

	matches, err := pattern.RunDef(s, def, nil)
	require.NoError(t, err)

	again := pattern.Dedup(matches)
	assert.Len(t, again, len(matches))
}
