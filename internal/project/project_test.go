package project_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semgraph/internal/pattern"
	"github.com/katalvlaran/semgraph/internal/project"
	"github.com/katalvlaran/semgraph/internal/store"
)

func mkNode(id string, kind store.NodeKind, file, parent string) store.Node {
	return store.Node{ID: id, Kind: kind, Name: id, File: file, Parent: parent}
}

func mkEdge(id string, kind store.EdgeKind, src, dst string, confidence float64) store.Edge {
	return store.Edge{ID: id, Kind: kind, Src: src, Dst: dst, Confidence: confidence, Evidence: []store.Evidence{store.EvidenceStaticAnalysis}}
}

func TestWithDefaultsIdempotent(t *testing.T) {
	cfg := project.ViewConfig{}.WithDefaults()
	twice := cfg.WithDefaults()
	assert.Equal(t, cfg, twice)
	require.NotNil(t, cfg.Depth)
	assert.Equal(t, 3, *cfg.Depth)
}

func TestWithDefaultsPreservesExplicitZeroDepth(t *testing.T) {
	zero := 0
	cfg := project.ViewConfig{Depth: &zero}.WithDefaults()
	require.NotNil(t, cfg.Depth)
	assert.Equal(t, 0, *cfg.Depth)
}

func TestProjectRootOnlyAtDepthZero(t *testing.T) {
	s := store.New()
	require.NoError(t, s.AddNode(mkNode("n-00000001", store.NodeClass, "a.go", "")))
	require.NoError(t, s.AddNode(mkNode("n-00000002", store.NodeClass, "b.go", "")))
	require.NoError(t, s.AddEdge(mkEdge("e-00000001", store.EdgeCalls, "n-00000001", "n-00000002", 0.9)))

	zero := 0
	res, err := project.Project(s, project.ViewConfig{View: project.ViewCallGraph, RootID: "n-00000001", Depth: &zero})
	require.NoError(t, err)
	require.Len(t, res.Nodes, 1)
	assert.Equal(t, "n-00000001", res.Nodes[0].ID)
	assert.Empty(t, res.Edges)
}

func TestProjectConfidenceThreshold(t *testing.T) {
	s := store.New()
	require.NoError(t, s.AddNode(mkNode("n-00000001", store.NodeClass, "a.go", "")))
	require.NoError(t, s.AddNode(mkNode("n-00000002", store.NodeClass, "b.go", "")))
	require.NoError(t, s.AddEdge(mkEdge("e-00000001", store.EdgeCalls, "n-00000001", "n-00000002", 0.5)))

	res, err := project.Project(s, project.ViewConfig{View: project.ViewCallGraph, MinConfidence: 0.5})
	require.NoError(t, err)
	require.Len(t, res.Edges, 1) // equal to threshold is retained

	res, err = project.Project(s, project.ViewConfig{View: project.ViewCallGraph, MinConfidence: 0.51})
	require.NoError(t, err)
	assert.Empty(t, res.Edges)
}

func TestProjectExcludePaths(t *testing.T) {
	s := store.New()
	require.NoError(t, s.AddNode(mkNode("n-00000001", store.NodeModule, "src/a.ts", "")))
	require.NoError(t, s.AddNode(mkNode("n-00000002", store.NodeModule, "src/b.ts", "")))
	require.NoError(t, s.AddNode(mkNode("n-00000003", store.NodeModule, "node_modules/x/y.ts", "")))
	require.NoError(t, s.AddEdge(mkEdge("e-00000001", store.EdgeImports, "n-00000001", "n-00000003", 1)))

	res, err := project.Project(s, project.ViewConfig{
		View:         project.ViewModuleDeps,
		ExcludePaths: []string{"node_modules/**"},
	})
	require.NoError(t, err)

	var files []string
	for _, n := range res.Nodes {
		files = append(files, n.File)
	}
	assert.NotContains(t, files, "node_modules/x/y.ts")
	assert.Empty(t, res.Edges) // the only edge touched the excluded node
}

func TestProjectCollapse(t *testing.T) {
	s := store.New()
	require.NoError(t, s.AddNode(mkNode("mod-0000001", store.NodeModule, "a.go", "")))
	require.NoError(t, s.AddNode(mkNode("cls-0000001", store.NodeClass, "a.go", "mod-0000001")))
	require.NoError(t, s.AddNode(mkNode("meth-000001", store.NodeMethod, "a.go", "cls-0000001")))
	require.NoError(t, s.AddNode(mkNode("meth-000002", store.NodeMethod, "a.go", "cls-0000001")))
	require.NoError(t, s.AddNode(mkNode("fn-00000001", store.NodeFunction, "b.go", "")))

	require.NoError(t, s.AddEdge(mkEdge("e-00000001", store.EdgeCalls, "meth-000001", "fn-00000001", 1)))
	require.NoError(t, s.AddEdge(mkEdge("e-00000002", store.EdgeCalls, "meth-000001", "meth-000002", 1)))

	res, err := project.Project(s, project.ViewConfig{
		View:          project.ViewCallGraph,
		CollapseKinds: []store.NodeKind{store.NodeClass},
	})
	require.NoError(t, err)

	for _, n := range res.Nodes {
		assert.NotEqual(t, "meth-000001", n.ID)
		assert.NotEqual(t, "meth-000002", n.ID)
	}

	require.Len(t, res.Edges, 1)
	assert.Equal(t, "cls-0000001", res.Edges[0].Src)
	assert.Equal(t, "fn-00000001", res.Edges[0].Dst)
}

func TestProjectRunsOptionalMatcherPass(t *testing.T) {
	s := store.New()
	require.NoError(t, s.AddNode(mkNode("n-00000001", store.NodeClass, "a.go", "")))
	require.NoError(t, s.AddNode(mkNode("n-00000002", store.NodeInterface, "a.go", "")))
	require.NoError(t, s.AddEdge(mkEdge("e-00000001", store.EdgeUses, "n-00000001", "n-00000002", 0.9)))

	def := pattern.Def{
		ID: "observer",
		Roles: map[string]pattern.RoleSpec{
			"subject":  {Kind: store.NodeClass},
			"observer": {Kind: store.NodeInterface},
		},
		Constraints: []pattern.Constraint{
			pattern.EdgeConstraint{Kind: store.EdgeUses, From: "subject", To: []string{"observer"}},
		},
		Scoring: pattern.Scoring{Base: 0.5},
	}

	res, err := project.Project(s, project.ViewConfig{
		View:       project.ViewCallGraph,
		Patterns:   pattern.Compile(def),
		PatternIDs: []string{"observer"},
	})
	require.NoError(t, err)
	require.Len(t, res.Patterns, 1)
	assert.Equal(t, "observer", res.Patterns[0].TemplateID)
}

func TestProjectorEdgeFilterInvariant(t *testing.T) {
	s := store.New()
	require.NoError(t, s.AddNode(mkNode("n-00000001", store.NodeClass, "a.go", "")))
	require.NoError(t, s.AddNode(mkNode("n-00000002", store.NodeClass, "b.go", "")))
	require.NoError(t, s.AddEdge(mkEdge("e-00000001", store.EdgeCalls, "n-00000001", "n-00000002", 0.9)))
	require.NoError(t, s.AddEdge(mkEdge("e-00000002", store.EdgeInherits, "n-00000001", "n-00000002", 0.9)))

	res, err := project.Project(s, project.ViewConfig{View: project.ViewCallGraph, MinConfidence: 0.1})
	require.NoError(t, err)

	allowed := map[store.EdgeKind]bool{store.EdgeCalls: true, store.EdgeUses: true}
	for _, e := range res.Edges {
		assert.True(t, allowed[e.Kind])
		assert.GreaterOrEqual(t, e.Confidence, 0.1)
	}
}
