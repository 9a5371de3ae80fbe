package bundle_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semgraph/internal/bundle"
	"github.com/katalvlaran/semgraph/internal/store"
)

func validBundle() *bundle.Bundle {
	return &bundle.Bundle{
		Version:     "v1.0",
		GeneratedAt: "2026-01-15T10:00:00Z",
		Repository:  &bundle.Repository{URL: "https://example.com/r.git", Commit: "abc1234"},
		Nodes: []store.Node{
			{ID: "n-00000001", Kind: store.NodeClass, Name: "Widget", File: "a.go", Span: store.Span{Start: 1, End: 10}},
			{ID: "n-00000002", Kind: store.NodeFunction, Name: "Run", File: "a.go", Span: store.Span{Start: 12, End: 20}},
		},
		Edges: []store.Edge{
			{ID: "e-00000001", Kind: store.EdgeCalls, Src: "n-00000001", Dst: "n-00000002", Confidence: 0.9, Evidence: []store.Evidence{store.EvidenceStaticAnalysis}},
		},
		Annotations: []store.Annotation{
			{ID: "an-0000001", Target: "n-00000001", Tags: []string{"doc"}, Values: map[string]any{"text": "widget class"}},
		},
		Patterns: nil,
	}
}

func TestValidateAcceptsWellFormedBundle(t *testing.T) {
	require.NoError(t, bundle.Validate(validBundle()))
}

func TestValidateRejectsBadVersion(t *testing.T) {
	b := validBundle()
	b.Version = "1.0"
	err := bundle.Validate(b)
	require.Error(t, err)
	var ve *bundle.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Issues)
}

func TestValidateRejectsBadGeneratedAt(t *testing.T) {
	b := validBundle()
	b.GeneratedAt = "not-a-time"
	require.Error(t, bundle.Validate(b))
}

func TestValidateNodeIDLengthBoundary(t *testing.T) {
	b := validBundle()
	b.Nodes[0].ID = "n-0000001" // 9 chars, still fine
	b.Edges[0].Src = "n-0000001"
	b.Annotations[0].Target = "n-0000001"
	assert.NoError(t, bundle.Validate(b))

	b2 := validBundle()
	b2.Nodes[0].ID = "n0000007" // exactly 8
	b2.Edges[0].Src = "n0000007"
	b2.Annotations[0].Target = "n0000007"
	assert.NoError(t, bundle.Validate(b2))

	b3 := validBundle()
	b3.Nodes[0].ID = "n000007" // 7 chars, rejected
	err := bundle.Validate(b3)
	require.Error(t, err)
}

func TestValidateRejectsDanglingEdgeReference(t *testing.T) {
	b := validBundle()
	b.Edges[0].Dst = "n-ghost001"
	require.Error(t, bundle.Validate(b))
}

func TestValidateRejectsDuplicateNodeID(t *testing.T) {
	b := validBundle()
	b.Nodes = append(b.Nodes, b.Nodes[0])
	require.Error(t, bundle.Validate(b))
}

func TestValidateRejectsUnknownEvidenceTag(t *testing.T) {
	b := validBundle()
	b.Edges[0].Evidence = []store.Evidence{"guesswork"}
	require.Error(t, bundle.Validate(b))
}

func TestValidateRejectsConfidenceOutOfRange(t *testing.T) {
	b := validBundle()
	b.Edges[0].Confidence = 1.5
	require.Error(t, bundle.Validate(b))
}

func TestValidateRejectsAnnotationOnMissingTarget(t *testing.T) {
	b := validBundle()
	b.Annotations[0].Target = "n-ghost001"
	require.Error(t, bundle.Validate(b))
}

func TestLoadJSONRejectsUnknownRootField(t *testing.T) {
	data := []byte(`{"version":"v1.0","generated_at":"2026-01-15T10:00:00Z","nodes":[],"edges":[],"annotations":[],"patterns":[],"extra_field":true}`)
	_, err := bundle.LoadJSON(bytes.NewReader(data))
	require.Error(t, err)
}

func TestLoadJSONRejectsUnknownNodeField(t *testing.T) {
	data := []byte(`{"version":"v1.0","generated_at":"2026-01-15T10:00:00Z","nodes":[{"id":"n-00000001","kind":"class","name":"Widget","file":"a.go","span":{"start":1,"end":10},"bogus":1}],"edges":[],"annotations":[],"patterns":[]}`)
	_, err := bundle.LoadJSON(bytes.NewReader(data))
	require.Error(t, err)
}

func TestLoadYAMLRejectsUnknownField(t *testing.T) {
	data := []byte("version: v1.0\ngenerated_at: \"2026-01-15T10:00:00Z\"\nnodes: []\nedges: []\nannotations: []\npatterns: []\nextra_field: true\n")
	_, err := bundle.LoadYAML(bytes.NewReader(data))
	require.Error(t, err)
}

func TestLoadJSONAllowsArbitraryEdgeMetaKeys(t *testing.T) {
	data := []byte(`{"version":"v1.0","generated_at":"2026-01-15T10:00:00Z",` +
		`"nodes":[{"id":"n-00000001","kind":"class","name":"Widget","file":"a.go","span":{"start":1,"end":10}},` +
		`{"id":"n-00000002","kind":"function","name":"Run","file":"a.go","span":{"start":12,"end":20}}],` +
		`"edges":[{"id":"e-00000001","kind":"calls","src":"n-00000001","dst":"n-00000002","confidence":0.9,"evidence":["static_analysis"],"meta":{"whatever_key":"whatever_value"}}],` +
		`"annotations":[],"patterns":[]}`)
	b, err := bundle.LoadJSON(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "whatever_value", b.Edges[0].Meta["whatever_key"])
}

func TestLoadJSONRoundTrip(t *testing.T) {
	b := validBundle()
	data, err := json.Marshal(b)
	require.NoError(t, err)

	loaded, err := bundle.LoadJSON(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, b.Version, loaded.Version)
	assert.Equal(t, b.Nodes, loaded.Nodes)
	assert.Equal(t, b.Edges, loaded.Edges)
}

func TestIntoStoreLoadsEveryEntity(t *testing.T) {
	s := store.New()
	b := validBundle()

	res, err := bundle.IntoStore(s, b, false)
	require.NoError(t, err)
	assert.Equal(t, 2, res.NodesLoaded)
	assert.Equal(t, 1, res.EdgesLoaded)
	assert.Equal(t, 1, res.AnnotationsLoaded)

	got, ok := s.GetNode("n-00000001")
	require.True(t, ok)
	assert.Equal(t, "Widget", got.Name)
}

func TestIntoStoreInvalidBundleMutatesNothing(t *testing.T) {
	s := store.New()
	b := validBundle()
	b.Edges[0].Dst = "n-ghost001"

	_, err := bundle.IntoStore(s, b, false)
	require.Error(t, err)
	_, ok := s.GetNode("n-00000001")
	assert.False(t, ok, "validation failure must not load any node")
}

func TestExportRoundTrip(t *testing.T) {
	s := store.New()
	n1 := store.Node{ID: "n-00000001", Kind: store.NodeClass, Name: "Widget", File: "a.go", Span: store.Span{Start: 1, End: 10}}
	n2 := store.Node{ID: "n-00000002", Kind: store.NodeFunction, Name: "Run", File: "a.go", Span: store.Span{Start: 12, End: 20}}
	require.NoError(t, s.AddNode(n1))
	require.NoError(t, s.AddNode(n2))
	e := store.Edge{ID: "e-00000001", Kind: store.EdgeCalls, Src: n1.ID, Dst: n2.ID, Confidence: 0.9, Evidence: []store.Evidence{store.EvidenceStaticAnalysis}}
	require.NoError(t, s.AddEdge(e))

	b := bundle.Export(s, "2026-01-15T10:00:00Z", nil)
	require.NoError(t, bundle.Validate(b))

	s2 := store.New()
	_, err := bundle.IntoStore(s2, b, false)
	require.NoError(t, err)

	got, ok := s2.GetNode(n1.ID)
	require.True(t, ok)
	assert.Equal(t, n1, got)
}
