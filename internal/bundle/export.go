package bundle

import "github.com/katalvlaran/semgraph/internal/store"

// currentVersion is the bundle schema version this package emits.
const currentVersion = "v1.0"

// Export snapshots every entity currently in s into a Bundle (spec §4
// "bundle round-trip export"), grounded in the teacher's SaveToNeo4jExport
// counterpart to LoadFromNeo4jExport. generatedAt is taken as a parameter
// rather than stamped internally, since this package must stay free of
// wall-clock reads to keep Export deterministic for callers that need it
// (tests, snapshot diffing).
func Export(s *store.Store, generatedAt string, repo *Repository) *Bundle {
	return &Bundle{
		Version:     currentVersion,
		GeneratedAt: generatedAt,
		Repository:  repo,
		Nodes:       s.AllNodes(),
		Edges:       s.AllEdges(),
		Annotations: s.AllAnnotations(),
		Patterns:    s.AllPatterns(),
	}
}
