// Package bundle handles the one bit-exact external contract the core
// exposes (spec §6.1): loading and validating a Bundle, and exporting a
// store's contents back into one.
//
// Grounded in the teacher's symmetric Neo4j JSON loader/exporter pair
// (pkg/storage/loader.go's LoadFromNeo4jJSON / SaveToNeo4jExport), this
// package supports both JSON and YAML encodings via encoding/json and
// gopkg.in/yaml.v3 struct tags on the same types.
package bundle

import "github.com/katalvlaran/semgraph/internal/store"

// Repository is the optional repository descriptor a Bundle may carry.
type Repository struct {
	URL    string `json:"url,omitempty" yaml:"url,omitempty"`
	Commit string `json:"commit" yaml:"commit"`
	Branch string `json:"branch,omitempty" yaml:"branch,omitempty"`
}

// Bundle is the validated input the core ingests: a versioned snapshot of
// nodes, edges, annotations, and previously detected pattern instances.
type Bundle struct {
	Version     string                  `json:"version" yaml:"version"`
	GeneratedAt string                  `json:"generated_at" yaml:"generated_at"`
	Repository  *Repository             `json:"repository,omitempty" yaml:"repository,omitempty"`
	Nodes       []store.Node            `json:"nodes" yaml:"nodes"`
	Edges       []store.Edge            `json:"edges" yaml:"edges"`
	Annotations []store.Annotation      `json:"annotations" yaml:"annotations"`
	Patterns    []store.PatternInstance `json:"patterns" yaml:"patterns"`
}
