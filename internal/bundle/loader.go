package bundle

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/semgraph/internal/store"
)

// LoadJSON decodes a Bundle from JSON, grounded in the teacher's
// LoadFromNeo4jJSON (pkg/storage/loader.go), which reads a single decoded
// document rather than streaming NDJSON. DisallowUnknownFields rejects any
// extra property at the root or on a node, edge, or annotation (spec §6.1);
// Edge.Meta stays a free-form map, so arbitrary keys there are unaffected.
func LoadJSON(r io.Reader) (*Bundle, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var b Bundle
	if err := dec.Decode(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

// LoadYAML decodes a Bundle from YAML, rejecting unknown fields the same
// way LoadJSON does (yaml.v3's KnownFields is the decoder-level equivalent
// of encoding/json's DisallowUnknownFields).
func LoadYAML(r io.Reader) (*Bundle, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var b Bundle
	if err := dec.Decode(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

// IntoStore validates b (unless skipValidation is set) and loads it into s
// using the store's partial-success LoadBundle policy (spec §3.3, §7). A
// failed validation is fatal and performs no mutation to the store, mirroring
// spec §7's "InvalidBundle ... fatal: no mutation to the store".
func IntoStore(s *store.Store, b *Bundle, skipValidation bool) (store.LoadResult, error) {
	if !skipValidation {
		if err := Validate(b); err != nil {
			return store.LoadResult{}, err
		}
	}
	return s.LoadBundle(store.LoadInput{
		Nodes:       b.Nodes,
		Edges:       b.Edges,
		Annotations: b.Annotations,
		Patterns:    b.Patterns,
	}), nil
}
