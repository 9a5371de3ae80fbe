// Package idgen generates opaque, collision-resistant identifiers for
// pattern instances, which the matcher synthesizes rather than reads from
// a bundle.
package idgen

import "github.com/google/uuid"

// PatternInstance returns a new identifier for a detected pattern match,
// prefixed so it reads naturally alongside bundle-supplied node/edge ids
// (e.g. "pat-3fa85f64...").
func PatternInstance() string {
	return "pat-" + uuid.NewString()
}
