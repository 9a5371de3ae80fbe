package bundle

import (
	"fmt"
	"regexp"
	"time"

	"github.com/katalvlaran/semgraph/internal/store"
)

const minIDLength = 8

var versionPattern = regexp.MustCompile(`^v\d+\.\d+$`)

// ValidationError collects every constraint violation found in a bundle,
// so a caller can report them all at once instead of failing on the
// first (spec §7 "InvalidBundle").
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 1 {
		return fmt.Sprintf("invalid bundle: %s", e.Issues[0])
	}
	return fmt.Sprintf("invalid bundle: %d issues (first: %s)", len(e.Issues), e.Issues[0])
}

// Validate checks every constraint spec §6.1 and §3.1 impose on a Bundle.
// It returns nil when the bundle is well-formed.
func Validate(b *Bundle) error {
	var issues []string
	add := func(format string, args ...any) {
		issues = append(issues, fmt.Sprintf(format, args...))
	}

	if !versionPattern.MatchString(b.Version) {
		add("version %q does not match vN.N", b.Version)
	}
	if _, err := time.Parse(time.RFC3339, b.GeneratedAt); err != nil {
		add("generated_at %q is not RFC 3339: %v", b.GeneratedAt, err)
	}
	if b.Repository != nil && len(b.Repository.Commit) < 7 {
		add("repository.commit must be at least 7 characters")
	}

	seenNodeIDs := make(map[string]bool, len(b.Nodes))
	for i, n := range b.Nodes {
		validateNode(n, i, add)
		if seenNodeIDs[n.ID] {
			add("node[%d]: duplicate id %q", i, n.ID)
		}
		seenNodeIDs[n.ID] = true
	}

	seenEdgeIDs := make(map[string]bool, len(b.Edges))
	for i, e := range b.Edges {
		validateEdge(e, i, seenNodeIDs, add)
		if seenEdgeIDs[e.ID] {
			add("edge[%d]: duplicate id %q", i, e.ID)
		}
		seenEdgeIDs[e.ID] = true
	}

	for i, a := range b.Annotations {
		if !seenNodeIDs[a.Target] {
			add("annotation[%d]: target %q does not resolve", i, a.Target)
		}
	}

	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}

func validateNode(n store.Node, i int, add func(string, ...any)) {
	if len(n.ID) < minIDLength {
		add("node[%d]: id %q shorter than %d characters", i, n.ID, minIDLength)
	}
	if !store.ValidNodeKinds[n.Kind] {
		add("node[%d]: unknown kind %q", i, n.Kind)
	}
	if !n.Span.Valid() {
		add("node[%d]: invalid span %+v", i, n.Span)
	}
	if n.Visibility != "" && !store.ValidVisibilities[n.Visibility] {
		add("node[%d]: unknown visibility %q", i, n.Visibility)
	}
}

func validateEdge(e store.Edge, i int, nodeIDs map[string]bool, add func(string, ...any)) {
	if len(e.ID) < minIDLength {
		add("edge[%d]: id %q shorter than %d characters", i, e.ID, minIDLength)
	}
	if !store.ValidEdgeKinds[e.Kind] {
		add("edge[%d]: unknown kind %q", i, e.Kind)
	}
	if !nodeIDs[e.Src] {
		add("edge[%d]: src %q does not resolve", i, e.Src)
	}
	if !nodeIDs[e.Dst] {
		add("edge[%d]: dst %q does not resolve", i, e.Dst)
	}
	if e.Confidence < 0 || e.Confidence > 1 {
		add("edge[%d]: confidence %v out of [0,1]", i, e.Confidence)
	}
	if len(e.Evidence) == 0 {
		add("edge[%d]: evidence must contain at least one tag", i)
	}
	for _, tag := range e.Evidence {
		if !store.ValidEvidence[tag] {
			add("edge[%d]: unknown evidence tag %q", i, tag)
		}
	}
}
