package store

import "fmt"

// ErrorKind distinguishes the store's fatal outcomes so callers can branch
// on kind without parsing error strings (spec §7).
type ErrorKind string

const (
	KindInvalidBundle     ErrorKind = "invalid_bundle"
	KindNodeNotFound      ErrorKind = "node_not_found"
	KindDuplicateNode     ErrorKind = "duplicate_node"
	KindDuplicateEdge     ErrorKind = "duplicate_edge"
	KindInvalidReference  ErrorKind = "invalid_reference"
	KindPatternNotFound   ErrorKind = "pattern_not_found"
	KindNodeLimitExceeded ErrorKind = "node_limit_exceeded"
)

// KindError is the store's fatal error type: a stable Kind plus a
// human-readable message and, where relevant, the offending identifier.
type KindError struct {
	Kind ErrorKind
	ID   string
	Msg  string
}

func (e *KindError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s: %s (id=%s)", e.Kind, e.Msg, e.ID)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is lets errors.Is(err, &KindError{Kind: KindNodeNotFound}) match on Kind
// alone, the way callers are expected to branch.
func (e *KindError) Is(target error) bool {
	t, ok := target.(*KindError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func errDuplicateNode(id string) error {
	return &KindError{Kind: KindDuplicateNode, ID: id, Msg: "node already exists"}
}

func errDuplicateEdge(id string) error {
	return &KindError{Kind: KindDuplicateEdge, ID: id, Msg: "edge already exists"}
}

func errInvalidReference(id string) error {
	return &KindError{Kind: KindInvalidReference, ID: id, Msg: "referenced node does not exist"}
}

func errNodeNotFound(id string) error {
	return &KindError{Kind: KindNodeNotFound, ID: id, Msg: "node not found"}
}

func errNodeLimitExceeded(id string, limit int) error {
	return &KindError{Kind: KindNodeLimitExceeded, ID: id, Msg: fmt.Sprintf("store already holds the configured maximum of %d nodes", limit)}
}
