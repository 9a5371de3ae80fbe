// Package snapshot persists a Store's contents to an embedded BadgerDB
// database and restores them later, as an optional export sink alongside
// the bundle format (spec §3's bundle remains the one bit-exact contract;
// a snapshot is a convenience cache of a store someone already built).
//
// Grounded in the teacher's BadgerEngine (pkg/storage/badger.go): single-byte
// key prefixes per entity kind, JSON-encoded values, and a RWMutex guarding
// the closed flag.
package snapshot

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/semgraph/internal/store"
)

const (
	prefixNode       = byte(0x01)
	prefixEdge       = byte(0x02)
	prefixAnnotation = byte(0x03)
	prefixPattern    = byte(0x04)
)

// Store wraps a BadgerDB database used as a snapshot sink for a semgraph
// store.Store. It is not a second query engine: it only dumps and restores
// whole tables.
type Store struct {
	db     *badger.DB
	mu     sync.RWMutex
	closed bool
}

// Open opens (creating if necessary) a BadgerDB database at dir for use as
// a snapshot sink. Pass inMemory true for tests that want no disk I/O.
func Open(dir string, inMemory bool) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if inMemory {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("snapshot: open badger: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database. Safe to call more than once.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

func key(prefix byte, id string) []byte {
	return append([]byte{prefix}, []byte(id)...)
}

// Dump writes every node, edge, annotation, and pattern instance currently
// in g into the snapshot database, overwriting any entity with the same id.
// The four entity tables are independent, so they are written concurrently
// via errgroup.
func (s *Store) Dump(g *store.Store) error {
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return fmt.Errorf("snapshot: store is closed")
	}
	s.mu.RUnlock()

	var eg errgroup.Group
	eg.Go(func() error { return s.dumpTable(prefixNode, g.AllNodes()) })
	eg.Go(func() error { return s.dumpTable(prefixEdge, g.AllEdges()) })
	eg.Go(func() error { return s.dumpTable(prefixAnnotation, g.AllAnnotations()) })
	eg.Go(func() error { return s.dumpTable(prefixPattern, g.AllPatterns()) })
	return eg.Wait()
}

// identified is the set of entity kinds this package dumps; idOf extracts
// the identifier field they all share.
type identified interface {
	store.Node | store.Edge | store.Annotation | store.PatternInstance
}

func idOf(v any) string {
	switch e := v.(type) {
	case store.Node:
		return e.ID
	case store.Edge:
		return e.ID
	case store.Annotation:
		return e.ID
	case store.PatternInstance:
		return e.ID
	default:
		return ""
	}
}

func dumpTable[T identified](s *Store, prefix byte, items []T) error {
	return s.db.Update(func(txn *badger.Txn) error {
		for _, item := range items {
			data, err := json.Marshal(item)
			if err != nil {
				return err
			}
			if err := txn.Set(key(prefix, idOf(item)), data); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) dumpTable(prefix byte, items any) error {
	switch v := items.(type) {
	case []store.Node:
		return dumpTable(s, prefix, v)
	case []store.Edge:
		return dumpTable(s, prefix, v)
	case []store.Annotation:
		return dumpTable(s, prefix, v)
	case []store.PatternInstance:
		return dumpTable(s, prefix, v)
	default:
		return fmt.Errorf("snapshot: unsupported table type %T", items)
	}
}

// Restore reads every entity back out of the snapshot database and loads it
// into a fresh store.Store via LoadBundle's partial-success policy.
func (s *Store) Restore() (*store.Store, store.LoadResult, error) {
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return nil, store.LoadResult{}, fmt.Errorf("snapshot: store is closed")
	}
	s.mu.RUnlock()

	var in store.LoadInput
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			k := item.Key()
			if len(k) == 0 {
				continue
			}
			if err := decodeInto(&in, k[0], item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, store.LoadResult{}, err
	}

	g := store.New()
	res := g.LoadBundle(in)
	return g, res, nil
}

func decodeInto(in *store.LoadInput, prefix byte, item *badger.Item) error {
	return item.Value(func(val []byte) error {
		switch prefix {
		case prefixNode:
			var n store.Node
			if err := json.Unmarshal(val, &n); err != nil {
				return err
			}
			in.Nodes = append(in.Nodes, n)
		case prefixEdge:
			var e store.Edge
			if err := json.Unmarshal(val, &e); err != nil {
				return err
			}
			in.Edges = append(in.Edges, e)
		case prefixAnnotation:
			var a store.Annotation
			if err := json.Unmarshal(val, &a); err != nil {
				return err
			}
			in.Annotations = append(in.Annotations, a)
		case prefixPattern:
			var p store.PatternInstance
			if err := json.Unmarshal(val, &p); err != nil {
				return err
			}
			in.Patterns = append(in.Patterns, p)
		}
		return nil
	})
}
