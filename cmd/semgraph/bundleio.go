package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/semgraph/internal/bundle"
	"github.com/katalvlaran/semgraph/internal/store"
)

// loadStoreFromPath reads a bundle file (JSON or YAML, chosen by extension)
// and loads it into a fresh store. maxNodes is forwarded to
// store.NewWithLimit (0 means unbounded), per config.StoreConfig.MaxNodes.
func loadStoreFromPath(path string, maxNodes int) (*store.Store, store.LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, store.LoadResult{}, fmt.Errorf("opening bundle: %w", err)
	}
	defer f.Close()

	var b *bundle.Bundle
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		b, err = bundle.LoadYAML(f)
	} else {
		b, err = bundle.LoadJSON(f)
	}
	if err != nil {
		return nil, store.LoadResult{}, fmt.Errorf("decoding bundle: %w", err)
	}

	s := store.NewWithLimit(maxNodes)
	res, err := bundle.IntoStore(s, b, false)
	if err != nil {
		return nil, store.LoadResult{}, err
	}
	return s, res, nil
}
