package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/semgraph/internal/config"
	"github.com/katalvlaran/semgraph/internal/store"
)

func newQueryCmd(cfg *config.Config) *cobra.Command {
	var kind, file, language string

	cmd := &cobra.Command{
		Use:   "query <bundle>",
		Short: "Find nodes in a bundle by kind, file, and/or language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := loadStoreFromPath(args[0], cfg.Store.MaxNodes)
			if err != nil {
				return err
			}

			q := store.NodeQuery{File: file, Language: language}
			if kind != "" {
				q.Kinds = []store.NodeKind{store.NodeKind(kind)}
			}

			nodes := s.FindNodes(q)
			log.Printf("%d matching nodes", len(nodes))
			return json.NewEncoder(os.Stdout).Encode(nodes)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "node kind to filter by")
	cmd.Flags().StringVar(&file, "file", "", "file path to filter by")
	cmd.Flags().StringVar(&language, "language", "", "language to filter by")
	return cmd
}
