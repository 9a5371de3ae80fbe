package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/semgraph/internal/config"
)

func newLoadCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load [bundle]",
		Short: "Load a bundle and report what was applied",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfg.Store.BundlePath
			if len(args) == 1 {
				path = args[0]
			}
			_, res, err := loadStoreFromPath(path, cfg.Store.MaxNodes)
			if err != nil {
				return err
			}
			log.Printf("loaded %d nodes, %d edges, %d annotations, %d patterns",
				res.NodesLoaded, res.EdgesLoaded, res.AnnotationsLoaded, res.PatternsLoaded)
			for _, e := range res.Errors {
				log.Printf("skipped: %v", e)
			}
			return nil
		},
	}
	return cmd
}
