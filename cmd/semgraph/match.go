package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/semgraph/internal/config"
	"github.com/katalvlaran/semgraph/internal/pattern"
	"github.com/katalvlaran/semgraph/internal/patternconfig"
)

func newMatchCmd(cfg *config.Config) *cobra.Command {
	var patternFile, patternID string
	var persist bool

	cmd := &cobra.Command{
		Use:   "match <bundle>",
		Short: "Run a pattern definition against a bundle and print matches as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if patternFile == "" || patternID == "" {
				return fmt.Errorf("both --pattern-file and --pattern-id are required")
			}

			s, _, err := loadStoreFromPath(args[0], cfg.Store.MaxNodes)
			if err != nil {
				return err
			}

			pf, err := os.Open(patternFile)
			if err != nil {
				return fmt.Errorf("opening pattern file: %w", err)
			}
			defer pf.Close()

			table, err := patternconfig.Load(pf)
			if err != nil {
				return err
			}

			matches, err := table.Run(s, patternID, nil)
			if err != nil {
				return err
			}
			log.Printf("%d matches for pattern %q", len(matches), patternID)

			if persist {
				for _, m := range matches {
					if err := s.AddPattern(pattern.ToPatternInstance(m)); err != nil {
						return fmt.Errorf("persisting match: %w", err)
					}
				}
				log.Printf("persisted %d pattern instances", len(matches))
			}

			return json.NewEncoder(os.Stdout).Encode(matches)
		},
	}
	cmd.Flags().StringVar(&patternFile, "pattern-file", "", "YAML file containing pattern definitions")
	cmd.Flags().StringVar(&patternID, "pattern-id", "", "id of the pattern to run")
	cmd.Flags().BoolVar(&persist, "persist", false, "record matches into the store as pattern instances before printing")
	return cmd
}
