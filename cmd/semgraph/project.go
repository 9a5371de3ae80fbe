package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/semgraph/internal/config"
	"github.com/katalvlaran/semgraph/internal/patternconfig"
	"github.com/katalvlaran/semgraph/internal/project"
)

func newProjectCmd(appCfg *config.Config) *cobra.Command {
	var view, root, patternFile string
	var depth int
	var minConfidence float64
	var excludePaths, patternIDs []string

	cmd := &cobra.Command{
		Use:   "project <bundle>",
		Short: "Run the view projector and print the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := loadStoreFromPath(args[0], appCfg.Store.MaxNodes)
			if err != nil {
				return err
			}

			pcfg := project.ViewConfig{
				View:          project.ViewClass(strings.ToLower(view)),
				RootID:        root,
				MinConfidence: minConfidence,
				ExcludePaths:  excludePaths,
				Depth:         &depth,
			}

			if patternFile != "" {
				pf, err := os.Open(patternFile)
				if err != nil {
					return fmt.Errorf("opening pattern file: %w", err)
				}
				defer pf.Close()

				table, err := patternconfig.Load(pf)
				if err != nil {
					return err
				}
				pcfg.Patterns = table
				pcfg.PatternIDs = patternIDs
			}

			res, err := project.Project(s, pcfg)
			if err != nil {
				return err
			}

			log.Printf("projected %d nodes, %d edges, %d pattern instances", len(res.Nodes), len(res.Edges), len(res.Patterns))
			return json.NewEncoder(os.Stdout).Encode(res)
		},
	}
	cmd.Flags().StringVar(&view, "view", appCfg.Projector.DefaultView, "view class: call_graph, inheritance, module_deps, full")
	cmd.Flags().StringVar(&root, "root", "", "root node id to scope the view to")
	cmd.Flags().IntVar(&depth, "depth", appCfg.Projector.DefaultDepth, "subgraph depth from root")
	cmd.Flags().Float64Var(&minConfidence, "min-confidence", appCfg.Matcher.DefaultMinConfidence, "minimum edge confidence to retain")
	cmd.Flags().StringSliceVar(&excludePaths, "exclude", nil, "glob patterns of paths to exclude")
	cmd.Flags().StringVar(&patternFile, "pattern-file", "", "YAML file of pattern definitions to run over the projected scope")
	cmd.Flags().StringSliceVar(&patternIDs, "pattern-ids", nil, "pattern ids from --pattern-file to run")
	return cmd
}
