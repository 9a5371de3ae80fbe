// Package main provides the semgraph CLI entry point.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/semgraph/internal/config"
)

var version = "0.1.0"

func main() {
	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	configureLogging(cfg.Logging.Level, cfg.Logging.Format)
	debugf("loaded config: %+v", cfg)

	rootCmd := &cobra.Command{
		Use:   "semgraph",
		Short: "semgraph - semantic code graph store, matcher, and projector",
		Long: `semgraph indexes a parsed code graph in memory, matches declarative
design-pattern definitions against it, and projects filtered views for
downstream tooling.`,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			log.Printf("semgraph v%s", version)
		},
	})

	rootCmd.AddCommand(newLoadCmd(cfg))
	rootCmd.AddCommand(newQueryCmd(cfg))
	rootCmd.AddCommand(newMatchCmd(cfg))
	rootCmd.AddCommand(newProjectCmd(cfg))
	rootCmd.AddCommand(newSnapshotCmd(cfg))
	rootCmd.AddCommand(newRestoreCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
