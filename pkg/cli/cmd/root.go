// Package cmd implements the depscope CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkgforge/depscope/internal/config"
	"github.com/pkgforge/depscope/pkg/graph"
	"github.com/pkgforge/depscope/pkg/log"
	"github.com/pkgforge/depscope/pkg/store"
	"github.com/pkgforge/depscope/pkg/version"
)

var (
	cfgFile string
	dataDir string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "depscope",
	Short: "Depscope - package dependency graph explorer",
	Long: `Depscope loads a flat list of published packages into a local store,
builds their dependency graph, and answers questions about it: graph
statistics, reverse dependencies, latest-version resolution, and
transitive dependency-conflict detection.`,
	SilenceUsage: true,
	Version:      version.Version,
}

// Execute adds all child commands to the root command and runs it. Called
// once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./depscope.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newLoadCmd())
	rootCmd.AddCommand(newShellCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// loadConfig reads configuration, applies flag overrides, and configures
// the default logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	level := log.ParseLevel(cfg.Log.Level)
	if verbose {
		level = log.DebugLevel
	}
	var formatter log.Formatter = log.NewTextFormatter()
	if cfg.Log.Format == "json" {
		formatter = &log.JSONFormatter{}
	}
	log.SetDefaultLogger(log.NewLogger(log.WithLevel(level), log.WithFormatter(formatter)))

	return cfg, nil
}

// openStore opens the BadgerDB-backed package store under the data dir.
func openStore(cfg *config.Config) (store.PackageStore, error) {
	s := store.NewBadgerStore(log.GetDefaultLogger())
	if err := s.Open(filepath.Join(cfg.DataDir, "packages")); err != nil {
		return nil, err
	}
	return s, nil
}

// buildGraph loads every stored package and builds the dependency graph,
// reporting how long it took.
func buildGraph(ctx context.Context, cfg *config.Config, st store.PackageStore) (*graph.PackageGraph, error) {
	packages, err := st.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	g := graph.New(log.GetDefaultLogger())
	start := time.Now()
	nodes, edges := g.Build(packages, cfg.BuildDepsEnabled())
	log.Info("graph built",
		log.Int("nodes", nodes),
		log.Int("edges", edges),
		log.Bool("build_deps", cfg.BuildDepsEnabled()),
		log.Duration("elapsed", time.Since(start)))
	return g, nil
}
