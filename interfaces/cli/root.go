// Package cli implements the analyzer command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	appservices "socialgraph/application/services"
	"socialgraph/infrastructure/config"
	"socialgraph/infrastructure/snapshot"
	"socialgraph/pkg/observability"
)

var snapshotPath string

var rootCmd = &cobra.Command{
	Use:   "socialgraph",
	Short: "Build, score, and filter a social network graph from a snapshot",
	Long: `socialgraph reads a YAML snapshot of users and posts, derives the
attributed social graph, and answers importance and filtering queries
over it. Rendering is left to external tools; the graph command emits
DOT or JSON documents for them.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&snapshotPath, "snapshot", "", "Path to the YAML snapshot document (required)")
	_ = rootCmd.MarkPersistentFlagRequired("snapshot")
}

// loadAnalyzer decodes the snapshot and builds the analyzer on top of it
func loadAnalyzer() (*appservices.Analyzer, *config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	logger, err := observability.NewLogger(cfg.LogLevel, cfg.Environment)
	if err != nil {
		return nil, nil, err
	}

	snap, err := snapshot.Load(snapshotPath)
	if err != nil {
		return nil, nil, err
	}
	users, posts, err := snap.Entities()
	if err != nil {
		return nil, nil, err
	}

	analyzer, err := appservices.NewAnalyzer(users, posts, logger)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("snapshot loaded",
		zap.String("path", snapshotPath),
		zap.Int("users", len(users)),
		zap.Int("posts", len(posts)),
	)
	return analyzer, cfg, nil
}
