package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"socialgraph/domain/core/aggregates"
	domainservices "socialgraph/domain/services"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print structural statistics about the derived graph",
	RunE: func(cmd *cobra.Command, args []string) error {
		analyzer, _, err := loadAnalyzer()
		if err != nil {
			return err
		}

		graph := analyzer.Graph()
		analytics := domainservices.NewGraphAnalytics()

		fmt.Printf("nodes: %d  edges: %d\n", graph.NodeCount(), graph.EdgeCount())

		counts := analytics.RelationCounts(graph)
		relations := make([]aggregates.Relation, 0, len(counts))
		for relation := range counts {
			relations = append(relations, relation)
		}
		sort.Slice(relations, func(i, j int) bool { return relations[i] < relations[j] })
		for _, relation := range relations {
			fmt.Printf("  %-16s %d\n", relation, counts[relation])
		}

		if orphans := analytics.OrphanedNodes(graph); len(orphans) > 0 {
			fmt.Printf("orphaned nodes: %v\n", orphans)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
