package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"socialgraph/domain/core/aggregates"
	domainservices "socialgraph/domain/services"
	"socialgraph/interfaces/export"
)

var (
	graphFormat        string
	graphOutput        string
	graphDimension     string
	graphShowLabels    bool
	graphHighlight     int
	graphScored        bool
	graphCommentWeight float64
	graphViewWeight    float64
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Emit the derived social graph as a DOT or JSON document",
	RunE: func(cmd *cobra.Command, args []string) error {
		analyzer, cfg, err := loadAnalyzer()
		if err != nil {
			return err
		}

		if graphScored {
			weights := domainservices.Weights{Comment: graphCommentWeight, View: graphViewWeight}
			if !cmd.Flags().Changed("comment-weight") && !cmd.Flags().Changed("view-weight") {
				weights = domainservices.Weights{Comment: cfg.CommentWeight, View: cfg.ViewWeight}
			}
			if _, err := analyzer.ScorePosts(weights); err != nil {
				return err
			}
		}

		out := os.Stdout
		if graphOutput != "" {
			f, err := os.Create(graphOutput)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		switch graphFormat {
		case "dot":
			return export.WriteDOT(out, analyzer.Graph())
		case "json":
			settings, err := aggregates.NewViewSettings(graphDimension, graphShowLabels, graphHighlight)
			if err != nil {
				return err
			}
			return export.WriteJSON(out, analyzer.Graph(), &settings)
		default:
			return fmt.Errorf("unknown format %q (want dot or json)", graphFormat)
		}
	},
}

func init() {
	graphCmd.Flags().StringVar(&graphFormat, "format", "dot", "Output format: dot or json")
	graphCmd.Flags().StringVarP(&graphOutput, "output", "o", "", "Write to file instead of stdout")
	graphCmd.Flags().StringVar(&graphDimension, "dimension", "2d", "Rendering dimension hint: 2d or 3d")
	graphCmd.Flags().BoolVar(&graphShowLabels, "show-labels", true, "Ask renderers to draw node labels")
	graphCmd.Flags().IntVar(&graphHighlight, "highlight", 5, "Number of top posts renderers should highlight")
	graphCmd.Flags().BoolVar(&graphScored, "scored", false, "Annotate post nodes with importance before emitting")
	graphCmd.Flags().Float64Var(&graphCommentWeight, "comment-weight", 0.5, "Comment weight used with --scored")
	graphCmd.Flags().Float64Var(&graphViewWeight, "view-weight", 0.5, "View weight used with --scored")
	rootCmd.AddCommand(graphCmd)
}
