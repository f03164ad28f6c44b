package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	domainservices "socialgraph/domain/services"
)

var (
	scoreCommentWeight float64
	scoreViewWeight    float64
	scoreTopN          int
	scoreJSON          bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Rank posts by importance under the given weights",
	RunE: func(cmd *cobra.Command, args []string) error {
		analyzer, cfg, err := loadAnalyzer()
		if err != nil {
			return err
		}

		weights := domainservices.Weights{Comment: scoreCommentWeight, View: scoreViewWeight}
		if !cmd.Flags().Changed("comment-weight") && !cmd.Flags().Changed("view-weight") {
			weights = domainservices.Weights{Comment: cfg.CommentWeight, View: cfg.ViewWeight}
		}

		scores, err := analyzer.ScorePosts(weights)
		if err != nil {
			return err
		}

		ranked := domainservices.RankPosts(scores)
		if scoreTopN > 0 && scoreTopN < len(ranked) {
			ranked = ranked[:scoreTopN]
		}

		if scoreJSON {
			type entry struct {
				PostID     string  `json:"post_id"`
				Importance float64 `json:"importance"`
			}
			entries := make([]entry, 0, len(ranked))
			for _, id := range ranked {
				entries = append(entries, entry{PostID: id.String(), Importance: scores[id]})
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}

		for rank, id := range ranked {
			fmt.Printf("%3d. %-24s %.4f\n", rank+1, id.String(), scores[id])
		}
		return nil
	},
}

func init() {
	scoreCmd.Flags().Float64Var(&scoreCommentWeight, "comment-weight", 0.5, "Weight of normalized comment count")
	scoreCmd.Flags().Float64Var(&scoreViewWeight, "view-weight", 0.5, "Weight of normalized view count")
	scoreCmd.Flags().IntVar(&scoreTopN, "top", 0, "Only print the top N posts (0 prints all)")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(scoreCmd)
}
