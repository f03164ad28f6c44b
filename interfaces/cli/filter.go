package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"socialgraph/domain/core/valueobjects"
	domainservices "socialgraph/domain/services"
)

var (
	filterInclude     []string
	filterExclude     []string
	filterAuthorAttrs []string
	filterSince       string
	filterUntil       string
	filterJSON        bool
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Select posts by keywords, author attributes, and time range",
	RunE: func(cmd *cobra.Command, args []string) error {
		analyzer, _, err := loadAnalyzer()
		if err != nil {
			return err
		}

		criteria := domainservices.FilterCriteria{
			IncludeKeywords: filterInclude,
			ExcludeKeywords: filterExclude,
		}

		if len(filterAuthorAttrs) > 0 {
			attrs, err := parseAttributes(filterAuthorAttrs)
			if err != nil {
				return err
			}
			criteria.AuthorAttributes = attrs
		}

		timeRange, err := parseTimeRange(filterSince, filterUntil)
		if err != nil {
			return err
		}
		criteria.TimeRange = timeRange

		result, err := analyzer.FilteredPosts(criteria)
		if err != nil {
			return err
		}

		if filterJSON {
			type entry struct {
				PostID    string    `json:"post_id"`
				Author    string    `json:"author"`
				CreatedAt time.Time `json:"created_at"`
				Content   string    `json:"content"`
			}
			entries := make([]entry, 0, len(result.Posts))
			for _, post := range result.Posts {
				entries = append(entries, entry{
					PostID:    post.ID().String(),
					Author:    post.Author().String(),
					CreatedAt: post.CreatedAt(),
					Content:   post.Content(),
				})
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}

		if len(result.Posts) == 0 {
			if result.Applied {
				fmt.Println("no posts matched the given filters")
			} else {
				fmt.Println("snapshot contains no posts")
			}
			return nil
		}

		for _, post := range result.Posts {
			fmt.Printf("%-24s %-16s %s  %s\n",
				post.ID().String(),
				post.Author().String(),
				post.CreatedAt().Format(time.RFC3339),
				snippet(post.Content(), 60))
		}
		return nil
	},
}

func init() {
	filterCmd.Flags().StringSliceVar(&filterInclude, "include", nil, "Keep posts containing any of these keywords")
	filterCmd.Flags().StringSliceVar(&filterExclude, "exclude", nil, "Drop posts containing any of these keywords")
	filterCmd.Flags().StringArrayVar(&filterAuthorAttrs, "author-attr", nil, "Author attribute equality, key=value (repeatable)")
	filterCmd.Flags().StringVar(&filterSince, "since", "", "Keep posts created at or after this RFC3339 time")
	filterCmd.Flags().StringVar(&filterUntil, "until", "", "Keep posts created at or before this RFC3339 time")
	filterCmd.Flags().BoolVar(&filterJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(filterCmd)
}

// parseAttributes turns key=value pairs into typed attribute values.
// Values parse as bool, int, or float when they look like one, otherwise
// they stay strings. Matching is strict on both kind and value.
func parseAttributes(pairs []string) (valueobjects.Attributes, error) {
	attrs := make(valueobjects.Attributes, len(pairs))
	for _, pair := range pairs {
		key, raw, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --author-attr %q (want key=value)", pair)
		}
		attrs[key] = parseValue(raw)
	}
	return attrs, nil
}

func parseValue(raw string) valueobjects.Value {
	if b, err := strconv.ParseBool(raw); err == nil {
		return valueobjects.BoolValue(b)
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return valueobjects.IntValue(i)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return valueobjects.FloatValue(f)
	}
	return valueobjects.StringValue(raw)
}

func parseTimeRange(since, until string) (valueobjects.TimeRange, error) {
	var start, end time.Time
	var err error
	if since != "" {
		start, err = time.Parse(time.RFC3339, since)
		if err != nil {
			return valueobjects.TimeRange{}, fmt.Errorf("invalid --since: %w", err)
		}
	}
	if until != "" {
		end, err = time.Parse(time.RFC3339, until)
		if err != nil {
			return valueobjects.TimeRange{}, fmt.Errorf("invalid --until: %w", err)
		}
	}
	return valueobjects.NewTimeRange(start, end)
}

func snippet(content string, max int) string {
	content = strings.ReplaceAll(content, "\n", " ")
	runes := []rune(content)
	if len(runes) <= max {
		return content
	}
	return string(runes[:max-3]) + "..."
}
