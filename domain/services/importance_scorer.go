package services

import (
	"math"
	"sort"

	"github.com/go-playground/validator/v10"

	"socialgraph/domain/core/aggregates"
	"socialgraph/domain/core/entities"
	"socialgraph/domain/core/valueobjects"
	pkgerrors "socialgraph/pkg/errors"
)

// weightSumTolerance bounds the allowed drift of comment+view from 1
const weightSumTolerance = 1e-6

// Weights controls the blend of comment and view engagement in the
// importance score. Both must lie in [0,1] and sum to 1 within tolerance.
type Weights struct {
	Comment float64 `validate:"gte=0,lte=1"`
	View    float64 `validate:"gte=0,lte=1"`
}

// DefaultWeights weighs comments and views evenly
func DefaultWeights() Weights {
	return Weights{Comment: 0.5, View: 0.5}
}

// ImportanceScorer computes normalized, weighted engagement scores per
// post. Scoring is a pure function of the post set and weights; repeated
// calls with the same inputs are idempotent.
type ImportanceScorer struct {
	validate *validator.Validate
}

// NewImportanceScorer creates a new importance scorer
func NewImportanceScorer() *ImportanceScorer {
	return &ImportanceScorer{validate: validator.New()}
}

// Score returns an importance in [0,1] per post. The post with the global
// maximum comment count scores exactly 1.0 on the comment dimension (ties
// allowed); likewise for views. A zero maximum yields 0 on that dimension
// via the max(max,1) denominator, never NaN. Weight violations fail with
// an invalid-weights error before anything is computed.
func (s *ImportanceScorer) Score(posts []*entities.Post, weights Weights) (map[valueobjects.PostID]float64, error) {
	if err := s.validateWeights(weights); err != nil {
		return nil, err
	}

	maxComments := 0
	maxViews := 0
	for _, post := range posts {
		if post.NumComments() > maxComments {
			maxComments = post.NumComments()
		}
		if post.NumViews() > maxViews {
			maxViews = post.NumViews()
		}
	}

	commentDenom := float64(maxComments)
	if commentDenom == 0 {
		commentDenom = 1
	}
	viewDenom := float64(maxViews)
	if viewDenom == 0 {
		viewDenom = 1
	}

	scores := make(map[valueobjects.PostID]float64, len(posts))
	for _, post := range posts {
		normalizedComments := float64(post.NumComments()) / commentDenom
		normalizedViews := float64(post.NumViews()) / viewDenom
		scores[post.ID()] = weights.Comment*normalizedComments + weights.View*normalizedViews
	}
	return scores, nil
}

func (s *ImportanceScorer) validateWeights(weights Weights) error {
	if err := s.validate.Struct(weights); err != nil {
		return pkgerrors.NewInvalidWeightsError(weights.Comment, weights.View).WithCause(err)
	}
	if math.Abs(weights.Comment+weights.View-1) >= weightSumTolerance {
		return pkgerrors.NewInvalidWeightsError(weights.Comment, weights.View)
	}
	return nil
}

// Annotate writes scores onto the graph's post nodes as derived metadata.
// Previous scores are overwritten; no history is kept.
func (s *ImportanceScorer) Annotate(graph *aggregates.SocialGraph, scores map[valueobjects.PostID]float64) error {
	for id, score := range scores {
		if err := graph.SetPostImportance(id, score); err != nil {
			return err
		}
	}
	return nil
}

// RankPosts orders post ids by descending score, ties broken by id so the
// ranking is deterministic
func RankPosts(scores map[valueobjects.PostID]float64) []valueobjects.PostID {
	ranked := make([]valueobjects.PostID, 0, len(scores))
	for id := range scores {
		ranked = append(ranked, id)
	}
	sort.Slice(ranked, func(i, j int) bool {
		si, sj := scores[ranked[i]], scores[ranked[j]]
		if si != sj {
			return si > sj
		}
		return ranked[i].String() < ranked[j].String()
	})
	return ranked
}

// TopPosts returns the k highest-scoring post ids
func TopPosts(scores map[valueobjects.PostID]float64, k int) []valueobjects.PostID {
	if k <= 0 {
		return nil
	}
	ranked := RankPosts(scores)
	if k > len(ranked) {
		k = len(ranked)
	}
	return ranked[:k]
}

// HighlightThreshold returns the score of the k-th ranked post, the cutoff
// renderers use to highlight the most important posts. ok is false when
// there is nothing to highlight.
func HighlightThreshold(scores map[valueobjects.PostID]float64, k int) (float64, bool) {
	top := TopPosts(scores, k)
	if len(top) == 0 {
		return 0, false
	}
	return scores[top[len(top)-1]], true
}
