package services

import (
	"go.uber.org/zap"

	"socialgraph/domain/core/aggregates"
	"socialgraph/domain/core/entities"
	"socialgraph/domain/core/valueobjects"
	"socialgraph/domain/services"
	pkgerrors "socialgraph/pkg/errors"
)

// Analyzer orchestrates graph construction, importance scoring and post
// filtering over a fixed snapshot of users and posts. It owns lookup
// tables keyed by username and post id; entities never own each other.
//
// The graph is built once at construction. Analyzer does no dirty
// tracking: callers that mutate entities afterwards must call Rebuild,
// and any previously computed scores are gone with the old graph.
type Analyzer struct {
	users     map[valueobjects.Username]*entities.User
	posts     map[valueobjects.PostID]*entities.Post
	userList  []*entities.User
	postList  []*entities.Post
	graph     *aggregates.SocialGraph
	builder   *services.GraphBuilder
	scorer    *services.ImportanceScorer
	filter    *services.PostFilter
	logger    *zap.Logger
}

// NewAnalyzer builds the lookup tables and the initial graph. A nil
// logger disables logging.
func NewAnalyzer(users []*entities.User, posts []*entities.Post, logger *zap.Logger) (*Analyzer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	userTable := make(map[valueobjects.Username]*entities.User, len(users))
	for _, user := range users {
		if _, exists := userTable[user.Username()]; exists {
			return nil, pkgerrors.NewDuplicateEntityError("user", user.Username().String())
		}
		userTable[user.Username()] = user
	}

	postTable := make(map[valueobjects.PostID]*entities.Post, len(posts))
	for _, post := range posts {
		if _, exists := postTable[post.ID()]; exists {
			return nil, pkgerrors.NewDuplicateEntityError("post", post.ID().String())
		}
		postTable[post.ID()] = post
	}

	a := &Analyzer{
		users:    userTable,
		posts:    postTable,
		userList: append([]*entities.User(nil), users...),
		postList: append([]*entities.Post(nil), posts...),
		builder:  services.NewGraphBuilder(),
		scorer:   services.NewImportanceScorer(),
		filter:   services.NewPostFilter(),
		logger:   logger,
	}

	if err := a.Rebuild(); err != nil {
		return nil, err
	}
	return a, nil
}

// Graph returns the current social graph. Consumers must treat it as
// read-only.
func (a *Analyzer) Graph() *aggregates.SocialGraph {
	return a.graph
}

// Users returns the snapshot's users in input order
func (a *Analyzer) Users() []*entities.User {
	out := make([]*entities.User, len(a.userList))
	copy(out, a.userList)
	return out
}

// Posts returns the snapshot's posts in input order
func (a *Analyzer) Posts() []*entities.Post {
	out := make([]*entities.Post, len(a.postList))
	copy(out, a.postList)
	return out
}

// User looks up a user by username
func (a *Analyzer) User(username valueobjects.Username) (*entities.User, error) {
	user, exists := a.users[username]
	if !exists {
		return nil, pkgerrors.NewUnknownReferenceError("user", username.String())
	}
	return user, nil
}

// Post looks up a post by id
func (a *Analyzer) Post(id valueobjects.PostID) (*entities.Post, error) {
	post, exists := a.posts[id]
	if !exists {
		return nil, pkgerrors.NewUnknownReferenceError("post", id.String())
	}
	return post, nil
}

// Rebuild reconstructs the graph from the current entity state. Any
// importance scores on the previous graph are discarded.
func (a *Analyzer) Rebuild() error {
	graph, err := a.builder.Build(a.userList, a.postList)
	if err != nil {
		return err
	}
	a.graph = graph
	a.logger.Debug("graph rebuilt",
		zap.Int("nodes", graph.NodeCount()),
		zap.Int("edges", graph.EdgeCount()),
	)
	return nil
}

// ScorePosts computes importance scores for every post and annotates the
// graph's post nodes. Rescoring overwrites previous scores. On invalid
// weights nothing is written.
func (a *Analyzer) ScorePosts(weights services.Weights) (map[valueobjects.PostID]float64, error) {
	scores, err := a.scorer.Score(a.postList, weights)
	if err != nil {
		return nil, err
	}
	if err := a.scorer.Annotate(a.graph, scores); err != nil {
		return nil, err
	}
	a.logger.Info("scored posts",
		zap.Int("posts", len(scores)),
		zap.Float64("comment_weight", weights.Comment),
		zap.Float64("view_weight", weights.View),
	)
	return scores, nil
}

// TopPosts scores the post set with the given weights and returns the k
// highest-scoring post ids
func (a *Analyzer) TopPosts(weights services.Weights, k int) ([]valueobjects.PostID, error) {
	scores, err := a.ScorePosts(weights)
	if err != nil {
		return nil, err
	}
	return services.TopPosts(scores, k), nil
}

// FilteredPosts evaluates the filter criteria over the post set in input
// order
func (a *Analyzer) FilteredPosts(criteria services.FilterCriteria) (services.FilterResult, error) {
	result, err := a.filter.Apply(a.postList, a.users, criteria)
	if err != nil {
		return services.FilterResult{}, err
	}
	a.logger.Debug("filtered posts",
		zap.Int("matched", len(result.Posts)),
		zap.Bool("applied", result.Applied),
	)
	return result, nil
}
