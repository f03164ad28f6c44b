package services

import (
	"socialgraph/domain/core/aggregates"
	"socialgraph/domain/core/entities"
	"socialgraph/domain/core/valueobjects"
	pkgerrors "socialgraph/pkg/errors"
)

// GraphBuilder converts a snapshot of users and posts into a directed
// attributed multigraph. Building is a single pass over the snapshot;
// any event referencing an entity outside the snapshot fails the build.
type GraphBuilder struct{}

// NewGraphBuilder creates a new graph builder
func NewGraphBuilder() *GraphBuilder {
	return &GraphBuilder{}
}

// Build produces the social graph:
//   - one typed node per user and per post
//   - one authorship edge per post (author -> post)
//   - one viewed edge per view event, view time attached; duplicate view
//     events become parallel edges
//   - one commented_on edge per comment (comment author -> post)
//   - one category-labeled edge per (category, target) connection pair
//
// Build order never affects the resulting structure, only iteration order.
func (b *GraphBuilder) Build(users []*entities.User, posts []*entities.Post) (*aggregates.SocialGraph, error) {
	knownUsers := make(map[valueobjects.Username]*entities.User, len(users))
	for _, user := range users {
		if _, exists := knownUsers[user.Username()]; exists {
			return nil, pkgerrors.NewDuplicateEntityError("user", user.Username().String())
		}
		knownUsers[user.Username()] = user
	}

	knownPosts := make(map[valueobjects.PostID]*entities.Post, len(posts))
	for _, post := range posts {
		if _, exists := knownPosts[post.ID()]; exists {
			return nil, pkgerrors.NewDuplicateEntityError("post", post.ID().String())
		}
		knownPosts[post.ID()] = post
	}

	graph := aggregates.NewSocialGraph()

	for _, user := range users {
		if err := graph.AddUserNode(user); err != nil {
			return nil, err
		}
	}
	for _, post := range posts {
		if err := graph.AddPostNode(post); err != nil {
			return nil, err
		}
	}

	for _, post := range posts {
		if _, known := knownUsers[post.Author()]; !known {
			return nil, pkgerrors.NewUnknownReferenceError("user", post.Author().String())
		}
		if err := graph.AddEdge(post.Author().String(), post.ID().String(), aggregates.RelationAuthorship, nil); err != nil {
			return nil, err
		}
	}

	for _, post := range posts {
		for _, view := range post.Viewers() {
			if _, known := knownUsers[view.Viewer]; !known {
				return nil, pkgerrors.NewUnknownReferenceError("user", view.Viewer.String())
			}
			metadata := map[string]interface{}{aggregates.MetadataViewTime: view.ViewedAt}
			if err := graph.AddEdge(view.Viewer.String(), post.ID().String(), aggregates.RelationViewed, metadata); err != nil {
				return nil, err
			}
		}
	}

	for _, post := range posts {
		for _, comment := range post.Comments() {
			if _, known := knownUsers[comment.Author()]; !known {
				return nil, pkgerrors.NewUnknownReferenceError("user", comment.Author().String())
			}
			if _, known := knownPosts[comment.PostID()]; !known {
				return nil, pkgerrors.NewUnknownReferenceError("post", comment.PostID().String())
			}
			if err := graph.AddEdge(comment.Author().String(), post.ID().String(), aggregates.RelationCommentedOn, nil); err != nil {
				return nil, err
			}
		}
	}

	for _, user := range users {
		for _, conn := range user.Connections() {
			if _, known := knownUsers[conn.Target]; !known {
				return nil, pkgerrors.NewUnknownReferenceError("user", conn.Target.String())
			}
			if err := graph.AddEdge(user.Username().String(), conn.Target.String(), aggregates.Relation(conn.Category), nil); err != nil {
				return nil, err
			}
		}
	}

	return graph, nil
}
