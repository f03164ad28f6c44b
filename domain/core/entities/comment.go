package entities

import (
	"time"

	"socialgraph/domain/core/valueobjects"
	pkgerrors "socialgraph/pkg/errors"
)

// Comment is the entity representing a comment on a single post
type Comment struct {
	id        valueobjects.CommentID
	author    valueobjects.Username
	postID    valueobjects.PostID
	content   string
	createdAt time.Time
}

// NewComment creates a comment. A zero id gets a freshly minted one.
func NewComment(
	id valueobjects.CommentID,
	author valueobjects.Username,
	postID valueobjects.PostID,
	content string,
	createdAt time.Time,
) (*Comment, error) {
	if author.IsZero() {
		return nil, pkgerrors.NewValidationError("comment author cannot be empty")
	}
	if postID.IsZero() {
		return nil, pkgerrors.NewValidationError("comment must target a post")
	}
	if id.IsZero() {
		id = valueobjects.NewCommentID()
	}
	return &Comment{
		id:        id,
		author:    author,
		postID:    postID,
		content:   content,
		createdAt: createdAt,
	}, nil
}

// ID returns the comment's unique identifier
func (c *Comment) ID() valueobjects.CommentID {
	return c.id
}

// Author returns the commenting user's username
func (c *Comment) Author() valueobjects.Username {
	return c.author
}

// PostID returns the id of the post the comment targets
func (c *Comment) PostID() valueobjects.PostID {
	return c.postID
}

// Content returns the comment text
func (c *Comment) Content() string {
	return c.content
}

// CreatedAt returns the comment timestamp
func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}
