package entities

import (
	"fmt"
	"time"

	"socialgraph/domain/core/valueobjects"
	pkgerrors "socialgraph/pkg/errors"
)

// ViewEvent records a user viewing a post at a point in time. The same
// viewer may appear any number of times.
type ViewEvent struct {
	Viewer   valueobjects.Username
	ViewedAt time.Time
}

// Post is the entity representing an authored post. The author is set at
// construction and never changes.
type Post struct {
	id        valueobjects.PostID
	author    valueobjects.Username
	content   string
	createdAt time.Time
	comments  []*Comment
	viewers   []ViewEvent
}

// NewPost creates a post owned by exactly one author
func NewPost(
	id valueobjects.PostID,
	author valueobjects.Username,
	content string,
	createdAt time.Time,
) (*Post, error) {
	if id.IsZero() {
		return nil, pkgerrors.NewValidationError("post ID cannot be empty")
	}
	if author.IsZero() {
		return nil, pkgerrors.NewValidationError("post author cannot be empty")
	}
	return &Post{
		id:        id,
		author:    author,
		content:   content,
		createdAt: createdAt,
	}, nil
}

// ID returns the post's unique identifier
func (p *Post) ID() valueobjects.PostID {
	return p.id
}

// Author returns the owning author's username
func (p *Post) Author() valueobjects.Username {
	return p.author
}

// Content returns the post text
func (p *Post) Content() string {
	return p.content
}

// CreatedAt returns the post creation timestamp
func (p *Post) CreatedAt() time.Time {
	return p.createdAt
}

// AddComment appends a comment to the post. The comment must target this
// post.
func (p *Post) AddComment(c *Comment) error {
	if c == nil {
		return pkgerrors.NewValidationError("comment cannot be nil")
	}
	if !c.PostID().Equals(p.id) {
		return pkgerrors.NewValidationError(
			fmt.Sprintf("comment %s targets post %s, not %s", c.ID(), c.PostID(), p.id))
	}
	p.comments = append(p.comments, c)
	return nil
}

// Comments returns the ordered list of comments on the post
func (p *Post) Comments() []*Comment {
	out := make([]*Comment, len(p.comments))
	copy(out, p.comments)
	return out
}

// AddViewer appends a view event. No dedup: a repeat viewer produces a
// second entry.
func (p *Post) AddViewer(viewer valueobjects.Username, viewedAt time.Time) error {
	if viewer.IsZero() {
		return pkgerrors.NewValidationError("viewer cannot be empty")
	}
	p.viewers = append(p.viewers, ViewEvent{Viewer: viewer, ViewedAt: viewedAt})
	return nil
}

// Viewers returns the ordered list of view events
func (p *Post) Viewers() []ViewEvent {
	out := make([]ViewEvent, len(p.viewers))
	copy(out, p.viewers)
	return out
}

// NumComments returns the number of comments on the post
func (p *Post) NumComments() int {
	return len(p.comments)
}

// NumViews returns the number of view events on the post
func (p *Post) NumViews() int {
	return len(p.viewers)
}
