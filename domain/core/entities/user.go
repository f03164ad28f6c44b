package entities

import (
	"time"

	"socialgraph/domain/core/valueobjects"
	pkgerrors "socialgraph/pkg/errors"
)

// Connection is a typed link from one user to another. Connections are
// one-directional; callers add the reverse pair themselves for symmetric
// relations.
type Connection struct {
	Category string
	Target   valueobjects.Username
}

// ReadEvent records a user viewing a post at a point in time
type ReadEvent struct {
	PostID   valueobjects.PostID
	ViewedAt time.Time
}

// User is the entity representing a network participant. All event lists
// are append-only and additive: repeated identical events produce repeated
// entries, never a dedup.
type User struct {
	username      valueobjects.Username
	attributes    valueobjects.Attributes
	connections   []Connection
	postsAuthored []valueobjects.PostID
	postsRead     []ReadEvent
	commentsMade  []valueobjects.CommentID
}

// NewUser creates a user with the given attribute mapping. A nil mapping
// is treated as empty.
func NewUser(username valueobjects.Username, attributes valueobjects.Attributes) (*User, error) {
	if username.IsZero() {
		return nil, pkgerrors.NewValidationError("username cannot be empty")
	}
	if attributes == nil {
		attributes = valueobjects.Attributes{}
	}
	return &User{
		username:   username,
		attributes: attributes,
	}, nil
}

// Username returns the user's unique identifier
func (u *User) Username() valueobjects.Username {
	return u.username
}

// Attributes returns a copy of the user's attribute mapping
func (u *User) Attributes() valueobjects.Attributes {
	return u.attributes.Clone()
}

// AddConnection registers a typed connection to another user. Self
// connections are legal but carry no meaning.
func (u *User) AddConnection(target valueobjects.Username, category string) error {
	if target.IsZero() {
		return pkgerrors.NewValidationError("connection target cannot be empty")
	}
	if category == "" {
		return pkgerrors.NewValidationError("connection category cannot be empty")
	}
	u.connections = append(u.connections, Connection{Category: category, Target: target})
	return nil
}

// Connections returns the ordered list of (category, target) pairs
func (u *User) Connections() []Connection {
	out := make([]Connection, len(u.connections))
	copy(out, u.connections)
	return out
}

// ConnectionsByCategory groups connection targets by category, preserving
// registration order within each category
func (u *User) ConnectionsByCategory() map[string][]valueobjects.Username {
	grouped := make(map[string][]valueobjects.Username)
	for _, c := range u.connections {
		grouped[c.Category] = append(grouped[c.Category], c.Target)
	}
	return grouped
}

// AddPost records authorship of a post
func (u *User) AddPost(id valueobjects.PostID) {
	u.postsAuthored = append(u.postsAuthored, id)
}

// PostsAuthored returns the ordered list of authored post ids
func (u *User) PostsAuthored() []valueobjects.PostID {
	out := make([]valueobjects.PostID, len(u.postsAuthored))
	copy(out, u.postsAuthored)
	return out
}

// AddReadPost records that the user viewed a post. Viewing the same post
// twice produces two entries.
func (u *User) AddReadPost(id valueobjects.PostID, viewedAt time.Time) {
	u.postsRead = append(u.postsRead, ReadEvent{PostID: id, ViewedAt: viewedAt})
}

// PostsRead returns the ordered list of read events
func (u *User) PostsRead() []ReadEvent {
	out := make([]ReadEvent, len(u.postsRead))
	copy(out, u.postsRead)
	return out
}

// AddComment records a comment made by the user
func (u *User) AddComment(id valueobjects.CommentID) {
	u.commentsMade = append(u.commentsMade, id)
}

// CommentsMade returns the ordered list of comment ids made by the user
func (u *User) CommentsMade() []valueobjects.CommentID {
	out := make([]valueobjects.CommentID, len(u.commentsMade))
	copy(out, u.commentsMade)
	return out
}
