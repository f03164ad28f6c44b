package valueobjects

import (
	"errors"

	"github.com/google/uuid"
)

// Username is a value object identifying a user. Usernames are caller
// supplied and unique within a snapshot.
type Username struct {
	value string
}

// NewUsername creates a Username from a raw string
func NewUsername(name string) (Username, error) {
	if name == "" {
		return Username{}, errors.New("username cannot be empty")
	}
	return Username{value: name}, nil
}

// String returns the string representation of the Username
func (u Username) String() string {
	return u.value
}

// Equals checks if two Usernames are equal
func (u Username) Equals(other Username) bool {
	return u.value == other.value
}

// IsZero checks if the Username is the zero value
func (u Username) IsZero() bool {
	return u.value == ""
}

// PostID is a value object identifying a post
type PostID struct {
	value string
}

// NewPostID creates a PostID from a raw string
func NewPostID(id string) (PostID, error) {
	if id == "" {
		return PostID{}, errors.New("post ID cannot be empty")
	}
	return PostID{value: id}, nil
}

// String returns the string representation of the PostID
func (id PostID) String() string {
	return id.value
}

// Equals checks if two PostIDs are equal
func (id PostID) Equals(other PostID) bool {
	return id.value == other.value
}

// IsZero checks if the PostID is the zero value
func (id PostID) IsZero() bool {
	return id.value == ""
}

// CommentID is a value object identifying a comment
type CommentID struct {
	value string
}

// NewCommentID mints a new random CommentID
func NewCommentID() CommentID {
	return CommentID{value: uuid.New().String()}
}

// NewCommentIDFromString creates a CommentID from an existing string
func NewCommentIDFromString(id string) (CommentID, error) {
	if id == "" {
		return CommentID{}, errors.New("comment ID cannot be empty")
	}
	return CommentID{value: id}, nil
}

// String returns the string representation of the CommentID
func (id CommentID) String() string {
	return id.value
}

// Equals checks if two CommentIDs are equal
func (id CommentID) Equals(other CommentID) bool {
	return id.value == other.value
}

// IsZero checks if the CommentID is the zero value
func (id CommentID) IsZero() bool {
	return id.value == ""
}
