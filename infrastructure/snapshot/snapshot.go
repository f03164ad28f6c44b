// Package snapshot decodes YAML snapshot documents into domain entities.
// A snapshot is the tool-surface input format: it describes one fixed
// state of the network and is never written back.
package snapshot

import (
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"socialgraph/domain/core/entities"
	"socialgraph/domain/core/valueobjects"
	pkgerrors "socialgraph/pkg/errors"
)

// ConnectionRecord is a typed link between two users
type ConnectionRecord struct {
	Category string `yaml:"category" validate:"required"`
	Target   string `yaml:"target" validate:"required"`
}

// UserRecord describes one user in a snapshot document
type UserRecord struct {
	Username    string                 `yaml:"username" validate:"required"`
	Attributes  map[string]interface{} `yaml:"attributes"`
	Connections []ConnectionRecord     `yaml:"connections" validate:"dive"`
}

// ViewRecord is a single view event on a post
type ViewRecord struct {
	Viewer   string    `yaml:"viewer" validate:"required"`
	ViewedAt time.Time `yaml:"viewed_at" validate:"required"`
}

// CommentRecord describes one comment on a post. A missing id gets minted.
type CommentRecord struct {
	ID        string    `yaml:"id"`
	Author    string    `yaml:"author" validate:"required"`
	Content   string    `yaml:"content"`
	CreatedAt time.Time `yaml:"created_at"`
}

// PostRecord describes one post in a snapshot document
type PostRecord struct {
	ID        string          `yaml:"id" validate:"required"`
	Author    string          `yaml:"author" validate:"required"`
	Content   string          `yaml:"content"`
	CreatedAt time.Time       `yaml:"created_at" validate:"required"`
	Views     []ViewRecord    `yaml:"views" validate:"dive"`
	Comments  []CommentRecord `yaml:"comments" validate:"dive"`
}

// Snapshot is a full decoded snapshot document
type Snapshot struct {
	Users []UserRecord `yaml:"users" validate:"dive"`
	Posts []PostRecord `yaml:"posts" validate:"dive"`
}

// Load reads and parses a snapshot file
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.NewInternalError("opening snapshot file", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a snapshot document from a reader and validates the
// record structure
func Parse(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := yaml.NewDecoder(r).Decode(&snap); err != nil {
		return nil, pkgerrors.NewValidationError("malformed snapshot document").WithCause(err)
	}
	if err := validator.New().Struct(&snap); err != nil {
		return nil, pkgerrors.NewValidationError("invalid snapshot document").WithCause(err)
	}
	return &snap, nil
}

// Entities converts the decoded records into domain entities, registering
// views and comments on both the post and the user side
func (s *Snapshot) Entities() ([]*entities.User, []*entities.Post, error) {
	users := make([]*entities.User, 0, len(s.Users))
	userTable := make(map[string]*entities.User, len(s.Users))

	for _, rec := range s.Users {
		username, err := valueobjects.NewUsername(rec.Username)
		if err != nil {
			return nil, nil, pkgerrors.NewValidationError(err.Error())
		}
		attrs := make(valueobjects.Attributes, len(rec.Attributes))
		for key, raw := range rec.Attributes {
			value, err := valueobjects.ValueOf(raw)
			if err != nil {
				return nil, nil, pkgerrors.NewValidationError(err.Error()).
					WithDetail("user", rec.Username).
					WithDetail("attribute", key)
			}
			attrs[key] = value
		}
		user, err := entities.NewUser(username, attrs)
		if err != nil {
			return nil, nil, err
		}
		if _, exists := userTable[rec.Username]; exists {
			return nil, nil, pkgerrors.NewDuplicateEntityError("user", rec.Username)
		}
		users = append(users, user)
		userTable[rec.Username] = user
	}

	// Connections resolve after all users exist so forward references work.
	for i, rec := range s.Users {
		for _, conn := range rec.Connections {
			target, err := valueobjects.NewUsername(conn.Target)
			if err != nil {
				return nil, nil, pkgerrors.NewValidationError(err.Error())
			}
			if err := users[i].AddConnection(target, conn.Category); err != nil {
				return nil, nil, err
			}
		}
	}

	posts := make([]*entities.Post, 0, len(s.Posts))
	for _, rec := range s.Posts {
		postID, err := valueobjects.NewPostID(rec.ID)
		if err != nil {
			return nil, nil, pkgerrors.NewValidationError(err.Error())
		}
		author, err := valueobjects.NewUsername(rec.Author)
		if err != nil {
			return nil, nil, pkgerrors.NewValidationError(err.Error())
		}
		post, err := entities.NewPost(postID, author, rec.Content, rec.CreatedAt)
		if err != nil {
			return nil, nil, err
		}
		if owner, known := userTable[rec.Author]; known {
			owner.AddPost(postID)
		}

		for _, view := range rec.Views {
			viewer, err := valueobjects.NewUsername(view.Viewer)
			if err != nil {
				return nil, nil, pkgerrors.NewValidationError(err.Error())
			}
			if err := post.AddViewer(viewer, view.ViewedAt); err != nil {
				return nil, nil, err
			}
			if reader, known := userTable[view.Viewer]; known {
				reader.AddReadPost(postID, view.ViewedAt)
			}
		}

		for _, rec := range rec.Comments {
			commentAuthor, err := valueobjects.NewUsername(rec.Author)
			if err != nil {
				return nil, nil, pkgerrors.NewValidationError(err.Error())
			}
			var commentID valueobjects.CommentID
			if rec.ID != "" {
				commentID, err = valueobjects.NewCommentIDFromString(rec.ID)
				if err != nil {
					return nil, nil, pkgerrors.NewValidationError(err.Error())
				}
			}
			comment, err := entities.NewComment(commentID, commentAuthor, postID, rec.Content, rec.CreatedAt)
			if err != nil {
				return nil, nil, err
			}
			if err := post.AddComment(comment); err != nil {
				return nil, nil, err
			}
			if commenter, known := userTable[rec.Author]; known {
				commenter.AddComment(comment.ID())
			}
		}

		posts = append(posts, post)
	}

	return users, posts, nil
}
