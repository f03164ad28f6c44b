package aggregates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialgraph/domain/core/entities"
	"socialgraph/domain/core/valueobjects"
	pkgerrors "socialgraph/pkg/errors"
)

func newTestUser(t *testing.T, name string) *entities.User {
	t.Helper()
	username, err := valueobjects.NewUsername(name)
	require.NoError(t, err)
	user, err := entities.NewUser(username, valueobjects.Attributes{
		"location": valueobjects.StringValue("NYC"),
	})
	require.NoError(t, err)
	return user
}

func newTestPost(t *testing.T, id, author, content string) *entities.Post {
	t.Helper()
	postID, err := valueobjects.NewPostID(id)
	require.NoError(t, err)
	username, err := valueobjects.NewUsername(author)
	require.NoError(t, err)
	post, err := entities.NewPost(postID, username, content, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return post
}

func TestAddNodes(t *testing.T) {
	g := NewSocialGraph()
	require.NotEmpty(t, g.ID().String())

	require.NoError(t, g.AddUserNode(newTestUser(t, "alice")))
	require.NoError(t, g.AddPostNode(newTestPost(t, "post1", "alice", "Hello world")))

	assert.Equal(t, 2, g.NodeCount())
	assert.True(t, g.HasNode("alice"))
	assert.True(t, g.HasNode("post1"))

	userNode, err := g.Node("alice")
	require.NoError(t, err)
	assert.Equal(t, NodeTypeUser, userNode.Type())
	loc, ok := userNode.Attributes().Get("location")
	require.True(t, ok)
	assert.True(t, loc.Equals(valueobjects.StringValue("NYC")))

	postNode, err := g.Node("post1")
	require.NoError(t, err)
	assert.Equal(t, NodeTypePost, postNode.Type())
	assert.Equal(t, "Hello world", postNode.Content())
	_, scored := postNode.Importance()
	assert.False(t, scored)

	// Duplicate ids are a conflict.
	err = g.AddUserNode(newTestUser(t, "alice"))
	assert.True(t, pkgerrors.IsConflictError(err))

	_, err = g.Node("ghost")
	assert.True(t, pkgerrors.IsNotFoundError(err))
}

func TestAddEdgePreservesParallelEdges(t *testing.T) {
	g := NewSocialGraph()
	require.NoError(t, g.AddUserNode(newTestUser(t, "alice")))
	require.NoError(t, g.AddPostNode(newTestPost(t, "post1", "alice", "hi")))

	at := time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC)
	require.NoError(t, g.AddEdge("alice", "post1", RelationViewed, map[string]interface{}{MetadataViewTime: at}))
	require.NoError(t, g.AddEdge("alice", "post1", RelationViewed, map[string]interface{}{MetadataViewTime: at.Add(time.Hour)}))

	assert.Equal(t, 2, g.EdgeCount())
	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, RelationViewed, edges[0].Relation)
	assert.Equal(t, at, edges[0].Metadata[MetadataViewTime])
	assert.Equal(t, at.Add(time.Hour), edges[1].Metadata[MetadataViewTime])
}

func TestAddEdgeRejectsUnknownEndpoints(t *testing.T) {
	g := NewSocialGraph()
	require.NoError(t, g.AddUserNode(newTestUser(t, "alice")))

	err := g.AddEdge("alice", "ghost", RelationAuthorship, nil)
	assert.True(t, pkgerrors.IsUnknownReference(err))

	err = g.AddEdge("ghost", "alice", "friend", nil)
	assert.True(t, pkgerrors.IsUnknownReference(err))

	err = g.AddEdge("alice", "alice", "", nil)
	assert.True(t, pkgerrors.IsValidationError(err))
}

func TestNodesReturnsInsertionOrder(t *testing.T) {
	g := NewSocialGraph()
	require.NoError(t, g.AddUserNode(newTestUser(t, "alice")))
	require.NoError(t, g.AddUserNode(newTestUser(t, "bob")))
	require.NoError(t, g.AddPostNode(newTestPost(t, "post1", "alice", "hi")))

	var ids []string
	for _, n := range g.Nodes() {
		ids = append(ids, n.ID())
	}
	assert.Equal(t, []string{"alice", "bob", "post1"}, ids)
}

func TestSetPostImportance(t *testing.T) {
	g := NewSocialGraph()
	require.NoError(t, g.AddUserNode(newTestUser(t, "alice")))
	require.NoError(t, g.AddPostNode(newTestPost(t, "post1", "alice", "hi")))

	postID, _ := valueobjects.NewPostID("post1")
	require.NoError(t, g.SetPostImportance(postID, 0.65))

	score, ok := g.PostImportance(postID)
	require.True(t, ok)
	assert.InDelta(t, 0.65, score, 1e-9)

	// Overwrite on rescore.
	require.NoError(t, g.SetPostImportance(postID, 1.0))
	score, _ = g.PostImportance(postID)
	assert.InDelta(t, 1.0, score, 1e-9)

	ghost, _ := valueobjects.NewPostID("ghost")
	assert.True(t, pkgerrors.IsUnknownReference(g.SetPostImportance(ghost, 0.5)))

	// User nodes never take importance.
	alice, _ := valueobjects.NewPostID("alice")
	assert.True(t, pkgerrors.IsValidationError(g.SetPostImportance(alice, 0.5)))
	_, ok = g.PostImportance(alice)
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	g := NewSocialGraph()
	require.NoError(t, g.AddUserNode(newTestUser(t, "alice")))
	require.NoError(t, g.AddPostNode(newTestPost(t, "post1", "alice", "hi")))
	require.NoError(t, g.AddEdge("alice", "post1", RelationAuthorship, nil))
	assert.NoError(t, g.Validate())
}

func TestParseDimension(t *testing.T) {
	tests := []struct {
		input   string
		want    Dimension
		wantErr bool
	}{
		{"2d", Dimension2D, false},
		{"3d", Dimension3D, false},
		{"4d", "", true},
		{"", "", true},
		{"2D", "", true},
	}

	for _, tt := range tests {
		t.Run("dimension "+tt.input, func(t *testing.T) {
			got, err := ParseDimension(tt.input)
			if tt.wantErr {
				assert.True(t, pkgerrors.IsInvalidDimension(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNewViewSettings(t *testing.T) {
	vs, err := NewViewSettings("3d", true, 5)
	require.NoError(t, err)
	assert.Equal(t, Dimension3D, vs.Dimension)
	assert.Equal(t, 5, vs.HighlightCount)

	_, err = NewViewSettings("flat", true, 5)
	assert.True(t, pkgerrors.IsInvalidDimension(err))

	_, err = NewViewSettings("2d", false, -1)
	assert.True(t, pkgerrors.IsValidationError(err))
}
