package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialgraph/domain/core/entities"
	pkgerrors "socialgraph/pkg/errors"
)

func TestNodeDegree(t *testing.T) {
	fx := newNetworkFixture(t)
	graph, err := NewGraphBuilder().Build(fx.users, fx.posts)
	require.NoError(t, err)

	analytics := NewGraphAnalytics()

	// post1: authorship + 2 views + 2 comments inbound, nothing outbound.
	in, out, err := analytics.NodeDegree(graph, "post1")
	require.NoError(t, err)
	assert.Equal(t, 5, in)
	assert.Equal(t, 0, out)

	// alice: authors post1, views post2 and post3, comments on post2,
	// connects to bob and charlie; bob's friend edge points back at her.
	in, out, err = analytics.NodeDegree(graph, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, in)
	assert.Equal(t, 6, out)

	_, _, err = analytics.NodeDegree(graph, "ghost")
	assert.True(t, pkgerrors.IsNotFoundError(err))
}

func TestOrphanedNodes(t *testing.T) {
	loner := newUser(t, "loner", nil)
	alice := newUser(t, "alice", nil)
	post := newPost(t, "post1", "alice", "hi", time.Now())
	alice.AddPost(post.ID())

	graph, err := NewGraphBuilder().Build([]*entities.User{loner, alice}, []*entities.Post{post})
	require.NoError(t, err)

	assert.Equal(t, []string{"loner"}, NewGraphAnalytics().OrphanedNodes(graph))
}
