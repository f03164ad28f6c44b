package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"socialgraph/domain/core/entities"
	"socialgraph/domain/core/valueobjects"
)

func username(t *testing.T, name string) valueobjects.Username {
	t.Helper()
	u, err := valueobjects.NewUsername(name)
	require.NoError(t, err)
	return u
}

func postID(t *testing.T, id string) valueobjects.PostID {
	t.Helper()
	p, err := valueobjects.NewPostID(id)
	require.NoError(t, err)
	return p
}

func newUser(t *testing.T, name string, attrs valueobjects.Attributes) *entities.User {
	t.Helper()
	user, err := entities.NewUser(username(t, name), attrs)
	require.NoError(t, err)
	return user
}

func newPost(t *testing.T, id, author, content string, createdAt time.Time) *entities.Post {
	t.Helper()
	post, err := entities.NewPost(postID(t, id), username(t, author), content, createdAt)
	require.NoError(t, err)
	return post
}

func addView(t *testing.T, post *entities.Post, viewer *entities.User, at time.Time) {
	t.Helper()
	require.NoError(t, post.AddViewer(viewer.Username(), at))
	viewer.AddReadPost(post.ID(), at)
}

func addComment(t *testing.T, post *entities.Post, author *entities.User, content string, at time.Time) {
	t.Helper()
	comment, err := entities.NewComment(valueobjects.CommentID{}, author.Username(), post.ID(), content, at)
	require.NoError(t, err)
	require.NoError(t, post.AddComment(comment))
	author.AddComment(comment.ID())
}

// networkFixture mirrors a small three-user network: three posts, six
// views, three comments and three typed connections.
type networkFixture struct {
	alice, bob, charlie *entities.User
	post1, post2, post3 *entities.Post
	users               []*entities.User
	posts               []*entities.Post
	authors             map[valueobjects.Username]*entities.User
}

func newNetworkFixture(t *testing.T) *networkFixture {
	t.Helper()

	alice := newUser(t, "alice", valueobjects.Attributes{
		"age":      valueobjects.IntValue(25),
		"location": valueobjects.StringValue("NYC"),
	})
	bob := newUser(t, "bob", valueobjects.Attributes{
		"age":      valueobjects.IntValue(30),
		"location": valueobjects.StringValue("LA"),
	})
	charlie := newUser(t, "charlie", valueobjects.Attributes{
		"age":      valueobjects.IntValue(22),
		"location": valueobjects.StringValue("NYC"),
	})

	post1 := newPost(t, "post1", "alice", "Hello world! This is my first post about technology.",
		time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))
	post2 := newPost(t, "post2", "bob", "Love this sunny weather in LA! Perfect for hiking.",
		time.Date(2024, 1, 2, 14, 30, 0, 0, time.UTC))
	post3 := newPost(t, "post3", "charlie", "Just finished reading an amazing book about AI and machine learning.",
		time.Date(2024, 1, 3, 9, 15, 0, 0, time.UTC))

	alice.AddPost(post1.ID())
	bob.AddPost(post2.ID())
	charlie.AddPost(post3.ID())

	addView(t, post1, bob, time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC))
	addView(t, post1, charlie, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	addView(t, post2, alice, time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC))
	addView(t, post2, charlie, time.Date(2024, 1, 2, 16, 0, 0, 0, time.UTC))
	addView(t, post3, alice, time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC))
	addView(t, post3, bob, time.Date(2024, 1, 3, 11, 0, 0, 0, time.UTC))

	addComment(t, post1, bob, "Great first post!", time.Date(2024, 1, 1, 11, 30, 0, 0, time.UTC))
	addComment(t, post1, charlie, "Welcome to the platform!", time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC))
	addComment(t, post2, alice, "I wish I was in LA too!", time.Date(2024, 1, 2, 15, 30, 0, 0, time.UTC))

	require.NoError(t, alice.AddConnection(bob.Username(), "friend"))
	require.NoError(t, bob.AddConnection(alice.Username(), "friend"))
	require.NoError(t, alice.AddConnection(charlie.Username(), "colleague"))

	users := []*entities.User{alice, bob, charlie}
	authors := make(map[valueobjects.Username]*entities.User, len(users))
	for _, u := range users {
		authors[u.Username()] = u
	}

	return &networkFixture{
		alice: alice, bob: bob, charlie: charlie,
		post1: post1, post2: post2, post3: post3,
		users:   users,
		posts:   []*entities.Post{post1, post2, post3},
		authors: authors,
	}
}
