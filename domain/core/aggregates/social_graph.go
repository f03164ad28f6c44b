package aggregates

import (
	"time"

	"github.com/google/uuid"

	"socialgraph/domain/core/entities"
	"socialgraph/domain/core/valueobjects"
	pkgerrors "socialgraph/pkg/errors"
)

// GraphID represents a unique graph identifier
type GraphID string

// NewGraphID creates a new random GraphID
func NewGraphID() GraphID {
	return GraphID(uuid.New().String())
}

// String returns the string representation
func (id GraphID) String() string {
	return string(id)
}

// NodeType distinguishes the two node kinds of the social graph
type NodeType string

const (
	NodeTypeUser NodeType = "user"
	NodeTypePost NodeType = "post"
)

// Relation is the type tag on a graph edge. Beyond the three built-in
// relations, every user-defined connection category becomes a relation.
type Relation string

const (
	RelationAuthorship  Relation = "authorship"
	RelationViewed      Relation = "viewed"
	RelationCommentedOn Relation = "commented_on"
)

// MetadataViewTime is the edge metadata key carrying a view timestamp
const MetadataViewTime = "view_time"

// Node is a typed graph node carrying denormalized display attributes.
// It references entities by id and never owns them.
type Node struct {
	id         string
	nodeType   NodeType
	attributes valueobjects.Attributes
	content    string
	createdAt  time.Time
	importance float64
	scored     bool
}

// ID returns the node identifier (username or post id)
func (n *Node) ID() string {
	return n.id
}

// Type returns the node kind
func (n *Node) Type() NodeType {
	return n.nodeType
}

// Attributes returns a copy of the node's attribute payload. Only user
// nodes carry attributes.
func (n *Node) Attributes() valueobjects.Attributes {
	return n.attributes.Clone()
}

// Content returns the post text. Empty for user nodes.
func (n *Node) Content() string {
	return n.content
}

// CreatedAt returns the post creation time. Zero for user nodes.
func (n *Node) CreatedAt() time.Time {
	return n.createdAt
}

// Importance returns the post's importance score and whether one has been
// computed since the last rebuild
func (n *Node) Importance() (float64, bool) {
	return n.importance, n.scored
}

// Edge is a directed, relation-typed edge. Edges live in a list rather
// than a keyed map so parallel edges between the same pair are preserved.
type Edge struct {
	SourceID string
	TargetID string
	Relation Relation
	Metadata map[string]interface{}
}

// SocialGraph is the derived, read-mostly attributed multigraph built from
// a snapshot of users and posts. It must be rebuilt from scratch when the
// underlying entities change.
type SocialGraph struct {
	id        GraphID
	nodes     map[string]*Node
	nodeOrder []string
	edges     []*Edge
}

// NewSocialGraph creates an empty social graph
func NewSocialGraph() *SocialGraph {
	return &SocialGraph{
		id:    NewGraphID(),
		nodes: make(map[string]*Node),
	}
}

// ID returns the graph's unique identifier
func (g *SocialGraph) ID() GraphID {
	return g.id
}

// AddUserNode adds a node for a user, carrying the user's attribute mapping
func (g *SocialGraph) AddUserNode(user *entities.User) error {
	if user == nil {
		return pkgerrors.NewValidationError("user cannot be nil")
	}
	return g.addNode(&Node{
		id:         user.Username().String(),
		nodeType:   NodeTypeUser,
		attributes: user.Attributes(),
	})
}

// AddPostNode adds a node for a post, carrying its content and creation time
func (g *SocialGraph) AddPostNode(post *entities.Post) error {
	if post == nil {
		return pkgerrors.NewValidationError("post cannot be nil")
	}
	return g.addNode(&Node{
		id:        post.ID().String(),
		nodeType:  NodeTypePost,
		content:   post.Content(),
		createdAt: post.CreatedAt(),
	})
}

func (g *SocialGraph) addNode(node *Node) error {
	if _, exists := g.nodes[node.id]; exists {
		return pkgerrors.NewDuplicateEntityError("node", node.id)
	}
	g.nodes[node.id] = node
	g.nodeOrder = append(g.nodeOrder, node.id)
	return nil
}

// AddEdge appends a directed edge. Both endpoints must already be nodes.
// Parallel edges of the same relation between the same pair are kept.
func (g *SocialGraph) AddEdge(sourceID, targetID string, relation Relation, metadata map[string]interface{}) error {
	if _, exists := g.nodes[sourceID]; !exists {
		return pkgerrors.NewUnknownReferenceError("node", sourceID)
	}
	if _, exists := g.nodes[targetID]; !exists {
		return pkgerrors.NewUnknownReferenceError("node", targetID)
	}
	if relation == "" {
		return pkgerrors.NewValidationError("edge relation cannot be empty")
	}
	g.edges = append(g.edges, &Edge{
		SourceID: sourceID,
		TargetID: targetID,
		Relation: relation,
		Metadata: metadata,
	})
	return nil
}

// Node retrieves a node by id
func (g *SocialGraph) Node(id string) (*Node, error) {
	node, exists := g.nodes[id]
	if !exists {
		return nil, pkgerrors.NewNotFoundError("node " + id)
	}
	return node, nil
}

// HasNode checks if a node exists without error
func (g *SocialGraph) HasNode(id string) bool {
	_, exists := g.nodes[id]
	return exists
}

// Nodes returns all nodes in insertion order. The slice is a copy;
// consumers must not mutate the graph through it.
func (g *SocialGraph) Nodes() []*Node {
	nodes := make([]*Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		nodes = append(nodes, g.nodes[id])
	}
	return nodes
}

// Edges returns all edges in insertion order as a copied slice
func (g *SocialGraph) Edges() []*Edge {
	edges := make([]*Edge, len(g.edges))
	copy(edges, g.edges)
	return edges
}

// NodeCount returns the number of nodes
func (g *SocialGraph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges, parallel edges included
func (g *SocialGraph) EdgeCount() int {
	return len(g.edges)
}

// SetPostImportance writes the importance score onto a post node.
// Rescoring overwrites the previous value.
func (g *SocialGraph) SetPostImportance(id valueobjects.PostID, importance float64) error {
	node, exists := g.nodes[id.String()]
	if !exists {
		return pkgerrors.NewUnknownReferenceError("post", id.String())
	}
	if node.nodeType != NodeTypePost {
		return pkgerrors.NewValidationError("importance applies to post nodes only")
	}
	node.importance = importance
	node.scored = true
	return nil
}

// PostImportance reads a post node's importance score
func (g *SocialGraph) PostImportance(id valueobjects.PostID) (float64, bool) {
	node, exists := g.nodes[id.String()]
	if !exists || node.nodeType != NodeTypePost {
		return 0, false
	}
	return node.Importance()
}

// Validate ensures graph invariants: every edge endpoint resolves to a node
func (g *SocialGraph) Validate() error {
	for _, edge := range g.edges {
		if _, exists := g.nodes[edge.SourceID]; !exists {
			return pkgerrors.NewUnknownReferenceError("node", edge.SourceID)
		}
		if _, exists := g.nodes[edge.TargetID]; !exists {
			return pkgerrors.NewUnknownReferenceError("node", edge.TargetID)
		}
	}
	if len(g.nodeOrder) != len(g.nodes) {
		return pkgerrors.NewInternalError("node index out of sync", nil)
	}
	return nil
}
