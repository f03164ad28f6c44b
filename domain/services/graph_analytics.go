package services

import (
	"socialgraph/domain/core/aggregates"
	pkgerrors "socialgraph/pkg/errors"
)

// GraphAnalytics provides read-only analysis over a built social graph,
// consumed by renderers for sizing and pruning decisions
type GraphAnalytics struct{}

// NewGraphAnalytics creates a new graph analytics service
func NewGraphAnalytics() *GraphAnalytics {
	return &GraphAnalytics{}
}

// NodeDegree counts incoming and outgoing edges for a node. Parallel
// edges each count.
func (a *GraphAnalytics) NodeDegree(graph *aggregates.SocialGraph, id string) (inDegree, outDegree int, err error) {
	if !graph.HasNode(id) {
		return 0, 0, pkgerrors.NewNotFoundError("node " + id)
	}
	for _, edge := range graph.Edges() {
		if edge.SourceID == id {
			outDegree++
		}
		if edge.TargetID == id {
			inDegree++
		}
	}
	return inDegree, outDegree, nil
}

// OrphanedNodes returns the ids of nodes with no edges at all, in node
// insertion order
func (a *GraphAnalytics) OrphanedNodes(graph *aggregates.SocialGraph) []string {
	connected := make(map[string]bool)
	for _, edge := range graph.Edges() {
		connected[edge.SourceID] = true
		connected[edge.TargetID] = true
	}

	var orphaned []string
	for _, node := range graph.Nodes() {
		if !connected[node.ID()] {
			orphaned = append(orphaned, node.ID())
		}
	}
	return orphaned
}

// RelationCounts tallies edges per relation label
func (a *GraphAnalytics) RelationCounts(graph *aggregates.SocialGraph) map[aggregates.Relation]int {
	counts := make(map[aggregates.Relation]int)
	for _, edge := range graph.Edges() {
		counts[edge.Relation]++
	}
	return counts
}
