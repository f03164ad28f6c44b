// Package export serializes the social graph for external consumers.
// Renderers own layout and drawing; this package only hands them the
// structure.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"socialgraph/domain/core/aggregates"
)

// WriteDOT writes the graph in Graphviz DOT form. User nodes render as
// ellipses, post nodes as boxes labeled with their importance when one
// has been computed.
func WriteDOT(w io.Writer, graph *aggregates.SocialGraph) error {
	if _, err := fmt.Fprintln(w, "digraph socialgraph {"); err != nil {
		return err
	}

	for _, node := range graph.Nodes() {
		var attrs string
		switch node.Type() {
		case aggregates.NodeTypePost:
			label := node.ID()
			if importance, ok := node.Importance(); ok {
				label = fmt.Sprintf("%s (%.2f)", node.ID(), importance)
			}
			attrs = fmt.Sprintf("shape=box, label=%q", label)
		default:
			attrs = fmt.Sprintf("shape=ellipse, label=%q", node.ID())
		}
		if _, err := fmt.Fprintf(w, "  %q [%s];\n", node.ID(), attrs); err != nil {
			return err
		}
	}

	for _, edge := range graph.Edges() {
		label := string(edge.Relation)
		if at, ok := edge.Metadata[aggregates.MetadataViewTime].(time.Time); ok {
			label = fmt.Sprintf("%s %s", label, at.Format(time.RFC3339))
		}
		if _, err := fmt.Fprintf(w, "  %q -> %q [label=%q];\n",
			edge.SourceID, edge.TargetID, label); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

// DOTString renders the graph to a DOT string
func DOTString(graph *aggregates.SocialGraph) (string, error) {
	var sb strings.Builder
	if err := WriteDOT(&sb, graph); err != nil {
		return "", err
	}
	return sb.String(), nil
}
