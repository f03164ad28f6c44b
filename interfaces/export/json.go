package export

import (
	"encoding/json"
	"io"
	"time"

	"socialgraph/domain/core/aggregates"
)

// NodeDocument is the wire form of a graph node
type NodeDocument struct {
	ID         string                 `json:"id"`
	Type       string                 `json:"type"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
	Content    string                 `json:"content,omitempty"`
	CreatedAt  *time.Time             `json:"created_at,omitempty"`
	Importance *float64               `json:"importance,omitempty"`
}

// EdgeDocument is the wire form of a graph edge
type EdgeDocument struct {
	Source   string                 `json:"source"`
	Target   string                 `json:"target"`
	Relation string                 `json:"relation"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// GraphDocument is a complete serialized graph. Parallel edges appear as
// repeated entries in Edges, matching the graph's own edge list.
type GraphDocument struct {
	GraphID string         `json:"graph_id"`
	View    *ViewDocument  `json:"view,omitempty"`
	Nodes   []NodeDocument `json:"nodes"`
	Edges   []EdgeDocument `json:"edges"`
}

// ViewDocument carries rendering hints for external renderers
type ViewDocument struct {
	Dimension      string `json:"dimension"`
	ShowLabels     bool   `json:"show_labels"`
	HighlightCount int    `json:"highlight_count"`
}

// BuildDocument converts a graph into its serializable form. settings may
// be nil when the consumer supplies its own rendering configuration.
func BuildDocument(graph *aggregates.SocialGraph, settings *aggregates.ViewSettings) GraphDocument {
	doc := GraphDocument{
		GraphID: graph.ID().String(),
		Nodes:   make([]NodeDocument, 0, graph.NodeCount()),
		Edges:   make([]EdgeDocument, 0, graph.EdgeCount()),
	}
	if settings != nil {
		doc.View = &ViewDocument{
			Dimension:      string(settings.Dimension),
			ShowLabels:     settings.ShowLabels,
			HighlightCount: settings.HighlightCount,
		}
	}

	for _, node := range graph.Nodes() {
		nd := NodeDocument{
			ID:      node.ID(),
			Type:    string(node.Type()),
			Content: node.Content(),
		}
		if attrs := node.Attributes(); len(attrs) > 0 {
			nd.Attributes = make(map[string]interface{}, len(attrs))
			for key, value := range attrs {
				nd.Attributes[key] = value.Interface()
			}
		}
		if createdAt := node.CreatedAt(); !createdAt.IsZero() {
			nd.CreatedAt = &createdAt
		}
		if importance, ok := node.Importance(); ok {
			nd.Importance = &importance
		}
		doc.Nodes = append(doc.Nodes, nd)
	}

	for _, edge := range graph.Edges() {
		doc.Edges = append(doc.Edges, EdgeDocument{
			Source:   edge.SourceID,
			Target:   edge.TargetID,
			Relation: string(edge.Relation),
			Metadata: edge.Metadata,
		})
	}

	return doc
}

// WriteJSON writes the graph as an indented JSON document
func WriteJSON(w io.Writer, graph *aggregates.SocialGraph, settings *aggregates.ViewSettings) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDocument(graph, settings))
}
