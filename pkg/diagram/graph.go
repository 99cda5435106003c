package diagram

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists. Node IDs are unique per graph, across clusters.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrInvalidClusterID is returned by [Graph.AddCluster] when the ID is empty.
	ErrInvalidClusterID = errors.New("cluster ID must not be empty")

	// ErrDuplicateClusterID is returned by [Graph.AddCluster] for a repeated ID.
	ErrDuplicateClusterID = errors.New("duplicate cluster ID")

	// ErrUnknownCluster is returned by [Graph.AddNode] when the node names a
	// cluster that has not been declared.
	ErrUnknownCluster = errors.New("unknown cluster")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From node
	// has not been declared.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To node
	// has not been declared.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrInvalidColor is returned by [Graph.Validate] when a fill colour is
	// neither a #rrggbb value nor a plain colour name.
	ErrInvalidColor = errors.New("invalid color")
)

// Shape is the outline drawn around a node label.
type Shape int

const (
	// ShapeBox draws a rectangle. It is the zero value.
	ShapeBox Shape = iota
	// ShapePlainText draws the label without any outline.
	ShapePlainText
	// ShapeDiamond draws a decision diamond.
	ShapeDiamond
)

// String returns the Graphviz shape name.
func (s Shape) String() string {
	switch s {
	case ShapePlainText:
		return "plaintext"
	case ShapeDiamond:
		return "diamond"
	default:
		return "box"
	}
}

// FillStyle controls how a node or cluster background is painted.
type FillStyle int

const (
	// FillNone leaves the background transparent.
	FillNone FillStyle = iota
	// FillFilled paints the background with the fill colour.
	FillFilled
	// FillRoundedFilled paints the background and rounds the corners.
	FillRoundedFilled
)

// String returns the Graphviz style value, or "" for [FillNone].
func (f FillStyle) String() string {
	switch f {
	case FillFilled:
		return "filled"
	case FillRoundedFilled:
		return "rounded,filled"
	default:
		return ""
	}
}

// LineStyle controls how an edge is drawn.
type LineStyle int

const (
	// LineSolid draws a plain arrow.
	LineSolid LineStyle = iota
	// LineDashed draws a dashed arrow.
	LineDashed
	// LineInvisible lays the edge out without drawing it.
	LineInvisible
)

// String returns the Graphviz style value, or "" for [LineSolid].
func (l LineStyle) String() string {
	switch l {
	case LineDashed:
		return "dashed"
	case LineInvisible:
		return "invis"
	default:
		return ""
	}
}

// Node is a labelled vertex.
type Node struct {
	ID        string    // Unique identifier within the graph
	Label     string    // Display text; "\n" starts a new centred line
	Shape     Shape     // Outline shape
	Fill      FillStyle // Background style
	FillColor string    // Background colour (ignored for FillNone)
	Cluster   string    // Enclosing cluster ID, or "" for top level
}

// Edge is a directed connection between two declared nodes.
type Edge struct {
	From  string    // Source node ID
	To    string    // Target node ID
	Label string    // Optional text drawn next to the edge
	Line  LineStyle // Drawing style

	// Unconstrained excludes the edge from rank assignment. Use it for
	// loop-backs that must not change the top-to-bottom order.
	Unconstrained bool
}

// IsLayoutOnly reports whether the edge exists only to influence layout.
func (e Edge) IsLayoutOnly() bool { return e.Line == LineInvisible }

// Cluster is a visually boxed group of nodes.
type Cluster struct {
	ID        string
	Label     string
	Fill      FillStyle
	FillColor string
	FontName  string // Title font; "" inherits the Graphviz default
}

// Attributes holds graph-wide settings.
type Attributes struct {
	Name     string  // Graph name written into the DOT source
	RankDir  string  // Layout direction: TB (default), LR, BT, RL
	Splines  string  // Edge routing, e.g. "ortho"; "" keeps the engine default
	FontName string  // Default node font
	FontSize float64 // Default node font size in points; 0 keeps the engine default
}

// element is one top-level statement of the graph body: a cluster or a free node.
type element struct {
	cluster string
	node    string
}

// Graph is an ordered node/cluster/edge description ready for serialization.
//
// The zero value is not usable; create graphs with [New].
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	attrs    Attributes
	nodes    map[string]*Node
	clusters map[string]*Cluster
	members  map[string][]string // cluster ID -> node IDs in declaration order
	order    []string            // node IDs in declaration order
	body     []element
	edges    []Edge
}

// New creates an empty graph. An empty RankDir defaults to "TB".
func New(attrs Attributes) *Graph {
	if attrs.RankDir == "" {
		attrs.RankDir = "TB"
	}
	return &Graph{
		attrs:    attrs,
		nodes:    make(map[string]*Node),
		clusters: make(map[string]*Cluster),
		members:  make(map[string][]string),
	}
}

// Attributes returns the graph-wide settings.
func (g *Graph) Attributes() Attributes { return g.attrs }

// Name returns the graph name.
func (g *Graph) Name() string { return g.attrs.Name }

// AddCluster declares a cluster. Nodes can reference it afterwards.
func (g *Graph) AddCluster(c Cluster) error {
	if c.ID == "" {
		return ErrInvalidClusterID
	}
	if _, exists := g.clusters[c.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateClusterID, c.ID)
	}
	g.clusters[c.ID] = &c
	g.body = append(g.body, element{cluster: c.ID})
	return nil
}

// AddNode declares a node. Returns ErrInvalidNodeID, ErrDuplicateNodeID or
// ErrUnknownCluster when the node cannot be added.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[n.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateNodeID, n.ID)
	}
	if n.Cluster != "" {
		if _, ok := g.clusters[n.Cluster]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownCluster, n.Cluster)
		}
		g.members[n.Cluster] = append(g.members[n.Cluster], n.ID)
	} else {
		g.body = append(g.body, element{node: n.ID})
	}
	g.nodes[n.ID] = &n
	g.order = append(g.order, n.ID)
	return nil
}

// AddEdge declares an edge between two already declared nodes.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSourceNode, e.From)
	}
	if _, ok := g.nodes[e.To]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTargetNode, e.To)
	}
	g.edges = append(g.edges, e)
	return nil
}

// Node returns a copy of the node with the given ID.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Cluster returns a copy of the cluster with the given ID.
func (g *Graph) Cluster(id string) (Cluster, bool) {
	c, ok := g.clusters[id]
	if !ok {
		return Cluster{}, false
	}
	return *c, true
}

// Nodes returns all nodes in declaration order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, *g.nodes[id])
	}
	return out
}

// NodeIDs returns all node IDs in declaration order.
func (g *Graph) NodeIDs() []string { return slices.Clone(g.order) }

// Clusters returns all clusters in declaration order.
func (g *Graph) Clusters() []Cluster {
	var out []Cluster
	for _, el := range g.body {
		if el.cluster != "" {
			out = append(out, *g.clusters[el.cluster])
		}
	}
	return out
}

// Members returns the node IDs inside a cluster, in declaration order.
func (g *Graph) Members(cluster string) []string { return slices.Clone(g.members[cluster]) }

// Edges returns all edges in declaration order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Walk visits the top-level body in declaration order. For every cluster
// visitCluster is called with its members; free nodes go to visitNode.
func (g *Graph) Walk(visitCluster func(Cluster, []Node), visitNode func(Node)) {
	for _, el := range g.body {
		if el.cluster != "" {
			c := g.clusters[el.cluster]
			ids := g.members[el.cluster]
			members := make([]Node, 0, len(ids))
			for _, id := range ids {
				members = append(members, *g.nodes[id])
			}
			visitCluster(*c, members)
			continue
		}
		visitNode(*g.nodes[el.node])
	}
}

// Successors returns the targets of edges leaving id, optionally skipping
// layout-only edges.
func (g *Graph) Successors(id string, includeLayoutOnly bool) []string {
	var out []string
	for _, e := range g.edges {
		if e.From != id || (!includeLayoutOnly && e.IsLayoutOnly()) {
			continue
		}
		out = append(out, e.To)
	}
	return out
}

var colorRe = regexp.MustCompile(`^(#[0-9a-fA-F]{6}([0-9a-fA-F]{2})?|[a-zA-Z]+[0-9]*)$`)

// Validate checks the invariants that AddNode and AddEdge enforce, plus
// colour syntax. The pipeline calls it before every render.
func (g *Graph) Validate() error {
	seen := make(map[string]bool, len(g.order))
	for _, id := range g.order {
		if seen[id] {
			return fmt.Errorf("%w: %s", ErrDuplicateNodeID, id)
		}
		seen[id] = true
		if err := validColor(g.nodes[id].FillColor); err != nil {
			return fmt.Errorf("node %s: %w", id, err)
		}
	}
	for id, c := range g.clusters {
		if err := validColor(c.FillColor); err != nil {
			return fmt.Errorf("cluster %s: %w", id, err)
		}
	}
	for _, e := range g.edges {
		if !seen[e.From] {
			return fmt.Errorf("%w: %s", ErrUnknownSourceNode, e.From)
		}
		if !seen[e.To] {
			return fmt.Errorf("%w: %s", ErrUnknownTargetNode, e.To)
		}
	}
	return nil
}

func validColor(c string) error {
	if c == "" || colorRe.MatchString(c) {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidColor, c)
}
