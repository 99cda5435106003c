// Package diagram provides the in-memory description of a node-link diagram.
//
// # Overview
//
// A [Graph] is an ordered collection of node, cluster and edge declarations,
// each carrying a label and optional visual attributes. It is the input to the
// DOT serializer in [nodelink] and carries no layout information of its own:
// positions are computed by Graphviz during rendering.
//
// # Building Graphs
//
// Clusters must be declared before the nodes they contain, and nodes before
// the edges that reference them:
//
//	g := diagram.New(diagram.Attributes{Name: "example"})
//	_ = g.AddCluster(diagram.Cluster{ID: "core", Label: "Core"})
//	_ = g.AddNode(diagram.Node{ID: "a", Label: "A", Cluster: "core"})
//	_ = g.AddNode(diagram.Node{ID: "b", Label: "B"})
//	_ = g.AddEdge(diagram.Edge{From: "a", To: "b"})
//
// Declaration order is preserved. Graphviz uses it as a tie-breaker when
// ordering nodes within a rank, so builders should declare nodes in reading
// order.
//
// # Layout Hints
//
// Two edge attributes exist purely to steer the layout engine:
//
//   - [LineInvisible] edges are laid out but not drawn. They pull nodes into
//     a top-to-bottom order without adding a visible arrow.
//   - [Edge.Unconstrained] edges are drawn but ignored during rank
//     assignment, so loop-backs do not distort the vertical order.
//
// [nodelink]: github.com/matzehuels/hpudiagram/pkg/render/nodelink
package diagram
