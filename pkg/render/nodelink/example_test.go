package nodelink_test

import (
	"fmt"

	"github.com/matzehuels/hpudiagram/pkg/diagram"
	"github.com/matzehuels/hpudiagram/pkg/render/nodelink"
)

func ExampleToDOT() {
	g := diagram.New(diagram.Attributes{Name: "lookup"})
	_ = g.AddNode(diagram.Node{ID: "core", Label: "Compute"})
	_ = g.AddNode(diagram.Node{ID: "atu", Label: "ATU", Fill: diagram.FillRoundedFilled, FillColor: "#f0f8ff"})
	_ = g.AddEdge(diagram.Edge{From: "atu", To: "core"})
	_ = g.AddEdge(diagram.Edge{From: "core", To: "atu", Line: diagram.LineDashed, Unconstrained: true})

	fmt.Print(nodelink.ToDOT(g))
	// Output:
	// digraph "lookup" {
	//   rankdir=TB;
	//
	//   "core" [label="Compute", shape=box];
	//   "atu" [label="ATU", shape=box, style="rounded,filled", fillcolor="#f0f8ff"];
	//
	//   "atu" -> "core";
	//   "core" -> "atu" [style=dashed, constraint=false];
	// }
}
