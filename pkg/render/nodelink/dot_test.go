package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/hpudiagram/pkg/diagram"
)

func TestToDOT_Basic(t *testing.T) {
	g := diagram.New(diagram.Attributes{Name: "basic"})
	_ = g.AddNode(diagram.Node{ID: "a", Label: "A"})
	_ = g.AddNode(diagram.Node{ID: "b", Label: "B"})
	_ = g.AddEdge(diagram.Edge{From: "a", To: "b"})

	dot := ToDOT(g)

	for _, want := range []string{
		`digraph "basic" {`,
		"rankdir=TB;",
		`"a" [label="A", shape=box];`,
		`"b" [label="B", shape=box];`,
		`"a" -> "b";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %q\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "splines") {
		t.Error("ToDOT() should omit splines when unset")
	}
}

func TestToDOT_DefaultName(t *testing.T) {
	dot := ToDOT(diagram.New(diagram.Attributes{}))
	if !strings.HasPrefix(dot, `digraph "G" {`) {
		t.Errorf("ToDOT() = %q, want default graph name G", dot)
	}
}

func TestToDOT_GraphAttributes(t *testing.T) {
	g := diagram.New(diagram.Attributes{Name: "g", Splines: "ortho", FontName: "Microsoft YaHei", FontSize: 10})
	dot := ToDOT(g)

	if !strings.Contains(dot, "splines=ortho;") {
		t.Error("ToDOT() missing splines")
	}
	if !strings.Contains(dot, `node [fontname="Microsoft YaHei", fontsize=10];`) {
		t.Errorf("ToDOT() missing node defaults\n%s", dot)
	}
}

func TestToDOT_Cluster(t *testing.T) {
	g := diagram.New(diagram.Attributes{Name: "g"})
	_ = g.AddNode(diagram.Node{ID: "before"})
	_ = g.AddCluster(diagram.Cluster{ID: "hpu", Label: "HPU", Fill: diagram.FillRoundedFilled, FillColor: "#f0f5ff", FontName: "Sans"})
	_ = g.AddNode(diagram.Node{ID: "inner", Label: "Inner", Cluster: "hpu"})
	_ = g.AddNode(diagram.Node{ID: "after"})

	dot := ToDOT(g)

	block := `  subgraph "cluster_hpu" {
    label="HPU";
    style="rounded,filled";
    fillcolor="#f0f5ff";
    fontname="Sans";
    "inner" [label="Inner", shape=box];
  }
`
	if !strings.Contains(dot, block) {
		t.Errorf("ToDOT() cluster block mismatch\n%s", dot)
	}
	before := strings.Index(dot, `"before" [`)
	cluster := strings.Index(dot, "subgraph")
	after := strings.Index(dot, `"after" [`)
	if before >= cluster || cluster >= after {
		t.Errorf("ToDOT() did not preserve declaration order: before=%d cluster=%d after=%d", before, cluster, after)
	}
}

func TestToDOT_NodeStyles(t *testing.T) {
	tests := []struct {
		name string
		node diagram.Node
		want string
	}{
		{
			name: "plaintext",
			node: diagram.Node{ID: "n", Label: "x", Shape: diagram.ShapePlainText},
			want: `"n" [label="x", shape=plaintext];`,
		},
		{
			name: "diamond filled",
			node: diagram.Node{ID: "n", Label: "x", Shape: diagram.ShapeDiamond, Fill: diagram.FillFilled, FillColor: "#fff8dc"},
			want: `"n" [label="x", shape=diamond, style="filled", fillcolor="#fff8dc"];`,
		},
		{
			name: "rounded",
			node: diagram.Node{ID: "n", Label: "x", Fill: diagram.FillRoundedFilled, FillColor: "#f0f8ff"},
			want: `"n" [label="x", shape=box, style="rounded,filled", fillcolor="#f0f8ff"];`,
		},
		{
			name: "color without fill is dropped",
			node: diagram.Node{ID: "n", Label: "x", FillColor: "#f0f8ff"},
			want: `"n" [label="x", shape=box];`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := diagram.New(diagram.Attributes{})
			_ = g.AddNode(tt.node)
			if dot := ToDOT(g); !strings.Contains(dot, tt.want) {
				t.Errorf("ToDOT() missing %q\n%s", tt.want, dot)
			}
		})
	}
}

func TestToDOT_EdgeStyles(t *testing.T) {
	g := diagram.New(diagram.Attributes{})
	_ = g.AddNode(diagram.Node{ID: "a"})
	_ = g.AddNode(diagram.Node{ID: "b"})
	_ = g.AddEdge(diagram.Edge{From: "a", To: "b", Line: diagram.LineInvisible})
	_ = g.AddEdge(diagram.Edge{From: "b", To: "a", Label: "back", Line: diagram.LineDashed, Unconstrained: true})

	dot := ToDOT(g)

	if !strings.Contains(dot, `"a" -> "b" [style=invis];`) {
		t.Errorf("ToDOT() missing invisible edge\n%s", dot)
	}
	if !strings.Contains(dot, `"b" -> "a" [label="back", style=dashed, constraint=false];`) {
		t.Errorf("ToDOT() missing unconstrained edge\n%s", dot)
	}
}

func TestToDOT_EscapesLabels(t *testing.T) {
	g := diagram.New(diagram.Attributes{})
	_ = g.AddNode(diagram.Node{ID: "q", Label: "say \"hi\"\n计算核"})

	dot := ToDOT(g)

	if !strings.Contains(dot, `label="say \"hi\"\n计算核"`) {
		t.Errorf("ToDOT() did not escape label\n%s", dot)
	}
}
