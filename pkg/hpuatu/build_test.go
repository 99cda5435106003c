package hpuatu

import (
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/hpudiagram/pkg/diagram"
	"github.com/matzehuels/hpudiagram/pkg/fonts"
)

type buildFunc func(Options) (*diagram.Graph, error)

var builders = []struct {
	name  string
	build buildFunc
}{
	{"detailed", BuildDetailed},
	{"simplified", BuildSimplified},
}

func mustBuild(t *testing.T, build buildFunc, opts Options) *diagram.Graph {
	t.Helper()
	g, err := build(opts)
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	return g
}

func TestEdgesReferenceDeclaredNodes(t *testing.T) {
	for _, b := range builders {
		t.Run(b.name, func(t *testing.T) {
			g := mustBuild(t, b.build, Options{})
			ids := make(map[string]bool)
			for _, id := range g.NodeIDs() {
				ids[id] = true
			}
			for _, e := range g.Edges() {
				if !ids[e.From] || !ids[e.To] {
					t.Errorf("edge %s -> %s references an undeclared node", e.From, e.To)
				}
			}
			if err := g.Validate(); err != nil {
				t.Errorf("Validate() error: %v", err)
			}
		})
	}
}

func TestNodeIDsAreDistinct(t *testing.T) {
	for _, b := range builders {
		t.Run(b.name, func(t *testing.T) {
			g := mustBuild(t, b.build, Options{})
			seen := make(map[string]bool)
			for _, id := range g.NodeIDs() {
				if seen[id] {
					t.Errorf("duplicate node id %q", id)
				}
				seen[id] = true
			}
		})
	}
}

type edgeKey struct {
	from, to      string
	line          diagram.LineStyle
	unconstrained bool
	labelled      bool
}

func keyOf(e diagram.Edge) edgeKey {
	return edgeKey{e.From, e.To, e.Line, e.Unconstrained, e.Label != ""}
}

func TestDetailedEdgeSet(t *testing.T) {
	g := mustBuild(t, BuildDetailed, Options{})

	want := []edgeKey{
		{"input", "unified", diagram.LineSolid, false, false},
		{"unified", "mode_a", diagram.LineDashed, false, false},
		{"unified", "mode_b", diagram.LineDashed, false, false},
		{"mode_a", "output", diagram.LineInvisible, false, false},
		{"mode_b", "output", diagram.LineInvisible, false, false},
		{"unified", "output", diagram.LineSolid, false, false},
		{"output", "atu", diagram.LineSolid, false, false},
		{"atu", "addr_map", diagram.LineSolid, false, false},
		{"addr_map", "memory", diagram.LineSolid, false, false},
		{"compute", "request", diagram.LineSolid, false, false},
		{"request", "query", diagram.LineSolid, false, false},
		{"query", "get_addr", diagram.LineSolid, false, false},
		{"get_addr", "memory", diagram.LineDashed, false, true},
		{"memory", "read_data", diagram.LineSolid, false, false},
		{"read_data", "compute", diagram.LineSolid, false, false},
		{"compute", "atu", diagram.LineDashed, true, true},
	}

	var got []edgeKey
	for _, e := range g.Edges() {
		got = append(got, keyOf(e))
	}
	if !slices.Equal(got, want) {
		t.Errorf("edge set mismatch\n got: %v\nwant: %v", got, want)
	}
}

func TestDetailedLayoutHints(t *testing.T) {
	g := mustBuild(t, BuildDetailed, Options{})

	var invisible, unconstrained []diagram.Edge
	for _, e := range g.Edges() {
		if e.IsLayoutOnly() {
			invisible = append(invisible, e)
		}
		if e.Unconstrained {
			unconstrained = append(unconstrained, e)
		}
	}

	if len(invisible) != 2 {
		t.Errorf("invisible edges = %d, want 2", len(invisible))
	}
	if len(unconstrained) != 1 {
		t.Fatalf("unconstrained edges = %d, want 1", len(unconstrained))
	}
	if fb := unconstrained[0]; fb.From != "compute" || fb.To != "atu" {
		t.Errorf("feedback edge = %s -> %s, want compute -> atu", fb.From, fb.To)
	}
}

func TestDetailedClusters(t *testing.T) {
	g := mustBuild(t, BuildDetailed, Options{})

	clusters := g.Clusters()
	if len(clusters) != 2 {
		t.Fatalf("clusters = %d, want 2", len(clusters))
	}
	if got := g.Members("hpu"); !slices.Equal(got, []string{"input", "unified", "mode_a", "mode_b", "output"}) {
		t.Errorf("hpu members = %v", got)
	}
	if got := g.Members("memory"); !slices.Equal(got, []string{"memory"}) {
		t.Errorf("memory members = %v", got)
	}
	if c, _ := g.Cluster("hpu"); c.Fill != diagram.FillRoundedFilled || c.FillColor != colorHPU {
		t.Errorf("hpu cluster style = %v %q", c.Fill, c.FillColor)
	}
	if g.Attributes().Splines != "ortho" {
		t.Errorf("Splines = %q, want ortho", g.Attributes().Splines)
	}
}

func TestDetailedShapes(t *testing.T) {
	g := mustBuild(t, BuildDetailed, Options{})

	tests := []struct {
		id    string
		shape diagram.Shape
	}{
		{"input", diagram.ShapePlainText},
		{"unified", diagram.ShapeBox},
		{"query", diagram.ShapeDiamond},
		{"read_data", diagram.ShapePlainText},
	}
	for _, tt := range tests {
		n, ok := g.Node(tt.id)
		if !ok {
			t.Errorf("node %q missing", tt.id)
			continue
		}
		if n.Shape != tt.shape {
			t.Errorf("node %q shape = %v, want %v", tt.id, n.Shape, tt.shape)
		}
	}
}

func TestSimplifiedIsSmaller(t *testing.T) {
	detailed := mustBuild(t, BuildDetailed, Options{})
	simplified := mustBuild(t, BuildSimplified, Options{})

	if simplified.NodeCount() >= detailed.NodeCount() {
		t.Errorf("simplified nodes = %d, detailed = %d; want fewer", simplified.NodeCount(), detailed.NodeCount())
	}
	if len(simplified.Clusters()) != 0 {
		t.Errorf("simplified clusters = %d, want 0", len(simplified.Clusters()))
	}
}

func TestSimplifiedFlowOrder(t *testing.T) {
	g := mustBuild(t, BuildSimplified, Options{})

	flow := []string{"hpu", "atu", "memory", "compute", "process", "memory"}
	for i := 0; i+1 < len(flow); i++ {
		if !slices.Contains(g.Successors(flow[i], true), flow[i+1]) {
			t.Errorf("missing flow edge %s -> %s", flow[i], flow[i+1])
		}
	}

	var invisible, unconstrained int
	for _, e := range g.Edges() {
		if e.IsLayoutOnly() {
			invisible++
		}
		if e.Unconstrained {
			unconstrained++
			if e.From != "process" || e.To != "memory" {
				t.Errorf("unconstrained edge = %s -> %s, want process -> memory", e.From, e.To)
			}
		}
	}
	if invisible != 1 {
		t.Errorf("invisible edges = %d, want 1", invisible)
	}
	if unconstrained != 1 {
		t.Errorf("unconstrained edges = %d, want 1", unconstrained)
	}
}

func TestSimplifiedCollapsesHPU(t *testing.T) {
	g := mustBuild(t, BuildSimplified, Options{})
	n, ok := g.Node("hpu")
	if !ok {
		t.Fatal("hpu node missing")
	}
	for _, part := range []string{chinese.ModeA, chinese.ModeB, "\n"} {
		if !strings.Contains(n.Label, part) {
			t.Errorf("hpu label missing %q", part)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	for _, b := range builders {
		t.Run(b.name, func(t *testing.T) {
			g := mustBuild(t, b.build, Options{})
			attrs := g.Attributes()
			if attrs.FontName != fonts.DefaultFamily {
				t.Errorf("FontName = %q, want %q", attrs.FontName, fonts.DefaultFamily)
			}
			if attrs.FontSize != fonts.DefaultSize {
				t.Errorf("FontSize = %v, want %v", attrs.FontSize, fonts.DefaultSize)
			}
			if attrs.RankDir != "TB" {
				t.Errorf("RankDir = %q, want TB", attrs.RankDir)
			}
		})
	}
}

func TestOptionsOverride(t *testing.T) {
	g := mustBuild(t, BuildDetailed, Options{FontName: "Noto Sans CJK SC", FontSize: 12, Lang: LangEnglish})
	if g.Attributes().FontName != "Noto Sans CJK SC" {
		t.Errorf("FontName = %q", g.Attributes().FontName)
	}
	if g.Attributes().FontSize != 12 {
		t.Errorf("FontSize = %v", g.Attributes().FontSize)
	}
	if c, _ := g.Cluster("hpu"); c.FontName != "Noto Sans CJK SC" {
		t.Errorf("cluster FontName = %q", c.FontName)
	}
	if n, _ := g.Node("atu"); n.Label != english.ATU {
		t.Errorf("atu label = %q, want %q", n.Label, english.ATU)
	}
}

func TestUnsupportedLanguage(t *testing.T) {
	for _, b := range builders {
		if _, err := b.build(Options{Lang: "fr"}); err == nil {
			t.Errorf("%s: expected error for unsupported language", b.name)
		}
	}
}

func TestLabelSetsAreComplete(t *testing.T) {
	for _, lang := range Languages {
		l, ok := LabelsFor(lang)
		if !ok {
			t.Fatalf("LabelsFor(%q) not supported", lang)
		}
		fields := []string{
			l.HPUCluster, l.Input, l.Unified, l.ModeA, l.ModeB, l.Output,
			l.ATU, l.AddrMap, l.MemoryCluster, l.MemoryStore,
			l.Compute, l.Request, l.Query, l.GetAddr, l.ReadData,
			l.QueryEdge, l.FeedbackEdge,
			l.SimplifiedHPU, l.SimplifiedMemory, l.SimplifiedProcess,
			l.DetailedSaved, l.SimplifiedSaved,
		}
		for i, f := range fields {
			if f == "" {
				t.Errorf("%s: label field %d is empty", lang, i)
			}
		}
		for _, msg := range []string{l.DetailedSaved, l.SimplifiedSaved} {
			if !strings.Contains(msg, "%s") {
				t.Errorf("%s: confirmation %q has no file name verb", lang, msg)
			}
		}
	}
}

func TestLabelsForReturnsCopy(t *testing.T) {
	l, _ := LabelsFor(LangEnglish)
	l.ATU = "changed"

	again, _ := LabelsFor(LangEnglish)
	if again.ATU != english.ATU || again.ATU == "changed" {
		t.Errorf("ATU label = %q after modifying a returned copy", again.ATU)
	}

	g := mustBuild(t, BuildDetailed, Options{Lang: LangEnglish})
	if n, _ := g.Node("atu"); n.Label == "changed" {
		t.Error("builder picked up a modified label copy")
	}
}
