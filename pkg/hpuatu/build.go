package hpuatu

import (
	"fmt"

	"github.com/matzehuels/hpudiagram/pkg/diagram"
	"github.com/matzehuels/hpudiagram/pkg/fonts"
)

// Graph names written into the DOT source.
const (
	DetailedName   = "HPU_ATU_Architecture"
	SimplifiedName = "HPU_ATU_Simplified"
)

// Fill colours shared by both diagrams.
const (
	colorHPU     = "#f0f5ff"
	colorMode    = "#e6f3ff"
	colorATU     = "#f0f8ff"
	colorAddrMap = "#fff0f0"
	colorMemory  = "#f8f8f8"
	colorCompute = "#f5f0ff"
	colorQuery   = "#fff8dc"
	colorGetAddr = "#f0fff0"
)

// Options configures label text and typography.
type Options struct {
	FontName string  // Label font family; "" uses fonts.DefaultFamily
	FontSize float64 // Label size in points; 0 uses fonts.DefaultSize
	Lang     string  // Label language: "zh" (default) or "en"
}

func (o Options) withDefaults() (Options, Labels, error) {
	if o.FontName == "" {
		o.FontName = fonts.DefaultFamily
	}
	if o.FontSize <= 0 {
		o.FontSize = fonts.DefaultSize
	}
	labels, ok := LabelsFor(o.Lang)
	if !ok {
		return o, Labels{}, fmt.Errorf("unsupported label language %q", o.Lang)
	}
	return o, labels, nil
}

// builder wraps a graph and keeps the first error, so construction code can
// read as a flat list of declarations.
type builder struct {
	g   *diagram.Graph
	err error
}

func (b *builder) cluster(c diagram.Cluster) {
	if b.err == nil {
		b.err = b.g.AddCluster(c)
	}
}

func (b *builder) node(n diagram.Node) {
	if b.err == nil {
		b.err = b.g.AddNode(n)
	}
}

func (b *builder) edge(from, to string, opts ...edgeOpt) {
	if b.err != nil {
		return
	}
	e := diagram.Edge{From: from, To: to}
	for _, opt := range opts {
		opt(&e)
	}
	b.err = b.g.AddEdge(e)
}

func (b *builder) graph() (*diagram.Graph, error) {
	if b.err != nil {
		return nil, fmt.Errorf("build %s: %w", b.g.Name(), b.err)
	}
	return b.g, nil
}

type edgeOpt func(*diagram.Edge)

func dashed(e *diagram.Edge)        { e.Line = diagram.LineDashed }
func invisible(e *diagram.Edge)     { e.Line = diagram.LineInvisible }
func unconstrained(e *diagram.Edge) { e.Unconstrained = true }

func labelled(text string) edgeOpt {
	return func(e *diagram.Edge) { e.Label = text }
}

// BuildDetailed constructs the detailed architecture diagram: the HPU and the
// physical memory as boxed clusters, and the compute core's lookup path as
// separate steps.
func BuildDetailed(opts Options) (*diagram.Graph, error) {
	opts, l, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	b := &builder{g: diagram.New(diagram.Attributes{
		Name:     DetailedName,
		RankDir:  "TB",
		Splines:  "ortho",
		FontName: opts.FontName,
		FontSize: opts.FontSize,
	})}

	b.cluster(diagram.Cluster{ID: "hpu", Label: l.HPUCluster, Fill: diagram.FillRoundedFilled, FillColor: colorHPU, FontName: opts.FontName})
	b.node(diagram.Node{ID: "input", Label: l.Input, Shape: diagram.ShapePlainText, Cluster: "hpu"})
	b.node(diagram.Node{ID: "unified", Label: l.Unified, Cluster: "hpu"})
	b.node(diagram.Node{ID: "mode_a", Label: l.ModeA, Fill: diagram.FillFilled, FillColor: colorMode, Cluster: "hpu"})
	b.node(diagram.Node{ID: "mode_b", Label: l.ModeB, Fill: diagram.FillFilled, FillColor: colorMode, Cluster: "hpu"})
	b.node(diagram.Node{ID: "output", Label: l.Output, Shape: diagram.ShapePlainText, Cluster: "hpu"})

	b.node(diagram.Node{ID: "atu", Label: l.ATU, Fill: diagram.FillRoundedFilled, FillColor: colorATU})
	b.node(diagram.Node{ID: "addr_map", Label: l.AddrMap, Fill: diagram.FillFilled, FillColor: colorAddrMap})

	b.cluster(diagram.Cluster{ID: "memory", Label: l.MemoryCluster, Fill: diagram.FillRoundedFilled, FillColor: colorMemory})
	b.node(diagram.Node{ID: "memory", Label: l.MemoryStore, Cluster: "memory"})

	b.node(diagram.Node{ID: "compute", Label: l.Compute, Fill: diagram.FillRoundedFilled, FillColor: colorCompute})
	b.node(diagram.Node{ID: "request", Label: l.Request, Shape: diagram.ShapePlainText})
	b.node(diagram.Node{ID: "query", Label: l.Query, Shape: diagram.ShapeDiamond, Fill: diagram.FillFilled, FillColor: colorQuery})
	b.node(diagram.Node{ID: "get_addr", Label: l.GetAddr, Fill: diagram.FillFilled, FillColor: colorGetAddr})
	b.node(diagram.Node{ID: "read_data", Label: l.ReadData, Shape: diagram.ShapePlainText})

	// HPU internals. The invisible edges keep both modes above the output.
	b.edge("input", "unified")
	b.edge("unified", "mode_a", dashed)
	b.edge("unified", "mode_b", dashed)
	b.edge("mode_a", "output", invisible)
	b.edge("mode_b", "output", invisible)
	b.edge("unified", "output")

	// Main data flow.
	b.edge("output", "atu")
	b.edge("atu", "addr_map")
	b.edge("addr_map", "memory")
	b.edge("compute", "request")
	b.edge("request", "query")
	b.edge("query", "get_addr")
	b.edge("get_addr", "memory", labelled(l.QueryEdge), dashed)
	b.edge("memory", "read_data")
	b.edge("read_data", "compute")

	// Lookup requests loop back to the ATU without moving it down.
	b.edge("compute", "atu", labelled(l.FeedbackEdge), dashed, unconstrained)

	return b.graph()
}

// BuildSimplified constructs the simplified diagram, where the HPU internals
// and the lookup path are collapsed into multi-line labels.
func BuildSimplified(opts Options) (*diagram.Graph, error) {
	opts, l, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	b := &builder{g: diagram.New(diagram.Attributes{
		Name:     SimplifiedName,
		RankDir:  "TB",
		FontName: opts.FontName,
		FontSize: opts.FontSize,
	})}

	b.node(diagram.Node{ID: "hpu", Label: l.SimplifiedHPU, Fill: diagram.FillRoundedFilled, FillColor: colorHPU})
	b.node(diagram.Node{ID: "atu", Label: l.ATU, Fill: diagram.FillRoundedFilled, FillColor: colorATU})
	b.node(diagram.Node{ID: "memory", Label: l.SimplifiedMemory, Fill: diagram.FillRoundedFilled, FillColor: colorMemory})
	b.node(diagram.Node{ID: "compute", Label: l.Compute, Fill: diagram.FillRoundedFilled, FillColor: colorCompute})
	b.node(diagram.Node{ID: "process", Label: l.SimplifiedProcess, Shape: diagram.ShapePlainText})

	b.edge("hpu", "atu")
	b.edge("atu", "memory")
	b.edge("memory", "compute", invisible)
	b.edge("compute", "process")
	b.edge("process", "memory", unconstrained)

	return b.graph()
}
