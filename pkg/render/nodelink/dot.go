package nodelink

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/hpudiagram/pkg/diagram"
)

// clusterPrefix marks a subgraph as a boxed cluster for the dot layout.
const clusterPrefix = "cluster_"

// ToDOT converts a diagram graph to Graphviz DOT format.
// The resulting DOT string can be rendered with any [Engine].
//
// Clusters are written as "cluster_<id>" subgraphs at the position they were
// declared. Node and edge attributes are only written when they differ from
// the Graphviz defaults, so plain boxes and solid arrows stay terse.
func ToDOT(g *diagram.Graph) string {
	var buf bytes.Buffer
	attrs := g.Attributes()

	name := attrs.Name
	if name == "" {
		name = "G"
	}
	fmt.Fprintf(&buf, "digraph %q {\n", name)
	fmt.Fprintf(&buf, "  rankdir=%s;\n", attrs.RankDir)
	if attrs.Splines != "" {
		fmt.Fprintf(&buf, "  splines=%s;\n", attrs.Splines)
	}
	if defaults := nodeDefaults(attrs); len(defaults) > 0 {
		fmt.Fprintf(&buf, "  node [%s];\n", strings.Join(defaults, ", "))
	}
	buf.WriteString("\n")

	g.Walk(
		func(c diagram.Cluster, members []diagram.Node) { writeCluster(&buf, c, members) },
		func(n diagram.Node) { writeNode(&buf, "  ", n) },
	)

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q%s;\n", e.From, e.To, attrList(edgeAttrs(e)))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeDefaults(a diagram.Attributes) []string {
	var attrs []string
	if a.FontName != "" {
		attrs = append(attrs, fmt.Sprintf("fontname=%q", a.FontName))
	}
	if a.FontSize > 0 {
		attrs = append(attrs, "fontsize="+strconv.FormatFloat(a.FontSize, 'f', -1, 64))
	}
	return attrs
}

func writeCluster(buf *bytes.Buffer, c diagram.Cluster, members []diagram.Node) {
	fmt.Fprintf(buf, "  subgraph %q {\n", clusterPrefix+c.ID)
	if c.Label != "" {
		fmt.Fprintf(buf, "    label=%q;\n", c.Label)
	}
	if style := c.Fill.String(); style != "" {
		fmt.Fprintf(buf, "    style=%q;\n", style)
		if c.FillColor != "" {
			fmt.Fprintf(buf, "    fillcolor=%q;\n", c.FillColor)
		}
	}
	if c.FontName != "" {
		fmt.Fprintf(buf, "    fontname=%q;\n", c.FontName)
	}
	for _, n := range members {
		writeNode(buf, "    ", n)
	}
	buf.WriteString("  }\n")
}

func writeNode(buf *bytes.Buffer, indent string, n diagram.Node) {
	fmt.Fprintf(buf, "%s%q%s;\n", indent, n.ID, attrList(nodeAttrs(n)))
}

func nodeAttrs(n diagram.Node) []string {
	attrs := []string{fmt.Sprintf("label=%q", n.Label), "shape=" + n.Shape.String()}
	if style := n.Fill.String(); style != "" {
		attrs = append(attrs, fmt.Sprintf("style=%q", style))
		if n.FillColor != "" {
			attrs = append(attrs, fmt.Sprintf("fillcolor=%q", n.FillColor))
		}
	}
	return attrs
}

func edgeAttrs(e diagram.Edge) []string {
	var attrs []string
	if e.Label != "" {
		attrs = append(attrs, fmt.Sprintf("label=%q", e.Label))
	}
	if style := e.Line.String(); style != "" {
		attrs = append(attrs, "style="+style)
	}
	if e.Unconstrained {
		attrs = append(attrs, "constraint=false")
	}
	return attrs
}

func attrList(attrs []string) string {
	if len(attrs) == 0 {
		return ""
	}
	return " [" + strings.Join(attrs, ", ") + "]"
}
