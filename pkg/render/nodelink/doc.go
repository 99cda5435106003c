// Package nodelink renders diagram graphs as node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz, where
// nodes appear as boxes, diamonds or plain text connected by arrows, and
// clusters appear as boxed regions.
//
// # Usage
//
// Convert a graph to DOT format, then render it with an engine:
//
//	dot := nodelink.ToDOT(g)
//	engine, err := nodelink.NewEngine(nodelink.EngineEmbedded, nodelink.EngineOptions{})
//	png, err := engine.Render(ctx, dot, render.FormatPNG)
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via an [Engine]
//   - Saved and processed with external Graphviz tools
//   - Inspected with the "hpudiagram dot" command
//
// Invisible edges are written as style=invis and unconstrained edges as
// constraint=false, the two layout controls the dot engine offers.
//
// # Engines
//
//   - [EmbeddedEngine] uses [github.com/goccy/go-graphviz] for in-process
//     rendering. PDF and scaled PNG conversion requires librsvg (rsvg-convert).
//   - [ExecEngine] runs the Graphviz dot executable. It fails with
//     ENGINE_UNAVAILABLE when the executable cannot be found.
package nodelink
