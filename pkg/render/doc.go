// Package render provides output formats and format conversion for diagrams.
//
// # Overview
//
// This package contains the pieces of the rendering pipeline that do not
// depend on the layout engine:
//
//   - The supported output [Format] values and their file extensions
//   - Generic format conversion (SVG to PDF/PNG)
//   - Node-link rendering through Graphviz (in the [nodelink] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). The embedded Graphviz engine
// uses them for PDF output and for scaled PNG output.
//
//	svg, err := engine.Render(ctx, dot, render.FormatSVG)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [nodelink]: github.com/matzehuels/hpudiagram/pkg/render/nodelink
package render
