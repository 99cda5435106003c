// Package pkg provides the libraries behind hpudiagram.
//
// # Overview
//
// hpudiagram draws the architecture of the HPU (Hybrid Pivot-selection Unit)
// and the ATU (Address Translation Unit) that serves the compute core's
// logical-to-physical row lookups. The pkg directory is organized as:
//
//  1. [diagram] - Graph description (nodes, edges, clusters, layout hints)
//  2. [hpuatu] - The detailed and simplified HPU/ATU diagrams
//  3. [render] and [render/nodelink] - DOT serialization and Graphviz engines
//  4. [pipeline] - Orchestration (build → serialize → render → write)
//  5. [errors], [fonts], [observability], [buildinfo] - Supporting packages
//
// # Architecture
//
// The data flow for one diagram:
//
//	hpuatu.BuildDetailed / BuildSimplified
//	         ↓
//	    *diagram.Graph
//	         ↓
//	    nodelink.ToDOT (DOT source)
//	         ↓
//	    nodelink.Engine (embedded Graphviz or the dot executable)
//	         ↓
//	    PNG/SVG/JPG/PDF file
//
// # Quick Start
//
//	g, err := hpuatu.BuildDetailed(hpuatu.Options{Lang: hpuatu.LangEnglish})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	engine, _ := nodelink.NewEngine(nodelink.EngineEmbedded, nodelink.EngineOptions{})
//	svg, err := engine.Render(ctx, nodelink.ToDOT(g), render.FormatSVG)
package pkg
