// Package hpuatu builds the HPU/ATU architecture diagrams.
//
// # Diagrams
//
// Two independent graphs describe the same hardware: a hybrid pivot-selection
// unit (HPU) that hands pivot indices to an address-translation unit (ATU),
// which maps logical rows onto physical memory read by a compute core.
//
//   - [BuildDetailed] draws the HPU internals and the memory region as boxed
//     clusters, and spells out the compute core's lookup path step by step.
//   - [BuildSimplified] collapses the HPU internals and the lookup path into
//     multi-line labels.
//
// Both return a [diagram.Graph] that can be serialized with
// [nodelink.ToDOT] and rendered by any [nodelink.Engine].
//
// # Layout Edges
//
// The feedback from the compute core back to the ATU is drawn but marked
// unconstrained so it does not pull the ATU below the compute core. Invisible
// edges order nodes that would otherwise float to the same rank.
//
// [nodelink.ToDOT]: github.com/matzehuels/hpudiagram/pkg/render/nodelink#ToDOT
// [nodelink.Engine]: github.com/matzehuels/hpudiagram/pkg/render/nodelink#Engine
package hpuatu
