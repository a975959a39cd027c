// Package pkg holds the penman libraries.
//
//   - [penman]: concrete syntax parser producing parse records
//   - [amr]: alignment index, block reader, id normalizer, graph converter,
//     reader pipeline and penman serializer
//   - [graph]: the labeled directed graph both directions work on
//   - [io]: JSON and YAML graph streams
//   - [nodelink]: Graphviz node-link diagrams
//   - [config], [errors], [buildinfo]: ambient support
//
// Typical flow:
//
//	penman text (+ alignment) → amr.Reader → graph.Graph → io / nodelink
//	graph.Graph → amr.Write → penman text
//
// [penman]: github.com/matzehuels/penman/pkg/penman
// [amr]: github.com/matzehuels/penman/pkg/amr
// [graph]: github.com/matzehuels/penman/pkg/graph
// [io]: github.com/matzehuels/penman/pkg/io
// [nodelink]: github.com/matzehuels/penman/pkg/render/nodelink
// [config]: github.com/matzehuels/penman/pkg/config
// [errors]: github.com/matzehuels/penman/pkg/errors
// [buildinfo]: github.com/matzehuels/penman/pkg/buildinfo
package pkg
