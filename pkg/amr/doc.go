// Package amr converts between AMR penman text and semantic graphs.
//
// # Reading
//
// A [Reader] splits a penman stream into blank-line separated blocks
// ([BlockReader]), parses each block body with package penman, normalizes
// the block id ([ConvertID]) and builds the graph with [Convert]:
//
//	r := amr.NewReader(f, amr.ReadOptions{Alignment: alignFile})
//	for {
//	    g, overlay, err := r.Next()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    ...
//	}
//
// An optional alignment stream is read in lockstep with the graphs by an
// [AlignmentSource]. Its blocks are paired with graph blocks by position;
// a block whose alignment id disagrees with the graph id gets no alignment.
// Alignments are returned as an overlay graph sharing node IDs with the
// semantic graph: node spans become overlay node labels and property spans
// become overlay properties, both formatted as "(0,1,2)".
//
// # Edge Labels
//
// Edges keep the direction and label they have in the text. Labels written
// in inverse form ("ARG0-of", "mod") additionally record the label of the
// forward sense, see [NormalizeLabel].
//
// # Writing
//
// [Write] and [Format] print a graph as an indented penman tree rooted at its
// top node, with back-references for reentrant nodes. Output is
// deterministic for a given graph.
package amr
