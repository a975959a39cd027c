// Package io reads and writes semantic graphs as JSON and YAML.
//
// # Format
//
// Each graph is one object, with node IDs referenced by edges and tops:
//
//	{
//	  "id": "20003012",
//	  "flavor": 2,
//	  "framework": "amr",
//	  "input": "The boy wants to go.",
//	  "tops": [0],
//	  "nodes": [
//	    {"id": 0, "label": "want-01"},
//	    {"id": 1, "label": "boy", "properties": ["quant"], "values": ["2"]}
//	  ],
//	  "edges": [
//	    {"source": 0, "target": 1, "label": "arg0", "normal": "arg0"}
//	  ]
//	}
//
// JSON streams hold one graph per line; [WriteJSON] writes a line and
// [ReadJSON] decodes until the end of the stream. YAML streams hold one
// document per graph.
//
// Decoding validates the graph: node IDs must be unique, edges and tops
// must reference existing nodes, and every property needs a value.
package io
