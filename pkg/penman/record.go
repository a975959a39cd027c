package penman

// TopKey marks the root node in its attribute list.
const TopKey = "TOP"

// Attribute is a constant-valued property of a node.
type Attribute struct {
	Key   string
	Value string
}

// Relation is a labeled link to another node, identified by its variable.
type Relation struct {
	Label  string
	Target string
}

// Record is the abstract parse of one penman graph. All four slices have one
// entry per node, in the order the nodes are defined in the text.
type Record struct {
	Nodes      []string
	Values     []string
	Attributes [][]Attribute
	Relations  [][]Relation
}

// Len returns the number of nodes.
func (r *Record) Len() int { return len(r.Nodes) }

// RelationCount returns the total number of relations across all nodes.
func (r *Record) RelationCount() int {
	n := 0
	for _, rs := range r.Relations {
		n += len(rs)
	}
	return n
}
