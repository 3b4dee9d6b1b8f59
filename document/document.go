// Package document defines the compiled query tree: a Document of Fields,
// their ArgLists and Args, with per-node error markers and validity flags
// fixed at construction time.
//
// All nodes are built strictly bottom-up and never mutated afterwards. The
// derived flags (HasInvalidChild, HasInvalidArg, HasError) are computed once
// from already-built children, so checking validity at any node is O(1).
package document

import (
	"fmt"
	"strings"
)

// Operation is the kind of a compiled document.
type Operation string

const (
	Query    Operation = "query"
	Mutation Operation = "mutation"
)

// Document is the root of one compiled operation. Each compilation produces
// exactly one root field.
type Document struct {
	Kind   Operation
	Fields []*Field
}

// NewDocument builds a document from already-compiled root fields.
func NewDocument(kind Operation, fields []*Field) *Document {
	return &Document{Kind: kind, Fields: fields}
}

// HasErrors reports whether any node anywhere in the tree carries an error.
func (d *Document) HasErrors() bool {
	for _, f := range d.Fields {
		if f.Err != nil || f.HasInvalidChild() || f.HasInvalidArg() {
			return true
		}
	}
	return false
}

// PathElement is a string name or an int list index.
type PathElement any

// Path addresses a node in the caller's selection value.
type Path []PathElement

// Child returns a new Path with elem appended. The receiver is not shared
// with the result, so diagnostics built from sibling branches never alias.
func (p Path) Child(elem PathElement) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = elem
	return out
}

// String renders the path in dotted form, e.g. "select.posts.where.id.0".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, e := range p {
		parts[i] = fmt.Sprint(e)
	}
	return strings.Join(parts, ".")
}
