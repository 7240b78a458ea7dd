// Package node defines a single vertex of the evaluation graph: one grid
// cell together with what the builder learned about it.
package node

import (
	"github.com/vk/gridcalc/internal/cellid"
	"github.com/vk/gridcalc/internal/formula"
	"github.com/vk/gridcalc/internal/sheet"
	"github.com/vk/gridcalc/internal/value"
)

// Node is a single vertex in the evaluation graph, representing one cell.
// A Node is immutable once the builder has added it to the topology; the
// outcome of evaluating it lives in the node store.
type Node struct {
	// id is the normalized, structured address of the cell.
	id *cellid.Address
	// Key is the cell key as spelled in the input table ("a1" or "A1").
	// Synthesized nodes use the normalized key.
	Key string
	// Type distinguishes literal, formula and synthesized cells.
	Type NodeType

	// Cell is the input cell. It is nil for synthesized nodes.
	Cell *sheet.Cell
	// Literal is the parsed value of a literal cell.
	Literal value.Value
	// Program is the parsed formula. It is nil for non-formula cells and
	// for formulas that failed to parse.
	Program *formula.Node
	// ParseErr holds the parse failure of a formula cell, if any.
	ParseErr error
}

// NodeType distinguishes between different kinds of nodes in the graph.
type NodeType int

const (
	// LiteralNode is a table entry without a formula.
	LiteralNode NodeType = iota
	// FormulaNode is a table entry whose value is computed.
	FormulaNode
	// SynthesizedNode is a referenced, in-bounds cell absent from the table.
	// It holds a blank value.
	SynthesizedNode
)

func (t NodeType) String() string {
	switch t {
	case LiteralNode:
		return "literal"
	case FormulaNode:
		return "formula"
	case SynthesizedNode:
		return "synthesized"
	}
	return "unknown"
}

// Status represents the evaluation state of a node.
type Status int32

const (
	// StatusPending indicates the node has not been evaluated yet.
	StatusPending Status = iota
	// StatusRunning indicates the node is currently being evaluated.
	StatusRunning
	// StatusCompleted indicates the node holds a value.
	StatusCompleted
	// StatusFailed indicates the node holds a cell error.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// ID returns the canonical string representation of the node's address.
func (n *Node) ID() string {
	return n.id.String()
}

// Address returns the structured address of the node.
func (n *Node) Address() *cellid.Address {
	return n.id
}

// IsPlaceholder reports whether the node was synthesized for a reference and
// may still be replaced by the real table entry.
func (n *Node) IsPlaceholder() bool {
	return n.Type == SynthesizedNode
}

// CreateLiteralNode builds the node for a table entry without a formula.
func CreateLiteralNode(id *cellid.Address, key string, cell *sheet.Cell) *Node {
	return &Node{
		id:      id,
		Key:     key,
		Type:    LiteralNode,
		Cell:    cell,
		Literal: value.ParseLiteral(cell.Text()),
	}
}

// CreateFormulaNode parses the cell's formula and builds its node. A parse
// failure is recorded on the node rather than returned.
func CreateFormulaNode(id *cellid.Address, key string, cell *sheet.Cell) *Node {
	n := &Node{
		id:   id,
		Key:  key,
		Type: FormulaNode,
		Cell: cell,
	}
	n.Program, n.ParseErr = formula.Parse(cell.Formula)
	return n
}

// CreateSynthesizedNode builds the blank placeholder for a referenced cell.
func CreateSynthesizedNode(id *cellid.Address) *Node {
	return &Node{
		id:      id,
		Key:     id.String(),
		Type:    SynthesizedNode,
		Literal: value.Blank(),
	}
}
