// Package executor defines the evaluation engine interface and the formula
// interpreter it runs for each cell.
package executor

import "context"

// Executor evaluates every formula cell of a built graph, in dependency order,
// recording each cell's value or cell error in the graph.
//
// Execute returns an error only for defects in the graph or evaluator itself;
// user formula problems end up as cell errors.
type Executor interface {
	Execute(ctx context.Context) error
}
