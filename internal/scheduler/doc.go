// Package scheduler decides the order in which cells are evaluated. Its
// primary role is to analyze the structure of a graph and hand the executor
// a topological order in which every cell comes after the cells it reads.
package scheduler
