/*
Package builder turns a table snapshot into the evaluation graph.

The builder walks the table's cells once, in row-major order, and for each cell:

 1. Node Creation: a cell without a formula becomes a literal node. A formula
    cell is parsed and becomes a formula node; if parsing fails the cell is
    flagged with the generic formula error and gets no edges.

 2. Reference Linking: every cell reference in the parsed formula is resolved
    to a cell key and checked, in this order:
    a. If the edge referenced -> current would close a cycle, the edge is
    rejected. The current cell and every cell on the existing chain from it
    back to the referenced cell are flagged with the reference error.
    b. If the reference lies inside the grid bounds, the referenced node is
    synthesized when the table does not supply it, and the edge is added.
    c. Otherwise the reference is out of range and the current cell is
    flagged with the reference error. No node and no edge are created.

A referenced cell that appears later in the table replaces its synthesized
placeholder, keeping the edges already attached to it.

Once every cell is linked, the topology is checked for cycles as a whole. A
cycle at that point means a store let a bad edge through, and Build fails.

The builder never evaluates formulas. Flags are recorded in the node store
through the graph, and the executor leaves flagged cells alone.
*/
package builder
