package graph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/gridcalc/internal/cellerr"
	"github.com/vk/gridcalc/internal/cellid"
	"github.com/vk/gridcalc/internal/inmemorystore"
	"github.com/vk/gridcalc/internal/inmemorytopology"
	"github.com/vk/gridcalc/internal/node"
	"github.com/vk/gridcalc/internal/sheet"
	"github.com/vk/gridcalc/internal/value"
)

// createTestGraph creates a graph manager with in-memory stores for testing
func createTestGraph() Graph {
	return New(inmemorytopology.New(), inmemorystore.New())
}

// addNodeToGraph adds a literal node through the graph's topology store.
// The Graph interface doesn't expose AddNode; that is the builder's job.
func addNodeToGraph(t *testing.T, g Graph, key string) *node.Node {
	t.Helper()
	n := node.CreateLiteralNode(cellid.MustParse(key), key, &sheet.Cell{Value: sheet.StringPtr("1")})
	require.NoError(t, g.(*Manager).topology.AddNode(context.Background(), n))
	return n
}

// addDependency records that 'to' reads 'from' through the topology store.
func addDependency(t *testing.T, g Graph, from, to string) {
	t.Helper()
	err := g.(*Manager).topology.AddDependency(context.Background(), *cellid.MustParse(from), *cellid.MustParse(to))
	require.NoError(t, err)
}

func addr(key string) cellid.Address { return *cellid.MustParse(key) }

func TestNode_GetExisting(t *testing.T) {
	g := createTestGraph()
	ctx := context.Background()

	testNode := addNodeToGraph(t, g, "A1")

	retrieved, ok := g.Node(ctx, addr("A1"))
	require.True(t, ok)
	assert.Same(t, testNode, retrieved)
}

func TestNode_NotFound(t *testing.T) {
	g := createTestGraph()
	ctx := context.Background()

	retrieved, ok := g.Node(ctx, addr("Z9"))
	assert.False(t, ok)
	assert.Nil(t, retrieved)

	status, ok := g.NodeStatus(ctx, addr("Z9"))
	assert.False(t, ok)
	assert.Equal(t, node.StatusPending, status)
}

func TestDependenciesAndDependents(t *testing.T) {
	g := createTestGraph()
	ctx := context.Background()

	a1 := addNodeToGraph(t, g, "A1")
	b1 := addNodeToGraph(t, g, "B1")
	c1 := addNodeToGraph(t, g, "C1")
	addDependency(t, g, "A1", "C1")
	addDependency(t, g, "B1", "C1")

	deps, err := g.DependenciesOf(ctx, addr("C1"))
	require.NoError(t, err)
	assert.Equal(t, []*node.Node{a1, b1}, deps)

	dependents, err := g.DependentsOf(ctx, addr("A1"))
	require.NoError(t, err)
	assert.Equal(t, []*node.Node{c1}, dependents)

	_, err = g.DependenciesOf(ctx, addr("Z9"))
	assert.Error(t, err)
	_, err = g.DependentsOf(ctx, addr("Z9"))
	assert.Error(t, err)

	assert.Len(t, g.AllNodes(ctx), 3)
}

func TestStateTransitions(t *testing.T) {
	g := createTestGraph()
	ctx := context.Background()
	addNodeToGraph(t, g, "A1")
	addNodeToGraph(t, g, "B1")

	status, ok := g.NodeStatus(ctx, addr("A1"))
	require.True(t, ok)
	assert.Equal(t, node.StatusPending, status)

	require.NoError(t, g.MarkRunning(ctx, addr("A1")))
	status, _ = g.NodeStatus(ctx, addr("A1"))
	assert.Equal(t, node.StatusRunning, status)

	require.NoError(t, g.MarkCompleted(ctx, addr("A1"), value.Number(42)))
	status, _ = g.NodeStatus(ctx, addr("A1"))
	assert.Equal(t, node.StatusCompleted, status)
	out, err := g.Output(ctx, addr("A1"))
	require.NoError(t, err)
	assert.Equal(t, "42", out.String())

	require.NoError(t, g.MarkFailed(ctx, addr("B1"), cellerr.New(cellerr.Ref, "cycle")))
	status, _ = g.NodeStatus(ctx, addr("B1"))
	assert.Equal(t, node.StatusFailed, status)
	nodeErr, err := g.NodeError(ctx, addr("B1"))
	require.NoError(t, err)
	assert.Equal(t, cellerr.Ref, cellerr.CodeOf(nodeErr))
}
