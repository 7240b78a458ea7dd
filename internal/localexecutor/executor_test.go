package localexecutor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/gridcalc/internal/builder"
	"github.com/vk/gridcalc/internal/cellerr"
	"github.com/vk/gridcalc/internal/cellid"
	"github.com/vk/gridcalc/internal/graph"
	"github.com/vk/gridcalc/internal/inmemorystore"
	"github.com/vk/gridcalc/internal/inmemorytopology"
	"github.com/vk/gridcalc/internal/node"
	"github.com/vk/gridcalc/internal/scheduler"
	"github.com/vk/gridcalc/internal/sheet"
	"github.com/vk/gridcalc/internal/testutil"
)

func run(t *testing.T, tbl *sheet.Table) (context.Context, graph.Graph) {
	t.Helper()
	ctx, _ := testutil.Context(t)
	ts := inmemorytopology.New()
	g := graph.New(ts, inmemorystore.New())
	_, err := builder.New().Build(ctx, tbl, ts, g)
	require.NoError(t, err)
	require.NoError(t, New(scheduler.New(g), g).Execute(ctx))
	return ctx, g
}

func result(t *testing.T, ctx context.Context, g graph.Graph, key string) (string, cellerr.Code) {
	t.Helper()
	addr := *cellid.MustParse(key)
	status, ok := g.NodeStatus(ctx, addr)
	require.True(t, ok)
	if status == node.StatusFailed {
		nodeErr, err := g.NodeError(ctx, addr)
		require.NoError(t, err)
		return "", cellerr.CodeOf(nodeErr)
	}
	require.Equal(t, node.StatusCompleted, status, key)
	v, err := g.Output(ctx, addr)
	require.NoError(t, err)
	return v.String(), ""
}

func TestExecute(t *testing.T) {
	testCases := []struct {
		name      string
		table     *sheet.Table
		cell      string
		wantValue string
		wantCode  cellerr.Code
	}{
		{
			name:      "arithmetic",
			table:     sheet.New(1, "A", "B", "C").Set("A1", "10").Set("B1", "20").SetFormula("C1", "=A1+B1"),
			cell:      "C1",
			wantValue: "30",
		},
		{
			name:     "division by zero",
			table:    sheet.New(1, "A", "B", "C").Set("A1", "10").Set("B1", "0").SetFormula("C1", "=A1/B1"),
			cell:     "C1",
			wantCode: cellerr.Div0,
		},
		{
			name:      "chain evaluated in dependency order",
			table:     sheet.New(1, "A", "B", "C").SetFormula("A1", "=B1+5").SetFormula("B1", "=C1*2").Set("C1", "10"),
			cell:      "A1",
			wantValue: "25",
		},
		{
			name:      "absent reference reads zero",
			table:     sheet.New(1, "A", "B").SetFormula("A1", "=B1+5"),
			cell:      "A1",
			wantValue: "5",
		},
		{
			name:      "blank literal reads zero",
			table:     sheet.New(1, "A", "B").Set("B1", "").SetFormula("A1", "=B1&\"x\""),
			cell:      "A1",
			wantValue: "0x",
		},
		{
			name:      "errored dependency reads zero",
			table:     sheet.New(1, "A", "B").SetFormula("A1", "=1/0").SetFormula("B1", "=A1+7"),
			cell:      "B1",
			wantValue: "7",
		},
		{
			name:      "cycle member read as zero",
			table:     sheet.New(2, "A", "B").SetFormula("A1", "=B1").SetFormula("B1", "=A1").SetFormula("A2", "=A1+1"),
			cell:      "A2",
			wantValue: "1",
		},
		{
			name:     "text literal in arithmetic",
			table:    sheet.New(1, "A", "B").Set("A1", `"hello"`).SetFormula("B1", "=A1*10"),
			cell:     "B1",
			wantCode: cellerr.Value,
		},
		{
			name:     "unsupported name",
			table:    sheet.New(1, "A").SetFormula("A1", "=pi"),
			cell:     "A1",
			wantCode: cellerr.Name,
		},
		{
			name:     "flagged cell keeps builder error",
			table:    sheet.New(1, "A").SetFormula("A1", "=Z99"),
			cell:     "A1",
			wantCode: cellerr.Ref,
		},
		{
			name:     "parse failure",
			table:    sheet.New(1, "A").SetFormula("A1", "=1+"),
			cell:     "A1",
			wantCode: cellerr.Formula,
		},
		{
			name:      "comparison",
			table:     sheet.New(1, "A", "B").Set("A1", "3").SetFormula("B1", "=A1>2"),
			cell:      "B1",
			wantValue: "TRUE",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, g := run(t, tc.table)
			got, code := result(t, ctx, g, tc.cell)
			assert.Equal(t, tc.wantCode, code)
			assert.Equal(t, tc.wantValue, got)
		})
	}
}

func TestExecute_LiteralsRecorded(t *testing.T) {
	ctx, g := run(t, sheet.New(1, "A", "B").Set("A1", "hello").SetFormula("B1", "=C1"))
	got, code := result(t, ctx, g, "A1")
	assert.Empty(t, code)
	assert.Equal(t, "hello", got)
}

func TestExecute_Cancelled(t *testing.T) {
	ctx, _ := testutil.Context(t)
	ctx, cancel := context.WithCancel(ctx)
	cancel()

	ts := inmemorytopology.New()
	g := graph.New(ts, inmemorystore.New())
	_, err := builder.New().Build(ctx, sheet.New(1, "A").Set("A1", "1"), ts, g)
	require.NoError(t, err)

	err = New(scheduler.New(g), g).Execute(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

type failingScheduler struct{}

func (failingScheduler) Order(context.Context) ([]*node.Node, error) {
	return nil, scheduler.ErrDeadlock
}

func TestExecute_SchedulerError(t *testing.T) {
	ctx, _ := testutil.Context(t)
	g := graph.New(inmemorytopology.New(), inmemorystore.New())
	err := New(failingScheduler{}, g).Execute(ctx)
	assert.ErrorIs(t, err, scheduler.ErrDeadlock)
}
