package formula

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferences(t *testing.T) {
	prog, err := Parse("=a1+B2*(A1-C3)&SUM(D4)")
	require.NoError(t, err)

	var keys []string
	for _, r := range References(prog) {
		keys = append(keys, r.Ref())
	}
	assert.Equal(t, []string{"A1", "B2", "A1", "C3", "D4"}, keys)
}

func TestWalk_SkipChildren(t *testing.T) {
	prog, err := Parse("=(A1+B1)*C1")
	require.NoError(t, err)

	var seen []Kind
	Walk(prog, func(n *Node) bool {
		seen = append(seen, n.Kind)
		return n.Kind != Group
	})
	assert.NotContains(t, seen, Plusop)
	assert.Contains(t, seen, CellToken)
}

func TestDump(t *testing.T) {
	prog, err := Parse("=A1+1")
	require.NoError(t, err)
	want := "Program [0,5)\n" +
		"  Eqop [0,1) \"=\"\n" +
		"  Plusop [1,5)\n" +
		"    CellToken [1,3) \"A1\"\n" +
		"    Number [4,5) \"1\"\n"
	assert.Equal(t, want, Dump(prog))
}

func TestDump_LongChainStaysLinear(t *testing.T) {
	const terms = 5000
	src := "=1" + strings.Repeat("+1", terms-1)
	prog, err := Parse(src)
	require.NoError(t, err)

	out := Dump(prog)
	lines := strings.Count(out, "\n")
	// Program, Eqop, one Plusop per "+" and one Number per term.
	assert.Equal(t, 2*terms+1, lines)
	assert.Less(t, len(out), lines*(2*maxIndent+40))
	assert.Contains(t, out, fmt.Sprintf("(%d) Number", terms))
	assert.NotContains(t, out, "+1+1")
}

func TestKind_String(t *testing.T) {
	for k := KindInvalid + 1; k < kindCount; k++ {
		assert.NotEqual(t, "", k.String())
		assert.NotContains(t, k.String(), "Kind(")
	}
	assert.Equal(t, "Kind(200)", Kind(200).String())
}
