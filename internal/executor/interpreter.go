package executor

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vk/gridcalc/internal/cellerr"
	"github.com/vk/gridcalc/internal/cellid"
	"github.com/vk/gridcalc/internal/formula"
	"github.com/vk/gridcalc/internal/value"
)

// Resolver supplies the value of a referenced cell. It returns a Go error
// only when the lookup itself is impossible (e.g. the cell was not evaluated
// yet); an unusable reference is an error Value.
type Resolver interface {
	Resolve(ctx context.Context, addr cellid.Address) (value.Value, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, addr cellid.Address) (value.Value, error)

func (f ResolverFunc) Resolve(ctx context.Context, addr cellid.Address) (value.Value, error) {
	return f(ctx, addr)
}

// Interpreter evaluates parsed formulas bottom-up into typed values.
type Interpreter struct {
	resolver Resolver
}

// NewInterpreter returns an interpreter that reads cell references through r.
func NewInterpreter(r Resolver) *Interpreter {
	return &Interpreter{resolver: r}
}

// Eval evaluates a Program node. Formula-level failures (division by zero,
// type mismatches, unknown names, bad references) come back as error Values.
func (in *Interpreter) Eval(ctx context.Context, prog *formula.Node) (value.Value, error) {
	if prog == nil || prog.Kind != formula.Program {
		return value.Value{}, fmt.Errorf("expected a %s node", formula.Program)
	}
	return in.eval(ctx, prog.Expr())
}

func (in *Interpreter) eval(ctx context.Context, n *formula.Node) (value.Value, error) {
	if n == nil {
		return value.Value{}, errors.New("malformed tree: missing operand")
	}

	switch n.Kind {
	case formula.Group:
		return in.eval(ctx, n.Expr())

	case formula.Number:
		f, err := strconv.ParseFloat(n.Text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return value.Value{}, fmt.Errorf("number literal %q: %w", n.Text, err)
		}
		return value.Number(f), nil

	case formula.BoolToken:
		return value.Bool(strings.EqualFold(n.Text, "TRUE")), nil

	case formula.TextToken:
		return value.Text(n.Literal()), nil

	case formula.NameToken, formula.Call:
		return value.Error(cellerr.Name), nil

	case formula.CellToken:
		addr, err := cellid.Parse(n.Ref())
		if err != nil {
			return value.Error(cellerr.Ref), nil
		}
		return in.resolver.Resolve(ctx, *addr)

	case formula.Percentop:
		return in.unary(ctx, n, value.Percent)

	case formula.Plusop, formula.Minop:
		if len(n.Children) == 1 {
			if n.Kind == formula.Minop {
				return in.unary(ctx, n, value.Negate)
			}
			return in.unary(ctx, n, value.Plus)
		}
		if n.Kind == formula.Minop {
			return in.binary(ctx, n, value.Sub)
		}
		return in.binary(ctx, n, value.Add)

	case formula.Mulop:
		return in.binary(ctx, n, value.Mul)
	case formula.Divop:
		return in.binary(ctx, n, value.Div)
	case formula.Expop:
		return in.binary(ctx, n, value.Pow)
	case formula.Concatop:
		return in.binary(ctx, n, value.Concat)
	case formula.Eqop:
		return in.binary(ctx, n, value.Equal)
	case formula.Neqop:
		return in.binary(ctx, n, value.NotEqual)
	case formula.Gtop:
		return in.binary(ctx, n, value.Greater)
	case formula.Ltop:
		return in.binary(ctx, n, value.Less)
	case formula.Gteop:
		return in.binary(ctx, n, value.GreaterEq)
	case formula.Lteop:
		return in.binary(ctx, n, value.LessEq)

	case formula.Program, formula.OpenParen, formula.CloseParen, formula.KindInvalid:
		return value.Value{}, fmt.Errorf("malformed tree: unexpected %s node at %d", n.Kind, n.Span.From)
	}
	return value.Value{}, fmt.Errorf("malformed tree: unknown node kind %s", n.Kind)
}

func (in *Interpreter) unary(ctx context.Context, n *formula.Node, op func(value.Value) value.Value) (value.Value, error) {
	if len(n.Children) != 1 {
		return value.Value{}, fmt.Errorf("malformed tree: %s expects 1 operand, has %d", n.Kind, len(n.Children))
	}
	v, err := in.eval(ctx, n.Children[0])
	if err != nil {
		return value.Value{}, err
	}
	return op(v), nil
}

// binary evaluates the left operand first and stops there if it is an error.
func (in *Interpreter) binary(ctx context.Context, n *formula.Node, op func(a, b value.Value) value.Value) (value.Value, error) {
	if len(n.Children) != 2 {
		return value.Value{}, fmt.Errorf("malformed tree: %s expects 2 operands, has %d", n.Kind, len(n.Children))
	}
	left, err := in.eval(ctx, n.Children[0])
	if err != nil {
		return value.Value{}, err
	}
	if left.IsError() {
		return left, nil
	}
	right, err := in.eval(ctx, n.Children[1])
	if err != nil {
		return value.Value{}, err
	}
	return op(left, right), nil
}
