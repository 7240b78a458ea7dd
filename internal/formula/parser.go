package formula

import (
	"strings"
)

// maxDepth bounds expression nesting so hostile input cannot exhaust the stack.
const maxDepth = 256

type parser struct {
	src   string
	toks  []token
	pos   int
	depth int
}

// IsFormula reports whether text is formula source, i.e. starts with "=".
func IsFormula(text string) bool {
	return strings.HasPrefix(text, "=")
}

// Parse parses formula source that begins with "=". On failure the returned
// error is a *SyntaxError.
func Parse(src string) (*Node, error) {
	if !IsFormula(src) {
		return nil, syntaxErrorf(0, `formula must start with "="`)
	}
	toks, err := lex(src[1:])
	if err != nil {
		return nil, shift(err, 1)
	}
	for i := range toks {
		toks[i].span.From++
		toks[i].span.To++
	}
	p := &parser{src: src, toks: toks}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.typ != tokEOF {
		return nil, syntaxErrorf(t.span.From, "unexpected %s %q", t.typ, t.text)
	}
	marker := &Node{Kind: Eqop, Span: Span{0, 1}, Text: "="}
	return p.node(Program, marker, expr), nil
}

func shift(err error, by int) error {
	if se, ok := err.(*SyntaxError); ok {
		return &SyntaxError{Pos: se.Pos + by, Msg: se.Msg}
	}
	return err
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.typ != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) leaf(kind Kind, t token) *Node {
	return &Node{Kind: kind, Span: t.span, Text: t.text}
}

// node builds an interior node spanning its first to last child.
func (p *parser) node(kind Kind, children ...*Node) *Node {
	span := Span{children[0].Span.From, children[len(children)-1].Span.To}
	return &Node{Kind: kind, Span: span, Text: p.src[span.From:span.To], Children: children}
}

func (p *parser) acceptOp(ops map[string]Kind) (token, Kind, bool) {
	t := p.peek()
	if t.typ != tokOp {
		return t, KindInvalid, false
	}
	kind, ok := ops[t.text]
	if !ok {
		return t, KindInvalid, false
	}
	p.next()
	return t, kind, true
}

var (
	compareOps  = map[string]Kind{"=": Eqop, "<>": Neqop, ">": Gtop, "<": Ltop, ">=": Gteop, "<=": Lteop}
	concatOps   = map[string]Kind{"&": Concatop}
	additiveOps = map[string]Kind{"+": Plusop, "-": Minop}
	termOps     = map[string]Kind{"*": Mulop, "/": Divop}
	powerOps    = map[string]Kind{"^": Expop}
)

func (p *parser) parseExpr() (*Node, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxDepth {
		return nil, syntaxErrorf(p.peek().span.From, "expression nested too deeply")
	}
	return p.parseBinary(compareOps, p.parseConcat)
}

func (p *parser) parseConcat() (*Node, error)   { return p.parseBinary(concatOps, p.parseAdditive) }
func (p *parser) parseAdditive() (*Node, error) { return p.parseBinary(additiveOps, p.parseTerm) }
func (p *parser) parseTerm() (*Node, error)     { return p.parseBinary(termOps, p.parseUnary) }
func (p *parser) parsePower() (*Node, error)    { return p.parseBinary(powerOps, p.parsePrimary) }

// parseBinary parses a left-associative chain of the given operators.
func (p *parser) parseBinary(ops map[string]Kind, operand func() (*Node, error)) (*Node, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		_, kind, ok := p.acceptOp(ops)
		if !ok {
			return left, nil
		}
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = p.node(kind, left, right)
	}
}

func (p *parser) parseUnary() (*Node, error) {
	operand, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.typ == tokOp && t.text == "%" {
		p.next()
		n := p.node(Percentop, operand)
		n.Span.To = t.span.To
		n.Text = p.src[n.Span.From:n.Span.To]
		return n, nil
	}
	return operand, nil
}

func (p *parser) parsePrimary() (*Node, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxDepth {
		return nil, syntaxErrorf(p.peek().span.From, "expression nested too deeply")
	}

	t := p.next()
	switch t.typ {
	case tokNumber:
		return p.leaf(Number, t), nil
	case tokText:
		return p.leaf(TextToken, t), nil
	case tokBool:
		return p.leaf(BoolToken, t), nil
	case tokCell:
		return p.leaf(CellToken, t), nil
	case tokName:
		name := p.leaf(NameToken, t)
		if p.peek().typ == tokLParen {
			return p.parseCall(name)
		}
		return name, nil
	case tokLParen:
		open := p.leaf(OpenParen, t)
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		closeTok := p.next()
		if closeTok.typ != tokRParen {
			return nil, syntaxErrorf(closeTok.span.From, "expected \")\", found %s", closeTok.typ)
		}
		return p.node(Group, open, inner, p.leaf(CloseParen, closeTok)), nil
	case tokOp:
		if t.text == "+" || t.text == "-" {
			kind := Plusop
			if t.text == "-" {
				kind = Minop
			}
			operand, err := p.parsePrimary()
			if err != nil {
				return nil, err
			}
			return &Node{
				Kind:     kind,
				Span:     Span{t.span.From, operand.Span.To},
				Text:     p.src[t.span.From:operand.Span.To],
				Children: []*Node{operand},
			}, nil
		}
	case tokEOF:
		return nil, syntaxErrorf(t.span.From, "unexpected end of formula")
	}
	return nil, syntaxErrorf(t.span.From, "unexpected %s %q", t.typ, t.text)
}

func (p *parser) parseCall(name *Node) (*Node, error) {
	children := []*Node{name, p.leaf(OpenParen, p.next())}
	if p.peek().typ != tokRParen {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			children = append(children, arg)
			if p.peek().typ != tokComma {
				break
			}
			p.next()
		}
	}
	closeTok := p.next()
	if closeTok.typ != tokRParen {
		return nil, syntaxErrorf(closeTok.span.From, "expected \")\" to close %s, found %s", name.Text, closeTok.typ)
	}
	children = append(children, p.leaf(CloseParen, closeTok))
	return p.node(Call, children...), nil
}
