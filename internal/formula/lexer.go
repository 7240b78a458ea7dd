package formula

import (
	"fmt"
	"regexp"
	"strings"
)

type tokenType uint8

const (
	tokEOF tokenType = iota
	tokNumber
	tokText
	tokBool
	tokCell
	tokName
	tokOp
	tokLParen
	tokRParen
	tokComma
)

func (t tokenType) String() string {
	switch t {
	case tokEOF:
		return "end of formula"
	case tokNumber:
		return "number"
	case tokText:
		return "text"
	case tokBool:
		return "boolean"
	case tokCell:
		return "cell reference"
	case tokName:
		return "name"
	case tokOp:
		return "operator"
	case tokLParen:
		return `"("`
	case tokRParen:
		return `")"`
	case tokComma:
		return `","`
	}
	return "token"
}

type token struct {
	typ  tokenType
	text string
	span Span
}

var cellPattern = regexp.MustCompile(`^[A-Za-z]+[0-9]+$`)

// SyntaxError reports where and why a formula failed to parse.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Pos, e.Msg)
}

func syntaxErrorf(pos int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// lex splits src into tokens, skipping whitespace. The final token is tokEOF.
func lex(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isDigit(c) || (c == '.' && i+1 < len(src) && isDigit(src[i+1])):
			end := scanNumber(src, i)
			toks = append(toks, token{typ: tokNumber, text: src[i:end], span: Span{i, end}})
			i = end
		case c == '"':
			end, err := scanText(src, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, token{typ: tokText, text: src[i:end], span: Span{i, end}})
			i = end
		case isIdentStart(c):
			end := i + 1
			for end < len(src) && isIdentPart(src[end]) {
				end++
			}
			text := src[i:end]
			toks = append(toks, token{typ: classifyIdent(text), text: text, span: Span{i, end}})
			i = end
		case c == '(':
			toks = append(toks, token{typ: tokLParen, text: "(", span: Span{i, i + 1}})
			i++
		case c == ')':
			toks = append(toks, token{typ: tokRParen, text: ")", span: Span{i, i + 1}})
			i++
		case c == ',':
			toks = append(toks, token{typ: tokComma, text: ",", span: Span{i, i + 1}})
			i++
		case c == '<' || c == '>':
			end := i + 1
			if end < len(src) && (src[end] == '=' || (c == '<' && src[end] == '>')) {
				end++
			}
			toks = append(toks, token{typ: tokOp, text: src[i:end], span: Span{i, end}})
			i = end
		case strings.IndexByte("+-*/^&%=", c) >= 0:
			toks = append(toks, token{typ: tokOp, text: src[i : i+1], span: Span{i, i + 1}})
			i++
		default:
			return nil, syntaxErrorf(i, "unexpected character %q", rune(c))
		}
	}
	toks = append(toks, token{typ: tokEOF, span: Span{len(src), len(src)}})
	return toks, nil
}

func classifyIdent(text string) tokenType {
	switch {
	case strings.EqualFold(text, "TRUE"), strings.EqualFold(text, "FALSE"):
		return tokBool
	case cellPattern.MatchString(text):
		return tokCell
	}
	return tokName
}

func scanNumber(src string, i int) int {
	for i < len(src) && isDigit(src[i]) {
		i++
	}
	if i < len(src) && src[i] == '.' {
		i++
		for i < len(src) && isDigit(src[i]) {
			i++
		}
	}
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		if j < len(src) && isDigit(src[j]) {
			for j < len(src) && isDigit(src[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

// scanText returns the end offset of the string literal starting at i.
// A doubled quote inside the literal is an escaped quote.
func scanText(src string, i int) (int, error) {
	j := i + 1
	for j < len(src) {
		if src[j] == '"' {
			if j+1 < len(src) && src[j+1] == '"' {
				j += 2
				continue
			}
			return j + 1, nil
		}
		j++
	}
	return 0, syntaxErrorf(i, "unterminated string literal")
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '_'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '.'
}
