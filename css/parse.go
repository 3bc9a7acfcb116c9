/*
Package css is a streaming CSS-in-JS parser written in Go. It consumes a
tokenised, interpolation-aware source and produces a flat stream of ISTF
nodes that downstream stages can consume without backtracking.

Parser using example:

	package main

	import (
		"fmt"
		"io"

		"github.com/joeshub/sweetsour/css"
	)

	// Parse a template literal with one interpolation hole.
	func main() {
		l := css.NewLexer([]string{".title { color: ", "; }"})
		p := css.NewParser(l)
		for {
			n := p.Next()
			if n.NodeType == css.ErrorNode {
				if p.Err() != io.EOF {
					fmt.Println("Error:", p.Err())
				}
				return
			}
			fmt.Println(n)
		}
	}
*/
package css

import (
	"io"
	"strconv"
	"strings"

	"github.com/joeshub/sweetsour"
)

// ParserState denotes the dispatch mode of the parser.
type ParserState uint32

// ParserState values.
const (
	MainLoopState ParserState = iota
	PropertyLoopState
	SelectorLoopState
	BufferLoopState
)

// String returns the string representation of a ParserState.
func (st ParserState) String() string {
	switch st {
	case MainLoopState:
		return "MainLoop"
	case PropertyLoopState:
		return "PropertyLoop"
	case SelectorLoopState:
		return "SelectorLoop"
	case BufferLoopState:
		return "BufferLoop"
	}
	return "Invalid(" + strconv.Itoa(int(st)) + ")"
}

////////////////////////////////////////////////////////////////

// Parser is the state for the parser. It pulls tokens from a TokenStream
// and emits a flat ISTF node stream, one node per call to Next.
type Parser struct {
	z  TokenStream
	tb *sweetsour.BufferedStream[Token]

	state ParserState
	depth int
	tr    sweetsour.Range
	buf   nodeList
	err   error
}

// NewParser returns a new Parser for a TokenStream.
func NewParser(z TokenStream) *Parser {
	return &Parser{
		z: z,
		tb: sweetsour.NewBufferedStream(sweetsour.NewStream(func() (Token, bool) {
			t := z.Next()
			if t.TokenType == ErrorToken {
				return Token{}, false
			}
			return t, true
		})),
	}
}

// Err returns the error encountered during parsing. It is io.EOF after the
// stream terminated cleanly. Once Err is non-nil the parser is poisoned and
// every further Next returns an ErrorNode.
func (p *Parser) Err() error {
	return p.err
}

// Next returns the next node from the stream. An ErrorNode is returned once
// the stream is done or a structural violation was found; Err tells which.
func (p *Parser) Next() Node {
	for p.err == nil {
		var n Node
		var emitted bool
		switch p.state {
		case BufferLoopState:
			n, emitted = p.bufferLoop()
		case SelectorLoopState:
			n, emitted = p.selectorLoop()
		case PropertyLoopState:
			n, emitted = p.propertyLoop()
		default:
			n, emitted = p.mainLoop()
		}
		if emitted {
			return n
		}
	}
	return Node{NodeType: ErrorNode}
}

// Stream adapts the parser into a pull stream of nodes.
func (p *Parser) Stream() *sweetsour.Stream[Node] {
	return sweetsour.NewStream(func() (Node, bool) {
		n := p.Next()
		if n.NodeType == ErrorNode {
			return Node{}, false
		}
		return n, true
	})
}

////////////////////////////////////////////////////////////////

func (p *Parser) mainLoop() (Node, bool) {
	t, ok := p.next()
	if !ok {
		if err := p.z.Err(); err != nil && err != io.EOF {
			p.err = err
		} else if p.depth > 0 {
			p.fail("unexpected end of input, unclosed rules remain")
		} else {
			p.err = io.EOF
		}
		return Node{}, false
	}
	if t.TokenType == SemicolonToken {
		return Node{}, false
	}
	if t.TokenType == BraceCloseToken && p.depth > 0 {
		p.depth--
		return Node{NodeType: RuleEndNode}, true
	}
	if t.TokenType == AtWordToken {
		return p.parseAtRule(t)
	}
	if t.TokenType == WordToken || t.TokenType == InterpolationToken {
		if u, ok := p.peek(); ok {
			if u.TokenType == ColonToken {
				return p.disambiguate(t)
			}
			if t.TokenType == InterpolationToken && u.TokenType == SemicolonToken {
				return Node{NodeType: PartialRefNode, Ref: t.Ref}, true
			}
		}
	}
	return p.openRule([]Token{t}), true
}

// disambiguate resolves whether a leading word-colon pair begins a
// declaration or a nested selector. Tokens are held until one of the
// deciding tokens shows up, then pushed back for the winning sub-parser.
func (p *Parser) disambiguate(first Token) (Node, bool) {
	pending := []Token{first}
	colons := 0
	for {
		t, ok := p.next()
		if !ok {
			p.failEnd("unexpected end of input, expected a selector or declaration")
			return Node{}, false
		}
		pending = append(pending, t)
		switch t.TokenType {
		case BraceOpenToken, AmpersandToken, PlusToken, ArrowToken, TildeToken, AsteriskToken:
			return p.openRule(pending), true
		case ColonToken:
			colons++
			if colons >= 2 {
				return p.openRule(pending), true
			}
		case BraceCloseToken, SemicolonToken:
			for _, u := range pending {
				p.tb.Buffer(u)
			}
			p.state = PropertyLoopState
			return Node{}, false
		}
	}
}

// openRule pushes the held tokens back, opens a style rule and hands
// control to the selector loop.
func (p *Parser) openRule(pending []Token) Node {
	for _, u := range pending {
		p.tb.Buffer(u)
	}
	p.depth++
	p.state = SelectorLoopState
	return Node{NodeType: RuleStartNode, Kind: StyleRule}
}

func (p *Parser) selectorLoop() (Node, bool) {
	list, ok := p.parseSelectors(0)
	if !ok {
		return Node{}, false
	}
	p.buf = list
	p.state = BufferLoopState
	return Node{}, false
}

func (p *Parser) propertyLoop() (Node, bool) {
	t, ok := p.next()
	if !ok {
		p.failEnd("expected a property")
		return Node{}, false
	}
	var prop Node
	switch t.TokenType {
	case WordToken:
		prop = Node{NodeType: PropertyNode, Data: t.Data}
	case InterpolationToken:
		prop = Node{NodeType: PropertyRefNode, Ref: t.Ref}
	default:
		p.fail("expected a property")
		return Node{}, false
	}
	u, ok := p.next()
	if !ok {
		p.failEnd("expected ':' after a property")
		return Node{}, false
	}
	if u.TokenType != ColonToken {
		p.fail("expected ':' after a property")
		return Node{}, false
	}
	list, ok := p.parseValues(0)
	if !ok {
		return Node{}, false
	}
	p.buf = list
	p.state = BufferLoopState
	return prop, true
}

func (p *Parser) bufferLoop() (Node, bool) {
	if n, ok := p.buf.take(); ok {
		return n, true
	}
	p.state = MainLoopState
	return Node{}, false
}

////////////////////////////////////////////////////////////////

var atRuleKinds = map[string]RuleKind{
	"@charset":             CharsetRule,
	"@import":              ImportRule,
	"@namespace":           NamespaceRule,
	"@media":               MediaRule,
	"@supports":            SupportsRule,
	"@document":            DocumentRule,
	"@-moz-document":       DocumentRule,
	"@font-face":           FontFaceRule,
	"@page":                PageRule,
	"@keyframes":           KeyframesRule,
	"@-webkit-keyframes":   KeyframesRule,
	"@-moz-keyframes":      KeyframesRule,
	"@-o-keyframes":        KeyframesRule,
	"@viewport":            ViewportRule,
	"@-ms-viewport":        ViewportRule,
	"@counter-style":       CounterStyleRule,
	"@font-feature-values": FontFeatureValuesRule,
}

// parseAtRule frames an at-rule. Statement at-rules are closed at their
// terminating semicolon; block at-rules open a depth level at the brace and
// close through the ordinary RuleEnd path.
func (p *Parser) parseAtRule(t Token) (Node, bool) {
	kind, known := atRuleKinds[strings.ToLower(t.Data)]
	if !known {
		p.fail("unknown at-rule " + t.Data)
		return Node{}, false
	}
	var list nodeList
	list.add(Node{NodeType: RuleNameNode, Data: t.Data})
	switch kind {
	case CharsetRule, ImportRule, NamespaceRule:
		vals, ok := p.parseValues(0)
		if !ok {
			return Node{}, false
		}
		list.concat(&vals)
		list.add(Node{NodeType: RuleEndNode})
	case MediaRule, SupportsRule, DocumentRule:
		if !p.parseCondition(&list) {
			return Node{}, false
		}
		p.depth++
	case KeyframesRule:
		if !p.parseKeyframesName(&list) {
			return Node{}, false
		}
		p.depth++
	default:
		u, ok := p.next()
		if !ok {
			p.failEnd("unexpected end of input in an at-rule")
			return Node{}, false
		}
		if u.TokenType != BraceOpenToken {
			p.fail("expected '{' in an at-rule")
			return Node{}, false
		}
		p.depth++
	}
	p.buf = list
	p.state = BufferLoopState
	return Node{NodeType: RuleStartNode, Kind: kind}, true
}

// parseCondition collects the raw prelude text of a conditional at-rule up
// to the opening brace, which is consumed.
func (p *Parser) parseCondition(list *nodeList) bool {
	text := ""
	prev := p.tr
	for {
		t, ok := p.next()
		if !ok {
			p.failEnd("unexpected end of input in an at-rule prelude")
			return false
		}
		if t.TokenType == BraceOpenToken {
			if text != "" {
				list.add(Node{NodeType: ConditionNode, Data: text})
			}
			return true
		}
		s := tokenText(t)
		if s == "" {
			p.fail("unexpected token in an at-rule prelude")
			return false
		}
		if text != "" && hasGap(prev, t.Range) {
			text += " "
		}
		text += s
		prev = t.Range
	}
}

func (p *Parser) parseKeyframesName(list *nodeList) bool {
	t, ok := p.next()
	if !ok {
		p.failEnd("expected an animation name")
		return false
	}
	switch t.TokenType {
	case WordToken:
		list.add(Node{NodeType: AnimationNameNode, Data: t.Data})
	case InterpolationToken:
		list.add(Node{NodeType: PartialRefNode, Ref: t.Ref})
	default:
		p.fail("expected an animation name")
		return false
	}
	u, ok := p.next()
	if !ok {
		p.failEnd("expected '{' after an animation name")
		return false
	}
	if u.TokenType != BraceOpenToken {
		p.fail("expected '{' after an animation name")
		return false
	}
	return true
}

////////////////////////////////////////////////////////////////

// next returns the next token, skipping advisory WordCombinator markers,
// and records its range for diagnostics.
func (p *Parser) next() (Token, bool) {
	for {
		t, ok := p.tb.Next()
		if !ok {
			return Token{}, false
		}
		if t.TokenType == WordCombinatorToken {
			continue
		}
		p.tr = t.Range
		return t, true
	}
}

// peek returns the next token without advancing, junking advisory
// WordCombinator markers.
func (p *Parser) peek() (Token, bool) {
	for {
		t, ok := p.tb.Peek()
		if !ok {
			return Token{}, false
		}
		if t.TokenType != WordCombinatorToken {
			return t, true
		}
		p.tb.Junk()
	}
}

func (p *Parser) fail(msg string) {
	p.err = sweetsour.NewError(msg, p.tr)
}

// failEnd reports a premature end of input, or surfaces the upstream error
// when the token stream failed rather than ended.
func (p *Parser) failEnd(msg string) {
	if err := p.z.Err(); err != nil && err != io.EOF {
		p.err = err
		return
	}
	p.fail(msg)
}

// wrapCompound brackets a sub-parse of two or more atomic items; a single
// item stays bare.
func wrapCompound(list *nodeList, items int, start, end NodeType) {
	if items >= 2 {
		list.unshift(Node{NodeType: start})
		list.add(Node{NodeType: end})
	}
}

// hasGap reports whether two consecutive tokens have whitespace between
// their source ranges.
func hasGap(prev, next sweetsour.Range) bool {
	return next.Start.Line != prev.End.Line || next.Start.Col > prev.End.Col+1
}

func tokenText(t Token) string {
	switch t.TokenType {
	case WordToken, AtWordToken, StringToken:
		return t.Data
	case DoubleQuoteToken:
		return "\""
	case SingleQuoteToken:
		return "'"
	case ParenOpenToken:
		return "("
	case ParenCloseToken:
		return ")"
	case ColonToken:
		return ":"
	case CommaToken:
		return ","
	case ArrowToken:
		return ">"
	case PlusToken:
		return "+"
	case TildeToken:
		return "~"
	case AsteriskToken:
		return "*"
	case AmpersandToken:
		return "&"
	case ExclamationToken:
		return "!"
	}
	return ""
}
