package css

// parseValues pre-parses the right-hand side of a declaration into a node
// list. level tracks parenthesis nesting; the terminators at level 0 are
// left in the stream for the main loop.
func (p *Parser) parseValues(level int) (nodeList, bool) {
	var list nodeList
	items := 0
	for {
		t, ok := p.peek()
		if !ok {
			if level > 0 {
				p.failEnd("unexpected end of input in a value")
				return nodeList{}, false
			}
			wrapCompound(&list, items, CompoundValueStartNode, CompoundValueEndNode)
			return list, true
		}
		if t.TokenType == BraceCloseToken || t.TokenType == SemicolonToken {
			if level > 0 {
				p.next()
				p.fail("unexpected token in a value")
				return nodeList{}, false
			}
			wrapCompound(&list, items, CompoundValueStartNode, CompoundValueEndNode)
			return list, true
		}
		t, _ = p.next()
		switch t.TokenType {
		case WordToken:
			if u, ok := p.peek(); ok && u.TokenType == ParenOpenToken {
				p.next()
				inner, ok := p.parseValues(level + 1)
				if !ok {
					return nodeList{}, false
				}
				inner.unshift(Node{NodeType: FunctionStartNode, Data: t.Data})
				inner.add(Node{NodeType: FunctionEndNode})
				list.concat(&inner)
			} else {
				list.add(Node{NodeType: ValueNode, Data: t.Data})
			}
			items++
		case DoubleQuoteToken, SingleQuoteToken:
			str, ok := p.parseString(t.TokenType)
			if !ok {
				return nodeList{}, false
			}
			list.concat(&str)
			items++
		case StringToken:
			if level == 0 {
				p.fail("unexpected token in a value")
				return nodeList{}, false
			}
			list.add(Node{NodeType: ValueNode, Data: t.Data})
			items++
		case InterpolationToken:
			list.add(Node{NodeType: ValueRefNode, Ref: t.Ref})
			items++
		case CommaToken:
			wrapCompound(&list, items, CompoundValueStartNode, CompoundValueEndNode)
			rest, ok := p.parseValues(level)
			if !ok {
				return nodeList{}, false
			}
			list.concat(&rest)
			return list, true
		case ParenCloseToken:
			if level == 0 {
				p.fail("unexpected token in a value")
				return nodeList{}, false
			}
			wrapCompound(&list, items, CompoundValueStartNode, CompoundValueEndNode)
			return list, true
		default:
			p.fail("unexpected token in a value")
			return nodeList{}, false
		}
	}
}

// parseString consumes tokens until the matching quote. A string with no
// interpolations collapses to a single Value carrying its quotes; anything
// else is framed by StringStart and StringEnd.
func (p *Parser) parseString(quote TokenType) (nodeList, bool) {
	quoteStr := "\""
	if quote == SingleQuoteToken {
		quoteStr = "'"
	}
	var list nodeList
	raw := ""
	sawRef := false
	for {
		t, ok := p.next()
		if !ok {
			p.failEnd("unexpected end of input in a string")
			return nodeList{}, false
		}
		switch t.TokenType {
		case StringToken:
			raw += t.Data
		case InterpolationToken:
			if raw != "" {
				list.add(Node{NodeType: ValueNode, Data: raw})
				raw = ""
			}
			list.add(Node{NodeType: ValueRefNode, Ref: t.Ref})
			sawRef = true
		case quote:
			if !sawRef {
				list.add(Node{NodeType: ValueNode, Data: quoteStr + raw + quoteStr})
				return list, true
			}
			if raw != "" {
				list.add(Node{NodeType: ValueNode, Data: raw})
			}
			list.unshift(Node{NodeType: StringStartNode, Data: quoteStr})
			list.add(Node{NodeType: StringEndNode})
			return list, true
		default:
			p.fail("unexpected token in a string")
			return nodeList{}, false
		}
	}
}
