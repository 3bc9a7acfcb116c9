package css

// parseSelectors pre-parses one selector group into a node list. level
// tracks parenthesis nesting inside pseudo-class functions; the group ends
// at the opening brace (level 0) or the closing parenthesis (level > 0),
// both consumed here.
func (p *Parser) parseSelectors(level int) (nodeList, bool) {
	var list nodeList
	items := 0
	for {
		t, ok := p.next()
		if !ok {
			p.failEnd("unexpected end of input in a selector")
			return nodeList{}, false
		}
		switch t.TokenType {
		case ColonToken:
			u, ok := p.next()
			if !ok {
				p.failEnd("unexpected end of input in a selector")
				return nodeList{}, false
			}
			switch u.TokenType {
			case WordToken:
				if v, ok := p.peek(); ok && v.TokenType == ParenOpenToken {
					p.next()
					inner, ok := p.parseSelectors(level + 1)
					if !ok {
						return nodeList{}, false
					}
					inner.unshift(Node{NodeType: FunctionStartNode, Data: ":" + u.Data})
					inner.add(Node{NodeType: FunctionEndNode})
					list.concat(&inner)
				} else {
					list.add(Node{NodeType: SelectorNode, Data: ":" + u.Data})
				}
			case InterpolationToken:
				list.add(Node{NodeType: SelectorNode, Data: ":"})
				list.add(Node{NodeType: SelectorRefNode, Ref: u.Ref})
			default:
				p.fail("unexpected token after ':' in a selector")
				return nodeList{}, false
			}
		case AsteriskToken:
			list.add(Node{NodeType: UniversalSelectorNode})
		case AmpersandToken:
			list.add(Node{NodeType: ParentSelectorNode})
		case WordToken:
			list.add(Node{NodeType: SelectorNode, Data: t.Data})
		case InterpolationToken:
			list.add(Node{NodeType: SelectorRefNode, Ref: t.Ref})
		case CommaToken:
			wrapCompound(&list, items, CompoundSelectorStartNode, CompoundSelectorEndNode)
			rest, ok := p.parseSelectors(level)
			if !ok {
				return nodeList{}, false
			}
			list.concat(&rest)
			return list, true
		case ParenCloseToken:
			if level == 0 {
				p.fail("unexpected token in a selector")
				return nodeList{}, false
			}
			wrapCompound(&list, items, CompoundSelectorStartNode, CompoundSelectorEndNode)
			return list, true
		case BraceOpenToken:
			if level > 0 {
				p.fail("unexpected token in a selector")
				return nodeList{}, false
			}
			wrapCompound(&list, items, CompoundSelectorStartNode, CompoundSelectorEndNode)
			return list, true
		default:
			p.fail("unexpected token in a selector")
			return nodeList{}, false
		}
		items++
		if !p.parseCombinator(&list) {
			return nodeList{}, false
		}
	}
}

// parseCombinator inserts the combinator following an atomic selector by
// peeking the next token. The space combinator is derived from the source
// ranges of the two tokens, not from the advisory WordCombinator marker.
func (p *Parser) parseCombinator(list *nodeList) bool {
	prev := p.tr
	t, ok := p.peek()
	if !ok {
		return true
	}
	switch t.TokenType {
	case ArrowToken:
		p.next()
		if u, ok := p.peek(); ok && u.TokenType == ArrowToken {
			p.next()
			list.add(Node{NodeType: DoubledChildCombinatorNode})
		} else {
			list.add(Node{NodeType: ChildCombinatorNode})
		}
	case PlusToken:
		p.next()
		list.add(Node{NodeType: NextSiblingCombinatorNode})
	case TildeToken:
		p.next()
		list.add(Node{NodeType: SubsequentSiblingCombinatorNode})
	case CommaToken, ParenOpenToken, ParenCloseToken, BraceOpenToken, BraceCloseToken:
		return true
	default:
		if t.Range.Start.Line == prev.End.Line && t.Range.Start.Col > prev.End.Col+1 {
			list.add(Node{NodeType: SpaceCombinatorNode})
		}
		return true
	}
	u, ok := p.peek()
	if !ok {
		p.failEnd("expected a selector after a combinator")
		return false
	}
	switch u.TokenType {
	case WordToken, InterpolationToken, AsteriskToken, AmpersandToken:
		return true
	}
	p.fail("expected a selector after a combinator")
	return false
}
