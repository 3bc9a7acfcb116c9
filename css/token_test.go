package css

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joeshub/sweetsour"
)

func rng(sl, sc, el, ec int) sweetsour.Range {
	return sweetsour.Range{
		Start: sweetsour.Position{Line: sl, Col: sc},
		End:   sweetsour.Position{Line: el, Col: ec},
	}
}

func helperTokens(t *testing.T, fragments ...string) []Token {
	t.Helper()
	l := NewLexer(fragments)
	var tokens []Token
	for i := 0; i < 1000; i++ {
		tok := l.Next()
		if tok.TokenType == ErrorToken {
			assert.Equal(t, io.EOF, l.Err(), "lexer must end cleanly in %v", fragments)
			return tokens
		}
		tokens = append(tokens, tok)
	}
	t.Fatal("lexer did not terminate")
	return nil
}

func helperTokenTypes(t *testing.T, fragments ...string) []TokenType {
	t.Helper()
	types := []TokenType{}
	for _, tok := range helperTokens(t, fragments...) {
		types = append(types, tok.TokenType)
	}
	return types
}

////////////////////////////////////////////////////////////////

type TTs []TokenType

func TestTokens(t *testing.T) {
	var tokenTests = []struct {
		fragments []string
		expected  []TokenType
	}{
		{[]string{""}, TTs{}},
		{[]string{"   \t\n"}, TTs{}},
		{[]string{".test {}"}, TTs{WordToken, BraceOpenToken, BraceCloseToken}},
		{[]string{"color: red;"}, TTs{WordToken, ColonToken, WordToken, SemicolonToken}},
		{[]string{"a > b + c ~ d"}, TTs{WordToken, ArrowToken, WordToken, PlusToken, WordToken, TildeToken, WordToken}},
		{[]string{"* & , ( )"}, TTs{AsteriskToken, AmpersandToken, CommaToken, ParenOpenToken, ParenCloseToken}},
		{[]string{"@media (x)"}, TTs{AtWordToken, ParenOpenToken, WordToken, ParenCloseToken}},
		// a bang flush against a word folds into the word
		{[]string{"red !important"}, TTs{WordToken, WordToken}},
		{[]string{"red ! important"}, TTs{WordToken, ExclamationToken, WordToken}},
		{[]string{"\"ab\""}, TTs{DoubleQuoteToken, StringToken, DoubleQuoteToken}},
		{[]string{"'ab'"}, TTs{SingleQuoteToken, StringToken, SingleQuoteToken}},
		{[]string{"url(a b)"}, TTs{WordToken, ParenOpenToken, StringToken, ParenCloseToken}},
		{[]string{"calc((1 + 2) / 3)"}, TTs{WordToken, ParenOpenToken, StringToken, ParenCloseToken}},
		{[]string{"not(a)"}, TTs{WordToken, ParenOpenToken, WordToken, ParenCloseToken}},
		{[]string{"a", "b"}, TTs{WordToken, WordCombinatorToken, InterpolationToken, WordToken}},
		{[]string{"a ", "b"}, TTs{WordToken, InterpolationToken, WordToken}},
		{[]string{"a{", "}"}, TTs{WordToken, BraceOpenToken, InterpolationToken, BraceCloseToken}},
		{[]string{"\"a", "b\""}, TTs{DoubleQuoteToken, StringToken, InterpolationToken, StringToken, DoubleQuoteToken}},
	}
	for _, tt := range tokenTests {
		assert.Equal(t, tt.expected, helperTokenTypes(t, tt.fragments...), "token types must match in %v", tt.fragments)
	}
}

func TestTokensData(t *testing.T) {
	tokens := helperTokens(t, "color: papayawhip !important;")
	assert.Equal(t, "color", tokens[0].Data)
	assert.Equal(t, "papayawhip", tokens[2].Data)
	assert.Equal(t, "!important", tokens[3].Data)

	tokens = helperTokens(t, "@media screen")
	assert.Equal(t, "@media", tokens[0].Data)
	assert.Equal(t, "screen", tokens[1].Data)

	tokens = helperTokens(t, "url( a.png )")
	assert.Equal(t, " a.png ", tokens[2].Data)

	tokens = helperTokens(t, "\"hello ", " world\"")
	assert.Equal(t, "hello ", tokens[1].Data)
	assert.Equal(t, Ref(0), tokens[2].Ref)
	assert.Equal(t, " world", tokens[3].Data)
}

func TestTokenRanges(t *testing.T) {
	tokens := helperTokens(t, ".a .b")
	assert.Equal(t, rng(1, 1, 1, 2), tokens[0].Range)
	assert.Equal(t, rng(1, 4, 1, 5), tokens[1].Range)

	tokens = helperTokens(t, "a {\n  x: y;\n}")
	assert.Equal(t, rng(1, 1, 1, 1), tokens[0].Range)
	assert.Equal(t, rng(1, 3, 1, 3), tokens[1].Range)
	assert.Equal(t, rng(2, 3, 2, 3), tokens[2].Range)
	assert.Equal(t, rng(3, 1, 3, 1), tokens[6].Range)

	// the hole between two fragments occupies a single column
	tokens = helperTokens(t, ".a", ".b")
	assert.Equal(t, rng(1, 1, 1, 2), tokens[0].Range)
	assert.Equal(t, InterpolationToken, tokens[2].TokenType)
	assert.Equal(t, rng(1, 3, 1, 3), tokens[2].Range)
	assert.Equal(t, rng(1, 4, 1, 5), tokens[3].Range)
}

func TestTokenInterpolationRefs(t *testing.T) {
	tokens := helperTokens(t, "a ", " b ", " c")
	var refs []Ref
	for _, tok := range tokens {
		if tok.TokenType == InterpolationToken {
			refs = append(refs, tok.Ref)
		}
	}
	assert.Equal(t, []Ref{0, 1}, refs)
}

func TestTokenTypeString(t *testing.T) {
	assert.Equal(t, "Word", WordToken.String())
	assert.Equal(t, "Interpolation", InterpolationToken.String())
	assert.Equal(t, "WordCombinator", WordCombinatorToken.String())
	assert.Equal(t, "Invalid(9001)", TokenType(9001).String())
}
