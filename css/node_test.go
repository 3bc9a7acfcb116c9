package css

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeString(t *testing.T) {
	assert.Equal(t, "RuleStart(style)", Node{NodeType: RuleStartNode, Kind: StyleRule}.String())
	assert.Equal(t, "RuleStart(media)", Node{NodeType: RuleStartNode, Kind: MediaRule}.String())
	assert.Equal(t, "RuleEnd", Node{NodeType: RuleEndNode}.String())
	assert.Equal(t, "Selector('.test')", Node{NodeType: SelectorNode, Data: ".test"}.String())
	assert.Equal(t, "SelectorRef(2)", Node{NodeType: SelectorRefNode, Ref: 2}.String())
	assert.Equal(t, "ParentSelector", Node{NodeType: ParentSelectorNode}.String())
	assert.Equal(t, "FunctionStart(':not')", Node{NodeType: FunctionStartNode, Data: ":not"}.String())
	assert.Equal(t, "StringStart('\"')", Node{NodeType: StringStartNode, Data: "\""}.String())
}

func TestRuleKindDiscriminants(t *testing.T) {
	// wire-stable, must never be renumbered
	assert.Equal(t, 1, int(StyleRule))
	assert.Equal(t, 2, int(CharsetRule))
	assert.Equal(t, 3, int(ImportRule))
	assert.Equal(t, 4, int(MediaRule))
	assert.Equal(t, 5, int(FontFaceRule))
	assert.Equal(t, 6, int(PageRule))
	assert.Equal(t, 7, int(KeyframesRule))
	assert.Equal(t, 8, int(KeyframeRule))
	assert.Equal(t, 9, int(MarginRule))
	assert.Equal(t, 10, int(NamespaceRule))
	assert.Equal(t, 11, int(CounterStyleRule))
	assert.Equal(t, 12, int(SupportsRule))
	assert.Equal(t, 13, int(DocumentRule))
	assert.Equal(t, 14, int(FontFeatureValuesRule))
	assert.Equal(t, 15, int(ViewportRule))
	assert.Equal(t, 16, int(RegionStyleRule))
}

func TestNodeMarshalJSON(t *testing.T) {
	nodes := []Node{
		{NodeType: RuleStartNode, Kind: StyleRule},
		{NodeType: SelectorNode, Data: ".test"},
		{NodeType: SelectorRefNode, Ref: 3},
		{NodeType: SpaceCombinatorNode},
		{NodeType: RuleEndNode},
	}
	out, err := json.Marshal(nodes)
	assert.Nil(t, err)
	assert.Equal(t, `[[1,1],[4,".test"],[9,3],[10],[2]]`, string(out))
}
