package css

import (
	"encoding/json"
	"strconv"
)

// NodeType determines the type of an emitted ISTF node. The numeric values
// are part of the wire format and must not be reordered.
type NodeType uint32

// NodeType values.
const (
	ErrorNode NodeType = iota // extra node when errors occur

	// Rule framing
	RuleStartNode
	RuleEndNode
	RuleNameNode

	// Selectors
	SelectorNode
	ParentSelectorNode
	UniversalSelectorNode
	CompoundSelectorStartNode
	CompoundSelectorEndNode
	SelectorRefNode
	SpaceCombinatorNode
	ChildCombinatorNode
	DoubledChildCombinatorNode
	NextSiblingCombinatorNode
	SubsequentSiblingCombinatorNode

	// Declarations
	PropertyNode
	PropertyRefNode
	ValueNode
	ValueRefNode
	CompoundValueStartNode
	CompoundValueEndNode

	// Functions and strings
	FunctionStartNode
	FunctionEndNode
	StringStartNode
	StringEndNode

	// Auxiliary
	ConditionNode
	AnimationNameNode
	PartialRefNode

	// Attribute selectors, reserved for a future extension
	AttributeSelectorStartNode
	AttributeSelectorEndNode
	AttributeNameNode
	AttributeOperatorNode
	AttributeValueNode
)

// String returns the string representation of a NodeType.
func (nt NodeType) String() string {
	switch nt {
	case ErrorNode:
		return "Error"
	case RuleStartNode:
		return "RuleStart"
	case RuleEndNode:
		return "RuleEnd"
	case RuleNameNode:
		return "RuleName"
	case SelectorNode:
		return "Selector"
	case ParentSelectorNode:
		return "ParentSelector"
	case UniversalSelectorNode:
		return "UniversalSelector"
	case CompoundSelectorStartNode:
		return "CompoundSelectorStart"
	case CompoundSelectorEndNode:
		return "CompoundSelectorEnd"
	case SelectorRefNode:
		return "SelectorRef"
	case SpaceCombinatorNode:
		return "SpaceCombinator"
	case ChildCombinatorNode:
		return "ChildCombinator"
	case DoubledChildCombinatorNode:
		return "DoubledChildCombinator"
	case NextSiblingCombinatorNode:
		return "NextSiblingCombinator"
	case SubsequentSiblingCombinatorNode:
		return "SubsequentSiblingCombinator"
	case PropertyNode:
		return "Property"
	case PropertyRefNode:
		return "PropertyRef"
	case ValueNode:
		return "Value"
	case ValueRefNode:
		return "ValueRef"
	case CompoundValueStartNode:
		return "CompoundValueStart"
	case CompoundValueEndNode:
		return "CompoundValueEnd"
	case FunctionStartNode:
		return "FunctionStart"
	case FunctionEndNode:
		return "FunctionEnd"
	case StringStartNode:
		return "StringStart"
	case StringEndNode:
		return "StringEnd"
	case ConditionNode:
		return "Condition"
	case AnimationNameNode:
		return "AnimationName"
	case PartialRefNode:
		return "PartialRef"
	case AttributeSelectorStartNode:
		return "AttributeSelectorStart"
	case AttributeSelectorEndNode:
		return "AttributeSelectorEnd"
	case AttributeNameNode:
		return "AttributeName"
	case AttributeOperatorNode:
		return "AttributeOperator"
	case AttributeValueNode:
		return "AttributeValue"
	}
	return "Invalid(" + strconv.Itoa(int(nt)) + ")"
}

// RuleKind discriminates RuleStart nodes. The values are stable
// small-integer discriminants used by the wire encoding.
type RuleKind uint32

// RuleKind values.
const (
	StyleRule RuleKind = iota + 1
	CharsetRule
	ImportRule
	MediaRule
	FontFaceRule
	PageRule
	KeyframesRule
	KeyframeRule
	MarginRule
	NamespaceRule
	CounterStyleRule
	SupportsRule
	DocumentRule
	FontFeatureValuesRule
	ViewportRule
	RegionStyleRule
)

// String returns the string representation of a RuleKind.
func (k RuleKind) String() string {
	switch k {
	case StyleRule:
		return "style"
	case CharsetRule:
		return "charset"
	case ImportRule:
		return "import"
	case MediaRule:
		return "media"
	case FontFaceRule:
		return "font-face"
	case PageRule:
		return "page"
	case KeyframesRule:
		return "keyframes"
	case KeyframeRule:
		return "keyframe"
	case MarginRule:
		return "margin"
	case NamespaceRule:
		return "namespace"
	case CounterStyleRule:
		return "counter-style"
	case SupportsRule:
		return "supports"
	case DocumentRule:
		return "document"
	case FontFeatureValuesRule:
		return "font-feature-values"
	case ViewportRule:
		return "viewport"
	case RegionStyleRule:
		return "region-style"
	}
	return "Invalid(" + strconv.Itoa(int(k)) + ")"
}

// Node is a single unit of the emitted ISTF stream. Data is set for text
// nodes, Kind for RuleStart, and Ref for interpolation references.
type Node struct {
	NodeType
	Kind RuleKind
	Data string
	Ref  Ref
}

// String returns a compact human-readable form, eg. Selector('.test').
func (n Node) String() string {
	switch n.NodeType {
	case RuleStartNode:
		return "RuleStart(" + n.Kind.String() + ")"
	case SelectorRefNode, PropertyRefNode, ValueRefNode, PartialRefNode:
		return n.NodeType.String() + "(" + strconv.Itoa(int(n.Ref)) + ")"
	case RuleNameNode, SelectorNode, PropertyNode, ValueNode, FunctionStartNode,
		StringStartNode, ConditionNode, AnimationNameNode:
		return n.NodeType.String() + "('" + n.Data + "')"
	}
	return n.NodeType.String()
}

// MarshalJSON encodes the node as an ISTF array: the numeric node type
// followed by its payload, if any.
func (n Node) MarshalJSON() ([]byte, error) {
	switch n.NodeType {
	case RuleStartNode:
		return json.Marshal([]any{uint32(n.NodeType), uint32(n.Kind)})
	case SelectorRefNode, PropertyRefNode, ValueRefNode, PartialRefNode:
		return json.Marshal([]any{uint32(n.NodeType), int(n.Ref)})
	case RuleNameNode, SelectorNode, PropertyNode, ValueNode, FunctionStartNode,
		StringStartNode, ConditionNode, AnimationNameNode, AttributeNameNode,
		AttributeOperatorNode, AttributeValueNode:
		return json.Marshal([]any{uint32(n.NodeType), n.Data})
	}
	return json.Marshal([]any{uint32(n.NodeType)})
}
