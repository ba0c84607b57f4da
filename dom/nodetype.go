package dom

// NodeType is the type tag of a DOM node. Values follow the W3C numbering,
// so serializers and parsers may branch on them directly.
type NodeType uint16

// Node types.
const (
	ElementNode               NodeType = 1
	AttributeNode             NodeType = 2
	TextNode                  NodeType = 3
	CDATASectionNode          NodeType = 4
	EntityReferenceNode       NodeType = 5 // obsolete
	EntityNode                NodeType = 6 // obsolete
	ProcessingInstructionNode NodeType = 7
	CommentNode               NodeType = 8
	DocumentNode              NodeType = 9
	DocumentTypeNode          NodeType = 10
	DocumentFragmentNode      NodeType = 11
	NotationNode              NodeType = 12 // obsolete
)

var nodeTypeNames = [...]string{
	"UNKNOWN_NODE",
	"ELEMENT_NODE",
	"ATTRIBUTE_NODE",
	"TEXT_NODE",
	"CDATA_SECTION_NODE",
	"ENTITY_REFERENCE_NODE",
	"ENTITY_NODE",
	"PROCESSING_INSTRUCTION_NODE",
	"COMMENT_NODE",
	"DOCUMENT_NODE",
	"DOCUMENT_TYPE_NODE",
	"DOCUMENT_FRAGMENT_NODE",
	"NOTATION_NODE",
}

func (nt NodeType) String() string {
	if int(nt) >= len(nodeTypeNames) {
		return nodeTypeNames[0]
	}
	return nodeTypeNames[nt]
}

// Valid is true for the twelve W3C node types.
func (nt NodeType) Valid() bool {
	return nt >= ElementNode && nt <= NotationNode
}
