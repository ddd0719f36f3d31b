package dom

// NodeType identifies which variant of the XML tree a Node is.
type NodeType int

const (
	ElementNode NodeType = iota + 1
	TextNode
	CommentNode
	CDataNode
	ProcInstNode
)

// String returns the name of the node type.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case CommentNode:
		return "Comment"
	case CDataNode:
		return "CData"
	case ProcInstNode:
		return "ProcessingInstruction"
	default:
		return "Unknown"
	}
}
