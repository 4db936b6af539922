package node

// Node is the rendering contract shared by every element of the document tree.
type Node interface {
	// NodeName returns the element name written for the node.
	NodeName() string
	// Attributes returns constant structural attributes in write order.
	Attributes() []Attr
	// Members returns the node's child slots in schema order.
	Members() []Member
}

// Attr is a structural attribute rendered on a node's element.
type Attr struct {
	Name  string
	Value string
}

// MemberKind classifies a child slot of a node.
type MemberKind int

const (
	// KindScalar is a leaf element holding a single value.
	KindScalar MemberKind = iota
	// KindNode is an optional single child node.
	KindNode
	// KindList is a repeated child node written without a wrapper element.
	KindList
	// KindWrappedList is a repeated child node enclosed in a wrapper element
	// named by Member.Name.
	KindWrappedList
)

func (k MemberKind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindNode:
		return "node"
	case KindList:
		return "list"
	case KindWrappedList:
		return "wrapped-list"
	default:
		return "unknown"
	}
}

// Member is one ordered child slot of a node.
type Member struct {
	Kind MemberKind
	// Name is the element name for scalars, single nodes and list wrappers.
	// For KindList it names the item element.
	Name string

	// Value and Set describe a KindScalar member.
	Value any
	Set   bool

	// Node is the attached child for KindNode, nil when absent. Zero is an
	// empty node of the same type used to render the skeleton of an absent
	// child.
	Node Node
	Zero Node

	// Nodes holds the items of KindList and KindWrappedList members in
	// attachment order.
	Nodes []Node
}

// Present reports whether the member carries any assigned content.
func (m Member) Present() bool {
	switch m.Kind {
	case KindScalar:
		return m.Set
	case KindNode:
		return m.Node != nil
	default:
		return len(m.Nodes) > 0
	}
}

func scalar[T any](name string, v Value[T]) Member {
	val, ok := v.Get()
	return Member{Kind: KindScalar, Name: name, Value: val, Set: ok}
}

// child turns a possibly nil typed pointer into a KindNode member without
// leaking a typed nil through the Node interface.
func child[E any, P interface {
	*E
	Node
}](p P) Member {
	zero := P(new(E))
	m := Member{Kind: KindNode, Name: zero.NodeName(), Zero: zero}
	if p != nil {
		m.Node = p
	}
	return m
}

func list[P Node](name string, items []P) Member {
	return Member{Kind: KindList, Name: name, Nodes: asNodes(items)}
}

func wrapped[P Node](name string, items []P) Member {
	return Member{Kind: KindWrappedList, Name: name, Nodes: asNodes(items)}
}

func asNodes[P Node](items []P) []Node {
	if len(items) == 0 {
		return nil
	}
	out := make([]Node, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

// FieldNames returns the member names of n in schema order.
func FieldNames(n Node) []string {
	members := n.Members()
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = m.Name
	}
	return out
}
