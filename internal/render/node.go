package render

// Node is one element of the interactive output tree. Text is plain
// entry text and is escaped by whatever serializes the tree (the host's
// text-assignment primitive); Raw is already-rendered markup produced by
// the ProseRenderer and is attached verbatim.
type Node struct {
	Class      string
	Text       string
	Raw        string
	AriaHidden bool
	Children   []*Node
}

// newNode creates a node with the given class label.
func newNode(class string) *Node {
	return &Node{Class: class}
}

// appendChild adds a child node and returns it for further population.
func (n *Node) appendChild(class string) *Node {
	child := newNode(class)
	n.Children = append(n.Children, child)
	return child
}

// Find returns the first node in the subtree with the given class label,
// or nil. Depth-first, document order.
func (n *Node) Find(class string) *Node {
	if n.Class == class {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(class); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node in the subtree with the given class label,
// in document order.
func (n *Node) FindAll(class string) []*Node {
	var found []*Node
	if n.Class == class {
		found = append(found, n)
	}
	for _, child := range n.Children {
		found = append(found, child.FindAll(class)...)
	}
	return found
}
