// Package notebook is the detective's clue index: a binary search tree
// keyed by clue text. Reading it back always comes out in lexicographic
// order, and writing the same clue twice leaves a single entry.
package notebook

type node struct {
	text  string
	left  *node
	right *node
}

type Notebook struct {
	root *node
	size int
}

func New() *Notebook {
	return &Notebook{}
}

// Add records a clue. Duplicates are silently dropped.
func (n *Notebook) Add(text string) {
	var inserted bool
	n.root, inserted = add(n.root, text)
	if inserted {
		n.size++
	}
}

func add(nd *node, text string) (*node, bool) {
	if nd == nil {
		return &node{text: text}, true
	}

	var inserted bool
	if text < nd.text {
		nd.left, inserted = add(nd.left, text)
	} else if text > nd.text {
		nd.right, inserted = add(nd.right, text)
	}
	return nd, inserted
}

// Size is the number of distinct clues recorded.
func (n *Notebook) Size() int {
	return n.size
}

func (n *Notebook) Contains(text string) bool {
	nd := n.root
	for nd != nil {
		if text == nd.text {
			return true
		}
		if text < nd.text {
			nd = nd.left
		} else {
			nd = nd.right
		}
	}
	return false
}

// WalkFunc is called for each clue in order. Returning false stops the walk.
type WalkFunc func(text string) bool

// Walk traverses the clues in lexicographic order.
func (n *Notebook) Walk(fn WalkFunc) {
	walkNodes(n.root, fn)
}

func walkNodes(nd *node, fn WalkFunc) bool {
	if nd == nil {
		return true
	}
	if !walkNodes(nd.left, fn) {
		return false
	}
	if !fn(nd.text) {
		return false
	}
	return walkNodes(nd.right, fn)
}

// Clues returns a sorted snapshot of every recorded clue.
func (n *Notebook) Clues() []string {
	clues := make([]string, 0, n.size)
	n.Walk(func(text string) bool {
		clues = append(clues, text)
		return true
	})
	return clues
}
