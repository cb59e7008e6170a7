package bst

import (
	"golang.org/x/exp/constraints"
)

func (n *node[T]) Value() T {
	return n.value
}

func (n *node[T]) Left() Node[T] {
	if n.left == nil {
		return nil
	}
	return n.left
}

func (n *node[T]) Right() Node[T] {
	if n.right == nil {
		return nil
	}
	return n.right
}

func (n *node[T]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

func (n *node[T]) find(value T) *node[T] {
	switch compare(value, n.value) {
	case 0:
		return n
	case -1:
		if n.left != nil {
			return n.left.find(value)
		}
	case 1:
		if n.right != nil {
			return n.right.find(value)
		}
	}
	return nil
}

// insert returns the node holding value and whether it was created.
func (n *node[T]) insert(value T) (*node[T], bool) {
	switch compare(value, n.value) {
	case -1:
		if n.left == nil {
			n.left = newNode(value)
			return n.left, true
		}
		return n.left.insert(value)
	case 1:
		if n.right == nil {
			n.right = newNode(value)
			return n.right, true
		}
		return n.right.insert(value)
	}
	return n, false
}

// detach unlinks n and returns the subtree that takes its slot.
func (n *node[T]) detach() *node[T] {
	var promoted *node[T]
	switch {
	case n.isLeaf():
	case n.left == nil:
		promoted = n.right
	case n.right == nil:
		promoted = n.left
	default:
		promoted = n.promoteSuccessor()
	}
	n.left, n.right = nil, nil
	return promoted
}

// promoteSuccessor takes the leftmost node of the right subtree out of its
// place and hands it both subtrees of n. When the right child has no left
// child it is the successor and keeps its own right subtree.
func (n *node[T]) promoteSuccessor() *node[T] {
	successor := n.right
	if successor.left == nil {
		successor.left = n.left
		return successor
	}

	parent := successor
	for parent.left.left != nil {
		parent = parent.left
	}
	successor = parent.left
	replaceRef(&parent.left, successor.right)

	successor.left = n.left
	successor.right = n.right
	return successor
}

func height[T constraints.Ordered](n *node[T]) int {
	if n == nil {
		return emptyHeight
	}
	return max(height(n.left), height(n.right)) + 1
}

// balancedHeight reports the height of the subtree and whether every node
// in it has children whose heights differ by at most one.
func balancedHeight[T constraints.Ordered](n *node[T]) (int, bool) {
	if n == nil {
		return emptyHeight, true
	}
	hl, ok := balancedHeight(n.left)
	if !ok {
		return 0, false
	}
	hr, ok := balancedHeight(n.right)
	if !ok {
		return 0, false
	}
	if hl-hr > 1 || hr-hl > 1 {
		return 0, false
	}
	return max(hl, hr) + 1, true
}

// build expects sorted unique values, the middle element (index len/2)
// becomes the root of each subtree.
func build[T constraints.Ordered](values []T) *node[T] {
	if len(values) == 0 {
		return nil
	}
	mid := len(values) / 2
	root := newNode(values[mid])
	root.left = build(values[:mid])
	root.right = build(values[mid+1:])
	return root
}

func compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// modify slot ptr, ** means ref to pointer
func replaceRef[T constraints.Ordered](slot **node[T], n *node[T]) {
	*slot = n
}
