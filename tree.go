package bst

import (
	"golang.org/x/exp/slices"
)

// reset discards the current nodes and builds a balanced tree from values.
func (t *tree[T]) reset(values []T) {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	t.root = build(sorted)
	t.size = len(sorted)
}

func (t *tree[T]) Root() Node[T] {
	if t == nil || t.root == nil {
		return nil
	}
	return t.root
}

func (t *tree[T]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

func (t *tree[T]) Find(value T) (Node[T], error) {
	return t.FindFrom(value, nil)
}

// FindFrom searches the subtree of start, a nil start means the root.
func (t *tree[T]) FindFrom(value T, start Node[T]) (Node[T], error) {
	if t.root == nil {
		return nil, ErrEmptyTree
	}
	from, err := t.resolve(start)
	if err != nil {
		return nil, err
	}

	found := from.find(value)
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

// Insert returns the node holding value. A value already in the tree is
// left untouched and its node returned.
func (t *tree[T]) Insert(value T) Node[T] {
	if t.root == nil {
		replaceRef(&t.root, newNode(value))
		t.size = 1
		return t.root
	}

	n, created := t.root.insert(value)
	if created {
		t.size++
	}
	return n
}

// Delete removes value from the tree. Deleting a value that is not in the
// tree is a no-op.
func (t *tree[T]) Delete(value T) error {
	if t.root == nil {
		return ErrEmptyTree
	}
	if t.recursiveDelete(&t.root, value) {
		t.size--
	}
	return nil
}

// recursiveDelete walks the slots on the search path so the slot of the
// removed node can be rewritten in place.
func (t *tree[T]) recursiveDelete(curNode **node[T], value T) bool {
	curr := *curNode
	if curr == nil {
		return false
	}

	switch compare(value, curr.value) {
	case -1:
		return t.recursiveDelete(&curr.left, value)
	case 1:
		return t.recursiveDelete(&curr.right, value)
	}

	replaceRef(curNode, curr.detach())
	return true
}

func (t *tree[T]) Height() int {
	return height(t.root)
}

// HeightOf returns the height of the subtree rooted at n: -1 for an absent
// subtree, 0 for a leaf.
func (t *tree[T]) HeightOf(n Node[T]) int {
	if n == nil || t.root == nil {
		return emptyHeight
	}
	own, err := t.resolve(n)
	if err != nil {
		return emptyHeight
	}
	return height(own)
}

// Depth counts the edges between the root and n. Nodes are located by
// value, so the result relies on the tree holding unique values.
func (t *tree[T]) Depth(n Node[T]) (int, error) {
	if t.root == nil {
		return 0, ErrEmptyTree
	}
	if n == nil {
		return 0, ErrNotFound
	}

	value := n.Value()
	if value == t.root.value {
		return 0, nil
	}

	depth := 1
	for curr := t.root; curr != nil; depth++ {
		if (curr.left != nil && curr.left.value == value) ||
			(curr.right != nil && curr.right.value == value) {
			return depth, nil
		}
		if value < curr.value {
			curr = curr.left
		} else {
			curr = curr.right
		}
	}
	return 0, ErrNotFound
}

// Balanced reports whether the heights of the two subtrees of every node
// differ by at most one.
func (t *tree[T]) Balanced() bool {
	_, ok := balancedHeight(t.root)
	return ok
}

// Rebalance rebuilds an unbalanced tree from its in-order values. A
// balanced tree keeps its nodes.
func (t *tree[T]) Rebalance() {
	if t.Balanced() {
		return
	}
	t.reset(t.Values())
}

// resolve locates the node of the tree holding the value of n, nil means
// the root.
func (t *tree[T]) resolve(n Node[T]) (*node[T], error) {
	if n == nil {
		return t.root, nil
	}

	found := t.root.find(n.Value())
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}
