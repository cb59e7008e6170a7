package bst

// Walk visits the nodes reachable from roots in the given order, roots
// default to the tree root. Level order treats roots as the first level,
// the depth-first orders walk each root's subtree in turn.
func (t *tree[T]) Walk(order Order, callback Callback[T], roots ...Node[T]) {
	starts := t.starts(roots)
	if len(starts) == 0 {
		return
	}

	if order == LevelOrder {
		t.levelOrder(starts, callback)
		return
	}

	for _, start := range starts {
		if t.recursiveWalk(order, start, callback) == traverseStop {
			return
		}
	}
}

func (t *tree[T]) LevelOrder(callback Callback[T]) {
	t.Walk(LevelOrder, callback)
}

func (t *tree[T]) PreOrder(callback Callback[T]) {
	t.Walk(PreOrder, callback)
}

func (t *tree[T]) InOrder(callback Callback[T]) {
	t.Walk(InOrder, callback)
}

func (t *tree[T]) PostOrder(callback Callback[T]) {
	t.Walk(PostOrder, callback)
}

// Values returns the values of the tree in ascending order.
func (t *tree[T]) Values() []T {
	values := make([]T, 0, t.Size())
	t.InOrder(func(n Node[T]) bool {
		values = append(values, n.Value())
		return true
	})
	return values
}

func (t *tree[T]) starts(roots []Node[T]) []*node[T] {
	if t.root == nil {
		return nil
	}
	if len(roots) == 0 {
		return []*node[T]{t.root}
	}

	starts := make([]*node[T], 0, len(roots))
	for _, r := range roots {
		if r == nil {
			continue
		}
		if own, err := t.resolve(r); err == nil {
			starts = append(starts, own)
		}
	}
	return starts
}

func (t *tree[T]) levelOrder(level []*node[T], callback Callback[T]) {
	for len(level) > 0 {
		var next []*node[T]
		for _, curr := range level {
			if curr.left != nil {
				next = append(next, curr.left)
			}
			if curr.right != nil {
				next = append(next, curr.right)
			}
			if !callback(curr) {
				return
			}
		}
		level = next
	}
}

func (t *tree[T]) recursiveWalk(order Order, curr *node[T], callback Callback[T]) traverseAction {
	if curr == nil {
		return traverseContinue
	}

	if order == PreOrder && !callback(curr) {
		return traverseStop
	}
	if t.recursiveWalk(order, curr.left, callback) == traverseStop {
		return traverseStop
	}
	if order == InOrder && !callback(curr) {
		return traverseStop
	}
	if t.recursiveWalk(order, curr.right, callback) == traverseStop {
		return traverseStop
	}
	if order == PostOrder && !callback(curr) {
		return traverseStop
	}
	return traverseContinue
}

// Iterator returns a lazy in-order iterator. Mutating the tree while
// iterating invalidates it.
func (t *tree[T]) Iterator() Iterator[T] {
	it := &iterator[T]{}
	it.pushLeft(t.root)
	it.advance()
	return it
}

func (it *iterator[T]) HasNext() bool {
	return it != nil && it.nextNode != nil
}

func (it *iterator[T]) Next() (Node[T], error) {
	if !it.HasNext() {
		return nil, ErrNoMoreNodes
	}
	cur := it.nextNode
	it.pushLeft(cur.right)
	it.advance()
	return cur, nil
}

func (it *iterator[T]) pushLeft(n *node[T]) {
	for ; n != nil; n = n.left {
		it.stack = append(it.stack, n)
	}
}

func (it *iterator[T]) advance() {
	if len(it.stack) == 0 {
		it.nextNode = nil
		return
	}
	last := len(it.stack) - 1
	it.nextNode = it.stack[last]
	it.stack = it.stack[:last]
}
