package bst

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
)

// Fprint draws the tree sideways: right subtrees above their parent, left
// subtrees below. An empty tree writes nothing.
func (t *tree[T]) Fprint(w io.Writer) error {
	if t.root == nil {
		return nil
	}
	return fprintNode(w, t.root, "", true)
}

func (t *tree[T]) String() string {
	var sb strings.Builder
	_ = t.Fprint(&sb)
	return sb.String()
}

func fprintNode[T constraints.Ordered](w io.Writer, n *node[T], prefix string, isLeft bool) error {
	if n.right != nil {
		next := prefix + branchOut
		if isLeft {
			next = prefix + branchIn
		}
		if err := fprintNode(w, n.right, next, false); err != nil {
			return err
		}
	}

	edge := rightEdge
	if isLeft {
		edge = leftEdge
	}
	if _, err := fmt.Fprintf(w, "%s%s%v\n", prefix, edge, n.value); err != nil {
		return err
	}

	if n.left != nil {
		next := prefix + branchIn
		if isLeft {
			next = prefix + branchOut
		}
		return fprintNode(w, n.left, next, true)
	}
	return nil
}
