package bst

import (
	"errors"

	"golang.org/x/exp/constraints"
)

const (
	LevelOrder Order = iota
	PreOrder
	InOrder
	PostOrder
)

const (
	traverseStop traverseAction = iota
	traverseContinue
)

const (
	// pretty printer connectors
	branchIn  = "│   "
	branchOut = "    "
	leftEdge  = "└── "
	rightEdge = "┌── "

	// height of an absent subtree, a leaf has height 0
	emptyHeight = -1
)

var (
	ErrEmptyTree   = errors.New("the tree is empty")
	ErrNotFound    = errors.New("value not found in the tree")
	ErrNoMoreNodes = errors.New("There are no more nodes in the tree")
)

type (
	Order int

	// Callback is called for every visited node, returning false stops the walk.
	Callback[T constraints.Ordered] func(n Node[T]) bool

	traverseAction int

	tree[T constraints.Ordered] struct {
		size int
		root *node[T]
	}

	node[T constraints.Ordered] struct {
		value T
		left  *node[T]
		right *node[T]
	}

	// in-order iterator, stack holds the nodes whose left subtree is being visited
	iterator[T constraints.Ordered] struct {
		nextNode *node[T]
		stack    []*node[T]
	}
)

func newNode[T constraints.Ordered](value T) *node[T] {
	return &node[T]{value: value}
}

func (o Order) String() string {
	return []string{"LevelOrder", "PreOrder", "InOrder", "PostOrder"}[o]
}
