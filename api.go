package bst

import (
	"io"

	"golang.org/x/exp/constraints"
)

type Tree[T constraints.Ordered] interface {
	Root() Node[T]
	Size() int

	Find(value T) (Node[T], error)
	FindFrom(value T, start Node[T]) (Node[T], error)
	Insert(value T) Node[T]
	Delete(value T) error

	Walk(order Order, callback Callback[T], roots ...Node[T])
	LevelOrder(callback Callback[T])
	PreOrder(callback Callback[T])
	InOrder(callback Callback[T])
	PostOrder(callback Callback[T])
	Iterator() Iterator[T]
	Values() []T

	Height() int
	HeightOf(n Node[T]) int
	Depth(n Node[T]) (int, error)
	Balanced() bool
	Rebalance()

	Fprint(w io.Writer) error
	String() string
}

type Iterator[T constraints.Ordered] interface {
	HasNext() bool
	Next() (Node[T], error)
}

// Node is a read-only view of a tree node. Absent children are nil.
type Node[T constraints.Ordered] interface {
	Value() T
	Left() Node[T]
	Right() Node[T]
}

// New builds a height-balanced tree from values. The input may be unsorted
// and contain duplicates; it is not modified.
func New[T constraints.Ordered](values ...T) Tree[T] {
	t := &tree[T]{}
	t.reset(values)
	return t
}
