package bst

import "golang.org/x/exp/constraints"

// Tree is a link-based binary search tree. Items strictly less than a
// node go to its left, items equal or greater go to its right, so
// duplicates are kept. The tree never rebalances itself, call Rebalance
// when the shape has degraded.
type Tree[T constraints.Ordered] interface {
	Add(item T)
	// Remove deletes one copy of item and returns the stored value.
	// It fails with ErrKeyNotFound and leaves the tree untouched when
	// item is absent.
	Remove(item T) (T, error)
	// Replace overwrites item with newItem in place and returns the old
	// value. newItem must keep the same position in the ordering as item,
	// the tree is not restructured.
	Replace(item, newItem T) (T, bool)
	Rebalance()
	Clear()

	Find(item T) (T, bool)
	Contains(item T) bool
	Count(item T) int
	Min() (T, bool)
	Max() (T, bool)
	Successor(item T) (T, bool)
	Predecessor(item T) (T, bool)
	RangeFind(low, high T) []T

	Height() int
	HeightFrom(n Node[T]) int
	IsBalanced() bool
	Size() int
	IsEmpty() bool
	Root() Node[T]

	// Iterator walks the whole tree in preorder.
	Iterator() Iterator[T]
	Inorder() Iterator[T]
	Postorder() Iterator[T]
	Levelorder() Iterator[T]
	// ForEach calls callback for every item in preorder.
	ForEach(callback Callback[T])

	Equal(other Tree[T]) bool
	Concat(other Tree[T]) Tree[T]
	String() string
}

type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
}

// Node is a read-only view of a tree node. Absent children are nil.
type Node[T any] interface {
	Data() T
	Left() Node[T]
	Right() Node[T]
	IsLeaf() bool
}

func New[T constraints.Ordered]() Tree[T] {
	return &tree[T]{}
}

// From returns a tree holding items, added one by one in the given order.
func From[T constraints.Ordered](items []T) Tree[T] {
	t := &tree[T]{}
	for _, item := range items {
		t.Add(item)
	}
	return t
}
