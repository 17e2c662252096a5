package bst

import (
	"errors"

	"golang.org/x/exp/constraints"
)

const (
	traverseStop traverseAction = iota
	traverseContinue
)

const (
	// stack capacity reserved up front by iterators, grows past it on deep trees
	initialStackCap = 32
)

var (
	ErrKeyNotFound = errors.New("key not found in the tree")
	ErrNoMoreNodes = errors.New("there are no more nodes in the tree")
)

type (
	tree[T constraints.Ordered] struct {
		size int
		root *node[T]
	}

	// a node exclusively owns its left and right subtrees
	node[T constraints.Ordered] struct {
		data        T
		left, right *node[T]
	}

	// Callback is invoked once per visited item, returning false stops the walk.
	Callback[T any] func(item T) bool

	traverseAction int

	// preorderIterator pops a node, yields it and pushes right then left.
	preorderIterator[T constraints.Ordered] struct {
		stack []*node[T]
	}

	// inorderIterator keeps the left spine of the unvisited part on its stack.
	inorderIterator[T constraints.Ordered] struct {
		stack []*node[T]
	}

	// postorderIterator resolves one node ahead so HasNext stays cheap.
	postorderIterator[T constraints.Ordered] struct {
		stack []*node[T]
		cur   *node[T]
		last  *node[T]
		next  *node[T]
	}

	levelorderIterator[T constraints.Ordered] struct {
		queue []*node[T]
	}
)

func newNode[T constraints.Ordered](item T) *node[T] {
	return &node[T]{data: item}
}
