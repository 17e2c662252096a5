package bst

import "golang.org/x/exp/constraints"

func (n *node[T]) Data() T {
	return n.data
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

func (n *node[T]) IsLeaf() bool {
	return n.isLeaf()
}

func (n *node[T]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// find the slot holding the first node equal to item, or the empty slot
// where the descent stops
func seek[T constraints.Ordered](slot **node[T], item T) **node[T] {
	for cur := *slot; cur != nil; cur = *slot {
		if item == cur.data {
			return slot
		}
		if item < cur.data {
			slot = &cur.left
		} else {
			slot = &cur.right
		}
	}
	return slot
}

// liftMaxOfLeft copies the maximum of n's left subtree into n and
// unlinks that maximum node. n must have a left child.
func (n *node[T]) liftMaxOfLeft() {
	slot := &n.left
	for (*slot).right != nil {
		slot = &(*slot).right
	}
	n.data = (*slot).data
	// the maximum has no right child, its left subtree takes its place
	replaceRef(slot, (*slot).left)
}

// height counts edges on the longest downward path, a leaf is 0 and an
// absent node is -1.
func (n *node[T]) height() int {
	if n == nil {
		return -1
	}
	type level struct {
		node  *node[T]
		depth int
	}
	deepest := 0
	stack := make([]level, 0, initialStackCap)
	stack = append(stack, level{n, 0})
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.depth > deepest {
			deepest = top.depth
		}
		if top.node.right != nil {
			stack = append(stack, level{top.node.right, top.depth + 1})
		}
		if top.node.left != nil {
			stack = append(stack, level{top.node.left, top.depth + 1})
		}
	}
	return deepest
}

func (n *node[T]) minimum() *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[T]) maximum() *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// modify the slot, ** means ref to the pointer held by the parent (or the root)
func replaceRef[T constraints.Ordered](slot **node[T], newNode *node[T]) {
	*slot = newNode
}
