package bst

import "golang.org/x/exp/constraints"

func newPreorderIterator[T constraints.Ordered](root *node[T]) *preorderIterator[T] {
	it := &preorderIterator[T]{stack: make([]*node[T], 0, initialStackCap)}
	if root != nil {
		it.stack = append(it.stack, root)
	}
	return it
}

func (it *preorderIterator[T]) HasNext() bool {
	return it != nil && len(it.stack) > 0
}

func (it *preorderIterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, ErrNoMoreNodes
	}
	cur := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	// right first so the left subtree is popped next
	if cur.right != nil {
		it.stack = append(it.stack, cur.right)
	}
	if cur.left != nil {
		it.stack = append(it.stack, cur.left)
	}
	return cur.data, nil
}

func newInorderIterator[T constraints.Ordered](root *node[T]) *inorderIterator[T] {
	it := &inorderIterator[T]{stack: make([]*node[T], 0, initialStackCap)}
	it.pushLeft(root)
	return it
}

func (it *inorderIterator[T]) pushLeft(n *node[T]) {
	for ; n != nil; n = n.left {
		it.stack = append(it.stack, n)
	}
}

func (it *inorderIterator[T]) HasNext() bool {
	return it != nil && len(it.stack) > 0
}

func (it *inorderIterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, ErrNoMoreNodes
	}
	cur := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.pushLeft(cur.right)
	return cur.data, nil
}

func newPostorderIterator[T constraints.Ordered](root *node[T]) *postorderIterator[T] {
	it := &postorderIterator[T]{
		stack: make([]*node[T], 0, initialStackCap),
		cur:   root,
	}
	it.advance()
	return it
}

func (it *postorderIterator[T]) advance() {
	it.next = nil
	for it.cur != nil || len(it.stack) > 0 {
		if it.cur != nil {
			it.stack = append(it.stack, it.cur)
			it.cur = it.cur.left
			continue
		}
		top := it.stack[len(it.stack)-1]
		if top.right != nil && it.last != top.right {
			it.cur = top.right
			continue
		}
		it.stack = it.stack[:len(it.stack)-1]
		it.last, it.next = top, top
		return
	}
}

func (it *postorderIterator[T]) HasNext() bool {
	return it != nil && it.next != nil
}

func (it *postorderIterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, ErrNoMoreNodes
	}
	cur := it.next
	it.advance()
	return cur.data, nil
}

func newLevelorderIterator[T constraints.Ordered](root *node[T]) *levelorderIterator[T] {
	it := &levelorderIterator[T]{}
	if root != nil {
		it.queue = append(it.queue, root)
	}
	return it
}

func (it *levelorderIterator[T]) HasNext() bool {
	return it != nil && len(it.queue) > 0
}

func (it *levelorderIterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, ErrNoMoreNodes
	}
	cur := it.queue[0]
	it.queue[0] = nil
	it.queue = it.queue[1:]
	if cur.left != nil {
		it.queue = append(it.queue, cur.left)
	}
	if cur.right != nil {
		it.queue = append(it.queue, cur.right)
	}
	return cur.data, nil
}
