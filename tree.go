package bst

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/slices"
)

func (t *tree[T]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

func (t *tree[T]) IsEmpty() bool {
	return t.Size() == 0
}

func (t *tree[T]) Root() Node[T] {
	if t.root == nil {
		return nil
	}
	return t.root
}

// Clear drops the root, the whole tree goes with it.
func (t *tree[T]) Clear() {
	t.root = nil
	t.size = 0
}

func (t *tree[T]) Add(item T) {
	slot := &t.root
	for cur := *slot; cur != nil; cur = *slot {
		if item < cur.data {
			slot = &cur.left
		} else {
			slot = &cur.right
		}
	}
	replaceRef(slot, newNode(item))
	t.size++
}

func (t *tree[T]) Remove(item T) (T, error) {
	if !t.Contains(item) {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, item)
	}

	// slot is either &t.root or the parent's child field, so the root
	// needs no special case
	slot := seek(&t.root, item)
	cur := *slot
	removed := cur.data

	switch {
	case cur.left != nil && cur.right != nil:
		cur.liftMaxOfLeft()
	case cur.left == nil:
		replaceRef(slot, cur.right)
	default:
		replaceRef(slot, cur.left)
	}

	t.size--
	return removed, nil
}

func (t *tree[T]) Replace(item, newItem T) (T, bool) {
	cur := *seek(&t.root, item)
	if cur == nil {
		var zero T
		return zero, false
	}
	old := cur.data
	cur.data = newItem
	return old, true
}

func (t *tree[T]) Find(item T) (T, bool) {
	cur := *seek(&t.root, item)
	if cur == nil {
		var zero T
		return zero, false
	}
	return cur.data, true
}

func (t *tree[T]) Contains(item T) bool {
	_, found := t.Find(item)
	return found
}

// Count returns how many copies of item are stored. A removal with two
// children can leave a copy equal to a node in its left subtree, so every
// branch that may still hold one is visited.
func (t *tree[T]) Count(item T) int {
	count := 0
	stack := make([]*node[T], 0, initialStackCap)
	if t.root != nil {
		stack = append(stack, t.root)
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.data == item {
			count++
		}
		if cur.left != nil && !(cur.data < item) {
			stack = append(stack, cur.left)
		}
		if cur.right != nil && !(item < cur.data) {
			stack = append(stack, cur.right)
		}
	}
	return count
}

func (t *tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return t.root.minimum().data, true
}

func (t *tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return t.root.maximum().data, true
}

// Successor returns the smallest item strictly greater than item.
// Time: O(height)
func (t *tree[T]) Successor(item T) (T, bool) {
	var found *node[T]
	for cur := t.root; cur != nil; {
		if item < cur.data {
			found = cur
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	if found == nil {
		var zero T
		return zero, false
	}
	return found.data, true
}

// Predecessor returns the largest item strictly less than item.
// Time: O(height)
func (t *tree[T]) Predecessor(item T) (T, bool) {
	var found *node[T]
	for cur := t.root; cur != nil; {
		if cur.data < item {
			found = cur
			cur = cur.right
		} else {
			cur = cur.left
		}
	}
	if found == nil {
		var zero T
		return zero, false
	}
	return found.data, true
}

// RangeFind returns every item v with low <= v <= high in ascending order.
// Subtrees that lie entirely outside the range are skipped.
func (t *tree[T]) RangeFind(low, high T) []T {
	found := make([]T, 0)
	stack := make([]*node[T], 0, initialStackCap)
	pushLeft := func(n *node[T]) {
		for n != nil {
			stack = append(stack, n)
			if n.data < low {
				return
			}
			n = n.left
		}
	}

	pushLeft(t.root)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if high < cur.data {
			continue
		}
		if !(cur.data < low) {
			found = append(found, cur.data)
		}
		pushLeft(cur.right)
	}
	return found
}

func (t *tree[T]) Height() int {
	return t.root.height()
}

// HeightFrom returns the height of the subtree rooted at n, n must be a
// node of this tree. A nil n measures from the root.
func (t *tree[T]) HeightFrom(n Node[T]) int {
	if nd, ok := n.(*node[T]); ok {
		return nd.height()
	}
	return t.root.height()
}

// IsBalanced recounts the items and reports whether
// height < 2*log2(n+1) - 1. An empty tree is balanced.
func (t *tree[T]) IsBalanced() bool {
	n := 0
	t.ForEach(func(T) bool {
		n++
		return true
	})
	if n == 0 {
		return true
	}
	return float64(t.Height()) < 2*math.Log2(float64(n+1))-1
}

// Rebalance rebuilds the tree by adding the median of every sorted sub-range
// before its left and right halves, giving near minimal height.
func (t *tree[T]) Rebalance() {
	if t.root == nil {
		return
	}

	items := t.collect()
	slices.Sort(items)

	type span struct {
		lo, hi int
	}
	rebuilt := &tree[T]{}
	stack := make([]span, 0, initialStackCap)
	stack = append(stack, span{0, len(items)})
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		mid := s.lo + (s.hi-s.lo)/2
		rebuilt.Add(items[mid])
		// left half is added before the right half
		if mid+1 < s.hi {
			stack = append(stack, span{mid + 1, s.hi})
		}
		if s.lo < mid {
			stack = append(stack, span{s.lo, mid})
		}
	}
	t.root = rebuilt.root
}

func (t *tree[T]) Iterator() Iterator[T] {
	return newPreorderIterator(t.root)
}

func (t *tree[T]) Inorder() Iterator[T] {
	return newInorderIterator(t.root)
}

func (t *tree[T]) Postorder() Iterator[T] {
	return newPostorderIterator(t.root)
}

func (t *tree[T]) Levelorder() Iterator[T] {
	return newLevelorderIterator(t.root)
}

func (t *tree[T]) ForEach(callback Callback[T]) {
	t.walk(callback)
}

func (t *tree[T]) walk(callback Callback[T]) traverseAction {
	it := newPreorderIterator(t.root)
	for it.HasNext() {
		item, _ := it.Next()
		if !callback(item) {
			return traverseStop
		}
	}
	return traverseContinue
}

// collect returns all items in preorder.
func (t *tree[T]) collect() []T {
	items := make([]T, 0, t.size)
	t.walk(func(item T) bool {
		items = append(items, item)
		return true
	})
	return items
}

// Equal reports whether other holds the same items in the same preorder.
func (t *tree[T]) Equal(other Tree[T]) bool {
	if other == nil {
		return false
	}
	if o, ok := other.(*tree[T]); ok && o == t {
		return true
	}
	if t.Size() != other.Size() {
		return false
	}
	it := other.Iterator()
	action := t.walk(func(item T) bool {
		v, err := it.Next()
		return err == nil && v == item
	})
	return action == traverseContinue && !it.HasNext()
}

// Concat returns a new tree with this tree's items followed by other's,
// each added in preorder.
func (t *tree[T]) Concat(other Tree[T]) Tree[T] {
	joined := &tree[T]{}
	t.walk(func(item T) bool {
		joined.Add(item)
		return true
	})
	if other != nil {
		other.ForEach(func(item T) bool {
			joined.Add(item)
			return true
		})
	}
	return joined
}

// String draws the tree rotated 90 degrees counterclockwise, one item per
// line, indented by "| " per level.
func (t *tree[T]) String() string {
	type level struct {
		node  *node[T]
		depth int
	}
	var b strings.Builder
	stack := make([]level, 0, initialStackCap)
	cur, depth := t.root, 0
	for cur != nil || len(stack) > 0 {
		for ; cur != nil; cur, depth = cur.right, depth+1 {
			stack = append(stack, level{cur, depth})
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		b.WriteString(strings.Repeat("| ", top.depth))
		fmt.Fprint(&b, top.node.data)
		b.WriteByte('\n')
		cur, depth = top.node.left, top.depth+1
	}
	return b.String()
}
