// Package bst implements an unbalanced binary search tree.
package bst

import (
	"cmp"
)

// node is a single value with smaller values to the left and larger values
// to the right.
type node[V cmp.Ordered] struct {
	value V
	left  *node[V]
	right *node[V]
}

// Tree is a binary search tree over ordered values.
type Tree[V cmp.Ordered] struct {
	root *node[V]
	size int
}

// New creates / initializes a new Tree.
func New[V cmp.Ordered]() *Tree[V] {
	return &Tree[V]{}
}

// Insert adds the value to the tree. Inserting a value that is already
// present leaves the tree unchanged.
func (t *Tree[V]) Insert(value V) {
	if t.root == nil {
		t.root = &node[V]{value: value}
		t.size++
		return
	}
	cur := t.root
	for {
		switch {
		case value < cur.value:
			if cur.left == nil {
				cur.left = &node[V]{value: value}
				t.size++
				return
			}
			cur = cur.left
		case value > cur.value:
			if cur.right == nil {
				cur.right = &node[V]{value: value}
				t.size++
				return
			}
			cur = cur.right
		default:
			return
		}
	}
}

// Contains returns true, if the value is in the tree.
func (t *Tree[V]) Contains(value V) bool {
	cur := t.root
	for cur != nil {
		switch {
		case value < cur.value:
			cur = cur.left
		case value > cur.value:
			cur = cur.right
		default:
			return true
		}
	}
	return false
}

// Size returns the number of values in the tree.
func (t *Tree[V]) Size() int {
	return t.size
}

// Empty returns true, if the tree holds no values.
func (t *Tree[V]) Empty() bool {
	return t.size == 0
}

// Min returns the smallest value in the tree. The second return value is
// false, if the tree is empty.
func (t *Tree[V]) Min() (V, bool) {
	if t.root == nil {
		var zero V
		return zero, false
	}
	cur := t.root
	for cur.left != nil {
		cur = cur.left
	}
	return cur.value, true
}

// Max returns the largest value in the tree. The second return value is
// false, if the tree is empty.
func (t *Tree[V]) Max() (V, bool) {
	if t.root == nil {
		var zero V
		return zero, false
	}
	cur := t.root
	for cur.right != nil {
		cur = cur.right
	}
	return cur.value, true
}

// InOrder returns the values of the tree in ascending order.
func (t *Tree[V]) InOrder() []V {
	values := make([]V, 0, t.size)
	var stack []*node[V]
	cur := t.root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		values = append(values, cur.value)
		cur = cur.right
	}
	return values
}
