// Package tree implements an unbalanced binary search tree over partially
// ordered elements.
//
// Every node is itself a Tree owning its children through a box.Box. Removing
// an element clears the node's value but leaves the node in place as a
// placeholder so deeper children keep their position. Clean prunes
// placeholders that have no children.
package tree

import (
	"iter"

	"golang.org/x/exp/constraints"

	"hop.computer/collections/pkg"
	"hop.computer/collections/pkg/box"
)

// Comparator orders a relative to b. It returns a negative, zero or positive
// int and true, or false when the two have no defined order.
type Comparator[T any] func(a, b T) (int, bool)

// Tree is a node of an unbalanced binary search tree. Smaller elements go
// left. A Tree is not safe for concurrent use.
type Tree[T any] struct {
	val         T
	ok          bool // false for the empty root and for placeholders
	left, right *box.Box[Tree[T]]
	cmp         Comparator[T]
}

// ordered compares with the built-in operators. A value that is not equal to
// itself, such as NaN, has no order.
func ordered[T constraints.Ordered](a, b T) (int, bool) {
	switch {
	case a != a || b != b:
		return 0, false
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	}
	return 0, true
}

// New returns an empty tree ordered by the built-in comparison operators.
func New[T constraints.Ordered]() *Tree[T] {
	return NewFunc[T](ordered[T])
}

// NewFunc returns an empty tree ordered by cmp.
func NewFunc[T any](cmp Comparator[T]) *Tree[T] {
	if cmp == nil {
		pkg.Panicf("tree: nil comparator")
	}
	return &Tree[T]{cmp: cmp}
}

func (t *Tree[T]) child(b **box.Box[Tree[T]]) *Tree[T] {
	if *b == nil {
		*b = box.New(Tree[T]{cmp: t.cmp})
	}
	return (*b).Deref()
}

func deref[T any](b *box.Box[Tree[T]]) *Tree[T] {
	if b == nil {
		return nil
	}
	return b.Deref()
}

// walk visits live values in order until fn returns false. It reports whether
// the walk ran to completion.
func (t *Tree[T]) walk(fn func(T) bool) bool {
	if t == nil {
		return true
	}
	if !deref(t.left).walk(fn) {
		return false
	}
	if t.ok && !fn(t.val) {
		return false
	}
	return deref(t.right).walk(fn)
}

func (t *Tree[T]) walkBack(fn func(T) bool) bool {
	if t == nil {
		return true
	}
	if !deref(t.right).walkBack(fn) {
		return false
	}
	if t.ok && !fn(t.val) {
		return false
	}
	return deref(t.left).walkBack(fn)
}

func first[T any](walk func(func(T) bool) bool) (T, bool) {
	var v T
	found := false
	walk(func(x T) bool {
		v, found = x, true
		return false
	})
	return v, found
}

// bounds returns the largest live value below t and the smallest above it.
func (t *Tree[T]) bounds() (lo T, hasLo bool, hi T, hasHi bool) {
	lo, hasLo = first(deref(t.left).walkBack)
	hi, hasHi = first(deref(t.right).walk)
	return lo, hasLo, hi, hasHi
}

// Add inserts elem and reports whether an equal element was already present,
// in which case the tree is unchanged.
//
// A placeholder is reused only when elem sorts between its subtrees. If elem
// has no defined order against a node's value, elem takes that node's place
// and the displaced value is dropped.
func (t *Tree[T]) Add(elem T) bool {
	n := t
	for {
		if !n.ok {
			lo, hasLo, hi, hasHi := n.bounds()
			if hasLo {
				if c, ok := n.cmp(elem, lo); ok && c <= 0 {
					n = n.child(&n.left)
					continue
				}
			}
			if hasHi {
				if c, ok := n.cmp(elem, hi); ok && c >= 0 {
					n = n.child(&n.right)
					continue
				}
			}
			n.val, n.ok = elem, true
			return false
		}
		c, ok := n.cmp(elem, n.val)
		switch {
		case !ok:
			pkg.Drop(n.val)
			n.val = elem
			return false
		case c == 0:
			return true
		case c < 0:
			n = n.child(&n.left)
		default:
			n = n.child(&n.right)
		}
	}
}

// lookup returns the node holding a value equal to elem, or nil.
func (t *Tree[T]) lookup(elem T) *Tree[T] {
	n := t
	for n != nil {
		if !n.ok {
			lo, hasLo := first(deref(n.left).walkBack)
			if !hasLo {
				n = deref(n.right)
				continue
			}
			c, ok := n.cmp(elem, lo)
			switch {
			case !ok:
				return nil
			case c <= 0:
				n = deref(n.left)
			default:
				n = deref(n.right)
			}
			continue
		}
		c, ok := n.cmp(elem, n.val)
		switch {
		case !ok:
			return nil
		case c == 0:
			return n
		case c < 0:
			n = deref(n.left)
		default:
			n = deref(n.right)
		}
	}
	return nil
}

// Contains reports whether a value equal to elem is in the tree.
func (t *Tree[T]) Contains(elem T) bool {
	return t.lookup(elem) != nil
}

// Remove takes the value equal to elem out of the tree and hands it to the
// caller. The node stays behind as a placeholder until Clean.
func (t *Tree[T]) Remove(elem T) (T, bool) {
	var zero T
	n := t.lookup(elem)
	if n == nil {
		return zero, false
	}
	v := n.val
	n.val, n.ok = zero, false
	return v, true
}

func (t *Tree[T]) prunable() bool {
	return !t.ok && t.left == nil && t.right == nil
}

// Clean detaches every placeholder that has no children, bottom up, so a
// placeholder whose children were all pruned goes too. The root is never
// detached.
func (t *Tree[T]) Clean() {
	for _, b := range []**box.Box[Tree[T]]{&t.left, &t.right} {
		if *b == nil {
			continue
		}
		c := (*b).Deref()
		c.Clean()
		if c.prunable() {
			(*b).Drop()
			*b = nil
		}
	}
}

// Len counts the live values. O(n).
func (t *Tree[T]) Len() int {
	n := 0
	t.walk(func(T) bool {
		n++
		return true
	})
	return n
}

// Walk calls fn on every live value in ascending order until fn returns
// false.
func (t *Tree[T]) Walk(fn func(T) bool) {
	t.walk(fn)
}

// Values returns the live values in ascending order.
func (t *Tree[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.walk(yield)
	}
}

// Free drops every live value and releases every node. The tree is empty
// afterwards.
func (t *Tree[T]) Free() {
	for _, b := range []**box.Box[Tree[T]]{&t.left, &t.right} {
		if *b == nil {
			continue
		}
		(*b).Deref().Free()
		(*b).Drop()
		*b = nil
	}
	if t.ok {
		pkg.Drop(t.val)
	}
	var zero T
	t.val, t.ok = zero, false
}
