// Package box implements an owning pointer: a single value on the heap with
// exactly one owner.
package box

import (
	"hop.computer/collections/pkg"
)

// Box owns one heap-allocated value. The owner releases it with Drop; any use
// afterwards panics with pkg.ErrUseAfterFree.
type Box[T any] struct {
	val *T
}

// New moves elem onto the heap.
func New[T any](elem T) *Box[T] {
	p := new(T)
	*p = elem
	return &Box[T]{val: p}
}

// Deref returns a pointer to the boxed value. The pointer is only valid until
// the box is dropped.
func (b *Box[T]) Deref() *T {
	if b.val == nil {
		pkg.Fail(pkg.ErrUseAfterFree, "box: deref of dropped box")
	}
	return b.val
}

// Value returns a copy of the boxed value.
func (b *Box[T]) Value() T {
	return *b.Deref()
}

// Replace stores elem and hands the previous value back to the caller.
func (b *Box[T]) Replace(elem T) T {
	p := b.Deref()
	old := *p
	*p = elem
	return old
}

// Dropped reports whether Drop has been called.
func (b *Box[T]) Dropped() bool {
	return b.val == nil
}

// Drop destroys the boxed value and releases the allocation. Dropping twice
// panics.
func (b *Box[T]) Drop() {
	p := b.Deref()
	pkg.Drop(*p)
	var zero T
	*p = zero
	b.val = nil
}
