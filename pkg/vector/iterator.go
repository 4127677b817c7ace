package vector

import (
	"iter"

	"hop.computer/collections/pkg"
	"hop.computer/collections/pkg/iterator"
)

var (
	_ iterator.DoubleEnded[int]  = &IntoIter[int]{}
	_ iterator.DoubleEnded[int]  = &Iter[int]{}
	_ iterator.DoubleEnded[*int] = &IterMut[int]{}
)

// IntoIter is an owning iterator. It holds the buffer taken from the vector
// and moves elements out of it from either end.
type IntoIter[T any] struct {
	data        []T
	front, back int // front is the next slot to yield, back is one past the last
	zst         bool
	closed      bool
}

// IntoIter moves the vector's buffer into an owning iterator. The vector is
// left empty and unallocated. Call Close on the iterator to drop whatever was
// not consumed and release the buffer.
func (v *Vector[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{
		data: v.data,
		back: v.size,
		zst:  zeroSized[T](),
	}
	v.data = nil
	v.size = 0
	v.capacity = 0
	v.mods++
	return it
}

func (it *IntoIter[T]) take(i int) T {
	var zero T
	if it.zst {
		return zero
	}
	ret := it.data[i]
	it.data[i] = zero
	return ret
}

// Next moves the front element out.
func (it *IntoIter[T]) Next() (T, bool) {
	if it.front == it.back {
		var zero T
		return zero, false
	}
	it.front++
	return it.take(it.front - 1), true
}

// NextBack moves the back element out.
func (it *IntoIter[T]) NextBack() (T, bool) {
	if it.front == it.back {
		var zero T
		return zero, false
	}
	it.back--
	return it.take(it.back), true
}

// Len returns the number of elements not yet yielded.
func (it *IntoIter[T]) Len() int {
	return it.back - it.front
}

// Close drops every element not yet yielded and releases the buffer. Calling
// Close more than once is a no-op.
func (it *IntoIter[T]) Close() {
	if it.closed {
		return
	}
	for {
		x, ok := it.Next()
		if !ok {
			break
		}
		pkg.Drop(x)
	}
	it.data = nil
	it.closed = true
}

// Iter is a borrowing iterator. It reads through the vector's bounds-checked
// accessor and never allocates or frees.
type Iter[T any] struct {
	v           *Vector[T]
	front, back int
	mods        int
}

// Iter returns a borrowing iterator over the vector. The vector must not be
// structurally modified while the iterator is in use; doing so makes the next
// call panic with pkg.ErrConcurrentModification.
func (v *Vector[T]) Iter() *Iter[T] {
	return &Iter[T]{v: v, back: v.size, mods: v.mods}
}

func checkMods(have, want int) {
	if have != want {
		pkg.Fail(pkg.ErrConcurrentModification, "vector: modified during iteration")
	}
}

// Next implements iterator.Iterator.
func (it *Iter[T]) Next() (T, bool) {
	checkMods(it.v.mods, it.mods)
	if it.front == it.back {
		var zero T
		return zero, false
	}
	it.front++
	return it.v.Get(it.front - 1)
}

// NextBack implements iterator.DoubleEnded.
func (it *Iter[T]) NextBack() (T, bool) {
	checkMods(it.v.mods, it.mods)
	if it.front == it.back {
		var zero T
		return zero, false
	}
	it.back--
	return it.v.Get(it.back)
}

// IterMut is a borrowing iterator yielding pointers into the buffer. The front
// and back cursors cover disjoint slots, so no slot is yielded twice.
type IterMut[T any] struct {
	v           *Vector[T]
	front, back int
	mods        int
}

// IterMut returns an iterator yielding a pointer to each element. The same
// rules as Iter apply.
func (v *Vector[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{v: v, back: v.size, mods: v.mods}
}

// Next implements iterator.Iterator.
func (it *IterMut[T]) Next() (*T, bool) {
	checkMods(it.v.mods, it.mods)
	if it.front == it.back {
		return nil, false
	}
	it.front++
	return it.v.GetMut(it.front - 1), true
}

// NextBack implements iterator.DoubleEnded.
func (it *IterMut[T]) NextBack() (*T, bool) {
	checkMods(it.v.mods, it.mods)
	if it.front == it.back {
		return nil, false
	}
	it.back--
	return it.v.GetMut(it.back), true
}

// All returns a sequence of index/value pairs, front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := v.Iter()
		for i := 0; ; i++ {
			x, ok := it.Next()
			if !ok || !yield(i, x) {
				return
			}
		}
	}
}

// Backward returns a sequence of index/value pairs, back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := v.Iter()
		for i := v.size - 1; ; i-- {
			x, ok := it.NextBack()
			if !ok || !yield(i, x) {
				return
			}
		}
	}
}

// Values returns a sequence of the elements, front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return iterator.Seq[T](v.Iter())
}
