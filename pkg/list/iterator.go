package list

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

// IntoIter is an owning iterator. It holds the chain taken from a list and
// unlinks nodes from either end as it yields them.
type IntoIter[T any] struct {
	rest   List[T]
	closed bool
}

// IntoIter moves every node into an owning iterator and leaves the list empty.
// Call Close on the iterator to drop whatever was not consumed.
func (l *List[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{}
	it.rest.head, it.rest.tail, it.rest.size = l.head, l.tail, l.size
	l.head, l.tail, l.size = nil, nil, 0
	l.mods++
	return it
}

// Next implements iterator.Iterator.
func (it *IntoIter[T]) Next() (T, bool) {
	if it.rest.head == nil {
		var zero T
		return zero, false
	}
	return it.rest.PopFront(), true
}

// NextBack implements iterator.DoubleEnded.
func (it *IntoIter[T]) NextBack() (T, bool) {
	if it.rest.tail == nil {
		var zero T
		return zero, false
	}
	return it.rest.PopBack(), true
}

// Len returns the number of elements not yet yielded.
func (it *IntoIter[T]) Len() int {
	return it.rest.size
}

// Close drops every element not yet yielded. Calling Close more than once is a
// no-op.
func (it *IntoIter[T]) Close() {
	if it.closed {
		return
	}
	it.rest.Free()
	it.closed = true
}

// cursors is the state shared by the borrowing iterators. front and back are
// the next nodes to yield from each end; remaining counts the nodes between
// them, inclusive.
type cursors[T any] struct {
	l           *List[T]
	front, back *Node[T]
	remaining   int
	mods        int
}

func newCursors[T any](l *List[T]) cursors[T] {
	return cursors[T]{l: l, front: l.head, back: l.tail, remaining: l.size, mods: l.mods}
}

func (c *cursors[T]) check() {
	if c.l.mods != c.mods {
		pkg.Fail(pkg.ErrConcurrentModification, "list: modified during iteration")
	}
}

// done marks the cursors exhausted once they have met.
func (c *cursors[T]) done() {
	c.front, c.back = nil, nil
	c.remaining = 0
}

func (c *cursors[T]) next() *Node[T] {
	c.check()
	if c.front == nil {
		return nil
	}
	n := c.front
	if n == c.back {
		if c.remaining != 1 {
			pkg.Fail(pkg.ErrCorrupt, "list: cursors met with %d nodes left", c.remaining)
		}
		c.done()
		return n
	}
	c.front = n.next
	c.remaining--
	return n
}

func (c *cursors[T]) nextBack() *Node[T] {
	c.check()
	if c.back == nil {
		return nil
	}
	n := c.back
	if n == c.front {
		if c.remaining != 1 {
			pkg.Fail(pkg.ErrCorrupt, "list: cursors met with %d nodes left", c.remaining)
		}
		c.done()
		return n
	}
	c.back = n.prev
	c.remaining--
	return n
}

// Iter is a borrowing iterator over a list.
type Iter[T any] struct {
	c cursors[T]
}

// Iter returns a borrowing iterator. The list must not be structurally
// modified while it is in use; doing so makes the next call panic with
// pkg.ErrConcurrentModification.
func (l *List[T]) Iter() *Iter[T] {
	return &Iter[T]{c: newCursors(l)}
}

// Next implements iterator.Iterator.
func (it *Iter[T]) Next() (T, bool) {
	n := it.c.next()
	if n == nil {
		var zero T
		return zero, false
	}
	return n.val, true
}

// NextBack implements iterator.DoubleEnded.
func (it *Iter[T]) NextBack() (T, bool) {
	n := it.c.nextBack()
	if n == nil {
		var zero T
		return zero, false
	}
	return n.val, true
}

// IterMut yields a pointer to each element. A node handed out from one end is
// never handed out from the other.
type IterMut[T any] struct {
	c cursors[T]
}

// IterMut returns an iterator yielding pointers into the nodes. The same rules
// as Iter apply.
func (l *List[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{c: newCursors(l)}
}

// Next implements iterator.Iterator.
func (it *IterMut[T]) Next() (*T, bool) {
	n := it.c.next()
	if n == nil {
		return nil, false
	}
	return &n.val, true
}

// NextBack implements iterator.DoubleEnded.
func (it *IterMut[T]) NextBack() (*T, bool) {
	n := it.c.nextBack()
	if n == nil {
		return nil, false
	}
	return &n.val, true
}

// All returns a sequence of index/value pairs, front to back.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := l.Iter()
		for i := 0; ; i++ {
			x, ok := it.Next()
			if !ok || !yield(i, x) {
				return
			}
		}
	}
}

// Backward returns a sequence of index/value pairs, back to front.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := l.Iter()
		for i := l.size - 1; ; i-- {
			x, ok := it.NextBack()
			if !ok || !yield(i, x) {
				return
			}
		}
	}
}

// Values returns a sequence of the elements, front to back.
func (l *List[T]) Values() iter.Seq[T] {
	return iterator.Seq[T](l.Iter())
}
