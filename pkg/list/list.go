// Package list implements a doubly-linked list
package list

import (
	"fmt"
	"iter"
	"strings"

	"golang.org/x/exp/constraints"

	"hop.computer/collections/pkg"
)

// Node is one link of a List.
type Node[T any] struct {
	next, prev *Node[T]
	val        T
}

// Next returns the next item in the list, or nil if it reaches the end of the
// list.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the previous item in the list, or nil at the front.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// Element returns a pointer to the value at this position in the list.
func (n *Node[T]) Element() *T {
	return &n.val
}

// List implements a doubly linked-list. Head, tail, and size are tracked
// internally, so operations at either end are constant time. Positional
// operations walk from whichever end is nearer unless noted otherwise. The
// list is not thread-safe. The zero value is an empty list.
type List[T any] struct {
	head, tail *Node[T]
	size       int

	// mods counts structural changes so borrowing iterators can detect them.
	mods int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// From returns a list holding values, in order.
func From[T any](values ...T) *List[T] {
	l := New[T]()
	for _, x := range values {
		l.PushBack(x)
	}
	return l
}

// Collect returns a list holding every element of seq, in order.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	for x := range seq {
		l.PushBack(x)
	}
	return l
}

// Len returns the length of the list. This function is constant time.
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Front returns the first element. It returns false if the list is empty.
func (l *List[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.val, true
}

// Back returns the last element. It returns false if the list is empty.
func (l *List[T]) Back() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.val, true
}

// FrontNode returns the first node for manual traversal, or nil if the list is
// empty.
func (l *List[T]) FrontNode() *Node[T] {
	return l.head
}

// BackNode returns the last node, or nil if the list is empty.
func (l *List[T]) BackNode() *Node[T] {
	return l.tail
}

// PushBack appends e to the list.
func (l *List[T]) PushBack(e T) {
	n := &Node[T]{prev: l.tail, val: e}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.size++
	l.mods++
}

// PushFront prepends e to the list.
func (l *List[T]) PushFront(e T) {
	n := &Node[T]{next: l.head, val: e}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.size++
	l.mods++
}

// nodeFront walks i links from the head. i must be in range.
func (l *List[T]) nodeFront(i int) *Node[T] {
	n := l.head
	for ; i > 0; i-- {
		n = n.next
	}
	if n == nil {
		pkg.Fail(pkg.ErrCorrupt, "list: chain shorter than length %d", l.size)
	}
	return n
}

// nodeBack walks i links from the tail. i must be in range.
func (l *List[T]) nodeBack(i int) *Node[T] {
	n := l.tail
	for ; i > 0; i-- {
		n = n.prev
	}
	if n == nil {
		pkg.Fail(pkg.ErrCorrupt, "list: chain shorter than length %d", l.size)
	}
	return n
}

// node returns the node at front index i, walking from the nearer end.
func (l *List[T]) node(i int) *Node[T] {
	if i < l.size/2 {
		return l.nodeFront(i)
	}
	return l.nodeBack(l.size - 1 - i)
}

func (l *List[T]) inRange(i int) bool {
	return i >= 0 && i < l.size
}

// GetFront returns the element i places from the front. O(i).
func (l *List[T]) GetFront(i int) (T, bool) {
	if !l.inRange(i) {
		var zero T
		return zero, false
	}
	return l.nodeFront(i).val, true
}

// GetBack returns the element i places from the back. O(i).
func (l *List[T]) GetBack(i int) (T, bool) {
	if !l.inRange(i) {
		var zero T
		return zero, false
	}
	return l.nodeBack(i).val, true
}

// Get returns the element at front index i, walking from the nearer end.
func (l *List[T]) Get(i int) (T, bool) {
	if !l.inRange(i) {
		var zero T
		return zero, false
	}
	return l.node(i).val, true
}

// GetFrontMut is GetFront returning a pointer into the node, or nil.
func (l *List[T]) GetFrontMut(i int) *T {
	if !l.inRange(i) {
		return nil
	}
	return &l.nodeFront(i).val
}

// GetBackMut is GetBack returning a pointer into the node, or nil.
func (l *List[T]) GetBackMut(i int) *T {
	if !l.inRange(i) {
		return nil
	}
	return &l.nodeBack(i).val
}

// GetMut is Get returning a pointer into the node, or nil. The pointer stays
// valid until that element is removed.
func (l *List[T]) GetMut(i int) *T {
	if !l.inRange(i) {
		return nil
	}
	return &l.node(i).val
}

// signed maps a possibly negative index onto a front index. -1 is the last
// element.
func (l *List[T]) signed(i int) int {
	j := i
	if j < 0 {
		j += l.size
	}
	if !l.inRange(j) {
		pkg.Fail(pkg.ErrOutOfBounds, "list: index %d, len %d", i, l.size)
	}
	return j
}

// At returns the element at i. A negative i counts from the back, so At(-1) is
// the last element. Panics if i is out of range.
func (l *List[T]) At(i int) T {
	return l.node(l.signed(i)).val
}

// AtMut is At returning a pointer into the node.
func (l *List[T]) AtMut(i int) *T {
	return &l.node(l.signed(i)).val
}

// linkBefore inserts a new node holding e in front of at.
func (l *List[T]) linkBefore(at *Node[T], e T) {
	n := &Node[T]{next: at, prev: at.prev, val: e}
	if at.prev != nil {
		at.prev.next = n
	} else {
		l.head = n
	}
	at.prev = n
	l.size++
	l.mods++
}

func (l *List[T]) checkInsert(i int) {
	if i < 0 || i > l.size {
		pkg.Fail(pkg.ErrOutOfBounds, "list: insert at %d, len %d", i, l.size)
	}
}

// InsertFront inserts e so that it ends up i places from the front. O(i).
func (l *List[T]) InsertFront(i int, e T) {
	l.checkInsert(i)
	switch i {
	case 0:
		l.PushFront(e)
	case l.size:
		l.PushBack(e)
	default:
		l.linkBefore(l.nodeFront(i), e)
	}
}

// InsertBack inserts e so that it ends up i places from the back.
// InsertBack(0, e) is PushBack and InsertBack(Len(), e) is PushFront. O(i).
func (l *List[T]) InsertBack(i int, e T) {
	l.checkInsert(i)
	switch i {
	case 0:
		l.PushBack(e)
	case l.size:
		l.PushFront(e)
	default:
		l.linkBefore(l.nodeBack(i-1), e)
	}
}

// Insert inserts e at front index i, walking from the nearer end.
func (l *List[T]) Insert(i int, e T) {
	l.checkInsert(i)
	if i <= l.size/2 {
		l.InsertFront(i, e)
		return
	}
	l.InsertBack(l.size-i, e)
}

// unlink detaches n, clears it, and returns its value.
func (l *List[T]) unlink(n *Node[T]) T {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	ret := n.val
	*n = Node[T]{}
	l.size--
	l.mods++
	return ret
}

// PopFront removes and returns the first element. Panics if the list is
// empty.
func (l *List[T]) PopFront() T {
	if l.head == nil {
		pkg.Fail(pkg.ErrEmpty, "list: pop front")
	}
	return l.unlink(l.head)
}

// PopBack removes and returns the last element. Panics if the list is empty.
func (l *List[T]) PopBack() T {
	if l.tail == nil {
		pkg.Fail(pkg.ErrEmpty, "list: pop back")
	}
	return l.unlink(l.tail)
}

func (l *List[T]) checkRemove(i int) {
	if !l.inRange(i) {
		pkg.Fail(pkg.ErrOutOfBounds, "list: remove at %d, len %d", i, l.size)
	}
}

// RemoveFront removes and returns the element i places from the front. O(i).
func (l *List[T]) RemoveFront(i int) T {
	l.checkRemove(i)
	return l.unlink(l.nodeFront(i))
}

// RemoveBack removes and returns the element i places from the back.
// RemoveBack(0) is PopBack. O(i).
func (l *List[T]) RemoveBack(i int) T {
	l.checkRemove(i)
	return l.unlink(l.nodeBack(i))
}

// Remove removes and returns the element at front index i, walking from the
// nearer end.
func (l *List[T]) Remove(i int) T {
	l.checkRemove(i)
	if i <= l.size/2 {
		return l.RemoveFront(i)
	}
	return l.RemoveBack(l.size - 1 - i)
}

// SplitOff moves the elements from front index i onwards into a new list and
// returns it. SplitOff(0) moves everything. Panics unless 0 <= i < Len().
func (l *List[T]) SplitOff(i int) *List[T] {
	if !l.inRange(i) {
		pkg.Fail(pkg.ErrOutOfBounds, "list: split at %d, len %d", i, l.size)
	}
	if i == 0 {
		out := &List[T]{head: l.head, tail: l.tail, size: l.size}
		l.head, l.tail, l.size = nil, nil, 0
		l.mods++
		return out
	}
	at := l.node(i)
	out := &List[T]{head: at, tail: l.tail, size: l.size - i}
	l.tail = at.prev
	l.tail.next = nil
	at.prev = nil
	l.size = i
	l.mods++
	return out
}

// take empties other and returns its chain.
func (l *List[T]) take(other *List[T]) (head, tail *Node[T], size int) {
	if other == l {
		pkg.Fail(pkg.ErrCorrupt, "list: splice with itself")
	}
	head, tail, size = other.head, other.tail, other.size
	other.head, other.tail, other.size = nil, nil, 0
	other.mods++
	return head, tail, size
}

// Append moves every element of other onto the back of l. other is left empty.
// O(1).
func (l *List[T]) Append(other *List[T]) {
	head, tail, size := l.take(other)
	if size == 0 {
		return
	}
	if l.tail == nil {
		l.head = head
	} else {
		l.tail.next = head
		head.prev = l.tail
	}
	l.tail = tail
	l.size += size
	l.mods++
}

// Prepend moves every element of other onto the front of l. other is left
// empty. O(1).
func (l *List[T]) Prepend(other *List[T]) {
	head, tail, size := l.take(other)
	if size == 0 {
		return
	}
	if l.head == nil {
		l.tail = tail
	} else {
		l.head.prev = tail
		tail.next = l.head
	}
	l.head = head
	l.size += size
	l.mods++
}

// Clone returns a list holding a shallow copy of every element.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	for n := l.head; n != nil; n = n.next {
		c.PushBack(n.val)
	}
	return c
}

// Free drops every element, front to back, and releases every node.
func (l *List[T]) Free() {
	for l.head != nil {
		pkg.Drop(l.unlink(l.head))
	}
	l.mods++
}

// String renders the list as [a, b, c].
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", n.val)
	}
	b.WriteByte(']')
	return b.String()
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq. Lists of differing
// length are never equal.
func EqualFunc[T any](a, b *List[T], eq func(T, T) bool) bool {
	if a.size != b.size {
		return false
	}
	for x, y := a.head, b.head; x != nil; x, y = x.next, y.next {
		if !eq(x.val, y.val) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically. It returns -1, 0 or +1. A list
// that is a prefix of the other sorts first.
func Compare[T constraints.Ordered](a, b *List[T]) int {
	x, y := a.head, b.head
	for ; x != nil && y != nil; x, y = x.next, y.next {
		switch {
		case x.val < y.val:
			return -1
		case x.val > y.val:
			return 1
		}
	}
	switch {
	case x == nil && y == nil:
		return 0
	case x == nil:
		return -1
	default:
		return 1
	}
}
