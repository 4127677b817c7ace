// Package vector implements a growable contiguous array with manual capacity
// management.
//
// A Vector owns a single buffer. Growing allocates a new buffer, relocates the
// live prefix with copy, and clears the old buffer so it holds no references.
// Element types with zero size never allocate: only the length is tracked.
package vector

import (
	"fmt"
	"iter"
	"math"
	"strings"
	"unsafe"

	"hop.computer/collections/pkg"
)

const (
	growthRate      = 1.25
	initialCapacity = 2
)

// Vector is a contiguous, growable sequence of T. The zero value is an empty
// vector with no allocation. A Vector is not safe for concurrent use.
type Vector[T any] struct {
	data     []T // nil until the first allocation
	size     int
	capacity int

	// mods counts structural changes so borrowing iterators can detect them.
	mods int
}

func zeroSized[T any]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 0
}

// New returns an empty vector. It does not allocate a buffer.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// WithCapacity returns an empty vector with room for n elements. Nothing is
// allocated for zero-sized T.
func WithCapacity[T any](n int) *Vector[T] {
	if n < 0 {
		pkg.Fail(pkg.ErrOverflow, "vector: negative capacity %d", n)
	}
	v := New[T]()
	if n > 0 {
		v.reserve(n)
	}
	return v
}

// From returns a vector holding values, in order.
func From[T any](values ...T) *Vector[T] {
	v := WithCapacity[T](len(values))
	for _, x := range values {
		v.Push(x)
	}
	return v
}

// Collect returns a vector holding every element of seq, in order.
func Collect[T any](seq iter.Seq[T]) *Vector[T] {
	v := New[T]()
	for x := range seq {
		v.Push(x)
	}
	return v
}

// Len returns the number of elements in the vector.
func (v *Vector[T]) Len() int {
	return v.size
}

// IsEmpty reports whether the vector has no elements. It says nothing about
// whether a buffer is allocated.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Cap returns the number of elements the current buffer can hold. For
// zero-sized T it is math.MaxInt.
func (v *Vector[T]) Cap() int {
	if zeroSized[T]() {
		return math.MaxInt
	}
	return v.capacity
}

// Allocated reports whether the vector currently owns a buffer.
func (v *Vector[T]) Allocated() bool {
	return v.data != nil
}

// reserve moves the vector into a buffer of exactly newCap slots. O(n).
func (v *Vector[T]) reserve(newCap int) {
	if zeroSized[T]() {
		return
	}
	if newCap < v.size {
		pkg.Panicf("vector: capacity %d cannot hold %d elements", newCap, v.size)
	}
	buf := make([]T, newCap)
	copy(buf, v.data[:v.size])
	clear(v.data)
	v.data = buf
	v.capacity = newCap
}

// Reserve grows the buffer by exactly additional slots. O(n).
func (v *Vector[T]) Reserve(additional int) {
	if additional < 0 {
		pkg.Fail(pkg.ErrOverflow, "vector: negative reservation %d", additional)
	}
	if additional == 0 || zeroSized[T]() {
		return
	}
	if additional > math.MaxInt-v.capacity {
		pkg.Fail(pkg.ErrOverflow, "vector: capacity %d + %d", v.capacity, additional)
	}
	v.reserve(v.capacity + additional)
}

func (v *Vector[T]) grow() {
	if v.data == nil {
		v.reserve(initialCapacity)
		return
	}
	if v.capacity == math.MaxInt {
		pkg.Fail(pkg.ErrOverflow, "vector: capacity %d", v.capacity)
	}
	newCap := math.MaxInt
	if next := math.Ceil(float64(v.capacity) * growthRate); next < float64(math.MaxInt) {
		newCap = int(next)
	}
	if newCap <= v.capacity {
		newCap = v.capacity + 1
	}
	v.reserve(newCap)
}

// at returns the element at i without bounds checks.
func (v *Vector[T]) at(i int) T {
	if zeroSized[T]() {
		var zero T
		return zero
	}
	return v.data[i]
}

// Push appends elem. Amortized O(1).
func (v *Vector[T]) Push(elem T) {
	if zeroSized[T]() {
		if v.size == math.MaxInt {
			pkg.Fail(pkg.ErrOverflow, "vector: length %d", v.size)
		}
	} else {
		if v.size == v.capacity {
			v.grow()
		}
		v.data[v.size] = elem
	}
	v.size++
	v.mods++
}

// Get returns the element at i. It returns false if i is out of range.
func (v *Vector[T]) Get(i int) (T, bool) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, false
	}
	return v.at(i), true
}

// GetMut returns a pointer to the element at i, or nil if i is out of range.
// The pointer is invalidated by the next structural change to the vector.
func (v *Vector[T]) GetMut(i int) *T {
	if i < 0 || i >= v.size {
		return nil
	}
	if zeroSized[T]() {
		return new(T)
	}
	return &v.data[i]
}

// At returns the element at i, panicking if i is out of range.
func (v *Vector[T]) At(i int) T {
	x, ok := v.Get(i)
	if !ok {
		pkg.Fail(pkg.ErrOutOfBounds, "vector: index %d, len %d", i, v.size)
	}
	return x
}

// Insert places elem at i, shifting everything from i onwards one slot to the
// right. Inserting at Len() is a Push. O(n).
func (v *Vector[T]) Insert(i int, elem T) {
	if i < 0 || i > v.size {
		pkg.Fail(pkg.ErrOutOfBounds, "vector: insert at %d, len %d", i, v.size)
	}
	if i == v.size {
		v.Push(elem)
		return
	}
	if zeroSized[T]() {
		if v.size == math.MaxInt {
			pkg.Fail(pkg.ErrOverflow, "vector: length %d", v.size)
		}
	} else {
		if v.size == v.capacity {
			v.grow()
		}
		copy(v.data[i+1:v.size+1], v.data[i:v.size])
		v.data[i] = elem
	}
	v.size++
	v.mods++
}

// Remove takes the element at i out of the vector and shifts everything after
// it one slot to the left. O(n). Prefer Retain when removing many elements.
func (v *Vector[T]) Remove(i int) T {
	if i < 0 || i >= v.size {
		pkg.Fail(pkg.ErrOutOfBounds, "vector: remove at %d, len %d", i, v.size)
	}
	ret := v.at(i)
	if !zeroSized[T]() {
		copy(v.data[i:v.size-1], v.data[i+1:v.size])
		var zero T
		v.data[v.size-1] = zero
	}
	v.size--
	v.mods++
	return ret
}

// Pop removes and returns the last element. It returns false if the vector is
// empty. O(1).
func (v *Vector[T]) Pop() (T, bool) {
	var zero T
	if v.size == 0 {
		return zero, false
	}
	v.size--
	v.mods++
	ret := v.at(v.size)
	if !zeroSized[T]() {
		v.data[v.size] = zero
	}
	return ret, true
}

// Retain keeps only the elements for which keep returns true, preserving
// their order. Rejected elements are dropped. O(n), single pass.
func (v *Vector[T]) Retain(keep func(T) bool) {
	zst := zeroSized[T]()
	w := 0
	for r := 0; r < v.size; r++ {
		elem := v.at(r)
		if !keep(elem) {
			pkg.Drop(elem)
			continue
		}
		if w != r && !zst {
			v.data[w] = v.data[r]
		}
		w++
	}
	if w == v.size {
		return
	}
	if !zst {
		clear(v.data[w:v.size])
	}
	v.size = w
	v.mods++
}

// AsSlice returns a view of the live elements. The view shares the buffer and
// is invalidated by the next structural change; callers must not write
// through it. Use AsSliceMut for a writable view.
func (v *Vector[T]) AsSlice() []T {
	if zeroSized[T]() {
		return make([]T, v.size)
	}
	return v.data[:v.size:v.size]
}

// AsSliceMut returns a writable view of the live elements. Writes through the
// view are visible in the vector. Its capacity is clipped, so appending to it
// never touches the vector's spare slots.
func (v *Vector[T]) AsSliceMut() []T {
	return v.AsSlice()
}

// SetLen sets the length without initialising or dropping anything. Slots
// exposed by growing the length hold whatever the buffer held, normally the
// zero value. Panics if n exceeds the capacity.
func (v *Vector[T]) SetLen(n int) {
	if n < 0 || n > v.Cap() {
		pkg.Fail(pkg.ErrOutOfBounds, "vector: length %d, capacity %d", n, v.Cap())
	}
	v.size = n
	v.mods++
}

// Clone returns a vector holding a shallow copy of every element.
func (v *Vector[T]) Clone() *Vector[T] {
	c := WithCapacity[T](v.size)
	for i := 0; i < v.size; i++ {
		c.Push(v.at(i))
	}
	return c
}

// Free drops every element, back to front, and releases the buffer. The
// vector is empty and unallocated afterwards.
func (v *Vector[T]) Free() {
	for !v.IsEmpty() {
		x, _ := v.Pop()
		pkg.Drop(x)
	}
	v.data = nil
	v.capacity = 0
	v.mods++
}

// String renders the vector as [a, b, c].
func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < v.size; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", v.at(i))
	}
	b.WriteByte(']')
	return b.String()
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq. Vectors of differing
// length are never equal.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !eq(a.at(i), b.at(i)) {
			return false
		}
	}
	return true
}
