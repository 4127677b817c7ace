// Package iterator defines the double-ended iterator contract shared by the
// containers, and adapters from it to range-over-func sequences.
package iterator

import "iter"

// Iterator yields elements until it returns false.
type Iterator[T any] interface {
	Next() (T, bool)
}

// DoubleEnded is an iterator that can also be advanced from the back. The
// front and back cursors are independent. Once they meet, both directions
// report exhaustion.
type DoubleEnded[T any] interface {
	Iterator[T]
	NextBack() (T, bool)
}

// Reversed swaps the ends of a double-ended iterator.
type Reversed[T any] struct {
	inner DoubleEnded[T]
}

// Rev returns it with Next and NextBack exchanged.
func Rev[T any](it DoubleEnded[T]) *Reversed[T] {
	return &Reversed[T]{inner: it}
}

// Next implements Iterator.
func (r *Reversed[T]) Next() (T, bool) {
	return r.inner.NextBack()
}

// NextBack implements DoubleEnded.
func (r *Reversed[T]) NextBack() (T, bool) {
	return r.inner.Next()
}

// Seq drains it into a sequence. Breaking out of the range loop leaves the
// remaining elements in the iterator.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect drains it into a slice.
func Collect[T any](it Iterator[T]) []T {
	var out []T
	for v := range Seq(it) {
		out = append(out, v)
	}
	return out
}

// Seq2 is Seq with each element paired with its position, counting from 0.
func Seq2[T any](it Iterator[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; ; i++ {
			v, ok := it.Next()
			if !ok || !yield(i, v) {
				return
			}
		}
	}
}
