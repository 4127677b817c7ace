// Package benchmarks compares the containers against container/list, plain
// slices and github.com/emirpasic/gods under reproducible workloads.
package benchmarks

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"hop.computer/collections/pkg/readers"
	"hop.computer/collections/pkg/thunks"
)

// initialElements is the size of the sequence every workload starts from:
// 1 through 99.
const initialElements = 99

// Workload describes one run. The same Workload and Seed produce the same
// operations against every implementation.
type Workload struct {
	Additions int
	Removals  int
	Seed      int64

	// Bias is the number of coin bits the deque workload inspects.
	Bias int
}

// Result reports one run.
type Result struct {
	Kind    Kind
	Impl    string
	Len     int
	Sum     int
	Elapsed time.Duration
}

func fill(s Sequence) {
	for v := 1; v <= initialElements; v++ {
		s.Insert(s.Len(), v)
	}
}

func timed(kind Kind, impl string, body func(Sequence)) (*Result, error) {
	s, err := New(kind, impl)
	if err != nil {
		return nil, err
	}
	start := thunks.TimeNow()
	fill(s)
	body(s)
	sum := s.Sum()
	return &Result{
		Kind:    kind,
		Impl:    impl,
		Len:     s.Len(),
		Sum:     sum,
		Elapsed: thunks.TimeNow().Sub(start),
	}, nil
}

// Run inserts Additions values at random positions, removes Removals elements
// from random positions, and sums what is left by forward iteration. Removal
// stops early if the sequence empties.
func Run(kind Kind, impl string, w Workload) (*Result, error) {
	return timed(kind, impl, func(s Sequence) {
		f := gofakeit.New(w.Seed)
		for x := 0; x < w.Additions; x++ {
			s.Insert(f.Number(0, s.Len()-1), x)
		}
		for i := 0; i < w.Removals && s.Len() > 0; i++ {
			s.Remove(f.Number(0, s.Len()-1))
		}
	})
}

// RunList runs the random workload against a list implementation.
func RunList(impl string, w Workload) (*Result, error) {
	return Run(KindList, impl, w)
}

// RunVector runs the random workload against a vector implementation.
func RunVector(impl string, w Workload) (*Result, error) {
	return Run(KindVector, impl, w)
}

// RunDeque pushes Additions values onto the front or back and then pops
// Removals from either end, each side chosen by a seeded coin.
func RunDeque(kind Kind, impl string, w Workload) (*Result, error) {
	return timed(kind, impl, func(s Sequence) {
		coin := readers.NewDeterministicCoinFlipper(uint64(w.Seed), w.Bias, false)
		for x := 0; x < w.Additions; x++ {
			if coin.Flip() {
				s.Insert(0, x)
			} else {
				s.Insert(s.Len(), x)
			}
		}
		for i := 0; i < w.Removals && s.Len() > 0; i++ {
			if coin.Flip() {
				s.Remove(0)
			} else {
				s.Remove(s.Len() - 1)
			}
		}
	})
}
