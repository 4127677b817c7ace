package benchmarks

import (
	"container/list"

	"github.com/emirpasic/gods/lists"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"hop.computer/collections/pkg"
	collist "hop.computer/collections/pkg/list"
	"hop.computer/collections/pkg/vector"
)

// Kind selects the container shape under test.
type Kind string

// Container shapes.
const (
	KindList   Kind = "list"
	KindVector Kind = "vector"
)

// Implementation names.
const (
	ImplCustom = "custom"
	ImplStd    = "std"
	ImplGods   = "gods"
)

// Impls lists every implementation, in report order.
var Impls = []string{ImplCustom, ImplStd, ImplGods}

// Sequence is the positional contract every workload drives.
type Sequence interface {
	Len() int
	Insert(i, v int)
	Remove(i int) int
	Sum() int
}

// New returns an empty sequence of the given kind backed by impl.
func New(kind Kind, impl string) (Sequence, error) {
	switch kind {
	case KindList:
		switch impl {
		case ImplCustom:
			return &customList{l: collist.New[int]()}, nil
		case ImplStd:
			return &stdList{l: list.New()}, nil
		case ImplGods:
			return &godsList{l: doublylinkedlist.New()}, nil
		}
	case KindVector:
		switch impl {
		case ImplCustom:
			return &customVector{v: vector.New[int]()}, nil
		case ImplStd:
			return &stdVector{}, nil
		case ImplGods:
			return &godsList{l: arraylist.New()}, nil
		}
	default:
		return nil, errors.Errorf("unknown container kind %q", kind)
	}
	return nil, errors.Errorf("unknown %s implementation %q", kind, impl)
}

type customList struct {
	l *collist.List[int]
}

func (s *customList) Len() int { return s.l.Len() }
func (s *customList) Insert(i, v int) { s.l.Insert(i, v) }
func (s *customList) Remove(i int) int { return s.l.Remove(i) }

func (s *customList) Sum() int {
	sum := 0
	for v := range s.l.Values() {
		sum += v
	}
	return sum
}

type customVector struct {
	v *vector.Vector[int]
}

func (s *customVector) Len() int { return s.v.Len() }
func (s *customVector) Insert(i, v int) { s.v.Insert(i, v) }
func (s *customVector) Remove(i int) int { return s.v.Remove(i) }

func (s *customVector) Sum() int {
	sum := 0
	for v := range s.v.Values() {
		sum += v
	}
	return sum
}

// stdList walks container/list to the position, from the nearer end.
type stdList struct {
	l *list.List
}

func (s *stdList) Len() int { return s.l.Len() }

func (s *stdList) element(i int) *list.Element {
	if i < s.l.Len()/2 {
		e := s.l.Front()
		for ; i > 0; i-- {
			e = e.Next()
		}
		return e
	}
	e := s.l.Back()
	for i = s.l.Len() - 1 - i; i > 0; i-- {
		e = e.Prev()
	}
	return e
}

func (s *stdList) Insert(i, v int) {
	if i == s.l.Len() {
		s.l.PushBack(v)
		return
	}
	s.l.InsertBefore(v, s.element(i))
}

func (s *stdList) Remove(i int) int {
	return s.l.Remove(s.element(i)).(int)
}

func (s *stdList) Sum() int {
	sum := 0
	for e := s.l.Front(); e != nil; e = e.Next() {
		sum += e.Value.(int)
	}
	return sum
}

type stdVector struct {
	s []int
}

func (s *stdVector) Len() int { return len(s.s) }
func (s *stdVector) Insert(i, v int) { s.s = slices.Insert(s.s, i, v) }

func (s *stdVector) Remove(i int) int {
	v := s.s[i]
	s.s = slices.Delete(s.s, i, i+1)
	return v
}

func (s *stdVector) Sum() int {
	sum := 0
	for _, v := range s.s {
		sum += v
	}
	return sum
}

// godsList adapts both gods list flavours, which share lists.List.
type godsList struct {
	l lists.List
}

func (s *godsList) Len() int { return s.l.Size() }

func (s *godsList) Insert(i, v int) {
	if i == s.l.Size() {
		s.l.Add(v)
		return
	}
	s.l.Insert(i, v)
}

func (s *godsList) Remove(i int) int {
	v, ok := s.l.Get(i)
	if !ok {
		pkg.Fail(pkg.ErrOutOfBounds, "gods: index %d, len %d", i, s.l.Size())
	}
	s.l.Remove(i)
	return v.(int)
}

func (s *godsList) Sum() int {
	sum := 0
	for _, v := range s.l.Values() {
		sum += v.(int)
	}
	return sum
}
