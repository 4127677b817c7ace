package vector

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"go.uber.org/goleak"
	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"

	"hop.computer/collections/pkg"
	"hop.computer/collections/pkg/box"
	"hop.computer/collections/pkg/iterator"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func expectPanic(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		assert.Assert(t, r != nil, "expected a panic")
		err, ok := r.(error)
		assert.Assert(t, ok, "panic value %v is not an error", r)
		assert.Check(t, errors.Is(err, target), "got %v", err)
	}()
	f()
}

func TestVector(t *testing.T) {
	t.Run("new", NewDoesNotAllocate)
	t.Run("growth", Growth)
	t.Run("insert remove", InsertRemove)
	t.Run("bounds", Bounds)
	t.Run("pop", PopOrder)
	t.Run("retain", Retain)
	t.Run("slice", Slice)
	t.Run("set len", SetLen)
	t.Run("reserve", Reserve)
	t.Run("equal", EqualAndString)
}

func NewDoesNotAllocate(t *testing.T) {
	v := New[int]()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Cap())
	assert.Assert(t, !v.Allocated())
	assert.Assert(t, v.IsEmpty())

	var zero Vector[int]
	zero.Push(1)
	assert.Equal(t, 1, zero.At(0))

	w := WithCapacity[int](5)
	assert.Equal(t, 5, w.Cap())
	assert.Equal(t, 0, w.Len())
	assert.Assert(t, w.Allocated())
}

// Capacity follows ceil(cap * 1.25), starting at 2.
func Growth(t *testing.T) {
	v := New[int]()
	var caps []int
	for i := 0; i < 20; i++ {
		v.Push(i)
		if len(caps) == 0 || caps[len(caps)-1] != v.Cap() {
			caps = append(caps, v.Cap())
		}
	}
	assert.DeepEqual(t, []int{2, 3, 4, 5, 7, 9, 12, 15, 19, 24}, caps)
	for i := 0; i < 20; i++ {
		assert.Equal(t, i, v.At(i))
	}

	one := WithCapacity[int](1)
	one.Push(1)
	one.Push(2)
	assert.Equal(t, 2, one.Cap())
}

func InsertRemove(t *testing.T) {
	v := New[int]()
	v.Push(1)
	v.Push(2)
	v.Push(4)
	v.Push(5)
	v.Insert(2, 3)
	assert.DeepEqual(t, []int{1, 2, 3, 4, 5}, v.AsSlice())

	assert.Equal(t, 4, v.Remove(3))
	assert.DeepEqual(t, []int{1, 2, 3, 5}, v.AsSlice())
	_, ok := v.Get(4)
	assert.Assert(t, !ok)

	v.Insert(v.Len(), 6)
	v.Insert(0, 0)
	assert.DeepEqual(t, []int{0, 1, 2, 3, 5, 6}, v.AsSlice())
	assert.Equal(t, 0, v.Remove(0))
	assert.Equal(t, 6, v.Remove(v.Len()-1))
	assert.DeepEqual(t, []int{1, 2, 3, 5}, v.AsSlice())
}

func Bounds(t *testing.T) {
	v := From(1, 2, 3)
	_, ok := v.Get(3)
	assert.Assert(t, !ok)
	_, ok = v.Get(-1)
	assert.Assert(t, !ok)
	assert.Check(t, is.Nil(v.GetMut(3)))

	expectPanic(t, pkg.ErrOutOfBounds, func() { v.Insert(4, 0) })
	expectPanic(t, pkg.ErrOutOfBounds, func() { v.Insert(-1, 0) })
	expectPanic(t, pkg.ErrOutOfBounds, func() { v.Remove(3) })
	expectPanic(t, pkg.ErrOutOfBounds, func() { v.At(10) })
	expectPanic(t, pkg.ErrOverflow, func() { WithCapacity[int](-1) })
	expectPanic(t, pkg.ErrOverflow, func() { v.Reserve(math.MaxInt) })
	assert.Equal(t, 3, v.Len())

	expectPanic(t, pkg.ErrOutOfBounds, func() { New[int]().Remove(0) })
}

func PopOrder(t *testing.T) {
	v := From(1, 2, 3)
	for want := 3; want > 0; want-- {
		x, ok := v.Pop()
		assert.Assert(t, ok)
		assert.Equal(t, want, x)
	}
	_, ok := v.Pop()
	assert.Assert(t, !ok)
	assert.Assert(t, v.Allocated())
}

func Retain(t *testing.T) {
	v := From(1, 2, 3, 4, 5, 6, 7, 8)
	v.Retain(func(x int) bool { return x%2 == 0 })
	assert.DeepEqual(t, []int{2, 4, 6, 8}, v.AsSlice())
	assert.Equal(t, 8, v.Cap())

	v.Retain(func(int) bool { return true })
	assert.DeepEqual(t, []int{2, 4, 6, 8}, v.AsSlice())

	// The vacated tail must not keep references alive.
	ptrs := From(new(int), new(int), new(int))
	ptrs.Retain(func(p *int) bool { return false })
	assert.Equal(t, 0, ptrs.Len())
	for _, p := range ptrs.data {
		assert.Check(t, is.Nil(p))
	}
}

func Slice(t *testing.T) {
	v := From(1, 2, 3)
	s := v.AsSliceMut()
	s[1] = 20
	assert.Equal(t, 20, v.At(1))
	assert.Equal(t, 3, cap(s))

	*v.GetMut(0) = 10
	assert.DeepEqual(t, []int{10, 20, 3}, v.AsSlice())
	assert.Equal(t, 0, len(New[int]().AsSlice()))
}

func SetLen(t *testing.T) {
	v := WithCapacity[int](4)
	v.Push(1)
	v.Push(2)
	v.SetLen(4)
	assert.DeepEqual(t, []int{1, 2, 0, 0}, v.AsSlice())
	v.SetLen(1)
	assert.DeepEqual(t, []int{1}, v.AsSlice())
	expectPanic(t, pkg.ErrOutOfBounds, func() { v.SetLen(5) })
}

func Reserve(t *testing.T) {
	v := From(1, 2)
	v.Reserve(10)
	assert.Equal(t, 12, v.Cap())
	assert.DeepEqual(t, []int{1, 2}, v.AsSlice())
	v.Reserve(0)
	assert.Equal(t, 12, v.Cap())
}

func EqualAndString(t *testing.T) {
	a := From(1, 2, 3)
	b := New[int]()
	b.Push(3)
	b.Insert(0, 1)
	b.Insert(1, 2)
	assert.Assert(t, Equal(a, b))
	assert.Assert(t, Equal(a, a.Clone()))
	b.Push(4)
	assert.Assert(t, !Equal(a, b))

	assert.Equal(t, "[1, 2, 3]", a.String())
	assert.Equal(t, "[]", New[string]().String())
}

type toDrop struct {
	b     uint8
	drops *int
}

func (d toDrop) Drop() { *d.drops++ }

// Elements are dropped exactly once whether they are consumed, left in an
// owning iterator, or left in the vector.
func TestDropCompleteness(t *testing.T) {
	t.Run("consumed", func(t *testing.T) {
		drops := 0
		v := WithCapacity[*box.Box[toDrop]](10)
		for i := 0; i < 10; i++ {
			v.Push(box.New(toDrop{b: uint8(i), drops: &drops}))
		}
		for range v.Values() {
		}
		it := v.IntoIter()
		for b := range iterator.Seq[*box.Box[toDrop]](it) {
			b.Drop()
		}
		it.Close()
		v.Free()
		assert.Equal(t, 10, drops)
	})
	t.Run("partially consumed", func(t *testing.T) {
		drops := 0
		v := New[toDrop]()
		for i := 0; i < 10; i++ {
			v.Push(toDrop{b: uint8(i), drops: &drops})
		}
		it := v.IntoIter()
		for i := 0; i < 3; i++ {
			x, _ := it.Next()
			x.Drop()
		}
		x, _ := it.NextBack()
		assert.Equal(t, uint8(9), x.b)
		x.Drop()
		assert.Equal(t, 6, it.Len())
		it.Close()
		it.Close()
		v.Free()
		assert.Equal(t, 10, drops)
	})
	t.Run("free", func(t *testing.T) {
		drops := 0
		v := New[toDrop]()
		for i := 0; i < 10; i++ {
			v.Push(toDrop{drops: &drops})
		}
		v.Retain(func(d toDrop) bool { return false })
		assert.Equal(t, 10, drops)
		for i := 0; i < 10; i++ {
			v.Push(toDrop{drops: &drops})
		}
		v.Free()
		assert.Equal(t, 20, drops)
		assert.Assert(t, !v.Allocated())
		v.Free()
		assert.Equal(t, 20, drops)
	})
}

type zst struct{}

func TestZeroSized(t *testing.T) {
	v := New[zst]()
	assert.Equal(t, math.MaxInt, v.Cap())

	allocs := testing.AllocsPerRun(100, func() {
		v.Push(zst{})
	})
	assert.Equal(t, 0.0, allocs)
	assert.Equal(t, 101, v.Len())
	assert.Assert(t, !v.Allocated())

	v.Insert(2, zst{})
	assert.Equal(t, 102, v.Len())
	v.Remove(3)
	assert.Equal(t, 101, v.Len())
	_, ok := v.Get(100)
	assert.Assert(t, ok)
	_, ok = v.Get(101)
	assert.Assert(t, !ok)
	assert.Assert(t, v.GetMut(0) != nil)
	assert.Equal(t, 101, len(v.AsSlice()))

	n := 0
	for range v.Values() {
		n++
	}
	assert.Equal(t, 101, n)

	it := v.IntoIter()
	_, ok = it.Next()
	assert.Assert(t, ok)
	_, ok = it.NextBack()
	assert.Assert(t, ok)
	assert.Equal(t, 99, len(iterator.Collect[zst](it)))
	assert.Assert(t, !v.Allocated())

	w := WithCapacity[zst](10)
	assert.Assert(t, !w.Allocated())
	w.SetLen(1000)
	assert.Equal(t, 1000, w.Len())
}
