package box

import (
	"testing"

	"github.com/pkg/errors"
	"gotest.tools/assert"

	"hop.computer/collections/pkg"
)

type tracked struct {
	n     int
	drops *int
}

func (t tracked) Drop() { *t.drops++ }

func TestDeref(t *testing.T) {
	b := New(5)
	assert.Equal(t, 5, *b.Deref())
	*b.Deref() = 6
	assert.Equal(t, 6, b.Value())
	assert.Equal(t, 6, b.Replace(7))
	assert.Equal(t, 7, b.Value())
}

func TestDrop(t *testing.T) {
	drops := 0
	b := New(tracked{n: 1, drops: &drops})
	assert.Assert(t, !b.Dropped())
	b.Drop()
	assert.Assert(t, b.Dropped())
	assert.Equal(t, 1, drops)

	defer func() {
		err, ok := recover().(error)
		assert.Assert(t, ok)
		assert.Assert(t, errors.Is(err, pkg.ErrUseAfterFree))
		assert.Equal(t, 1, drops)
	}()
	b.Drop()
}

func TestNestedDrop(t *testing.T) {
	drops := 0
	outer := New(New(tracked{drops: &drops}))
	outer.Drop()
	assert.Equal(t, 1, drops)
}
