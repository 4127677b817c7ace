// Package pkg contains standalone utility functions that do not depend on
// anything except themselves. The containers under pkg/ share its sentinel
// errors and the Dropper element-lifetime hook.
package pkg

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors carried by container panics. A caller that recovers can
// match them with errors.Is.
var (
	ErrOutOfBounds            = errors.New("index out of bounds")
	ErrEmpty                  = errors.New("container is empty")
	ErrOverflow               = errors.New("capacity overflow")
	ErrCorrupt                = errors.New("internal linkage corrupted")
	ErrUseAfterFree           = errors.New("use after free")
	ErrConcurrentModification = errors.New("container modified during iteration")
)

// Panicf functions like printf, but for constructing a string sent to panic. Do
// not use if you think that fmt.Sprintf would also panic, e.g. if you are
// already inside a panic handler.
func Panicf(msg string, args ...interface{}) {
	s := fmt.Sprintf(msg, args...)
	panic(s)
}

// Fail panics with err wrapped by a formatted message. The panic value is an
// error, so errors.Is(recovered, err) holds.
func Fail(err error, msg string, args ...interface{}) {
	panic(errors.Wrapf(err, msg, args...))
}

// Dropper is implemented by values that need to run cleanup when a container
// destroys them. Containers call Drop exactly once for every element they
// discard themselves. Elements handed back to the caller are never dropped.
type Dropper interface {
	Drop()
}

// Drop calls v.Drop if v implements Dropper.
func Drop[T any](v T) {
	if d, ok := any(v).(Dropper); ok {
		d.Drop()
	}
}
