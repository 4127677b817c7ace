// Package thunks contains pointers to functions that might be replaced in
// tests.
package thunks

import (
	"os"
	"time"
)

// UserHomeDir is an alias for os.UserHomeDir
var UserHomeDir func() (string, error) = os.UserHomeDir

// TimeNow is an alias for time.Now
var TimeNow func() time.Time = time.Now

// SetUpTest replaces thunks with stable test versions. The clock starts at a
// fixed instant and advances one millisecond per call.
func SetUpTest() {
	now := time.Date(1992, 12, 31, 1, 2, 3, 4, time.UTC)
	TimeNow = func() time.Time {
		now = now.Add(time.Millisecond)
		return now
	}
	UserHomeDir = func() (string, error) {
		return "/home/collbench", nil
	}
}

// Restore puts the real implementations back.
func Restore() {
	UserHomeDir = os.UserHomeDir
	TimeNow = time.Now
}
