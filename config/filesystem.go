package config

import (
	"io/fs"
	"os"
)

// overwriting fileSystem lets us use a mock filesystem for tests. Names are
// absolute paths with the leading slash removed, as fs.ValidPath requires.
var fileSystem fs.FS = osFS{}

type osFS struct{}

// osFS implements fs.FS rooted at /.
func (o osFS) Open(name string) (fs.File, error) {
	return os.Open("/" + name)
}
