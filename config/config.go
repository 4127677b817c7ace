// Package config loads benchmark harness settings from TOML.
package config

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"hop.computer/collections/pkg/combinators"
	"hop.computer/collections/pkg/must"
	"hop.computer/collections/pkg/thunks"
)

// Defaults applied to any setting left unset.
const (
	DefaultImpl      = "custom"
	DefaultLoops     = 100
	DefaultAdditions = 100
	DefaultRemovals  = 50
	DefaultBias      = 1
)

// BenchConfig holds the workload parameters for a benchmark run.
type BenchConfig struct {
	Impl      string `toml:"impl"`
	Loops     int    `toml:"loops"`
	Additions int    `toml:"additions"`
	Removals  int    `toml:"removals"`

	// Seed drives every random index. Zero picks a fresh seed.
	Seed int64 `toml:"seed"`

	// Bias is the number of coin bits the deque workload inspects. Pushes go
	// to the front with probability 1/2^Bias.
	Bias int `toml:"bias"`
}

// UserDirectory returns the per-user settings directory, ~/.collbench.
func UserDirectory() (string, error) {
	home, err := thunks.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "unable to locate home directory")
	}
	return filepath.Join(home, ".collbench"), nil
}

// DefaultPath returns the location of the per-user config file.
func DefaultPath() (string, error) {
	dir, err := UserDirectory()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "bench.toml"), nil
}

func fsName(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, "unable to resolve %s", path)
	}
	return strings.TrimPrefix(abs, "/"), nil
}

// LoadFromFile parses the TOML file at path. Keys that do not correspond to a
// setting are an error. Defaults are not applied.
func LoadFromFile(path string) (*BenchConfig, error) {
	name, err := fsName(path)
	if err != nil {
		return nil, err
	}
	f, err := fileSystem.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open config %s", path)
	}
	defer f.Close()

	var c BenchConfig
	md, err := toml.NewDecoder(f).Decode(&c)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return &c, nil
}

// Load reads the config at path, or at DefaultPath when path is empty. A
// missing default file yields an empty config; a missing explicit file is an
// error.
func Load(path string) (*BenchConfig, error) {
	if path != "" {
		return LoadFromFile(path)
	}
	def, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	c, err := LoadFromFile(def)
	if errors.Is(err, fs.ErrNotExist) {
		return &BenchConfig{}, nil
	}
	return c, err
}

// Merge overlays every set field of o onto c.
func (c *BenchConfig) Merge(o *BenchConfig) {
	c.Impl = combinators.StringOr(o.Impl, c.Impl)
	c.Loops = combinators.Or(o.Loops, c.Loops)
	c.Additions = combinators.Or(o.Additions, c.Additions)
	c.Removals = combinators.Or(o.Removals, c.Removals)
	c.Seed = combinators.Or(o.Seed, c.Seed)
	c.Bias = combinators.Or(o.Bias, c.Bias)
}

// ApplyDefaults fills every unset field. An unset seed is drawn from
// crypto/rand.
func (c *BenchConfig) ApplyDefaults() {
	c.Impl = combinators.StringOr(c.Impl, DefaultImpl)
	c.Loops = combinators.Or(c.Loops, DefaultLoops)
	c.Additions = combinators.Or(c.Additions, DefaultAdditions)
	c.Removals = combinators.Or(c.Removals, DefaultRemovals)
	c.Bias = combinators.Or(c.Bias, DefaultBias)
	if c.Seed == 0 {
		c.Seed = must.RandomSeed()
	}
}

// Validate checks that the settings describe a runnable workload.
func (c *BenchConfig) Validate() error {
	switch {
	case c.Loops < 0:
		return errors.Errorf("loops must not be negative, got %d", c.Loops)
	case c.Additions < 0:
		return errors.Errorf("additions must not be negative, got %d", c.Additions)
	case c.Removals < 0:
		return errors.Errorf("removals must not be negative, got %d", c.Removals)
	case c.Bias < 0 || c.Bias > 7:
		return errors.Errorf("bias must be in the range 0-7, got %d", c.Bias)
	}
	return nil
}
