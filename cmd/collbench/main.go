package main

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"hop.computer/collections/benchmarks"
	"hop.computer/collections/config"
	"hop.computer/collections/pkg/glob"
)

func main() {
	logrus.SetLevel(logrus.InfoLevel)
	if err := newApp().Run(os.Args); err != nil {
		logrus.Fatalf("collbench: %s", err)
	}
}

func newApp() *cli.App {
	app := &cli.App{
		Name:  "collbench",
		Usage: "compare the collections containers against container/list, slices and gods",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "impl",
				Usage: "comma-separated implementations or globs to run (custom, std, gods, all)",
			},
			&cli.IntFlag{
				Name:  "loops",
				Usage: "number of times to repeat the workload",
			},
			&cli.IntFlag{
				Name:  "additions",
				Usage: "values inserted per run",
			},
			&cli.IntFlag{
				Name:  "removals",
				Usage: "elements removed per run",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "seed for random positions (default: random)",
			},
			&cli.IntFlag{
				Name:  "bias",
				Usage: "coin bits for the deque workload",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a TOML config (default: ~/.collbench/bench.toml)",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log every loop",
			},
		},
		Before: func(cctx *cli.Context) error {
			if cctx.Bool("verbose") {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:  "list",
			Usage: "random inserts and removes against a linked list",
			Action: func(cctx *cli.Context) error {
				return run(cctx, benchmarks.KindList, benchmarks.Run)
			},
		},
		{
			Name:  "vector",
			Usage: "random inserts and removes against a growable array",
			Action: func(cctx *cli.Context) error {
				return run(cctx, benchmarks.KindVector, benchmarks.Run)
			},
		},
		{
			Name:  "deque",
			Usage: "push and pop at both ends",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "kind",
					Value: string(benchmarks.KindList),
					Usage: "container shape, list or vector",
				},
			},
			Action: func(cctx *cli.Context) error {
				return run(cctx, benchmarks.Kind(cctx.String("kind")), benchmarks.RunDeque)
			},
		},
	}
	return app
}

// loadConfig layers flags over the config file over the defaults.
func loadConfig(cctx *cli.Context) (*config.BenchConfig, error) {
	c, err := config.Load(cctx.String("config"))
	if err != nil {
		return nil, err
	}
	c.Merge(&config.BenchConfig{
		Impl:      cctx.String("impl"),
		Loops:     cctx.Int("loops"),
		Additions: cctx.Int("additions"),
		Removals:  cctx.Int("removals"),
		Seed:      cctx.Int64("seed"),
		Bias:      cctx.Int("bias"),
	})
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// impls expands a comma-separated list of names and globs. Plain names are
// passed through so an unknown one is reported by the run itself.
func impls(arg string) ([]string, error) {
	if arg == "all" {
		arg = "*"
	}
	var out []string
	for _, s := range strings.Split(arg, ",") {
		s = strings.TrimSpace(s)
		switch {
		case s == "":
		case strings.Contains(s, "*"):
			matched := glob.Filter(benchmarks.Impls, []string{s}, glob.IgnoreCase)
			if len(matched) == 0 {
				return nil, errors.Errorf("no implementation matches %q", s)
			}
			out = append(out, matched...)
		default:
			out = append(out, s)
		}
	}
	return out, nil
}

type runFunc func(benchmarks.Kind, string, benchmarks.Workload) (*benchmarks.Result, error)

func run(cctx *cli.Context, kind benchmarks.Kind, fn runFunc) error {
	c, err := loadConfig(cctx)
	if err != nil {
		return err
	}
	w := benchmarks.Workload{
		Additions: c.Additions,
		Removals:  c.Removals,
		Seed:      c.Seed,
		Bias:      c.Bias,
	}
	names, err := impls(c.Impl)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"kind":      kind,
		"loops":     c.Loops,
		"additions": w.Additions,
		"removals":  w.Removals,
		"seed":      w.Seed,
	}).Info("starting workload")

	for _, impl := range names {
		var total time.Duration
		var last *benchmarks.Result
		for i := 0; i < c.Loops; i++ {
			r, err := fn(kind, impl, w)
			if err != nil {
				return errors.Wrapf(err, "%s/%s", kind, impl)
			}
			logrus.Debugf("%s/%s loop %d: sum %d in %s", kind, impl, i, r.Sum, r.Elapsed)
			total += r.Elapsed
			last = r
		}
		if last == nil {
			continue
		}
		logrus.WithFields(logrus.Fields{
			"impl":  impl,
			"len":   last.Len,
			"sum":   last.Sum,
			"total": total,
			"mean":  total / time.Duration(c.Loops),
		}).Info("finished")
	}
	return nil
}
