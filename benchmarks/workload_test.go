package benchmarks

import (
	"fmt"
	"testing"

	"go.uber.org/goleak"
	"gotest.tools/assert"

	"hop.computer/collections/pkg/thunks"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var kinds = []Kind{KindList, KindVector}

func TestUntouched(t *testing.T) {
	for _, kind := range kinds {
		for _, impl := range Impls {
			r, err := Run(kind, impl, Workload{})
			assert.NilError(t, err)
			assert.Equal(t, initialElements, r.Len)
			assert.Equal(t, 4950, r.Sum, "%s/%s", kind, impl)
		}
	}
}

// Every implementation sees the same operations, so they must agree.
func TestImplementationsAgree(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 99} {
		w := Workload{Additions: 500, Removals: 300, Seed: seed, Bias: 2}
		for _, run := range []struct {
			name string
			fn   func(Kind, string, Workload) (*Result, error)
		}{
			{"random", Run},
			{"deque", RunDeque},
		} {
			var want *Result
			for _, kind := range kinds {
				for _, impl := range Impls {
					r, err := run.fn(kind, impl, w)
					assert.NilError(t, err)
					assert.Equal(t, initialElements+200, r.Len)
					if want == nil {
						want = r
						continue
					}
					assert.Equal(t, want.Sum, r.Sum, "%s seed %d: %s/%s", run.name, seed, kind, impl)
				}
			}
		}
	}
}

func TestDrainsEarly(t *testing.T) {
	w := Workload{Additions: 1, Removals: 1000, Seed: 4}
	r, err := RunVector(ImplCustom, w)
	assert.NilError(t, err)
	assert.Equal(t, 0, r.Len)
	assert.Equal(t, 0, r.Sum)

	r, err = RunDeque(KindList, ImplGods, w)
	assert.NilError(t, err)
	assert.Equal(t, 0, r.Len)
}

func TestUnknown(t *testing.T) {
	_, err := RunList("boost", Workload{})
	assert.ErrorContains(t, err, `unknown list implementation "boost"`)
	_, err = Run(Kind("heap"), ImplCustom, Workload{})
	assert.ErrorContains(t, err, `unknown container kind "heap"`)
}

func TestElapsed(t *testing.T) {
	thunks.SetUpTest()
	defer thunks.Restore()

	r, err := RunList(ImplCustom, Workload{Additions: 10})
	assert.NilError(t, err)
	assert.Equal(t, "1ms", r.Elapsed.String())
}

func benchmark(b *testing.B, kind Kind, run func(Kind, string, Workload) (*Result, error)) {
	for _, impl := range Impls {
		b.Run(impl, func(b *testing.B) {
			w := Workload{Additions: 10_000, Removals: 1_000, Seed: 1, Bias: 1}
			for i := 0; i < b.N; i++ {
				_, err := run(kind, impl, w)
				assert.NilError(b, err)
			}
			b.ReportMetric(float64(b.N*(w.Additions+w.Removals))/b.Elapsed().Seconds(), "ops/sec")
		})
	}
}

func BenchmarkList(b *testing.B) {
	benchmark(b, KindList, Run)
}

func BenchmarkVector(b *testing.B) {
	benchmark(b, KindVector, Run)
}

func BenchmarkDeque(b *testing.B) {
	for _, kind := range kinds {
		b.Run(fmt.Sprint(kind), func(b *testing.B) {
			benchmark(b, kind, RunDeque)
		})
	}
}
