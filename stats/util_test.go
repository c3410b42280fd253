// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
	"testing"
)

func aeq(expect, got float64) bool {
	if expect < 0 && got < 0 {
		expect, got = -expect, -got
	}
	return expect*0.99999 <= got && got*0.99999 <= expect ||
		math.Abs(expect-got) < 0.00001
}

// naneq reports whether a and b are equal or both NaN.
func naneq(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := vals[x], f(x)
		if naneq(want, got) || aeq(want, got) {
			continue
		}
		t.Errorf("%s(%v) = %v; want %v", name, x, got, want)
	}
}

// testDiscreteCDF checks that dist.CDF agrees with the running sum of
// dist.PMF across dist.Bounds, including between the steps.
func testDiscreteCDF(t *testing.T, name string, dist DiscreteDist) {
	t.Helper()
	lo, hi := dist.Bounds()
	step := dist.Step()
	if got := dist.CDF(lo - step); got != 0 {
		t.Errorf("%s(%v) = %v; want 0", name, lo-step, got)
	}
	sum := 0.0
	for x := lo; x <= hi; x += step {
		sum += dist.PMF(x)
		for _, frac := range []float64{0, step / 2} {
			if got := dist.CDF(x + frac); !aeq(sum, got) {
				t.Errorf("%s(%v) = %v; want %v", name, x+frac, got, sum)
			}
		}
	}
}

// testInvCDF checks that dist.InvCDF inverts dist.CDF at several
// probabilities and rejects probabilities outside [0, 1].
func testInvCDF(t *testing.T, name string, dist Dist) {
	t.Helper()
	for _, p := range []float64{0.01, 0.1, 0.25, 0.5, 0.75, 0.9, 0.99} {
		x := dist.InvCDF(p)
		if got := dist.CDF(x); math.Abs(got-p) > 1e-6 {
			t.Errorf("%s.CDF(InvCDF(%v)) = %v", name, p, got)
		}
	}
	for _, p := range []float64{-0.1, 1.1, math.NaN()} {
		if got := dist.InvCDF(p); !math.IsNaN(got) {
			t.Errorf("%s.InvCDF(%v) = %v; want NaN", name, p, got)
		}
	}
}
