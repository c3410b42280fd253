// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"testing"
)

func TestBinomialDist(t *testing.T) {
	dist := BinomialDist{N: 5, P: 0.2}
	testFunc(t, fmt.Sprintf("%+v.PMF", dist), dist.PMF,
		map[float64]float64{
			-1000: 0,
			-1:    0,
			0:     0.32768,
			1:     0.4096,
			2:     0.2048,
			3:     0.0512,
			4:     0.0064,
			5:     math.Pow(dist.P, 5),
			6:     0,
			1000:  0,
		})
	testDiscreteCDF(t, fmt.Sprintf("%+v.CDF", dist), dist)

	dist = BinomialDist{N: 30, P: 0.5}
	norm := dist.NormalApprox()
	for k := 10; k <= 20; k++ {
		b := dist.PMF(float64(k))
		n := norm.CDF(float64(k)+0.5) - norm.CDF(float64(k)-0.5)

		// The normal approximation isn't actually very close,
		// even with high N and P near 0.5, so we only check
		// the center of the distribution and we're pretty
		// lax.
		err := math.Abs(b/n - 1)
		if err > 0.01 {
			t.Errorf("want %v ≅ %v at %d", b, n, k)
		}
	}
}

func TestBinomialDistEdges(t *testing.T) {
	for _, p := range []float64{0, 1} {
		dist := BinomialDist{N: 7, P: p}
		testDiscreteCDF(t, fmt.Sprintf("%+v.CDF", dist), dist)
	}
	testFunc(t, "BinomialDist{0,0.5}.PMF", BinomialDist{0, 0.5}.PMF,
		map[float64]float64{-1: 0, 0: 1, 1: 0})

	for _, bad := range []BinomialDist{{-1, 0.5}, {3, -0.1}, {3, 1.5}, {3, nan}} {
		if bad.Valid() {
			t.Errorf("%+v.Valid() = true", bad)
		}
		if got := bad.PMF(1); !math.IsNaN(got) {
			t.Errorf("%+v.PMF(1) = %v; want NaN", bad, got)
		}
		if got := bad.CDF(1); !math.IsNaN(got) {
			t.Errorf("%+v.CDF(1) = %v; want NaN", bad, got)
		}
	}
}

func TestBinomialInvCDF(t *testing.T) {
	dist := BinomialDist{N: 5, P: 0.2}
	testFunc(t, "BinomialDist.InvCDF", dist.InvCDF, map[float64]float64{
		-0.5: nan,
		0:    0,
		0.3:  0,
		0.5:  1,
		0.9:  2,
		0.99: 3,
		1:    5,
		1.5:  nan,
	})
}

func TestBernoulliDist(t *testing.T) {
	dist := BernoulliDist{P: 0.3}
	testFunc(t, "BernoulliDist.PMF", dist.PMF, map[float64]float64{
		-1: 0, 0: 0.7, 0.5: 0.7, 1: 0.3, 2: 0,
	})
	testDiscreteCDF(t, "BernoulliDist.CDF", dist)
	testFunc(t, "BernoulliDist.InvCDF", dist.InvCDF, map[float64]float64{
		0: 0, 0.69: 0, 0.71: 1, 1: 1, 2: nan,
	})
	if (BernoulliDist{1.01}).Valid() {
		t.Error("BernoulliDist{1.01}.Valid() = true")
	}
}

func TestPoissonDist(t *testing.T) {
	dist := PoissonDist{Lambda: 2}
	e2 := math.Exp(-2)
	testFunc(t, "PoissonDist.PMF", dist.PMF, map[float64]float64{
		-1: 0, 0: e2, 1: 2 * e2, 2: 2 * e2, 3: 4 * e2 / 3, 3.5: 4 * e2 / 3,
	})
	testDiscreteCDF(t, "PoissonDist.CDF", dist)
	testFunc(t, "PoissonDist.InvCDF", dist.InvCDF, map[float64]float64{
		0: 0, 0.1: 0, 0.2: 1, 0.5: 2, 1: inf, -1: nan,
	})

	zero := PoissonDist{Lambda: 0}
	testFunc(t, "PoissonDist{0}.PMF", zero.PMF, map[float64]float64{-1: 0, 0: 1, 1: 0})
	testFunc(t, "PoissonDist{0}.CDF", zero.CDF, map[float64]float64{-1: 0, 0: 1, 5: 1})

	for _, bad := range []PoissonDist{{-1}, {nan}, {inf}} {
		if bad.Valid() {
			t.Errorf("%+v.Valid() = true", bad)
		}
		if got := bad.PMF(0); !math.IsNaN(got) {
			t.Errorf("%+v.PMF(0) = %v; want NaN", bad, got)
		}
	}
}
