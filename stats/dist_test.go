// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"testing"
)

type momentDist interface {
	Dist
	Moments
}

var validDists = []momentDist{
	UniformDist{0, 4},
	NormalDist{1, 2},
	ExponentialDist{2},
	GammaDist{2, 1},
	GammaDist{0.5, 3},
	BetaDist{2, 2},
	BetaDist{0.5, 0.5},
	InvGammaDist{3, 2},
	ChiSquaredDist{2},
	ChiSquaredDist{7.5},
	TDist{1},
	TDist{5},
	FDist{2, 2},
	FDist{5, 10},
	CauchyDist{0, 1},
	LogisticDist{0, 1},
	LaplaceDist{-1, 2},
	LogNormalDist{0, 1},
	WeibullDist{1, 1},
	WeibullDist{2.5, 3},
}

var invalidDists = []momentDist{
	UniformDist{1, 1},
	UniformDist{2, 1},
	UniformDist{0, inf},
	NormalDist{0, 0},
	NormalDist{0, -1},
	NormalDist{nan, 1},
	NormalDist{inf, 1},
	ExponentialDist{0},
	ExponentialDist{nan},
	GammaDist{0, 1},
	GammaDist{1, -1},
	GammaDist{inf, 1},
	BetaDist{0, 1},
	BetaDist{1, -2},
	BetaDist{nan, 1},
	InvGammaDist{-1, 1},
	InvGammaDist{1, 0},
	ChiSquaredDist{0},
	TDist{0},
	TDist{-3},
	FDist{0, 1},
	FDist{1, nan},
	CauchyDist{0, 0},
	CauchyDist{nan, 1},
	LogisticDist{0, -1},
	LaplaceDist{0, 0},
	LogNormalDist{0, 0},
	WeibullDist{0, 1},
	WeibullDist{1, 0},
}

func TestValid(t *testing.T) {
	for _, d := range validDists {
		if !d.Valid() {
			t.Errorf("%#v.Valid() = false; want true", d)
		}
	}
	for _, d := range invalidDists {
		name := fmt.Sprintf("%#v", d)
		if d.Valid() {
			t.Errorf("%s.Valid() = true; want false", name)
			continue
		}
		for fname, f := range map[string]func(float64) float64{
			"PDF": d.PDF, "CDF": d.CDF, "InvCDF": d.InvCDF,
		} {
			if got := f(0.5); !math.IsNaN(got) {
				t.Errorf("%s.%s(0.5) = %v; want NaN", name, fname, got)
			}
		}
		if got := d.Mean(); !math.IsNaN(got) {
			t.Errorf("%s.Mean() = %v; want NaN", name, got)
		}
		if got := d.Variance(); !math.IsNaN(got) {
			t.Errorf("%s.Variance() = %v; want NaN", name, got)
		}
	}
}

func TestInvCDF(t *testing.T) {
	for _, d := range validDists {
		testInvCDF(t, fmt.Sprintf("%#v", d), d)
	}
}

func TestCDFKnownValues(t *testing.T) {
	e1 := math.Exp(-1)
	for _, tc := range []struct {
		d    Dist
		vals map[float64]float64
	}{
		{UniformDist{0, 4}, map[float64]float64{-1: 0, 1: 0.25, 4: 1, 5: 1}},
		{StdNormal, map[float64]float64{0: 0.5, -1.959963984540054: 0.025}},
		{ExponentialDist{2}, map[float64]float64{-1: 0, 0: 0, 1: 1 - math.Exp(-2)}},
		{GammaDist{2, 1}, map[float64]float64{-1: 0, 1: 1 - 2*e1}},
		{BetaDist{2, 2}, map[float64]float64{-1: 0, 0.5: 0.5, 2: 1}},
		{InvGammaDist{2, 1}, map[float64]float64{-1: 0, 0: 0, 1: 2 * e1}},
		{ChiSquaredDist{2}, map[float64]float64{-1: 0, 2: 1 - e1}},
		{TDist{1}, map[float64]float64{0: 0.5, 1: 0.75, -1: 0.25}},
		{FDist{2, 2}, map[float64]float64{-1: 0, 1: 0.5, 3: 0.75}},
		{CauchyDist{0, 1}, map[float64]float64{0: 0.5, 1: 0.75}},
		{LogisticDist{0, 1}, map[float64]float64{0: 0.5, math.Log(3): 0.75}},
		{LaplaceDist{0, 1}, map[float64]float64{0: 0.5, 1: 1 - e1/2, -1: e1 / 2}},
		{LogNormalDist{0, 1}, map[float64]float64{-1: 0, 0: 0, 1: 0.5}},
		{WeibullDist{1, 1}, map[float64]float64{-1: 0, 1: 1 - e1}},
	} {
		testFunc(t, fmt.Sprintf("%+v.CDF", tc.d), tc.d.CDF, tc.vals)
	}
}

func TestPDFKnownValues(t *testing.T) {
	testFunc(t, "StdNormal.PDF", StdNormal.PDF, map[float64]float64{0: invSqrt2Pi})
	testFunc(t, "BetaDist{2,2}.PDF", BetaDist{2, 2}.PDF, map[float64]float64{-1: 0, 0.5: 1.5, 2: 0})
	testFunc(t, "CauchyDist{0,1}.PDF", CauchyDist{0, 1}.PDF, map[float64]float64{0: 1 / math.Pi, 1: 0.5 / math.Pi})
	testFunc(t, "UniformDist{0,4}.PDF", UniformDist{0, 4}.PDF, map[float64]float64{-1: 0, 2: 0.25, 5: 0})
	testFunc(t, "LaplaceDist{0,1}.PDF", LaplaceDist{0, 1}.PDF, map[float64]float64{0: 0.5})
	testFunc(t, "FDist{2,2}.PDF", FDist{2, 2}.PDF, map[float64]float64{-1: 0, 0: 1, 1: 0.25})
}

func TestInvCDFEndpoints(t *testing.T) {
	testFunc(t, "CauchyDist.InvCDF", CauchyDist{0, 1}.InvCDF, map[float64]float64{
		0: math.Inf(-1), 0.5: 0, 0.75: 1, 1: inf,
	})
	testFunc(t, "LogisticDist.InvCDF", LogisticDist{0, 1}.InvCDF, map[float64]float64{
		0: math.Inf(-1), 0.5: 0, 0.75: math.Log(3), 1: inf,
	})
	testFunc(t, "ExponentialDist.InvCDF", ExponentialDist{1}.InvCDF, map[float64]float64{
		0: 0, 1: inf,
	})
}

func TestMoments(t *testing.T) {
	for _, tc := range []struct {
		d          Moments
		mean, vari float64
	}{
		{UniformDist{0, 6}, 3, 3},
		{NormalDist{1, 2}, 1, 4},
		{ExponentialDist{2}, 0.5, 0.25},
		{GammaDist{3, 2}, 1.5, 0.75},
		{BetaDist{3, 2}, 0.6, 0.04},
		{InvGammaDist{5, 2}, 0.5, 4.0 / (16 * 3)},
		{InvGammaDist{1, 2}, inf, inf},
		{ChiSquaredDist{4}, 4, 8},
		{TDist{5}, 0, 5.0 / 3},
		{TDist{1}, nan, nan},
		{FDist{5, 10}, 10.0 / 8, 2 * 100 * 13 / (5 * 64 * 6.0)},
		{CauchyDist{0, 1}, nan, nan},
		{LaplaceDist{-1, 2}, -1, 8},
		{LogNormalDist{0, 1}, math.Exp(0.5), (math.E - 1) * math.E},
		{WeibullDist{1, 3}, 3, 9},
		{BernoulliDist{0.25}, 0.25, 0.1875},
		{BinomialDist{10, 0.3}, 3, 2.1},
		{PoissonDist{4}, 4, 4},
	} {
		if got := tc.d.Mean(); !(naneq(tc.mean, got) || aeq(tc.mean, got)) {
			t.Errorf("%+v.Mean() = %v; want %v", tc.d, got, tc.mean)
		}
		if got := tc.d.Variance(); !(naneq(tc.vari, got) || aeq(tc.vari, got)) {
			t.Errorf("%+v.Variance() = %v; want %v", tc.d, got, tc.vari)
		}
	}
}

func TestChiSquaredIsGamma(t *testing.T) {
	c := ChiSquaredDist{5}
	g := c.Gamma()
	for _, x := range []float64{0.5, 1, 3, 7, 12} {
		if !aeq(c.CDF(x), g.CDF(x)) {
			t.Errorf("ChiSquared CDF(%v) = %v; gamma CDF = %v", x, c.CDF(x), g.CDF(x))
		}
		if !aeq(c.PDF(x), g.PDF(x)) {
			t.Errorf("ChiSquared PDF(%v) = %v; gamma PDF = %v", x, c.PDF(x), g.PDF(x))
		}
	}
}

func TestInvGammaIsReciprocalGamma(t *testing.T) {
	g := GammaDist{3, 2}
	ig := InvGammaDist{3, 2}
	for _, x := range []float64{0.1, 0.5, 1, 4} {
		// Pr[1/X <= x] = Pr[X >= 1/x].
		if want, got := 1-g.CDF(1/x), ig.CDF(x); !aeq(want, got) {
			t.Errorf("InvGammaDist.CDF(%v) = %v; want %v", x, got, want)
		}
	}
}
