// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// PoissonDist is a Poisson distribution with mean Lambda.
type PoissonDist struct {
	Lambda float64
}

// Valid reports whether Lambda is non-negative and finite. Lambda = 0
// is the point mass at 0.
func (d PoissonDist) Valid() bool {
	return finite(d.Lambda) && d.Lambda >= 0
}

func (d PoissonDist) PMF(k float64) float64 {
	if !d.Valid() {
		return nan
	}
	k = math.Floor(k)
	if k < 0 {
		return 0
	}
	if d.Lambda == 0 {
		if k == 0 {
			return 1
		}
		return 0
	}
	return distuv.Poisson{Lambda: d.Lambda}.Prob(k)
}

func (d PoissonDist) CDF(k float64) float64 {
	if !d.Valid() {
		return nan
	}
	if k < 0 {
		return 0
	}
	if d.Lambda == 0 {
		return 1
	}
	return distuv.Poisson{Lambda: d.Lambda}.CDF(k)
}

// InvCDF returns the smallest k such that CDF(k) >= y.
func (d PoissonDist) InvCDF(y float64) float64 {
	switch {
	case !d.Valid() || !unitInterval(y):
		return nan
	case y == 1:
		return inf
	}
	k := 0.0
	for d.CDF(k) < y {
		k++
	}
	return k
}

// Bounds returns 0 and a point beyond which the remaining mass is
// negligible.
func (d PoissonDist) Bounds() (float64, float64) {
	return 0, math.Ceil(d.Lambda + 8*math.Sqrt(d.Lambda) + 8)
}

func (d PoissonDist) Step() float64 {
	return 1
}

func (d PoissonDist) Mean() float64 {
	if !d.Valid() {
		return nan
	}
	return d.Lambda
}

func (d PoissonDist) Variance() float64 {
	if !d.Valid() {
		return nan
	}
	return d.Lambda
}
