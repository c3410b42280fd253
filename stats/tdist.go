// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// A TDist is a Student's t-distribution with Nu degrees of freedom.
type TDist struct {
	Nu float64
}

// Valid reports whether Nu is positive and finite.
func (t TDist) Valid() bool {
	return finite(t.Nu) && t.Nu > 0
}

func (t TDist) st() distuv.StudentsT {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: t.Nu}
}

func (t TDist) PDF(x float64) float64 {
	if !t.Valid() {
		return nan
	}
	return t.st().Prob(x)
}

func (t TDist) CDF(x float64) float64 {
	if !t.Valid() {
		return nan
	}
	return t.st().CDF(x)
}

func (t TDist) InvCDF(y float64) float64 {
	if !t.Valid() || !unitInterval(y) {
		return nan
	}
	return t.st().Quantile(y)
}

func (t TDist) Bounds() (float64, float64) {
	return -4, 4
}

// Mean returns 0, or NaN if Nu <= 1.
func (t TDist) Mean() float64 {
	if !t.Valid() || t.Nu <= 1 {
		return nan
	}
	return 0
}

// Variance returns Nu/(Nu-2), +Inf for 1 < Nu <= 2, or NaN if
// Nu <= 1.
func (t TDist) Variance() float64 {
	switch {
	case !t.Valid() || t.Nu <= 1:
		return nan
	case t.Nu <= 2:
		return math.Inf(1)
	}
	return t.Nu / (t.Nu - 2)
}

// FDist is Snedecor's F distribution with D1 and D2 degrees of
// freedom.
type FDist struct {
	D1, D2 float64
}

// Valid reports whether D1 and D2 are positive and finite.
func (d FDist) Valid() bool {
	return finite(d.D1) && finite(d.D2) && d.D1 > 0 && d.D2 > 0
}

func (d FDist) f() distuv.F {
	return distuv.F{D1: d.D1, D2: d.D2}
}

func (d FDist) PDF(x float64) float64 {
	if !d.Valid() {
		return nan
	}
	switch {
	case x < 0:
		return 0
	case x == 0 && d.D1 < 2:
		return inf
	case x == 0 && d.D1 == 2:
		return 1
	case x == 0:
		return 0
	}
	return d.f().Prob(x)
}

func (d FDist) CDF(x float64) float64 {
	if !d.Valid() {
		return nan
	}
	if x <= 0 {
		return 0
	}
	return d.f().CDF(x)
}

func (d FDist) InvCDF(y float64) float64 {
	if !d.Valid() || !unitInterval(y) {
		return nan
	}
	return d.f().Quantile(y)
}

func (d FDist) Bounds() (float64, float64) {
	return 0, d.InvCDF(0.99)
}

// Mean returns D2/(D2-2), or +Inf if D2 <= 2.
func (d FDist) Mean() float64 {
	if !d.Valid() {
		return nan
	}
	if d.D2 <= 2 {
		return inf
	}
	return d.D2 / (d.D2 - 2)
}

// Variance returns the variance of d, or +Inf if D2 <= 4.
func (d FDist) Variance() float64 {
	if !d.Valid() {
		return nan
	}
	if d.D2 <= 4 {
		return inf
	}
	d1, d2 := d.D1, d.D2
	return 2 * d2 * d2 * (d1 + d2 - 2) / (d1 * (d2 - 2) * (d2 - 2) * (d2 - 4))
}
