// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"
)

// BetaDist is a beta distribution with shape parameters A and B on
// [0, 1].
type BetaDist struct {
	A, B float64
}

// Valid reports whether A and B are positive and finite.
func (d BetaDist) Valid() bool {
	return finite(d.A) && finite(d.B) && d.A > 0 && d.B > 0
}

func (d BetaDist) b() distuv.Beta {
	return distuv.Beta{Alpha: d.A, Beta: d.B}
}

func (d BetaDist) PDF(x float64) float64 {
	if !d.Valid() {
		return nan
	}
	if x < 0 || x > 1 {
		return 0
	}
	return d.b().Prob(x)
}

func (d BetaDist) CDF(x float64) float64 {
	if !d.Valid() {
		return nan
	}
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	}
	return mathext.RegIncBeta(d.A, d.B, x)
}

func (d BetaDist) InvCDF(y float64) float64 {
	if !d.Valid() || !unitInterval(y) {
		return nan
	}
	return d.b().Quantile(y)
}

func (d BetaDist) Bounds() (float64, float64) {
	return 0, 1
}

func (d BetaDist) Mean() float64 {
	if !d.Valid() {
		return nan
	}
	return d.A / (d.A + d.B)
}

func (d BetaDist) Variance() float64 {
	if !d.Valid() {
		return nan
	}
	s := d.A + d.B
	return d.A * d.B / (s * s * (s + 1))
}
