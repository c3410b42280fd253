// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randvar

import (
	"math"

	"gonum.org/v1/gonum/mathext"

	"github.com/aclements/go-moredist/numeric"
	"github.com/aclements/go-moredist/rng"
	"github.com/aclements/go-moredist/stats"
)

// Gamma is the gamma distribution with shape Shape and rate Rate.
type Gamma[T numeric.Float] struct {
	Shape, Rate T
}

func (d Gamma[T]) dist() stats.GammaDist {
	return stats.GammaDist{Shape: float64(d.Shape), Rate: float64(d.Rate)}
}

func (d Gamma[T]) Valid() bool { return d.dist().Valid() }

// Rand draws using the squeeze method of Marsaglia and Tsang (2000).
// For Shape < 1 it draws G from Gamma{Shape+1, 1} and a uniform U, in
// that order, and returns G·U^(1/Shape)/Rate. The number of source
// values consumed varies with the rejections but is a deterministic
// function of the source.
func (d Gamma[T]) Rand(r rng.Source) T {
	if !d.Valid() {
		return nan[T]()
	}
	return T(stdGamma[T](float64(d.Shape), r) / float64(d.Rate))
}

// stdGamma draws from Gamma{a, 1} with uniforms at precision T.
func stdGamma[T numeric.Float](a float64, r rng.Source) float64 {
	if a < 1 {
		g := stdGamma[T](a+1, r)
		return g * math.Pow(unit[T](r), 1/a)
	}

	d := a - 1.0/3
	c := 1 / math.Sqrt(9*d)
	for {
		x := mathext.NormalQuantile(unit[T](r))
		v := 1 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v
		u := unit[T](r)
		x2 := x * x
		if u < 1-0.0331*x2*x2 {
			return d * v
		}
		if math.Log(u) < 0.5*x2+d*(1-v+math.Log(v)) {
			return d * v
		}
	}
}

// logStdGamma draws log G for G from Gamma{a, 1}, consuming the same
// source values as stdGamma. For a < 1 the result stays finite where
// G itself underflows to 0.
func logStdGamma[T numeric.Float](a float64, r rng.Source) float64 {
	if a < 1 {
		lg := math.Log(stdGamma[T](a+1, r))
		return lg + math.Log(unit[T](r))/a
	}
	return math.Log(stdGamma[T](a, r))
}

// Beta is the beta distribution with shapes A and B.
type Beta[T numeric.Float] struct {
	A, B T
}

func (d Beta[T]) dist() stats.BetaDist {
	return stats.BetaDist{A: float64(d.A), B: float64(d.B)}
}

func (d Beta[T]) Valid() bool { return d.dist().Valid() }

// Rand draws X from Gamma{A, 1}, then Y from Gamma{B, 1}, and returns
// X/(X+Y). The ratio is formed from log X and log Y in float64 as
// 1/(1+exp(log Y - log X)), so it is never 0/0 when both draws are
// tiny.
func (d Beta[T]) Rand(r rng.Source) T {
	if !d.Valid() {
		return nan[T]()
	}
	lx := logStdGamma[T](float64(d.A), r)
	ly := logStdGamma[T](float64(d.B), r)
	return T(1 / (1 + math.Exp(ly-lx)))
}

// InvGamma is the distribution of 1/X for X drawn from
// Gamma{Shape, Rate}.
type InvGamma[T numeric.Float] struct {
	Shape, Rate T
}

func (d InvGamma[T]) dist() stats.InvGammaDist {
	return stats.InvGammaDist{Shape: float64(d.Shape), Rate: float64(d.Rate)}
}

func (d InvGamma[T]) Valid() bool { return d.dist().Valid() }

func (d InvGamma[T]) Rand(r rng.Source) T {
	if !d.Valid() {
		return nan[T]()
	}
	return 1 / Gamma[T]{d.Shape, d.Rate}.Rand(r)
}

// ChiSquared is the chi-squared distribution with K degrees of
// freedom, drawn as Gamma{K/2, 1/2}.
type ChiSquared[T numeric.Float] struct {
	K T
}

func (d ChiSquared[T]) dist() stats.ChiSquaredDist {
	return stats.ChiSquaredDist{K: float64(d.K)}
}

func (d ChiSquared[T]) Valid() bool { return d.dist().Valid() }

func (d ChiSquared[T]) Rand(r rng.Source) T {
	if !d.Valid() {
		return nan[T]()
	}
	return Gamma[T]{d.K / 2, 0.5}.Rand(r)
}

// StudentT is Student's t-distribution with Nu degrees of freedom.
type StudentT[T numeric.Float] struct {
	Nu T
}

func (d StudentT[T]) dist() stats.TDist {
	return stats.TDist{Nu: float64(d.Nu)}
}

func (d StudentT[T]) Valid() bool { return d.dist().Valid() }

// Rand draws Z from Normal{0, 1}, then V from ChiSquared{Nu}, and
// returns Z/sqrt(V/Nu).
func (d StudentT[T]) Rand(r rng.Source) T {
	if !d.Valid() {
		return nan[T]()
	}
	z := Normal[T]{0, 1}.Rand(r)
	v := ChiSquared[T]{d.Nu}.Rand(r)
	return T(float64(z) / math.Sqrt(float64(v/d.Nu)))
}

// F is Snedecor's F distribution with D1 and D2 degrees of freedom.
type F[T numeric.Float] struct {
	D1, D2 T
}

func (d F[T]) dist() stats.FDist {
	return stats.FDist{D1: float64(d.D1), D2: float64(d.D2)}
}

func (d F[T]) Valid() bool { return d.dist().Valid() }

// Rand draws X1 from ChiSquared{D1}, then X2 from ChiSquared{D2}, and
// returns (X1/D1)/(X2/D2).
func (d F[T]) Rand(r rng.Source) T {
	if !d.Valid() {
		return nan[T]()
	}
	x1 := ChiSquared[T]{d.D1}.Rand(r)
	x2 := ChiSquared[T]{d.D2}.Rand(r)
	return (x1 / d.D1) / (x2 / d.D2)
}
