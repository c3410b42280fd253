// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randvar

import (
	"github.com/aclements/go-moredist/numeric"
	"github.com/aclements/go-moredist/rng"
	"github.com/aclements/go-moredist/stats"
)

// The kernels in this file invert their distribution's CDF at a
// single uniform draw u on (0, 1), so Rand(r) is exactly
// T(stats.XDist.InvCDF(u)) for the u that rng.Unit[T] would return
// from the same source state.

// invert draws u and maps it through d's quantile function.
func invert[T numeric.Float](d stats.Dist, r rng.Source) T {
	if !d.Valid() {
		return nan[T]()
	}
	return T(d.InvCDF(unit[T](r)))
}

// Uniform is the continuous uniform distribution on [Lo, Hi].
type Uniform[T numeric.Float] struct {
	Lo, Hi T
}

func (d Uniform[T]) dist() stats.UniformDist {
	return stats.UniformDist{Lo: float64(d.Lo), Hi: float64(d.Hi)}
}

func (d Uniform[T]) Valid() bool { return d.dist().Valid() }

func (d Uniform[T]) Rand(r rng.Source) T { return invert[T](d.dist(), r) }

// Normal is the normal distribution with mean Mu and standard
// deviation Sigma.
type Normal[T numeric.Float] struct {
	Mu, Sigma T
}

func (d Normal[T]) dist() stats.NormalDist {
	return stats.NormalDist{Mu: float64(d.Mu), Sigma: float64(d.Sigma)}
}

func (d Normal[T]) Valid() bool { return d.dist().Valid() }

func (d Normal[T]) Rand(r rng.Source) T { return invert[T](d.dist(), r) }

// Exponential is the exponential distribution with rate Rate.
type Exponential[T numeric.Float] struct {
	Rate T
}

func (d Exponential[T]) dist() stats.ExponentialDist {
	return stats.ExponentialDist{Rate: float64(d.Rate)}
}

func (d Exponential[T]) Valid() bool { return d.dist().Valid() }

func (d Exponential[T]) Rand(r rng.Source) T { return invert[T](d.dist(), r) }

// Cauchy is the Cauchy distribution with location Mu and scale Sigma.
type Cauchy[T numeric.Float] struct {
	Mu, Sigma T
}

func (d Cauchy[T]) dist() stats.CauchyDist {
	return stats.CauchyDist{Mu: float64(d.Mu), Sigma: float64(d.Sigma)}
}

func (d Cauchy[T]) Valid() bool { return d.dist().Valid() }

func (d Cauchy[T]) Rand(r rng.Source) T { return invert[T](d.dist(), r) }

// Logistic is the logistic distribution with location Mu and scale
// Sigma.
type Logistic[T numeric.Float] struct {
	Mu, Sigma T
}

func (d Logistic[T]) dist() stats.LogisticDist {
	return stats.LogisticDist{Mu: float64(d.Mu), Sigma: float64(d.Sigma)}
}

func (d Logistic[T]) Valid() bool { return d.dist().Valid() }

func (d Logistic[T]) Rand(r rng.Source) T { return invert[T](d.dist(), r) }

// Laplace is the Laplace distribution with location Mu and scale
// Sigma.
type Laplace[T numeric.Float] struct {
	Mu, Sigma T
}

func (d Laplace[T]) dist() stats.LaplaceDist {
	return stats.LaplaceDist{Mu: float64(d.Mu), Sigma: float64(d.Sigma)}
}

func (d Laplace[T]) Valid() bool { return d.dist().Valid() }

func (d Laplace[T]) Rand(r rng.Source) T { return invert[T](d.dist(), r) }

// Weibull is the Weibull distribution with shape K and scale Lambda.
type Weibull[T numeric.Float] struct {
	K, Lambda T
}

func (d Weibull[T]) dist() stats.WeibullDist {
	return stats.WeibullDist{K: float64(d.K), Lambda: float64(d.Lambda)}
}

func (d Weibull[T]) Valid() bool { return d.dist().Valid() }

func (d Weibull[T]) Rand(r rng.Source) T { return invert[T](d.dist(), r) }

// LogNormal is the distribution of exp(X) for X drawn from
// Normal{Mu, Sigma}.
type LogNormal[T numeric.Float] struct {
	Mu, Sigma T
}

func (d LogNormal[T]) dist() stats.LogNormalDist {
	return stats.LogNormalDist{Mu: float64(d.Mu), Sigma: float64(d.Sigma)}
}

func (d LogNormal[T]) Valid() bool { return d.dist().Valid() }

func (d LogNormal[T]) Rand(r rng.Source) T { return invert[T](d.dist(), r) }
