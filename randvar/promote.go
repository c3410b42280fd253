// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randvar

import (
	"gonum.org/v1/gonum/mat"

	"github.com/aclements/go-moredist/numeric"
	"github.com/aclements/go-moredist/rng"
)

// Promoted entry points. Each distribution D has
//
//	RD(params..., r)               one variate drawn from r
//	RDSeed(params..., seed)        one variate from rng.New(seed)
//	RDMatrix(m, n, params..., r)   an m×n row-major matrix of variates
//
// Parameters may be any integer or floating-point type. The kernel
// runs at float32 precision if numeric.Resolve of the parameter kinds
// is Float32 and at float64 precision otherwise; the result is
// widened to float64 either way. Invalid parameters give NaN and
// leave r untouched.

// widen adapts a single-precision sampler to a Kernel.
func widen(s Sampler[float32]) Kernel {
	return func(r rng.Source) float64 { return float64(s.Rand(r)) }
}

func narrow1[A numeric.Number]() bool {
	return numeric.Narrow(numeric.KindOf[A]())
}

func narrow2[A, B numeric.Number]() bool {
	return numeric.Narrow(numeric.KindOf[A](), numeric.KindOf[B]())
}

func uniformKernel[A, B numeric.Number](lo A, hi B) Kernel {
	if narrow2[A, B]() {
		return widen(Uniform[float32]{float32(lo), float32(hi)})
	}
	return Uniform[float64]{float64(lo), float64(hi)}.Rand
}

// RUnif returns a variate from the uniform distribution on [lo, hi].
func RUnif[A, B numeric.Number](lo A, hi B, r rng.Source) float64 {
	return uniformKernel(lo, hi)(r)
}

// RUnifSeed is RUnif with an engine seeded from seed.
func RUnifSeed[A, B numeric.Number](lo A, hi B, seed uint64) float64 {
	return RUnif(lo, hi, rng.New(seed))
}

// RUnifMatrix returns a rows×cols matrix of RUnif variates.
func RUnifMatrix[A, B numeric.Number](rows, cols int, lo A, hi B, r rng.Source) (*mat.Dense, error) {
	return Matrix(rows, cols, uniformKernel(lo, hi), r)
}

func normalKernel[A, B numeric.Number](mu A, sigma B) Kernel {
	if narrow2[A, B]() {
		return widen(Normal[float32]{float32(mu), float32(sigma)})
	}
	return Normal[float64]{float64(mu), float64(sigma)}.Rand
}

// RNorm returns a variate from the normal distribution with mean mu
// and standard deviation sigma.
func RNorm[A, B numeric.Number](mu A, sigma B, r rng.Source) float64 {
	return normalKernel(mu, sigma)(r)
}

// RNormSeed is RNorm with an engine seeded from seed.
func RNormSeed[A, B numeric.Number](mu A, sigma B, seed uint64) float64 {
	return RNorm(mu, sigma, rng.New(seed))
}

// RNormMatrix returns a rows×cols matrix of RNorm variates.
func RNormMatrix[A, B numeric.Number](rows, cols int, mu A, sigma B, r rng.Source) (*mat.Dense, error) {
	return Matrix(rows, cols, normalKernel(mu, sigma), r)
}

func exponentialKernel[A numeric.Number](rate A) Kernel {
	if narrow1[A]() {
		return widen(Exponential[float32]{float32(rate)})
	}
	return Exponential[float64]{float64(rate)}.Rand
}

// RExp returns a variate from the exponential distribution with the
// given rate.
func RExp[A numeric.Number](rate A, r rng.Source) float64 {
	return exponentialKernel(rate)(r)
}

// RExpSeed is RExp with an engine seeded from seed.
func RExpSeed[A numeric.Number](rate A, seed uint64) float64 {
	return RExp(rate, rng.New(seed))
}

// RExpMatrix returns a rows×cols matrix of RExp variates.
func RExpMatrix[A numeric.Number](rows, cols int, rate A, r rng.Source) (*mat.Dense, error) {
	return Matrix(rows, cols, exponentialKernel(rate), r)
}

func gammaKernel[A, B numeric.Number](shape A, rate B) Kernel {
	if narrow2[A, B]() {
		return widen(Gamma[float32]{float32(shape), float32(rate)})
	}
	return Gamma[float64]{float64(shape), float64(rate)}.Rand
}

// RGamma returns a variate from the gamma distribution with the given
// shape and rate.
func RGamma[A, B numeric.Number](shape A, rate B, r rng.Source) float64 {
	return gammaKernel(shape, rate)(r)
}

// RGammaSeed is RGamma with an engine seeded from seed.
func RGammaSeed[A, B numeric.Number](shape A, rate B, seed uint64) float64 {
	return RGamma(shape, rate, rng.New(seed))
}

// RGammaMatrix returns a rows×cols matrix of RGamma variates.
func RGammaMatrix[A, B numeric.Number](rows, cols int, shape A, rate B, r rng.Source) (*mat.Dense, error) {
	return Matrix(rows, cols, gammaKernel(shape, rate), r)
}

func betaKernel[A, B numeric.Number](a A, b B) Kernel {
	if narrow2[A, B]() {
		return widen(Beta[float32]{float32(a), float32(b)})
	}
	return Beta[float64]{float64(a), float64(b)}.Rand
}

// RBeta returns a variate from the beta distribution with shapes a
// and b.
func RBeta[A, B numeric.Number](a A, b B, r rng.Source) float64 {
	return betaKernel(a, b)(r)
}

// RBetaSeed is RBeta with an engine seeded from seed.
func RBetaSeed[A, B numeric.Number](a A, b B, seed uint64) float64 {
	return RBeta(a, b, rng.New(seed))
}

// RBetaMatrix returns a rows×cols matrix of RBeta variates.
func RBetaMatrix[A, B numeric.Number](rows, cols int, a A, b B, r rng.Source) (*mat.Dense, error) {
	return Matrix(rows, cols, betaKernel(a, b), r)
}

func invGammaKernel[A, B numeric.Number](shape A, rate B) Kernel {
	if narrow2[A, B]() {
		return widen(InvGamma[float32]{float32(shape), float32(rate)})
	}
	return InvGamma[float64]{float64(shape), float64(rate)}.Rand
}

// RInvGamma returns a variate from the inverse gamma distribution,
// 1/Gamma(shape, rate).
func RInvGamma[A, B numeric.Number](shape A, rate B, r rng.Source) float64 {
	return invGammaKernel(shape, rate)(r)
}

// RInvGammaSeed is RInvGamma with an engine seeded from seed.
func RInvGammaSeed[A, B numeric.Number](shape A, rate B, seed uint64) float64 {
	return RInvGamma(shape, rate, rng.New(seed))
}

// RInvGammaMatrix returns a rows×cols matrix of RInvGamma variates.
func RInvGammaMatrix[A, B numeric.Number](rows, cols int, shape A, rate B, r rng.Source) (*mat.Dense, error) {
	return Matrix(rows, cols, invGammaKernel(shape, rate), r)
}

func chiSquaredKernel[A numeric.Number](k A) Kernel {
	if narrow1[A]() {
		return widen(ChiSquared[float32]{float32(k)})
	}
	return ChiSquared[float64]{float64(k)}.Rand
}

// RChisq returns a variate from the chi-squared distribution with k
// degrees of freedom.
func RChisq[A numeric.Number](k A, r rng.Source) float64 {
	return chiSquaredKernel(k)(r)
}

// RChisqSeed is RChisq with an engine seeded from seed.
func RChisqSeed[A numeric.Number](k A, seed uint64) float64 {
	return RChisq(k, rng.New(seed))
}

// RChisqMatrix returns a rows×cols matrix of RChisq variates.
func RChisqMatrix[A numeric.Number](rows, cols int, k A, r rng.Source) (*mat.Dense, error) {
	return Matrix(rows, cols, chiSquaredKernel(k), r)
}

func studentTKernel[A numeric.Number](nu A) Kernel {
	if narrow1[A]() {
		return widen(StudentT[float32]{float32(nu)})
	}
	return StudentT[float64]{float64(nu)}.Rand
}

// RT returns a variate from Student's t-distribution with nu degrees
// of freedom.
func RT[A numeric.Number](nu A, r rng.Source) float64 {
	return studentTKernel(nu)(r)
}

// RTSeed is RT with an engine seeded from seed.
func RTSeed[A numeric.Number](nu A, seed uint64) float64 {
	return RT(nu, rng.New(seed))
}

// RTMatrix returns a rows×cols matrix of RT variates.
func RTMatrix[A numeric.Number](rows, cols int, nu A, r rng.Source) (*mat.Dense, error) {
	return Matrix(rows, cols, studentTKernel(nu), r)
}

func fKernel[A, B numeric.Number](d1 A, d2 B) Kernel {
	if narrow2[A, B]() {
		return widen(F[float32]{float32(d1), float32(d2)})
	}
	return F[float64]{float64(d1), float64(d2)}.Rand
}

// RF returns a variate from the F distribution with d1 and d2 degrees
// of freedom.
func RF[A, B numeric.Number](d1 A, d2 B, r rng.Source) float64 {
	return fKernel(d1, d2)(r)
}

// RFSeed is RF with an engine seeded from seed.
func RFSeed[A, B numeric.Number](d1 A, d2 B, seed uint64) float64 {
	return RF(d1, d2, rng.New(seed))
}

// RFMatrix returns a rows×cols matrix of RF variates.
func RFMatrix[A, B numeric.Number](rows, cols int, d1 A, d2 B, r rng.Source) (*mat.Dense, error) {
	return Matrix(rows, cols, fKernel(d1, d2), r)
}

func cauchyKernel[A, B numeric.Number](mu A, sigma B) Kernel {
	if narrow2[A, B]() {
		return widen(Cauchy[float32]{float32(mu), float32(sigma)})
	}
	return Cauchy[float64]{float64(mu), float64(sigma)}.Rand
}

// RCauchy returns a variate from the Cauchy distribution with
// location mu and scale sigma.
func RCauchy[A, B numeric.Number](mu A, sigma B, r rng.Source) float64 {
	return cauchyKernel(mu, sigma)(r)
}

// RCauchySeed is RCauchy with an engine seeded from seed.
func RCauchySeed[A, B numeric.Number](mu A, sigma B, seed uint64) float64 {
	return RCauchy(mu, sigma, rng.New(seed))
}

// RCauchyMatrix returns a rows×cols matrix of RCauchy variates.
func RCauchyMatrix[A, B numeric.Number](rows, cols int, mu A, sigma B, r rng.Source) (*mat.Dense, error) {
	return Matrix(rows, cols, cauchyKernel(mu, sigma), r)
}

func logisticKernel[A, B numeric.Number](mu A, sigma B) Kernel {
	if narrow2[A, B]() {
		return widen(Logistic[float32]{float32(mu), float32(sigma)})
	}
	return Logistic[float64]{float64(mu), float64(sigma)}.Rand
}

// RLogis returns a variate from the logistic distribution with
// location mu and scale sigma.
func RLogis[A, B numeric.Number](mu A, sigma B, r rng.Source) float64 {
	return logisticKernel(mu, sigma)(r)
}

// RLogisSeed is RLogis with an engine seeded from seed.
func RLogisSeed[A, B numeric.Number](mu A, sigma B, seed uint64) float64 {
	return RLogis(mu, sigma, rng.New(seed))
}

// RLogisMatrix returns a rows×cols matrix of RLogis variates.
func RLogisMatrix[A, B numeric.Number](rows, cols int, mu A, sigma B, r rng.Source) (*mat.Dense, error) {
	return Matrix(rows, cols, logisticKernel(mu, sigma), r)
}

func laplaceKernel[A, B numeric.Number](mu A, sigma B) Kernel {
	if narrow2[A, B]() {
		return widen(Laplace[float32]{float32(mu), float32(sigma)})
	}
	return Laplace[float64]{float64(mu), float64(sigma)}.Rand
}

// RLaplace returns a variate from the Laplace distribution with
// location mu and scale sigma.
func RLaplace[A, B numeric.Number](mu A, sigma B, r rng.Source) float64 {
	return laplaceKernel(mu, sigma)(r)
}

// RLaplaceSeed is RLaplace with an engine seeded from seed.
func RLaplaceSeed[A, B numeric.Number](mu A, sigma B, seed uint64) float64 {
	return RLaplace(mu, sigma, rng.New(seed))
}

// RLaplaceMatrix returns a rows×cols matrix of RLaplace variates.
func RLaplaceMatrix[A, B numeric.Number](rows, cols int, mu A, sigma B, r rng.Source) (*mat.Dense, error) {
	return Matrix(rows, cols, laplaceKernel(mu, sigma), r)
}

func logNormalKernel[A, B numeric.Number](mu A, sigma B) Kernel {
	if narrow2[A, B]() {
		return widen(LogNormal[float32]{float32(mu), float32(sigma)})
	}
	return LogNormal[float64]{float64(mu), float64(sigma)}.Rand
}

// RLnorm returns a variate from the log-normal distribution
// exp(Normal(mu, sigma)).
func RLnorm[A, B numeric.Number](mu A, sigma B, r rng.Source) float64 {
	return logNormalKernel(mu, sigma)(r)
}

// RLnormSeed is RLnorm with an engine seeded from seed.
func RLnormSeed[A, B numeric.Number](mu A, sigma B, seed uint64) float64 {
	return RLnorm(mu, sigma, rng.New(seed))
}

// RLnormMatrix returns a rows×cols matrix of RLnorm variates.
func RLnormMatrix[A, B numeric.Number](rows, cols int, mu A, sigma B, r rng.Source) (*mat.Dense, error) {
	return Matrix(rows, cols, logNormalKernel(mu, sigma), r)
}

func weibullKernel[A, B numeric.Number](k A, lambda B) Kernel {
	if narrow2[A, B]() {
		return widen(Weibull[float32]{float32(k), float32(lambda)})
	}
	return Weibull[float64]{float64(k), float64(lambda)}.Rand
}

// RWeibull returns a variate from the Weibull distribution with shape
// k and scale lambda.
func RWeibull[A, B numeric.Number](k A, lambda B, r rng.Source) float64 {
	return weibullKernel(k, lambda)(r)
}

// RWeibullSeed is RWeibull with an engine seeded from seed.
func RWeibullSeed[A, B numeric.Number](k A, lambda B, seed uint64) float64 {
	return RWeibull(k, lambda, rng.New(seed))
}

// RWeibullMatrix returns a rows×cols matrix of RWeibull variates.
func RWeibullMatrix[A, B numeric.Number](rows, cols int, k A, lambda B, r rng.Source) (*mat.Dense, error) {
	return Matrix(rows, cols, weibullKernel(k, lambda), r)
}

func bernoulliKernel[A numeric.Number](p A) Kernel {
	if narrow1[A]() {
		return widen(Bernoulli[float32]{float32(p)})
	}
	return Bernoulli[float64]{float64(p)}.Rand
}

// RBern returns a variate from the Bernoulli distribution with
// success probability p.
func RBern[A numeric.Number](p A, r rng.Source) float64 {
	return bernoulliKernel(p)(r)
}

// RBernSeed is RBern with an engine seeded from seed.
func RBernSeed[A numeric.Number](p A, seed uint64) float64 {
	return RBern(p, rng.New(seed))
}

// RBernMatrix returns a rows×cols matrix of RBern variates.
func RBernMatrix[A numeric.Number](rows, cols int, p A, r rng.Source) (*mat.Dense, error) {
	return Matrix(rows, cols, bernoulliKernel(p), r)
}

func poissonKernel[A numeric.Number](lambda A) Kernel {
	if narrow1[A]() {
		return widen(Poisson[float32]{float32(lambda)})
	}
	return Poisson[float64]{float64(lambda)}.Rand
}

// RPois returns a variate from the Poisson distribution with mean
// lambda.
func RPois[A numeric.Number](lambda A, r rng.Source) float64 {
	return poissonKernel(lambda)(r)
}

// RPoisSeed is RPois with an engine seeded from seed.
func RPoisSeed[A numeric.Number](lambda A, seed uint64) float64 {
	return RPois(lambda, rng.New(seed))
}

// RPoisMatrix returns a rows×cols matrix of RPois variates.
func RPoisMatrix[A numeric.Number](rows, cols int, lambda A, r rng.Source) (*mat.Dense, error) {
	return Matrix(rows, cols, poissonKernel(lambda), r)
}

func binomialKernel[P numeric.Number](n int, p P) Kernel {
	if numeric.Narrow(numeric.Int, numeric.KindOf[P]()) {
		return widen(Binomial[float32]{n, float32(p)})
	}
	return Binomial[float64]{n, float64(p)}.Rand
}

// RBinom returns the number of successes in n Bernoulli trials with
// success probability p. It consumes exactly n source values when the
// parameters are valid.
func RBinom[P numeric.Number](n int, p P, r rng.Source) float64 {
	return binomialKernel(n, p)(r)
}

// RBinomSeed is RBinom with an engine seeded from seed.
func RBinomSeed[P numeric.Number](n int, p P, seed uint64) float64 {
	return RBinom(n, p, rng.New(seed))
}

// RBinomMatrix returns a rows×cols matrix of RBinom variates.
func RBinomMatrix[P numeric.Number](rows, cols, n int, p P, r rng.Source) (*mat.Dense, error) {
	return Matrix(rows, cols, binomialKernel(n, p), r)
}
