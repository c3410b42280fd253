// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randvar

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/aclements/go-moredist/numeric"
)

// A Family is a named distribution whose parameters are supplied at
// run time, for callers that choose the distribution by name.
type Family struct {
	// Name is the short name used by Lookup, such as "beta".
	Name string

	// Params names the parameters in the order Sampler takes
	// them.
	Params []string

	mk64 func(p []float64) Sampler[float64]
	mk32 func(p []float32) Sampler[float32]
}

func (f Family) arity(n int) error {
	if n != len(f.Params) {
		return fmt.Errorf("%w: %s takes %d (%s), got %d",
			ErrArity, f.Name, len(f.Params), strings.Join(f.Params, ", "), n)
	}
	return nil
}

// Sampler returns the double-precision kernel for this family with
// parameters p. It returns ErrArity if len(p) is wrong. Parameters
// outside the family's domain are not an error: the sampler is
// returned and its Rand yields NaN.
func (f Family) Sampler(p ...float64) (Sampler[float64], error) {
	if err := f.arity(len(p)); err != nil {
		return nil, err
	}
	return f.mk64(p), nil
}

// Sampler32 is Sampler for the single-precision kernel.
func (f Family) Sampler32(p ...float32) (Sampler[float32], error) {
	if err := f.arity(len(p)); err != nil {
		return nil, err
	}
	return f.mk32(p), nil
}

// Kernel returns a Kernel for this family. If narrow is set, the
// parameters are rounded to float32 and the single-precision kernel
// is used.
func (f Family) Kernel(narrow bool, p ...float64) (Kernel, error) {
	if !narrow {
		s, err := f.Sampler(p...)
		if err != nil {
			return nil, err
		}
		return s.Rand, nil
	}
	p32 := make([]float32, len(p))
	for i, x := range p {
		p32[i] = float32(x)
	}
	s, err := f.Sampler32(p32...)
	if err != nil {
		return nil, err
	}
	return widen(s), nil
}

func (f Family) String() string {
	return f.Name + "(" + strings.Join(f.Params, ", ") + ")"
}

var families = map[string]Family{}

type maker[T numeric.Float] func(p []T) Sampler[T]

func register(name string, params []string, mk64 maker[float64], mk32 maker[float32]) {
	families[name] = Family{Name: name, Params: params, mk64: mk64, mk32: mk32}
}

func init() {
	register("unif", []string{"lo", "hi"}, mkUniform[float64], mkUniform[float32])
	register("norm", []string{"mu", "sigma"}, mkNormal[float64], mkNormal[float32])
	register("exp", []string{"rate"}, mkExponential[float64], mkExponential[float32])
	register("gamma", []string{"shape", "rate"}, mkGamma[float64], mkGamma[float32])
	register("beta", []string{"a", "b"}, mkBeta[float64], mkBeta[float32])
	register("invgamma", []string{"shape", "rate"}, mkInvGamma[float64], mkInvGamma[float32])
	register("chisq", []string{"k"}, mkChiSquared[float64], mkChiSquared[float32])
	register("t", []string{"nu"}, mkStudentT[float64], mkStudentT[float32])
	register("f", []string{"d1", "d2"}, mkF[float64], mkF[float32])
	register("cauchy", []string{"mu", "sigma"}, mkCauchy[float64], mkCauchy[float32])
	register("logis", []string{"mu", "sigma"}, mkLogistic[float64], mkLogistic[float32])
	register("laplace", []string{"mu", "sigma"}, mkLaplace[float64], mkLaplace[float32])
	register("lnorm", []string{"mu", "sigma"}, mkLogNormal[float64], mkLogNormal[float32])
	register("weibull", []string{"k", "lambda"}, mkWeibull[float64], mkWeibull[float32])
	register("bern", []string{"p"}, mkBernoulli[float64], mkBernoulli[float32])
	register("binom", []string{"n", "p"}, mkBinomial[float64], mkBinomial[float32])
	register("pois", []string{"lambda"}, mkPoisson[float64], mkPoisson[float32])
}

func mkUniform[T numeric.Float](p []T) Sampler[T]     { return Uniform[T]{p[0], p[1]} }
func mkNormal[T numeric.Float](p []T) Sampler[T]      { return Normal[T]{p[0], p[1]} }
func mkExponential[T numeric.Float](p []T) Sampler[T] { return Exponential[T]{p[0]} }
func mkGamma[T numeric.Float](p []T) Sampler[T]       { return Gamma[T]{p[0], p[1]} }
func mkBeta[T numeric.Float](p []T) Sampler[T]        { return Beta[T]{p[0], p[1]} }
func mkInvGamma[T numeric.Float](p []T) Sampler[T]    { return InvGamma[T]{p[0], p[1]} }
func mkChiSquared[T numeric.Float](p []T) Sampler[T]  { return ChiSquared[T]{p[0]} }
func mkStudentT[T numeric.Float](p []T) Sampler[T]    { return StudentT[T]{p[0]} }
func mkF[T numeric.Float](p []T) Sampler[T]           { return F[T]{p[0], p[1]} }
func mkCauchy[T numeric.Float](p []T) Sampler[T]      { return Cauchy[T]{p[0], p[1]} }
func mkLogistic[T numeric.Float](p []T) Sampler[T]    { return Logistic[T]{p[0], p[1]} }
func mkLaplace[T numeric.Float](p []T) Sampler[T]     { return Laplace[T]{p[0], p[1]} }
func mkLogNormal[T numeric.Float](p []T) Sampler[T]   { return LogNormal[T]{p[0], p[1]} }
func mkWeibull[T numeric.Float](p []T) Sampler[T]     { return Weibull[T]{p[0], p[1]} }
func mkBernoulli[T numeric.Float](p []T) Sampler[T]   { return Bernoulli[T]{p[0]} }
func mkPoisson[T numeric.Float](p []T) Sampler[T]     { return Poisson[T]{p[0]} }

func mkBinomial[T numeric.Float](p []T) Sampler[T] {
	return Binomial[T]{trials(float64(p[0])), p[1]}
}

// trials converts a trial count to an int. Counts that are not
// non-negative integers map to -1, which no binomial accepts.
func trials(n float64) int {
	if n < 0 || n != math.Trunc(n) || n > math.MaxInt32 {
		return -1
	}
	return int(n)
}

// Lookup returns the family registered under name.
func Lookup(name string) (Family, error) {
	f, ok := families[name]
	if !ok {
		return Family{}, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
	}
	return f, nil
}

// Families returns every registered family, sorted by name.
func Families() []Family {
	fs := make([]Family, 0, len(families))
	for _, f := range families {
		fs = append(fs, f)
	}
	sort.Slice(fs, func(i, j int) bool { return fs[i].Name < fs[j].Name })
	return fs
}
