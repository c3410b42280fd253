// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distmat"
)

// WishartDist is a Wishart distribution over d×d symmetric positive
// definite matrices with scale matrix V and Nu degrees of freedom.
type WishartDist struct {
	V  mat.Symmetric
	Nu float64
}

// Valid reports whether V is a non-empty positive definite matrix and
// Nu > d-1, where d is the dimension of V.
func (w WishartDist) Valid() bool {
	_, ok := psdFactor(w.V, w.Nu)
	return ok
}

// Factor returns the Cholesky factorization of V, or false if w is
// invalid.
func (w WishartDist) Factor() (*mat.Cholesky, bool) {
	return psdFactor(w.V, w.Nu)
}

// psdFactor factors v and checks nu against its dimension.
func psdFactor(v mat.Symmetric, nu float64) (*mat.Cholesky, bool) {
	if v == nil || !finite(nu) {
		return nil, false
	}
	d := v.SymmetricDim()
	if d == 0 || nu <= float64(d-1) {
		return nil, false
	}
	var chol mat.Cholesky
	if !chol.Factorize(v) {
		return nil, false
	}
	return &chol, true
}

// Dim returns the dimension of the matrices w is over.
func (w WishartDist) Dim() int {
	if w.V == nil {
		return 0
	}
	return w.V.SymmetricDim()
}

// LogPDF returns the log density of w at x. It returns -Inf if x is
// not positive definite and NaN if w is invalid. x must have the
// same dimension as w.V.
func (w WishartDist) LogPDF(x mat.Symmetric) float64 {
	if !w.Valid() {
		return nan
	}
	dist, ok := distmat.NewWishart(w.V, w.Nu, nil)
	if !ok {
		return nan
	}
	return dist.LogProbSym(x)
}

// MeanTo stores Nu·V, the mean of w, in dst. dst is resized if it is
// empty. If w is invalid, dst is filled with NaN. MeanTo does nothing
// if w.V is nil or empty.
func (w WishartDist) MeanTo(dst *mat.SymDense) {
	d := w.Dim()
	if d == 0 {
		return
	}
	if dst.IsEmpty() {
		dst.ReuseAsSym(d)
	}
	if !w.Valid() {
		FillNaN(dst)
		return
	}
	dst.ScaleSym(w.Nu, w.V)
}

// InvWishartDist is an inverse Wishart distribution: X is
// InvWishartDist{Psi, Nu} when X⁻¹ is WishartDist{Psi⁻¹, Nu}.
type InvWishartDist struct {
	Psi mat.Symmetric
	Nu  float64
}

// Valid reports whether Psi is a non-empty positive definite matrix
// and Nu > d-1.
func (w InvWishartDist) Valid() bool {
	_, ok := psdFactor(w.Psi, w.Nu)
	return ok
}

// Dim returns the dimension of the matrices w is over.
func (w InvWishartDist) Dim() int {
	if w.Psi == nil {
		return 0
	}
	return w.Psi.SymmetricDim()
}

// LogPDF returns the log density of w at x:
//
//	(ν/2)log|Ψ| - (νd/2)log 2 - log Γ_d(ν/2) - ((ν+d+1)/2)log|X| - tr(ΨX⁻¹)/2
//
// It returns -Inf if x is not positive definite and NaN if w is
// invalid.
func (w InvWishartDist) LogPDF(x mat.Symmetric) float64 {
	cholPsi, ok := psdFactor(w.Psi, w.Nu)
	if !ok {
		return nan
	}
	d := w.Dim()
	if x.SymmetricDim() != d {
		panic(mat.ErrShape)
	}
	var cholX mat.Cholesky
	if !cholX.Factorize(x) {
		return math.Inf(-1)
	}
	var xinvPsi mat.Dense
	if err := cholX.SolveTo(&xinvPsi, w.Psi); err != nil {
		return math.Inf(-1)
	}
	tr := mat.Trace(&xinvPsi)

	nu, fd := w.Nu, float64(d)
	return 0.5*(nu*cholPsi.LogDet()-nu*fd*math.Ln2-(nu+fd+1)*cholX.LogDet()-tr) -
		mathext.MvLgamma(0.5*nu, d)
}

// MeanTo stores Psi/(Nu-d-1), the mean of w, in dst. The mean is
// infinite for Nu <= d+1. If w is invalid, dst is filled with NaN.
func (w InvWishartDist) MeanTo(dst *mat.SymDense) {
	d := w.Dim()
	if d == 0 {
		return
	}
	if dst.IsEmpty() {
		dst.ReuseAsSym(d)
	}
	if !w.Valid() {
		FillNaN(dst)
		return
	}
	if w.Nu <= float64(d+1) {
		for i := 0; i < d; i++ {
			for j := i; j < d; j++ {
				dst.SetSym(i, j, inf)
			}
		}
		return
	}
	dst.ScaleSym(1/(w.Nu-float64(d)-1), w.Psi)
}

// FillNaN sets every element of m to NaN.
func FillNaN(m *mat.SymDense) {
	n := m.SymmetricDim()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			m.SetSym(i, j, nan)
		}
	}
}
