// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randvar

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/aclements/go-moredist/rng"
	"github.com/aclements/go-moredist/stats"
)

// Wishart is the Wishart distribution over d×d symmetric positive
// definite matrices with scale matrix V and Nu degrees of freedom.
type Wishart struct {
	V  mat.Symmetric
	Nu float64
}

func (w Wishart) Valid() bool {
	return stats.WishartDist{V: w.V, Nu: w.Nu}.Valid()
}

// RandSymTo stores a draw from w in dst, resizing dst if it is empty.
//
// It uses the Bartlett decomposition: with V = L·Lᵀ, the draw is
// (L·A)(L·A)ᵀ for a lower triangular A whose diagonal entries
// A[i][i] = sqrt(ChiSquared{Nu-i}) are drawn first, followed by the
// standard normal entries below the diagonal in row-major order.
//
// If w is invalid, dst is filled with NaN and r is not advanced.
func (w Wishart) RandSymTo(dst *mat.SymDense, r rng.Source) {
	chol, ok := stats.WishartDist{V: w.V, Nu: w.Nu}.Factor()
	if !ok {
		nanSym(dst, w.V)
		return
	}
	d := w.V.SymmetricDim()
	if !dst.IsEmpty() && dst.SymmetricDim() != d {
		panic(mat.ErrShape)
	}

	a := mat.NewTriDense(d, mat.Lower, nil)
	for i := 0; i < d; i++ {
		a.SetTri(i, i, math.Sqrt(ChiSquared[float64]{w.Nu - float64(i)}.Rand(r)))
	}
	std := Normal[float64]{0, 1}
	for i := 1; i < d; i++ {
		for j := 0; j < i; j++ {
			a.SetTri(i, j, std.Rand(r))
		}
	}

	var l mat.TriDense
	chol.LTo(&l)
	var la mat.TriDense
	la.MulTri(&l, a)
	dst.SymOuterK(1, &la)
}

// InvWishart is the inverse Wishart distribution: X is drawn from
// InvWishart{Psi, Nu} when X⁻¹ is drawn from Wishart{Psi⁻¹, Nu}.
type InvWishart struct {
	Psi mat.Symmetric
	Nu  float64
}

func (w InvWishart) Valid() bool {
	return stats.InvWishartDist{Psi: w.Psi, Nu: w.Nu}.Valid()
}

// RandSymTo stores a draw from w in dst, resizing dst if it is empty.
// It draws W from Wishart{Psi⁻¹, Nu} and stores W⁻¹. If w is invalid,
// dst is filled with NaN and r is not advanced.
func (w InvWishart) RandSymTo(dst *mat.SymDense, r rng.Source) {
	chol, ok := stats.WishartDist{V: w.Psi, Nu: w.Nu}.Factor()
	if !ok {
		nanSym(dst, w.Psi)
		return
	}
	var psiInv mat.SymDense
	if !inverseTo(&psiInv, chol) {
		nanSym(dst, w.Psi)
		return
	}

	var draw mat.SymDense
	Wishart{V: &psiInv, Nu: w.Nu}.RandSymTo(&draw, r)
	if !chol.Factorize(&draw) || !inverseTo(dst, chol) {
		nanSym(dst, w.Psi)
	}
}

// inverseTo stores the inverse of the factorized matrix in dst. It
// reports false only if the matrix is singular; ill-conditioned
// inverses are kept.
func inverseTo(dst *mat.SymDense, chol *mat.Cholesky) bool {
	err := chol.InverseTo(dst)
	if c, ok := err.(mat.Condition); ok {
		return !math.IsInf(float64(c), 1)
	}
	return err == nil
}

// nanSym fills dst with NaN, sizing an empty dst like shape.
func nanSym(dst *mat.SymDense, shape mat.Symmetric) {
	if dst.IsEmpty() {
		if shape == nil || shape.SymmetricDim() == 0 {
			return
		}
		dst.ReuseAsSym(shape.SymmetricDim())
	}
	stats.FillNaN(dst)
}

// RWishart returns a draw from Wishart{v, nu}.
func RWishart(v mat.Symmetric, nu float64, r rng.Source) *mat.SymDense {
	var dst mat.SymDense
	Wishart{V: v, Nu: nu}.RandSymTo(&dst, r)
	return &dst
}

// RWishartSeed is RWishart with an engine seeded from seed.
func RWishartSeed(v mat.Symmetric, nu float64, seed uint64) *mat.SymDense {
	return RWishart(v, nu, rng.New(seed))
}

// RInvWishart returns a draw from InvWishart{psi, nu}.
func RInvWishart(psi mat.Symmetric, nu float64, r rng.Source) *mat.SymDense {
	var dst mat.SymDense
	InvWishart{Psi: psi, Nu: nu}.RandSymTo(&dst, r)
	return &dst
}

// RInvWishartSeed is RInvWishart with an engine seeded from seed.
func RInvWishartSeed(psi mat.Symmetric, nu float64, seed uint64) *mat.SymDense {
	return RInvWishart(psi, nu, rng.New(seed))
}
