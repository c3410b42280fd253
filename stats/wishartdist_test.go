// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestWishartValid(t *testing.T) {
	eye := mat.NewSymDense(2, []float64{1, 0, 0, 1})
	notPD := mat.NewSymDense(2, []float64{1, 2, 2, 1})
	for _, tc := range []struct {
		v    mat.Symmetric
		nu   float64
		want bool
	}{
		{eye, 3, true},
		{eye, 1.5, true},
		{eye, 1, false},
		{eye, nan, false},
		{eye, inf, false},
		{notPD, 5, false},
		{nil, 5, false},
	} {
		if got := (WishartDist{tc.v, tc.nu}).Valid(); got != tc.want {
			t.Errorf("WishartDist{%v, %v}.Valid() = %v; want %v", tc.v, tc.nu, got, tc.want)
		}
		if got := (InvWishartDist{tc.v, tc.nu}).Valid(); got != tc.want {
			t.Errorf("InvWishartDist{%v, %v}.Valid() = %v; want %v", tc.v, tc.nu, got, tc.want)
		}
		chol, ok := WishartDist{tc.v, tc.nu}.Factor()
		if ok != tc.want || (chol != nil) != tc.want {
			t.Errorf("WishartDist{%v, %v}.Factor() = %v, %v; want ok %v", tc.v, tc.nu, chol, ok, tc.want)
		}
	}
}

func TestWishartFactor(t *testing.T) {
	v := mat.NewSymDense(2, []float64{2, 0.5, 0.5, 1})
	chol, ok := WishartDist{v, 3}.Factor()
	if !ok {
		t.Fatalf("WishartDist{%v, 3}.Factor() failed", v)
	}
	var got mat.SymDense
	chol.ToSym(&got)
	if !mat.EqualApprox(&got, v, 1e-12) {
		t.Errorf("L·Lᵀ = %v; want %v", mat.Formatted(&got), mat.Formatted(v))
	}
}

func TestWishartOneDim(t *testing.T) {
	// A 1×1 Wishart(v, ν) is v times a chi-squared with ν degrees
	// of freedom, and its inverse is an inverse gamma.
	const v, nu = 2.0, 5.0
	w := WishartDist{mat.NewSymDense(1, []float64{v}), nu}
	g := GammaDist{Shape: nu / 2, Rate: 1 / (2 * v)}
	iw := InvWishartDist{mat.NewSymDense(1, []float64{v}), nu}
	ig := InvGammaDist{Shape: nu / 2, Rate: v / 2}
	for _, x := range []float64{0.25, 1, 3, 10} {
		xm := mat.NewSymDense(1, []float64{x})
		if want, got := math.Log(g.PDF(x)), w.LogPDF(xm); !aeq(want, got) {
			t.Errorf("WishartDist.LogPDF(%v) = %v; want %v", x, got, want)
		}
		if want, got := math.Log(ig.PDF(x)), iw.LogPDF(xm); !aeq(want, got) {
			t.Errorf("InvWishartDist.LogPDF(%v) = %v; want %v", x, got, want)
		}
	}

	bad := mat.NewSymDense(1, []float64{-1})
	if got := w.LogPDF(bad); !math.IsInf(got, -1) {
		t.Errorf("WishartDist.LogPDF(non-PD) = %v; want -Inf", got)
	}
	if got := iw.LogPDF(bad); !math.IsInf(got, -1) {
		t.Errorf("InvWishartDist.LogPDF(non-PD) = %v; want -Inf", got)
	}
}

func TestWishartMean(t *testing.T) {
	v := mat.NewSymDense(2, []float64{2, 0.5, 0.5, 1})

	var m mat.SymDense
	WishartDist{v, 4}.MeanTo(&m)
	want := mat.NewSymDense(2, []float64{8, 2, 2, 4})
	if !mat.EqualApprox(&m, want, 1e-12) {
		t.Errorf("WishartDist.MeanTo = %v; want %v", mat.Formatted(&m), mat.Formatted(want))
	}

	var im mat.SymDense
	InvWishartDist{v, 7}.MeanTo(&im)
	want = mat.NewSymDense(2, []float64{0.5, 0.125, 0.125, 0.25})
	if !mat.EqualApprox(&im, want, 1e-12) {
		t.Errorf("InvWishartDist.MeanTo = %v; want %v", mat.Formatted(&im), mat.Formatted(want))
	}

	InvWishartDist{v, 2.5}.MeanTo(&im)
	if !math.IsInf(im.At(0, 0), 1) {
		t.Errorf("InvWishartDist{ν=2.5}.MeanTo = %v; want +Inf", mat.Formatted(&im))
	}

	WishartDist{v, 0.5}.MeanTo(&m)
	if !math.IsNaN(m.At(1, 1)) {
		t.Errorf("invalid WishartDist.MeanTo = %v; want NaN", mat.Formatted(&m))
	}
	if got := (WishartDist{v, 0.5}).LogPDF(v); !math.IsNaN(got) {
		t.Errorf("invalid WishartDist.LogPDF = %v; want NaN", got)
	}
}
