// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randvar

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/aclements/go-moredist/rng"
)

// Matrix returns a new rows×cols matrix whose element (i, j) is the
// (i*cols+j)'th draw of k from r. It returns ErrShape if either
// dimension is not positive or the element count overflows an int.
func Matrix(rows, cols int, k Kernel, r rng.Source) (*mat.Dense, error) {
	if rows <= 0 || cols <= 0 || rows > math.MaxInt/cols {
		return nil, fmt.Errorf("%w: %d×%d", ErrShape, rows, cols)
	}
	m := mat.NewDense(rows, cols, nil)
	FillDense(m, k, r)
	return m, nil
}

// FillDense sets every element of m to a draw of k from r, in
// row-major order. Only the elements of m are written, so m may be a
// view into a larger matrix returned by Slice.
func FillDense(m *mat.Dense, k Kernel, r rng.Source) {
	raw := m.RawMatrix()
	for i := 0; i < raw.Rows; i++ {
		off := i * raw.Stride
		row := VectorOf(raw.Data[off : off+raw.Cols])
		FillFunc[float64](row, k, r)
	}
}
