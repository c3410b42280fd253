// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randvar

import "errors"

var (
	// ErrShape is returned when a requested matrix has a
	// non-positive or overflowing dimension.
	ErrShape = errors.New("randvar: invalid matrix shape")

	// ErrArity is returned when a family is given the wrong number
	// of parameters.
	ErrArity = errors.New("randvar: wrong number of parameters")

	// ErrUnknownFamily is returned by Lookup for an unregistered
	// distribution name.
	ErrUnknownFamily = errors.New("randvar: unknown distribution family")
)
