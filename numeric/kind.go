// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numeric resolves the floating-point working type of a
// computation from the types of its numeric arguments.
package numeric // import "github.com/aclements/go-moredist/numeric"

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Float is a constraint that permits any floating-point type.
type Float interface {
	constraints.Float
}

// Integer is a constraint that permits any integer type.
type Integer interface {
	constraints.Integer
}

// Number is a constraint that permits any integer or floating-point
// type. Complex types are not numbers for this package's purposes.
type Number interface {
	constraints.Integer | constraints.Float
}

// A Kind identifies the underlying numeric type of a parameter.
type Kind uint8

const (
	Invalid Kind = iota
	Int
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
	Uintptr
	Float32
	Float64
)

var kindNames = [...]string{
	Invalid: "invalid",
	Int:     "int",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint:    "uint",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Uintptr: "uintptr",
	Float32: "float32",
	Float64: "float64",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsInteger reports whether k is a signed or unsigned integer kind.
func (k Kind) IsInteger() bool {
	return k >= Int && k <= Uintptr
}

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool {
	return k == Float32 || k == Float64
}

var reflectKinds = map[reflect.Kind]Kind{
	reflect.Int:     Int,
	reflect.Int8:    Int8,
	reflect.Int16:   Int16,
	reflect.Int32:   Int32,
	reflect.Int64:   Int64,
	reflect.Uint:    Uint,
	reflect.Uint8:   Uint8,
	reflect.Uint16:  Uint16,
	reflect.Uint32:  Uint32,
	reflect.Uint64:  Uint64,
	reflect.Uintptr: Uintptr,
	reflect.Float32: Float32,
	reflect.Float64: Float64,
}

// KindOf returns the Kind of T's underlying type. Named types report
// the kind of the predeclared type they are defined on.
func KindOf[T Number]() Kind {
	return reflectKinds[reflect.TypeOf((*T)(nil)).Elem().Kind()]
}

// Resolve returns the floating-point kind used for arithmetic over
// arguments of the given kinds.
//
// If any argument is Float64, or no argument is a float (including
// the case of no arguments at all), the result is Float64. Otherwise
// at least one argument is Float32 and the result is Float32. The
// result is therefore never narrower than the widest float argument
// and never narrower than single precision. Invalid kinds do not
// contribute.
func Resolve(kinds ...Kind) Kind {
	res := Invalid
	for _, k := range kinds {
		switch k {
		case Float64:
			return Float64
		case Float32:
			res = Float32
		}
	}
	if res == Invalid {
		return Float64
	}
	return res
}

// Narrow reports whether Resolve(kinds...) is single precision. It is
// the test used by promoting entry points to choose between the
// float32 and float64 instantiation of a kernel.
func Narrow(kinds ...Kind) bool {
	return Resolve(kinds...) == Float32
}
