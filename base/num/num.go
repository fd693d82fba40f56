// Copyright (c) 2024, The my-nncf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package num provides the type constraints for the numeric element types
// supported by the tensor container, and a few generic conversion helpers.
package num

// Signed is a constraint for the signed integer element types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint for the unsigned integer element types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint for all integer element types.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint for the floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Number is a constraint for all supported numeric element types.
type Number interface {
	Integer | Float
}

// Abs returns the absolute value of the given number.
func Abs[T Signed | Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// ToFloat64 converts any number to a float64.
func ToFloat64[T Number](x T) float64 {
	return float64(x)
}
