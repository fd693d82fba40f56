// Copyright (c) 2024, The my-nncf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calib

import (
	"github.com/AtharvaPore01/my-nncf/tensor"
	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// DefaultRTol is the default relative tolerance for [TensorEq].
	DefaultRTol = 1e-6

	// PercentileRTol is the tighter relative tolerance used when comparing
	// the per-level value tensors of [Percentile] statistics.
	PercentileRTol = 1e-9
)

// TensorEq reports whether two tensors are element-wise equal within the
// given relative tolerance, which defaults to [DefaultRTol] if not given.
// It is total over any two tensors and never panics:
//   - two nil tensors are equal; one nil is not equal to a non-nil.
//   - a shape mismatch is inequality, not an error.
//   - elements are read through [tensor.Tensor.Float1D], so tensors from
//     different storage backends or element types compare uniformly.
//
// The per-element test is gonum's scalar.EqualWithinRel, which gives the
// NaN/Inf policy: NaN equals nothing, including NaN at the same position;
// infinities are equal only to infinities of the same sign.
func TensorEq(a, b tensor.Tensor, rtol ...float64) bool {
	rt := DefaultRTol
	if len(rtol) > 0 {
		rt = rtol[0]
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !a.Shape().IsEqual(b.Shape()) {
		return false
	}
	n := a.Len()
	for i := 0; i < n; i++ {
		if !scalar.EqualWithinRel(a.Float1D(i), b.Float1D(i), rt) {
			return false
		}
	}
	return true
}
