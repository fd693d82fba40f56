// Copyright (c) 2024, The my-nncf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import "gonum.org/v1/gonum/mat"

// CopyDense copies a gonum mat.Dense matrix into the given Tensor
// using the standard Float64 interface. This is the normalization point
// for values computed in a gonum-based backend.
func CopyDense(to Tensor, dm *mat.Dense) {
	nr, nc := dm.Dims()
	to.SetShape(nr, nc)
	idx := 0
	for ri := 0; ri < nr; ri++ {
		for ci := 0; ci < nc; ci++ {
			v := dm.At(ri, ci)
			to.SetFloat1D(v, idx)
			idx++
		}
	}
}

// NewFromDense returns a new [Float64] tensor with the shape and values
// of the given gonum mat.Dense matrix.
func NewFromDense(dm *mat.Dense) *Float64 {
	tsr := NewFloat64()
	CopyDense(tsr, dm)
	return tsr
}

// ToDense returns a gonum mat.Dense matrix with the values of the given
// tensor, which must have 2 or more dimensions (the outer two are used).
// Use this for interfacing with gonum and other matrix-based APIs.
func ToDense(tsr Tensor) *mat.Dense {
	nr, nc := tsr.Dims()
	dm := mat.NewDense(nr, nc, nil)
	for ri := 0; ri < nr; ri++ {
		for ci := 0; ci < nc; ci++ {
			dm.Set(ri, ci, tsr.At(ri, ci))
		}
	}
	return dm
}

// As1D returns a 1D view of the given tensor: a clone reshaped to a flat
// list of values. This can be useful for stats functions that operate on
// a 1D list of values.
func As1D(tsr Tensor) Tensor {
	if tsr.NumDims() == 1 {
		return tsr
	}
	vw := tsr.Clone()
	vw.SetShape(tsr.Len())
	return vw
}
