// Copyright (c) 2024, The my-nncf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"math"
	"reflect"

	"github.com/AtharvaPore01/my-nncf/base/num"
	"gonum.org/v1/gonum/mat"
)

// Number is a tensor of numerical values.
type Number[T num.Number] struct {
	Base[T]
}

var _ Tensor = (*Float64)(nil)

// Float64 is an alias for Number[float64].
type Float64 = Number[float64]

// Float32 is an alias for Number[float32].
type Float32 = Number[float32]

// Int is an alias for Number[int].
type Int = Number[int]

// Int32 is an alias for Number[int32].
type Int32 = Number[int32]

// Byte is an alias for Number[byte].
type Byte = Number[byte]

// NewFloat64 returns a new [Float64] tensor
// with the given sizes per dimension (shape).
func NewFloat64(sizes ...int) *Float64 {
	return NewNumber[float64](sizes...)
}

// NewFloat32 returns a new [Float32] tensor
// with the given sizes per dimension (shape).
func NewFloat32(sizes ...int) *Float32 {
	return NewNumber[float32](sizes...)
}

// NewInt returns a new [Int] tensor
// with the given sizes per dimension (shape).
func NewInt(sizes ...int) *Int {
	return NewNumber[int](sizes...)
}

// NewNumber returns a new n-dimensional tensor of numerical values
// with the given sizes per dimension (shape).
func NewNumber[T num.Number](sizes ...int) *Number[T] {
	tsr := &Number[T]{}
	tsr.SetShape(sizes...)
	return tsr
}

// NewNumberShape returns a new n-dimensional tensor of numerical values
// using the given shape.
func NewNumberShape[T num.Number](shape *Shape) *Number[T] {
	tsr := &Number[T]{}
	tsr.shape.CopyFrom(shape)
	tsr.Values = make([]T, tsr.Len())
	return tsr
}

// NewNumberFromValues returns a new 1-dimensional tensor of the given
// value type, initialized directly from the given slice values, which are
// not copied. The resulting tensor thus "wraps" the given values.
func NewNumberFromValues[T num.Number](vals ...T) *Number[T] {
	n := len(vals)
	tsr := &Number[T]{}
	tsr.Values = vals
	tsr.shape.SetShape(n)
	return tsr
}

// String satisfies the fmt.Stringer interface for a string of tensor data.
func (tsr *Number[T]) String() string { return stringValues(tsr) }

// IsInt returns true if the data type is an integer type.
func (tsr *Number[T]) IsInt() bool {
	k := tsr.DataType()
	return k >= reflect.Int && k <= reflect.Uintptr
}

/////////////////////  Floats

// Float returns the value at the given n-dimensional index as a float64.
func (tsr *Number[T]) Float(i ...int) float64 {
	return float64(tsr.Values[tsr.shape.Offset(i...)])
}

// SetFloat sets the value at the given n-dimensional index as a float64.
func (tsr *Number[T]) SetFloat(val float64, i ...int) {
	tsr.Values[tsr.shape.Offset(i...)] = T(val)
}

// Float1D returns the value at the given flat 1D index as a float64.
func (tsr *Number[T]) Float1D(i int) float64 {
	return float64(tsr.Values[i])
}

// SetFloat1D sets the value at the given flat 1D index as a float64.
func (tsr *Number[T]) SetFloat1D(val float64, i int) {
	tsr.Values[i] = T(val)
}

// FloatRowCell returns the value at the given row and cell, where row is
// the outermost dimension and cell is a 1D index into the remaining
// inner dimensions.
func (tsr *Number[T]) FloatRowCell(row, cell int) float64 {
	_, sz := tsr.shape.RowCellSize()
	return float64(tsr.Values[row*sz+cell])
}

// SetFloatRowCell sets the value at the given row and cell, where row is
// the outermost dimension and cell is a 1D index into the remaining
// inner dimensions.
func (tsr *Number[T]) SetFloatRowCell(val float64, row, cell int) {
	_, sz := tsr.shape.RowCellSize()
	tsr.Values[row*sz+cell] = T(val)
}

/////////////////////  Ints

// Int returns the value at the given n-dimensional index as an int.
func (tsr *Number[T]) Int(i ...int) int {
	return int(tsr.Values[tsr.shape.Offset(i...)])
}

// SetInt sets the value at the given n-dimensional index as an int.
func (tsr *Number[T]) SetInt(val int, i ...int) {
	tsr.Values[tsr.shape.Offset(i...)] = T(val)
}

// Int1D returns the value at the given flat 1D index as an int.
func (tsr *Number[T]) Int1D(i int) int {
	return int(tsr.Values[i])
}

// SetInt1D sets the value at the given flat 1D index as an int.
func (tsr *Number[T]) SetInt1D(val int, i int) {
	tsr.Values[i] = T(val)
}

/////////////////////  General

// Range returns the min, max (and associated indexes, -1 = no values)
// for the tensor. NaN values are skipped.
func (tsr *Number[T]) Range() (min, max float64, minIndex, maxIndex int) {
	minIndex = -1
	maxIndex = -1
	for i, vl := range tsr.Values {
		fv := float64(vl)
		if math.IsNaN(fv) {
			continue
		}
		if fv < min || minIndex < 0 {
			min = fv
			minIndex = i
		}
		if fv > max || maxIndex < 0 {
			max = fv
			maxIndex = i
		}
	}
	return
}

// SetZeros is a simple convenience function to initialize all values to 0.
func (tsr *Number[T]) SetZeros() {
	for i := range tsr.Values {
		tsr.Values[i] = 0
	}
}

// Clone clones this tensor, creating a duplicate copy of itself with its
// own separate memory representation of all the values.
func (tsr *Number[T]) Clone() Tensor {
	csr := NewNumberShape[T](&tsr.shape)
	copy(csr.Values, tsr.Values)
	return csr
}

// CopyFrom copies all available values from the other tensor into this
// tensor, with an optimized implementation if the other tensor is of the
// same type, and otherwise going through the general Float1D access.
func (tsr *Number[T]) CopyFrom(frm Tensor) {
	if fsm, ok := frm.(*Number[T]); ok {
		copy(tsr.Values, fsm.Values)
		return
	}
	sz := min(tsr.Len(), frm.Len())
	for i := 0; i < sz; i++ {
		tsr.Values[i] = T(frm.Float1D(i))
	}
}

// SubSpace returns a new tensor with the innermost subspace at the given
// offset(s) in the outermost dimension(s) (len(offs) < NumDims).
// The new tensor is a view onto the values of this tensor; use Clone
// to separate the two.
func (tsr *Number[T]) SubSpace(offs ...int) Tensor {
	b := tsr.subSpaceImpl(offs...)
	if b == nil {
		return nil
	}
	return &Number[T]{Base: *b}
}

// RowTensor is a convenience version of [Number.SubSpace] to return the
// subspace for the outermost row dimension.
func (tsr *Number[T]) RowTensor(row int) Tensor {
	return tsr.SubSpace(row)
}

/////////////////////  gonum mat.Matrix

// At is the gonum/mat.Matrix interface method for returning the 2D matrix
// element at the given row, column index. Assumes row-major ordering and
// uses the outermost-but-one dimension as rows for NumDims > 2.
func (tsr *Number[T]) At(i, j int) float64 {
	nd := tsr.NumDims()
	if nd < 2 {
		return tsr.Float1D(i)
	}
	if nd == 2 {
		return tsr.Float(i, j)
	}
	ix := make([]int, nd)
	ix[nd-2] = i
	ix[nd-1] = j
	return tsr.Float(ix...)
}

// T is the gonum/mat.Matrix transpose method.
// It performs an implicit transpose by returning the receiver inside
// a mat.Transpose.
func (tsr *Number[T]) T() mat.Matrix {
	return mat.Transpose{Matrix: tsr}
}
