// Copyright (c) 2024, The my-nncf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tensor provides an n-dimensional numeric tensor container,
// generic over the element type, which serves as the backend-agnostic
// value storage for calibration statistics. Per C / Go / Python
// conventions, indexes are row-major, ordered from outer to inner
// left-to-right, so the inner-most is right-most.
//
// For float32 and float64 tensors, NaN indicates a missing value,
// and the [Tensor.Range] method skips NaNs.
package tensor

import (
	"fmt"
	"reflect"

	"github.com/AtharvaPore01/my-nncf/base/num"
	"gonum.org/v1/gonum/mat"
)

// Tensor is the interface for n-dimensional numeric tensors.
// It is implemented by the [Number] generic type specialized by different
// concrete element types: float64, float32, int, int32, byte.
// All element access for comparison purposes is normalized through the
// Float1D method, so tensors from different storage backends compare
// uniformly. Tensors also implement gonum's [mat.Matrix], so any gonum
// matrix can be normalized into a Tensor via [CopyDense] or [NewFromDense].
type Tensor interface {
	fmt.Stringer
	mat.Matrix

	// Label satisfies the Labeler interface for a summary
	// description of the tensor.
	Label() string

	// Shape returns a pointer to the Shape that fully parametrizes
	// the tensor shape.
	Shape() *Shape

	// SetShape sets the shape sizes, resizing backing storage
	// appropriately, retaining existing values that fit.
	SetShape(sizes ...int)

	// SetNames sets the dimension names of the tensor shape.
	SetNames(names ...string)

	// Len returns the number of elements in the tensor,
	// which is the product of all shape dimensions.
	Len() int

	// NumDims returns the total number of dimensions.
	NumDims() int

	// DimSize returns the size of the given dimension.
	DimSize(dim int) int

	// RowCellSize returns the size of the outermost Row shape dimension,
	// and the size of all the remaining inner dimensions (the "cell" size).
	RowCellSize() (rows, cells int)

	// DataType returns the reflect.Kind of the data elements in the tensor.
	DataType() reflect.Kind

	// Sizeof returns the number of bytes contained in the Values
	// of this tensor.
	Sizeof() int64

	// IsInt returns true if the data type is an integer type.
	IsInt() bool

	// Float returns the value at the given n-dimensional index as a float64.
	Float(i ...int) float64

	// SetFloat sets the value at the given n-dimensional index as a float64.
	SetFloat(val float64, i ...int)

	// Float1D returns the value at the given flat 1D index as a float64.
	// This is the universal access method used for cross-backend comparison.
	Float1D(i int) float64

	// SetFloat1D sets the value at the given flat 1D index as a float64.
	SetFloat1D(val float64, i int)

	// FloatRowCell returns the value at the given row and cell, where row
	// is the outermost dimension and cell is a 1D index into the remaining
	// inner dimensions.
	FloatRowCell(row, cell int) float64

	// SetFloatRowCell sets the value at the given row and cell.
	SetFloatRowCell(val float64, row, cell int)

	// Int returns the value at the given n-dimensional index as an int.
	Int(i ...int) int

	// SetInt sets the value at the given n-dimensional index as an int.
	SetInt(val int, i ...int)

	// Int1D returns the value at the given flat 1D index as an int.
	Int1D(i int) int

	// SetInt1D sets the value at the given flat 1D index as an int.
	SetInt1D(val int, i int)

	// Range returns the min, max (and associated indexes, -1 = no values)
	// for the tensor, skipping NaN values.
	Range() (min, max float64, minIndex, maxIndex int)

	// SetZeros initializes all values to 0.
	SetZeros()

	// SetNumRows sets the number of rows (outermost dimension).
	SetNumRows(rows int)

	// Clone clones this tensor, creating a duplicate copy with its own
	// separate memory representation of all the values.
	Clone() Tensor

	// CopyFrom copies all available values from the other tensor into
	// this tensor.
	CopyFrom(from Tensor)

	// SubSpace returns a new tensor with the innermost subspace at the
	// given offset(s) in the outermost dimension(s) (len(offs) < NumDims).
	// The new tensor is a view onto the values of this tensor.
	SubSpace(offs ...int) Tensor

	// RowTensor is a convenience version of [Tensor.SubSpace] returning
	// the subspace for the outermost row dimension.
	RowTensor(row int) Tensor

	// SetMetaData sets a key=value metadata entry.
	SetMetaData(key, val string)

	// MetaData retrieves the value of the given key, bool = false if not set.
	MetaData(key string) (string, bool)

	// MetaDataMap returns the underlying map used for metadata.
	MetaDataMap() map[string]string
}

// New returns a new n-dimensional tensor of the given numeric value type
// with the given sizes per dimension (shape).
func New[T num.Number](sizes ...int) Tensor {
	return NewNumber[T](sizes...)
}

// NewOfType returns a new n-dimensional tensor of the given reflect.Kind
// type with the given sizes per dimension (shape).
// Supported types are float32, float64, int, int32, and byte.
func NewOfType(typ reflect.Kind, sizes ...int) Tensor {
	switch typ {
	case reflect.Float64:
		return NewNumber[float64](sizes...)
	case reflect.Float32:
		return NewNumber[float32](sizes...)
	case reflect.Int:
		return NewNumber[int](sizes...)
	case reflect.Int32:
		return NewNumber[int32](sizes...)
	case reflect.Uint8:
		return NewNumber[byte](sizes...)
	default:
		panic(fmt.Sprintf("tensor.NewOfType: type not supported: %v", typ))
	}
}
