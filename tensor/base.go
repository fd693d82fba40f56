// Copyright (c) 2024, The my-nncf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/AtharvaPore01/my-nncf/base/errors"
)

// Base is the generic storage for an n-dimensional array of values,
// providing the shape and metadata functionality shared by all
// concrete tensor types.
type Base[T any] struct {
	shape  Shape
	Values []T
	Meta   map[string]string
}

// Shape returns a pointer to the shape that fully parametrizes
// the tensor shape.
func (tsr *Base[T]) Shape() *Shape { return &tsr.shape }

// Len returns the number of elements in the tensor,
// which is the product of all shape dimensions.
func (tsr *Base[T]) Len() int { return tsr.shape.Len() }

// NumDims returns the total number of dimensions.
func (tsr *Base[T]) NumDims() int { return tsr.shape.NumDims() }

// DimSize returns the size of the given dimension.
func (tsr *Base[T]) DimSize(dim int) int { return tsr.shape.DimSize(dim) }

// RowCellSize returns the size of the outer-most Row shape dimension,
// and the size of all the remaining inner dimensions (the "cell" size).
func (tsr *Base[T]) RowCellSize() (rows, cells int) {
	return tsr.shape.RowCellSize()
}

// SetShape sets the shape sizes, resizing backing storage appropriately,
// retaining existing values that fit.
func (tsr *Base[T]) SetShape(sizes ...int) {
	tsr.shape.SetShape(sizes...)
	nln := tsr.Len()
	if cap(tsr.Values) >= nln {
		tsr.Values = tsr.Values[:nln]
	} else {
		nv := make([]T, nln)
		copy(nv, tsr.Values)
		tsr.Values = nv
	}
}

// SetNames sets the dimension names of the tensor shape.
func (tsr *Base[T]) SetNames(names ...string) {
	tsr.shape.SetNames(names...)
}

// SetNumRows sets the number of rows (outer-most dimension),
// resizing backing storage appropriately.
func (tsr *Base[T]) SetNumRows(rows int) {
	rows = max(1, rows) // must be > 0
	sizes := make([]int, max(1, tsr.NumDims()))
	copy(sizes, tsr.shape.Sizes)
	sizes[0] = rows
	tsr.SetShape(sizes...)
}

// DataType returns the reflect.Kind of the data elements in the tensor.
func (tsr *Base[T]) DataType() reflect.Kind {
	var v T
	return reflect.TypeOf(v).Kind()
}

// Sizeof returns the number of bytes contained in the Values of this tensor.
func (tsr *Base[T]) Sizeof() int64 {
	var v T
	return int64(unsafe.Sizeof(v)) * int64(tsr.Len())
}

// Value returns the value at the given n-dimensional index.
func (tsr *Base[T]) Value(i ...int) T { return tsr.Values[tsr.shape.Offset(i...)] }

// Value1D returns the value at the given flat 1D index.
func (tsr *Base[T]) Value1D(i int) T { return tsr.Values[i] }

// Set sets the value at the given n-dimensional index.
func (tsr *Base[T]) Set(val T, i ...int) { tsr.Values[tsr.shape.Offset(i...)] = val }

// Set1D sets the value at the given flat 1D index.
func (tsr *Base[T]) Set1D(val T, i int) { tsr.Values[i] = val }

// Label satisfies the Labeler interface for a summary description
// of the tensor.
func (tsr *Base[T]) Label() string {
	return fmt.Sprintf("Tensor: %s", tsr.shape.String())
}

// Dims is the gonum/mat.Matrix interface method for returning the
// dimensionality of the 2D Matrix. Assumes row-major ordering and logs
// an error if NumDims < 2.
func (tsr *Base[T]) Dims() (r, c int) {
	nd := tsr.NumDims()
	if nd < 2 {
		errors.Log(errors.New("tensor Dims: gonum Matrix call made on Tensor with dims < 2"))
		return 0, 0
	}
	return tsr.shape.DimSize(nd - 2), tsr.shape.DimSize(nd - 1)
}

// subSpaceImpl returns a new Base with the innermost subspace at the given
// offset(s) in the outermost dimension(s) (len(offs) < NumDims).
// The returned Values slice is a view onto the original, so modifications
// affect both; only inner-most contiguous subspaces are supported.
func (tsr *Base[T]) subSpaceImpl(offs ...int) *Base[T] {
	nd := tsr.NumDims()
	od := len(offs)
	if od >= nd {
		return nil
	}
	stsr := &Base[T]{}
	stsr.shape.SetShape(tsr.shape.Sizes[od:]...)
	sti := make([]int, nd)
	copy(sti, offs)
	stoff := tsr.shape.Offset(sti...)
	sln := stsr.shape.Len()
	stsr.Values = tsr.Values[stoff : stoff+sln]
	return stsr
}

// SetMetaData sets a key=value metadata entry (stored as a map[string]string).
func (tsr *Base[T]) SetMetaData(key, val string) {
	if tsr.Meta == nil {
		tsr.Meta = make(map[string]string)
	}
	tsr.Meta[key] = val
}

// MetaData retrieves the value of the given key, bool = false if not set.
func (tsr *Base[T]) MetaData(key string) (string, bool) {
	if tsr.Meta == nil {
		return "", false
	}
	val, ok := tsr.Meta[key]
	return val, ok
}

// MetaDataMap returns the underlying map used for metadata.
func (tsr *Base[T]) MetaDataMap() map[string]string { return tsr.Meta }

// CopyMetaData copies metadata from the given source tensor.
func (tsr *Base[T]) CopyMetaData(frm Tensor) {
	fmap := frm.MetaDataMap()
	if len(fmap) == 0 {
		return
	}
	if tsr.Meta == nil {
		tsr.Meta = make(map[string]string)
	}
	for k, v := range fmap {
		tsr.Meta[k] = v
	}
}
