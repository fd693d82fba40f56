// Copyright (c) 2024, The my-nncf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"slices"
)

// Shape manages a tensor's shape information: the sizes of each dimension,
// the row-major strides computed from them, and optional dimension names.
// Per C / Go / Python conventions, indexes are ordered from outer to inner
// left-to-right, so the inner-most dimension is right-most.
type Shape struct {
	// Sizes is the size of each dimension.
	Sizes []int

	// Strides is the offset per dimension in flat 1D index space,
	// computed from Sizes in row-major order.
	Strides []int

	// Names are optional names per dimension, for documentation
	// and display purposes.
	Names []string
}

// NewShape returns a new shape with the given sizes per dimension,
// with row-major ordering.
func NewShape(sizes ...int) *Shape {
	sh := &Shape{}
	sh.SetShape(sizes...)
	return sh
}

// SetShape sets the shape sizes, updating the strides accordingly.
// Any existing dimension names are discarded if the dimensionality changes.
func (sh *Shape) SetShape(sizes ...int) {
	sh.Sizes = slices.Clone(sizes)
	sh.Strides = RowMajorStrides(sizes...)
	if len(sh.Names) != len(sh.Sizes) {
		sh.Names = nil
	}
}

// SetNames sets the dimension names. The number of names must match the
// number of dimensions; extra names are dropped.
func (sh *Shape) SetNames(names ...string) {
	nd := len(sh.Sizes)
	sh.Names = make([]string, nd)
	copy(sh.Names, names)
}

// CopyFrom copies all shape information from the given source shape.
func (sh *Shape) CopyFrom(cp *Shape) {
	sh.Sizes = slices.Clone(cp.Sizes)
	sh.Strides = slices.Clone(cp.Strides)
	sh.Names = slices.Clone(cp.Names)
}

// Len returns the total number of elements implied by the shape,
// which is the product of all dimension sizes. A dimensionless shape
// has zero elements.
func (sh *Shape) Len() int {
	if len(sh.Sizes) == 0 {
		return 0
	}
	ln := 1
	for _, sz := range sh.Sizes {
		ln *= sz
	}
	return ln
}

// NumDims returns the total number of dimensions.
func (sh *Shape) NumDims() int { return len(sh.Sizes) }

// DimSize returns the size of the given dimension.
func (sh *Shape) DimSize(dim int) int { return sh.Sizes[dim] }

// RowCellSize returns the size of the outer-most Row shape dimension,
// and the size of all the remaining inner dimensions (the "cell" size).
func (sh *Shape) RowCellSize() (rows, cells int) {
	if len(sh.Sizes) == 0 {
		return 0, 1
	}
	rows = sh.Sizes[0]
	if len(sh.Sizes) == 1 {
		return rows, 1
	}
	cells = 1
	for _, sz := range sh.Sizes[1:] {
		cells *= sz
	}
	return
}

// Offset returns the flat 1D index for the given n-dimensional index.
func (sh *Shape) Offset(i ...int) int {
	off := 0
	for d, ix := range i {
		off += ix * sh.Strides[d]
	}
	return off
}

// Index returns the n-dimensional index for the given flat 1D offset.
func (sh *Shape) Index(off int) []int {
	nd := len(sh.Sizes)
	ix := make([]int, nd)
	for d := nd - 1; d >= 0; d-- {
		ix[d] = off % sh.Sizes[d]
		off /= sh.Sizes[d]
	}
	return ix
}

// IsEqual returns true if the given shape has the same dimension sizes.
// Strides follow from sizes, and names are not semantically relevant.
func (sh *Shape) IsEqual(oth *Shape) bool {
	return slices.Equal(sh.Sizes, oth.Sizes)
}

// String satisfies the fmt.Stringer interface.
func (sh *Shape) String() string {
	str := "["
	for d, sz := range sh.Sizes {
		if len(sh.Names) > d && sh.Names[d] != "" {
			str += sh.Names[d] + ": "
		}
		str += fmt.Sprintf("%d", sz)
		if d < len(sh.Sizes)-1 {
			str += ", "
		}
	}
	return str + "]"
}

// RowMajorStrides returns the strides for the given sizes,
// where the outer-most dimension is first and has the largest stride.
func RowMajorStrides(sizes ...int) []int {
	rem := 1
	for _, sz := range sizes {
		rem *= sz
	}
	nd := len(sizes)
	strides := make([]int, nd)
	for d, sz := range sizes {
		if sz > 0 {
			rem /= sz
		}
		strides[d] = rem
	}
	return strides
}
