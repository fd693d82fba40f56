// Copyright (c) 2024, The my-nncf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"math"
	"reflect"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestShape(t *testing.T) {
	sh := NewShape(3, 2, 4)
	assert.Equal(t, 24, sh.Len())
	assert.Equal(t, 3, sh.NumDims())
	assert.Equal(t, 2, sh.DimSize(1))
	assert.Equal(t, []int{8, 4, 1}, sh.Strides)

	rows, cells := sh.RowCellSize()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 8, cells)

	off := sh.Offset(2, 1, 3)
	assert.Equal(t, 23, off)
	assert.Equal(t, []int{2, 1, 3}, sh.Index(off))

	assert.True(t, sh.IsEqual(NewShape(3, 2, 4)))
	assert.False(t, sh.IsEqual(NewShape(3, 2)))
	assert.False(t, sh.IsEqual(NewShape(4, 2, 3)))

	sh.SetNames("Batch", "Chan", "Vals")
	assert.Equal(t, "[Batch: 3, Chan: 2, Vals: 4]", sh.String())
}

func TestTensorFloat64(t *testing.T) {
	tsr := NewFloat64(4, 2)
	assert.Equal(t, 8, tsr.Len())
	assert.Equal(t, reflect.Float64, tsr.DataType())
	assert.False(t, tsr.IsInt())
	assert.Equal(t, int64(64), tsr.Sizeof())

	tsr.SetFloat(3.14, 2, 0)
	assert.Equal(t, 3.14, tsr.Float(2, 0))
	assert.Equal(t, 3.14, tsr.Float1D(4))
	assert.Equal(t, 3.14, tsr.FloatRowCell(2, 0))

	tsr.SetFloat1D(2.17, 5)
	assert.Equal(t, 2.17, tsr.Float(2, 1))

	cln := tsr.Clone()
	cln.SetFloat1D(0, 4)
	assert.Equal(t, 0.0, cln.Float1D(4))
	assert.Equal(t, 3.14, tsr.Float1D(4))

	cln.SetZeros()
	assert.Equal(t, 0.0, cln.Float1D(5))

	sub := tsr.SubSpace(2)
	assert.Equal(t, 2, sub.Len())
	assert.Equal(t, 3.14, sub.Float1D(0))
	assert.Equal(t, 2.17, sub.Float1D(1))

	row := tsr.RowTensor(2)
	assert.Equal(t, 2, row.Len())

	tsr.SetNumRows(5)
	assert.Equal(t, 10, tsr.Len())
	assert.Equal(t, 3.14, tsr.Float1D(4))
	tsr.SetNumRows(2)
	assert.Equal(t, 4, tsr.Len())
}

func TestTensorInt(t *testing.T) {
	tsr := NewInt(4)
	assert.True(t, tsr.IsInt())
	tsr.SetInt1D(42, 2)
	assert.Equal(t, 42, tsr.Int1D(2))
	assert.Equal(t, 42.0, tsr.Float1D(2))

	ocf := NewOfType(reflect.Int32, 2, 2)
	assert.Equal(t, reflect.Int32, ocf.DataType())
	assert.Equal(t, 4, ocf.Len())
}

func TestNumberFromValues(t *testing.T) {
	vals := []float64{1.1, 2.2, 3.3}
	tsr := NewNumberFromValues(vals...)
	assert.Equal(t, 3, tsr.Len())
	assert.Equal(t, 1, tsr.NumDims())
	assert.Equal(t, 2.2, tsr.Float1D(1))

	// wraps, not copies
	vals[0] = 9.9
	assert.Equal(t, 9.9, tsr.Float1D(0))

	itsr := NewNumberFromValues(2, 3)
	assert.Equal(t, reflect.Int, itsr.DataType())
	assert.Equal(t, 3, itsr.Int1D(1))
}

func TestRange(t *testing.T) {
	tsr := NewNumberFromValues(0.3, math.NaN(), -1.5, 2.5)
	mn, mx, mni, mxi := tsr.Range()
	assert.Equal(t, -1.5, mn)
	assert.Equal(t, 2.5, mx)
	assert.Equal(t, 2, mni)
	assert.Equal(t, 3, mxi)
}

func TestFloat32(t *testing.T) {
	tsr := NewFloat32(3)
	tsr.SetFloat1D(float64(math32.NaN()), 0)
	tsr.SetFloat1D(0.5, 1)
	tsr.SetFloat1D(-0.5, 2)
	mn, mx, _, _ := tsr.Range()
	assert.Equal(t, -0.5, mn)
	assert.Equal(t, 0.5, mx)
	assert.True(t, math32.IsNaN(float32(tsr.Float1D(0))))
}

func TestCopyFrom(t *testing.T) {
	src := NewNumberFromValues(1.5, 2.5, 3.5)
	dst := NewFloat64(3)
	dst.CopyFrom(src)
	assert.Equal(t, 2.5, dst.Float1D(1))

	// across element types
	idst := NewInt(3)
	idst.CopyFrom(src)
	assert.Equal(t, 2, idst.Int1D(1))
}

func TestDense(t *testing.T) {
	dm := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	tsr := NewFromDense(dm)
	assert.Equal(t, []int{2, 3}, tsr.Shape().Sizes)
	assert.Equal(t, 6.0, tsr.Float(1, 2))

	r, c := tsr.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 5.0, tsr.At(1, 1))

	back := ToDense(tsr)
	assert.True(t, mat.Equal(dm, back))
	assert.Equal(t, 2.0, tsr.T().At(1, 0))
}

func TestAs1D(t *testing.T) {
	tsr := NewFloat64(2, 2)
	tsr.SetFloat(7.0, 1, 1)
	flat := As1D(tsr)
	assert.Equal(t, 1, flat.NumDims())
	assert.Equal(t, 4, flat.Len())
	assert.Equal(t, 7.0, flat.Float1D(3))

	one := NewNumberFromValues(1.0, 2.0)
	assert.Equal(t, Tensor(one), As1D(one))
}

func TestMetaData(t *testing.T) {
	tsr := NewFloat64(2)
	tsr.SetMetaData("name", "acts")
	v, ok := tsr.MetaData("name")
	assert.True(t, ok)
	assert.Equal(t, "acts", v)
	_, ok = tsr.MetaData("missing")
	assert.False(t, ok)

	cln := NewFloat64(2)
	cln.CopyMetaData(tsr)
	v, _ = cln.MetaData("name")
	assert.Equal(t, "acts", v)
}

func TestString(t *testing.T) {
	tsr := NewNumberFromValues(1.0, 2.5)
	assert.Equal(t, "Tensor: [2] 1 2.5", tsr.String())
	assert.Equal(t, "Tensor: [2]", tsr.Label())
}
