// Copyright (c) 2024, The my-nncf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calib

import (
	"fmt"
	"slices"

	"github.com/AtharvaPore01/my-nncf/tensor"
)

// Mean holds per-axis mean values collected for a tensor, along with the
// shape under which they were aggregated. The shape participates in
// equality through the same tolerant primitive as the mean values,
// which for integers reduces to exact equality in practice.
type Mean struct {
	mean  tensor.Tensor
	shape []int
}

// NewMean returns a new [Mean] statistic holding the given
// already-computed per-axis mean values and aggregation shape.
func NewMean(mean tensor.Tensor, shape ...int) *Mean {
	return &Mean{mean: mean, shape: slices.Clone(shape)}
}

// MeanValues returns the collected per-axis mean values.
func (st *Mean) MeanValues() tensor.Tensor { return st.mean }

// AggShape returns the shape of the collected statistics.
// The returned slice must not be modified.
func (st *Mean) AggShape() []int { return st.shape }

// StatEqual implements [Statistic].
func (st *Mean) StatEqual(other Statistic) bool {
	ot, ok := other.(*Mean)
	if !ok {
		return false
	}
	if st == nil || ot == nil {
		return st == ot
	}
	return TensorEq(st.mean, ot.mean) &&
		TensorEq(shapeTensor(st.shape), shapeTensor(ot.shape))
}

// String satisfies the fmt.Stringer interface.
func (st *Mean) String() string {
	return "Mean: " + MeanStat + ": " + label(st.mean) +
		" " + ShapeStat + ": " + fmt.Sprint(st.shape)
}

// shapeTensor lifts an integer shape sequence to a 1D int tensor,
// so it can go through [TensorEq] like any other numeric field.
func shapeTensor(shape []int) tensor.Tensor {
	return tensor.NewNumberFromValues(shape...)
}
