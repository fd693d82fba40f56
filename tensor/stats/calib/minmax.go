// Copyright (c) 2024, The my-nncf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calib

import "github.com/AtharvaPore01/my-nncf/tensor"

// MinMax holds the minimum and maximum values observed for a tensor,
// possibly per-channel, with min and max of matching shape.
type MinMax struct {
	min tensor.Tensor
	max tensor.Tensor
}

// NewMinMax returns a new [MinMax] statistic holding the given
// already-computed min and max value tensors.
func NewMinMax(min, max tensor.Tensor) *MinMax {
	return &MinMax{min: min, max: max}
}

// MinValues returns the collected minimum values.
func (st *MinMax) MinValues() tensor.Tensor { return st.min }

// MaxValues returns the collected maximum values.
func (st *MinMax) MaxValues() tensor.Tensor { return st.max }

// StatEqual implements [Statistic].
func (st *MinMax) StatEqual(other Statistic) bool {
	ot, ok := other.(*MinMax)
	if !ok {
		return false
	}
	if st == nil || ot == nil {
		return st == ot
	}
	return TensorEq(st.min, ot.min) && TensorEq(st.max, ot.max)
}

// String satisfies the fmt.Stringer interface.
func (st *MinMax) String() string {
	return "MinMax: " + MinStat + ": " + label(st.min) + " " + MaxStat + ": " + label(st.max)
}
