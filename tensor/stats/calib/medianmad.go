// Copyright (c) 2024, The my-nncf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calib

import "github.com/AtharvaPore01/my-nncf/tensor"

// MedianMAD holds the median and median-absolute-deviation values observed
// for a tensor, with median and MAD of matching shape.
type MedianMAD struct {
	median tensor.Tensor
	mad    tensor.Tensor
}

// NewMedianMAD returns a new [MedianMAD] statistic holding the given
// already-computed median and MAD value tensors.
func NewMedianMAD(median, mad tensor.Tensor) *MedianMAD {
	return &MedianMAD{median: median, mad: mad}
}

// MedianValues returns the collected median values.
func (st *MedianMAD) MedianValues() tensor.Tensor { return st.median }

// MADValues returns the collected median-absolute-deviation values.
func (st *MedianMAD) MADValues() tensor.Tensor { return st.mad }

// StatEqual implements [Statistic].
func (st *MedianMAD) StatEqual(other Statistic) bool {
	ot, ok := other.(*MedianMAD)
	if !ok {
		return false
	}
	if st == nil || ot == nil {
		return st == ot
	}
	return TensorEq(st.median, ot.median) && TensorEq(st.mad, ot.mad)
}

// String satisfies the fmt.Stringer interface.
func (st *MedianMAD) String() string {
	return "MedianMAD: " + MedianStat + ": " + label(st.median) +
		" " + MADStat + ": " + label(st.mad)
}
