// Copyright (c) 2024, The my-nncf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calib

import "github.com/AtharvaPore01/my-nncf/tensor"

// Raw holds the raw collected sample values for a tensor,
// without any aggregation.
type Raw struct {
	values tensor.Tensor
}

// NewRaw returns a new [Raw] statistic holding the given collected values.
func NewRaw(values tensor.Tensor) *Raw {
	return &Raw{values: values}
}

// Values returns the collected raw values.
func (st *Raw) Values() tensor.Tensor { return st.values }

// StatEqual implements [Statistic].
func (st *Raw) StatEqual(other Statistic) bool {
	ot, ok := other.(*Raw)
	if !ok {
		return false
	}
	if st == nil || ot == nil {
		return st == ot
	}
	return TensorEq(st.values, ot.values)
}

// String satisfies the fmt.Stringer interface.
func (st *Raw) String() string {
	return "Raw: " + ValuesStat + ": " + label(st.values)
}
