// Copyright (c) 2024, The my-nncf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calib

import (
	"github.com/AtharvaPore01/my-nncf/base/keylist"
	"github.com/AtharvaPore01/my-nncf/tensor"
)

// Percentile holds, for each collected percentile level (e.g., 0.5, 99.9),
// the tensor of values observed at that percentile. Levels are unique per
// instance, and their insertion order is preserved for iteration but has
// no effect on equality.
type Percentile struct {
	levels keylist.List[float64, tensor.Tensor]
}

// NewPercentile returns a new empty [Percentile] statistic.
// Populate it with [Percentile.Set] during construction and treat it
// as immutable afterward.
func NewPercentile() *Percentile {
	return &Percentile{}
}

// Set sets the value tensor collected at the given percentile level,
// replacing any existing tensor at that level.
func (st *Percentile) Set(level float64, values tensor.Tensor) {
	st.levels.Set(level, values)
}

// At returns the value tensor collected at the given percentile level,
// or nil if the level was not collected.
func (st *Percentile) At(level float64) tensor.Tensor {
	return st.levels.At(level)
}

// AtTry returns the value tensor collected at the given percentile level,
// and false if the level was not collected.
func (st *Percentile) AtTry(level float64) (tensor.Tensor, bool) {
	return st.levels.AtTry(level)
}

// Levels returns the collected percentile levels in insertion order.
// The returned slice must not be modified.
func (st *Percentile) Levels() []float64 { return st.levels.Keys }

// NumLevels returns the number of collected percentile levels.
func (st *Percentile) NumLevels() int { return st.levels.Len() }

// StatEqual implements [Statistic]. The level sets must match exactly,
// independent of insertion order; only then are the per-level value
// tensors compared, using the tighter [PercentileRTol] tolerance.
func (st *Percentile) StatEqual(other Statistic) bool {
	ot, ok := other.(*Percentile)
	if !ok {
		return false
	}
	if st == nil || ot == nil {
		return st == ot
	}
	if !sameLevels(st.levels.Keys, ot.levels.Keys) {
		return false
	}
	for _, lv := range st.levels.Keys {
		if !TensorEq(st.levels.At(lv), ot.levels.At(lv), PercentileRTol) {
			return false
		}
	}
	return true
}

// sameLevels reports whether the two level lists contain the same levels
// with the same multiplicity, regardless of order.
func sameLevels(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[float64]int, len(a))
	for _, lv := range a {
		counts[lv]++
	}
	for _, lv := range b {
		counts[lv]--
		if counts[lv] < 0 {
			return false
		}
	}
	return true
}

// String satisfies the fmt.Stringer interface.
func (st *Percentile) String() string {
	return "Percentile: " + PercentileDictStat + ": " + st.levels.String()
}
