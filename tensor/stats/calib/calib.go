// Copyright (c) 2024, The my-nncf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calib provides the value types holding statistics collected by
// observing numeric tensors during model calibration for quantization,
// and a uniform tolerance-based equality contract over them.
//
// The variant set is closed: [MinMax], [Mean], [MedianMAD], [Percentile],
// and [Raw]. All variants are immutable after construction and safe for
// concurrent comparison. Every structural comparison goes through the
// single element-wise tolerant primitive [TensorEq]; no variant defines
// its own numeric comparison. Comparing across variants is always false
// and never panics.
//
// Computing these statistics from a tensor stream, and consuming them for
// quantization range setting, belong to other packages.
package calib

import "github.com/AtharvaPore01/my-nncf/tensor"

// Statistic is the capability common to all calibration statistic variants:
// structural equality within numeric tolerance.
type Statistic interface {
	// StatEqual reports whether the other statistic is the same variant
	// with every numeric field equal within tolerance, per [TensorEq].
	// A different variant or nil is not equal. It never panics.
	StatEqual(other Statistic) bool
}

// Standard keys identifying each variant's collected fields, as used by
// statistic collectors and reporting tooling.
const (
	// OutputKey identifies the statistic output of an observation point.
	OutputKey = "tensor_statistic_output"

	// MinStat and MaxStat are the [MinMax] field keys.
	MinStat = "min_values"
	MaxStat = "max_values"

	// MeanStat and ShapeStat are the [Mean] field keys.
	MeanStat  = "mean_values"
	ShapeStat = "shape"

	// MedianStat and MADStat are the [MedianMAD] field keys.
	MedianStat = "median_values"
	MADStat    = "mad_values"

	// PercentileDictStat is the [Percentile] field key.
	PercentileDictStat = "percentile_vs_values_dict"

	// ValuesStat is the [Raw] field key.
	ValuesStat = "values"
)

// Equal reports whether the two statistics are equal within tolerance.
// It handles nil operands (two nils are equal, one nil is not) and
// otherwise delegates to [Statistic.StatEqual], so statistics of
// different variants are unequal, never an error. The result is
// symmetric: Equal(a, b) == Equal(b, a) for all inputs.
func Equal(a, b Statistic) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.StatEqual(b)
}

// label returns the summary label of a tensor, handling nil.
func label(t tensor.Tensor) string {
	if t == nil {
		return "<nil>"
	}
	return t.Label()
}
