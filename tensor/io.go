// Copyright (c) 2024, The my-nncf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"strconv"
	"strings"
)

// maxStringValues is the maximum number of values included in the
// String representation of a tensor.
const maxStringValues = 64

// stringValues returns a string representation of the tensor's shape
// followed by its values, truncated past [maxStringValues].
func stringValues(tsr Tensor) string {
	var b strings.Builder
	b.WriteString(tsr.Label())
	b.WriteString(" ")
	n := tsr.Len()
	mx := min(n, maxStringValues)
	_, cells := tsr.RowCellSize()
	for i := 0; i < mx; i++ {
		if i > 0 {
			if cells > 1 && i%cells == 0 {
				b.WriteString("\n")
			} else {
				b.WriteString(" ")
			}
		}
		if tsr.IsInt() {
			b.WriteString(strconv.Itoa(tsr.Int1D(i)))
		} else {
			b.WriteString(strconv.FormatFloat(tsr.Float1D(i), 'g', -1, 64))
		}
	}
	if mx < n {
		b.WriteString(" ...")
	}
	return b.String()
}
