// SPDX-License-Identifier: MIT
package types

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

type (
	// Slice is a `[]T` for integer element types.
	Slice[T constraints.Integer] []T
)

// Sum of the Slice's elements.
func (sl Slice[T]) Sum() (total T) {
	for index := range sl {
		total += sl[index]
	}

	return
}

// String is the `fmt.Stringer` interface implementation for Slice.
func (sl Slice[T]) String() string {
	if len(sl) < 1 {
		return "[]"
	}

	buffer := strings.Builder{}
	fmt.Fprintf(&buffer, "[%d", sl[0])
	for index := 1; index < len(sl); index++ {
		fmt.Fprintf(&buffer, ",%d", sl[index])
	}
	buffer.WriteString("]")

	return buffer.String()
}
