// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

import "strconv"

// Tag identifies one alternative of a schema. Tags are assigned by position
// when the schema is resolved: the last declared alternative gets tag 0 and
// each earlier alternative gets one more, so a tag is the distance between
// the alternative and the end of the declaration list. Tags are contiguous
// and stable for the lifetime of the schema.
type Tag uint8

// None is the sentinel tag of an empty cell. It is never assigned to an
// alternative.
const None Tag = ^Tag(0)

// MaxAlternatives is the largest number of alternatives one schema can
// declare. Tags 0 through MaxAlternatives-1 stay below [None].
const MaxAlternatives = int(None)

// String returns "None" for the sentinel and "Tag(n)" otherwise.
func (t Tag) String() string {
	if t == None {
		return "None"
	}
	return "Tag(" + strconv.Itoa(int(t)) + ")"
}

// emptyVariant panics with the fatal dispatch error for empty variants.
// Extracted as a noinline function so that dispatch paths remain inlineable.
//
//go:noinline
func emptyVariant() {
	panic("sum: attempted to visit empty variant")
}
