// Copyright (c) 2026 Scripta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides quick type-conversion utilities.

It wraps [strconv] for fault-tolerant query-parameter parsing: a
malformed value falls back to a caller-supplied default instead of
surfacing an error. Do not use this package where malformed input must
be distinguished from the default; parse explicitly instead.
*/
package convert

import "strconv"

// ToIntD converts a string to an int, returning the provided default if
// the string is empty or cannot be parsed.
func ToIntD(str string, def int) int {
	if str == "" {
		return def
	}
	if v, err := strconv.Atoi(str); err == nil {
		return v
	}
	return def
}

// ToInt converts a string to an int, silencing parsing errors.
// It returns 0 if the string is empty or cannot be parsed.
func ToInt(s string) int {
	return ToIntD(s, 0)
}
