// Copyright (c) 2026 Scripta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sanitize normalizes free text for embedding into harvested
// metadata values.
//
// # Usage
//
// Titles and abstracts arrive from the CMS with soft word breaks, raw line
// breaks, and control characters that must never reach a metadata value.
// [Text] applies a fixed escape pipeline so that downstream serialization
// needs no further quoting.
package sanitize

import "strings"

// Text normalizes s for use as a metadata value.
//
// # Transformation Pipeline
//
// 1. Collapses a trailing hyphen followed by a line break (a soft word
// break: "infor-\nmation" → "information").
// 2. Escapes backslashes.
// 3. Replaces line breaks with single spaces.
// 4. Escapes double quotes.
// 5. Strips carriage returns, tabs, backspace, and form feeds.
//
// The order is load-bearing: backslashes are escaped before quotes so an
// escaped quote is not double-escaped, and soft breaks are collapsed before
// line breaks become spaces.
func Text(s string) string {
	s = strings.ReplaceAll(s, "-\n", "")
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\t", "")
	s = strings.ReplaceAll(s, "\b", "")
	s = strings.ReplaceAll(s, "\f", "")
	return s
}
