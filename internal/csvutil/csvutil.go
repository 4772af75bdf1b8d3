package csvutil

import "strings"

// Parse splits a record line on commas. There is no quoting scheme:
// every comma is a field boundary, and trailing empty fields are kept,
// so "1,GYM,," yields four fields, the last two empty.
func Parse(line string) []string {
	return strings.Split(line, ",")
}

// Clean makes a value safe to embed in a record by replacing every
// comma with a space. The replacement is lossy and not reversible.
func Clean(s string) string {
	return strings.ReplaceAll(s, ",", " ")
}
