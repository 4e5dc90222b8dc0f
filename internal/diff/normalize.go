package diff

import "strings"

// Normalize canonicalizes a label for comparison: leading/trailing whitespace
// is stripped, internal whitespace runs collapse to a single space, and the
// result is lower-cased. The original label is never mutated; callers keep it
// for display.
func Normalize(label string) string {
	return strings.ToLower(CollapseSpace(label))
}

// CollapseSpace strips leading/trailing whitespace and collapses internal
// whitespace runs to a single space without changing case. strings.Fields
// splits on any unicode whitespace, so tabs and non-breaking spaces normalize
// the same way ordinary spaces do.
func CollapseSpace(label string) string {
	return strings.Join(strings.Fields(label), " ")
}
