package diff

import (
	"sort"
	"strings"
)

// Kind identifies what kind of difference separates an expected label from an
// actual one. Exactly one Kind is assigned per compared pair.
type Kind string

const (
	// KindIdentical means the labels are byte-for-byte equal.
	KindIdentical Kind = "identical"
	// KindSpace means the labels are equal once whitespace is stripped and
	// collapsed, with no case change involved.
	KindSpace Kind = "space"
	// KindCase means the labels are equal after case-folding the
	// whitespace-normalized forms, but not before.
	KindCase Kind = "case"
	// KindWordOrder means the normalized forms contain the same words in a
	// different order.
	KindWordOrder Kind = "word_order"
	// KindSpelling means the normalized forms are close enough (similarity at
	// or above the threshold) to look like a spelling mistake.
	KindSpelling Kind = "spelling"
	// KindContent means the labels are materially different.
	KindContent Kind = "content"
)

// DefaultThreshold is the minimum similarity ratio for a mismatch to be
// classified as a spelling difference rather than a content difference.
const DefaultThreshold = 0.8

// Result is the outcome of classifying a single label pair.
type Result struct {
	Kind       Kind    `json:"kind"`
	Similarity float64 `json:"similarity"`
}

// Classify determines what kind of difference separates expected from actual.
// The rules are checked in order and the first match wins:
//
//  1. normalized forms equal: identical (byte equal), space (whitespace-only
//     change), or case
//  2. same words in a different order: word_order
//  3. similarity at or above threshold: spelling
//  4. otherwise: content
//
// The function is total: any two strings, including empty ones, resolve to
// exactly one Kind. Similarity is 1.0 for the three normalization-equal kinds
// and the LCS ratio of the normalized forms otherwise.
func Classify(expected, actual string, threshold float64) Result {
	expNorm := Normalize(expected)
	actNorm := Normalize(actual)

	if expNorm == actNorm {
		switch {
		case expected == actual:
			return Result{Kind: KindIdentical, Similarity: 1.0}
		case CollapseSpace(expected) == CollapseSpace(actual):
			return Result{Kind: KindSpace, Similarity: 1.0}
		default:
			return Result{Kind: KindCase, Similarity: 1.0}
		}
	}

	similarity := Similarity(expNorm, actNorm)

	if sameWords(expNorm, actNorm) {
		return Result{Kind: KindWordOrder, Similarity: similarity}
	}

	if similarity >= threshold {
		return Result{Kind: KindSpelling, Similarity: similarity}
	}

	return Result{Kind: KindContent, Similarity: similarity}
}

// sameWords reports whether two normalized labels contain the same multiset of
// whitespace-delimited words.
func sameWords(a, b string) bool {
	wordsA := strings.Fields(a)
	wordsB := strings.Fields(b)
	if len(wordsA) != len(wordsB) {
		return false
	}

	sort.Strings(wordsA)
	sort.Strings(wordsB)
	for i := range wordsA {
		if wordsA[i] != wordsB[i] {
			return false
		}
	}
	return true
}
