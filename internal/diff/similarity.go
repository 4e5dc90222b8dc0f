package diff

// Similarity calculates the similarity ratio between two strings as
// 2*LCS/(len(a)+len(b)), the same ratio Python's difflib.SequenceMatcher
// produces for well-behaved inputs. Returns a value between 0.0 (completely
// different) and 1.0 (identical). The function is symmetric and reflexive:
// Similarity(x, x) == 1.0 for every x, including the empty string.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	lcs := longestCommonSubsequence(a, b)
	return 2.0 * float64(lcs) / float64(len(a)+len(b))
}

// longestCommonSubsequence returns the length of the LCS of two strings.
func longestCommonSubsequence(a, b string) int {
	m, n := len(a), len(b)
	if m == 0 || n == 0 {
		return 0
	}

	// Two rows instead of the full matrix for memory efficiency
	prev := make([]int, n+1)
	curr := make([]int, n+1)

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
	}

	return prev[n]
}
