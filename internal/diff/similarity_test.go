package diff

import "testing"

func TestSimilarityReflexive(t *testing.T) {
	inputs := []string{"", "a", "Case Status", "90 day private visit due date - 2025"}

	for _, s := range inputs {
		if got := Similarity(s, s); got != 1.0 {
			t.Errorf("Similarity(%q, %q) = %v, want 1.0", s, s, got)
		}
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"received", "recieved"},
		{"total visits", "case status"},
		{"", "nonempty"},
		{"abc", "abcd"},
	}

	for _, p := range pairs {
		ab := Similarity(p[0], p[1])
		ba := Similarity(p[1], p[0])
		if ab != ba {
			t.Errorf("Similarity(%q, %q) = %v but Similarity(%q, %q) = %v",
				p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}

func TestSimilarityBounds(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		min  float64
		max  float64
	}{
		{"empty vs empty", "", "", 1.0, 1.0},
		{"empty vs nonempty", "", "x", 0.0, 0.0},
		{"near miss spelling", "recieved", "received", 0.8, 0.99},
		{"unrelated labels", "total visits", "case status", 0.0, 0.79},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.a, tt.b)
			if got < tt.min || got > tt.max {
				t.Errorf("Similarity(%q, %q) = %v, want in [%v, %v]", tt.a, tt.b, got, tt.min, tt.max)
			}
		})
	}
}

func TestLongestCommonSubsequence(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 0},
		{"abc", "abc", 3},
		{"abcde", "ace", 3},
		{"recieved", "received", 7},
	}

	for _, tt := range tests {
		if got := longestCommonSubsequence(tt.a, tt.b); got != tt.want {
			t.Errorf("longestCommonSubsequence(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
