package entropy

import (
	"math"
	"testing"
)

func TestShannonShortStringsAreZero(t *testing.T) {
	for _, s := range []string{"", "a", "secret", "abcdefghijklmno"} {
		if got := Shannon(s); got != 0.0 {
			t.Fatalf("Shannon(%q)=%v want 0.0", s, got)
		}
	}
}

func TestShannonSingleSymbol(t *testing.T) {
	if got := Shannon("aaaaaaaaaaaaaaaa"); got != 0.0 {
		t.Fatalf("Shannon of 16 a's = %v want 0.0", got)
	}
}

func TestShannonUniformDistribution(t *testing.T) {
	// 32 distinct case-insensitive symbols, each once: log2(32) = 5.0
	s := "abcdefghijklmnopqrstuvwxyz012345"
	if got := Shannon(s); math.Abs(got-5.0) > 1e-9 {
		t.Fatalf("Shannon(%q)=%v want 5.0", s, got)
	}
}

func TestShannonCaseFolded(t *testing.T) {
	lower := "abcdabcdabcdabcd"
	mixed := "AbCdABCDabcdabcd"
	if Shannon(lower) != Shannon(mixed) {
		t.Fatalf("case folding broken: %v vs %v", Shannon(lower), Shannon(mixed))
	}
}
