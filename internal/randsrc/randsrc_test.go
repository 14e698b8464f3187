package randsrc

import "testing"

func TestBetweenStaysInRange(t *testing.T) {
	src := New(42)
	for i := 0; i < 1000; i++ {
		v := Between(src, 3, 7)
		if v < 3 || v > 7 {
			t.Fatalf("Between(3, 7) = %d, out of range", v)
		}
	}
}

func TestBetweenEmptyRange(t *testing.T) {
	src := Script(5)
	if got := Between(src, 4, 4); got != 4 {
		t.Errorf("Between(4, 4) = %d, want 4", got)
	}
	if got := Between(src, 9, 2); got != 9 {
		t.Errorf("Between(9, 2) = %d, want 9", got)
	}
	if src.Remaining() != 1 {
		t.Errorf("empty range consumed a draw")
	}
}

func TestSeededSourceIsReproducible(t *testing.T) {
	a, b := New(7), New(7)
	for i := 0; i < 50; i++ {
		if x, y := a.IntN(100), b.IntN(100); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestScriptReplaysThenZero(t *testing.T) {
	src := Script(2, 9, -3)

	tests := []struct {
		n    int
		want int
	}{
		{5, 2},
		{5, 4}, // 9 mod 5
		{5, 3}, // |-3|
		{5, 0}, // exhausted
	}
	for i, tc := range tests {
		if got := src.IntN(tc.n); got != tc.want {
			t.Errorf("draw %d: IntN(%d) = %d, want %d", i, tc.n, got, tc.want)
		}
	}
}

func TestPick(t *testing.T) {
	src := Script(1)
	if got := Pick(src, []string{"a", "b", "c"}); got != "b" {
		t.Errorf("Pick = %q, want %q", got, "b")
	}
}
