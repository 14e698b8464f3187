package fraction

import (
	"errors"
	"testing"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{12, 8, 4},
		{8, 12, 4},
		{7, 0, 7},
		{0, 9, 9},
		{17, 5, 1},
		{100, 75, 25},
	}
	for _, tc := range tests {
		if got := GCD(tc.a, tc.b); got != tc.want {
			t.Errorf("GCD(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestLCD(t *testing.T) {
	tests := []struct {
		ds   []int
		want int
	}{
		{[]int{4, 6}, 12},
		{[]int{3, 5, 6}, 30},
		{[]int{2, 4}, 4},
		{[]int{7}, 7},
		{[]int{6, 3, 5}, 30},
		{nil, 0},
	}
	for _, tc := range tests {
		if got := LCD(tc.ds...); got != tc.want {
			t.Errorf("LCD(%v) = %d, want %d", tc.ds, got, tc.want)
		}
	}
}

func TestSimplifyRoundTrip(t *testing.T) {
	pairs := [][2]int{{1, 2}, {3, 4}, {5, 3}, {0, 7}, {-2, 3}, {6, 9}}
	for _, p := range pairs {
		wantN, wantD := Simplify(p[0], p[1])
		for k := 1; k <= 12; k++ {
			gotN, gotD := Simplify(p[0]*k, p[1]*k)
			if gotN != wantN || gotD != wantD {
				t.Errorf("Simplify(%d*%d, %d*%d) = %d/%d, want %d/%d",
					p[0], k, p[1], k, gotN, gotD, wantN, wantD)
			}
		}
	}
}

func TestSimplifyKeepsSign(t *testing.T) {
	n, d := Simplify(2, -4)
	if n != 1 || d != -2 {
		t.Errorf("Simplify(2, -4) = %d/%d, want 1/-2", n, d)
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		n1, d1, n2, d2 int
		wantN, wantD   int
	}{
		{1, 4, 2, 4, 3, 4},
		{1, 2, 1, 2, 1, 1},
		{1, 3, 1, 6, 1, 2},
		{2, 3, 3, 4, 17, 12},
	}
	for _, tc := range tests {
		n, d := Add(tc.n1, tc.d1, tc.n2, tc.d2)
		if n != tc.wantN || d != tc.wantD {
			t.Errorf("Add(%d/%d, %d/%d) = %d/%d, want %d/%d",
				tc.n1, tc.d1, tc.n2, tc.d2, n, d, tc.wantN, tc.wantD)
		}
	}
}

func TestSub(t *testing.T) {
	n, d := Sub(3, 4, 1, 4)
	if n != 1 || d != 2 {
		t.Errorf("Sub(3/4, 1/4) = %d/%d, want 1/2", n, d)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		n, d    int
		wantErr error
	}{
		{"3/4", 3, 4, nil},
		{" 3 / 4 ", 3, 4, nil},
		{"5", 5, 1, nil},
		{"-2/3", -2, 3, nil},
		{"1/0", 0, 0, ErrZeroDenominator},
		{"abc", 0, 0, ErrMalformed},
		{"1/x", 0, 0, ErrMalformed},
		{"", 0, 0, ErrMalformed},
	}
	for _, tc := range tests {
		n, d, err := Parse(tc.in)
		if tc.wantErr != nil {
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Parse(%q) error = %v, want %v", tc.in, err, tc.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if n != tc.n || d != tc.d {
			t.Errorf("Parse(%q) = %d/%d, want %d/%d", tc.in, n, d, tc.n, tc.d)
		}
	}
}
