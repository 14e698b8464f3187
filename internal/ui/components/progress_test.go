package components

import (
	"strings"
	"testing"
)

func TestProgressBar_View(t *testing.T) {
	tests := []struct {
		percent    float64
		width      int
		wantFilled int
		wantEmpty  int
	}{
		{0, 10, 0, 10},
		{0.5, 10, 5, 5},
		{1, 10, 10, 0},
		{1.7, 10, 10, 0},
		{-0.2, 10, 0, 10},
		{0.5, 1, 2, 2}, // width floors at 4
	}

	for _, tt := range tests {
		view := NewProgressBar("", tt.percent, false, tt.width).View()
		if got := strings.Count(view, "█"); got != tt.wantFilled {
			t.Errorf("percent %.1f width %d: filled = %d, want %d", tt.percent, tt.width, got, tt.wantFilled)
		}
		if got := strings.Count(view, "░"); got != tt.wantEmpty {
			t.Errorf("percent %.1f width %d: empty = %d, want %d", tt.percent, tt.width, got, tt.wantEmpty)
		}
	}
}

func TestProgressBar_LabelAndPercent(t *testing.T) {
	view := NewProgressBar("Fractions", 0.75, true, 8).View()
	if !strings.Contains(view, "Fractions") {
		t.Errorf("view %q missing label", view)
	}
	if !strings.Contains(view, "75%") {
		t.Errorf("view %q missing percentage", view)
	}
}

func TestProgressBar_PercentClamped(t *testing.T) {
	tests := []struct {
		percent float64
		want    string
	}{
		{1.2, "100%"},
		{-0.5, "  0%"},
	}
	for _, tt := range tests {
		view := NewProgressBar("", tt.percent, true, 10).View()
		if !strings.Contains(view, tt.want) {
			t.Errorf("percent %.1f: view %q missing %q", tt.percent, view, tt.want)
		}
	}
}
