package components

import (
	"strings"
	"testing"

	"firecast/internal/tui/theme"
)

func TestSparklineNormalizesMinToMax(t *testing.T) {
	// A series crossing zero still shows shape: the minimum renders as
	// the lowest block and the maximum as the highest.
	got := Sparkline([]float64{-100, 0, 100}, theme.Active.Accent)
	if !strings.Contains(got, "▁") {
		t.Errorf("minimum should render as the lowest block: %q", got)
	}
	if !strings.Contains(got, "█") {
		t.Errorf("maximum should render as the highest block: %q", got)
	}
}

func TestSparklineEmpty(t *testing.T) {
	if got := Sparkline(nil, theme.Active.Accent); got != "" {
		t.Errorf("empty series should render empty, got %q", got)
	}
}

func TestBarChartNegativeSeriesFallsBackToSparkline(t *testing.T) {
	values := []float64{500, 200, -100, -400}

	got := BarChart(values, nil, theme.Active.Accent, 60, 10)
	want := Sparkline(values, theme.Active.Accent)
	if got != want {
		t.Errorf("negative series should render as a sparkline\ngot:  %q\nwant: %q", got, want)
	}
	if !strings.Contains(got, "▁") {
		t.Errorf("negative tail should still be visible: %q", got)
	}
}

func TestBarChartPositiveSeriesHasAxis(t *testing.T) {
	got := BarChart([]float64{10, 20, 30}, []string{"a", "b", "c"}, theme.Active.Accent, 40, 8)
	if !strings.Contains(got, "└") {
		t.Errorf("expected an x-axis corner in chart output:\n%s", got)
	}
	if !strings.Contains(got, "│") {
		t.Errorf("expected a y-axis in chart output:\n%s", got)
	}
}

func TestHistogram(t *testing.T) {
	counts, labels := Histogram([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 2)
	if len(counts) != 2 || len(labels) != 2 {
		t.Fatalf("expected 2 bins, got %d counts / %d labels", len(counts), len(labels))
	}
	if counts[0]+counts[1] != 10 {
		t.Errorf("bin counts should sum to the sample size, got %v", counts)
	}
	if counts[0] != 5 || counts[1] != 5 {
		t.Errorf("uniform samples should split evenly, got %v", counts)
	}
}

func TestHistogramIdenticalValues(t *testing.T) {
	counts, labels := Histogram([]float64{42, 42, 42}, 10)
	if len(counts) != 1 {
		t.Fatalf("zero-width distribution should collapse to one bin, got %d", len(counts))
	}
	if counts[0] != 3 {
		t.Errorf("single bin should hold every sample, got %v", counts[0])
	}
	if len(labels) != 1 {
		t.Errorf("expected one label, got %v", labels)
	}
}
