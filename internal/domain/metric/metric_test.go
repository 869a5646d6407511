package metric

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want int
	}{
		{name: "down", in: 82.4, want: 82},
		{name: "up", in: 82.6, want: 83},
		{name: "half up", in: 82.5, want: 83},
		{name: "negative half away from zero", in: -2.5, want: -3},
		{name: "nan", in: math.NaN(), want: 0},
		{name: "inf", in: math.Inf(1), want: 0},
		{name: "largest exact integer", in: MaxExact, want: MaxExact},
		{name: "beyond int64", in: 1e300, want: 0},
		{name: "beyond int64 negative", in: -1e19, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round(tt.in); got != tt.want {
				t.Fatalf("Round(%v)=%d want=%d", tt.in, got, tt.want)
			}
		})
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		num, den float64
		want     int
	}{
		{num: 0, den: 0, want: 0},
		{num: 12, den: 0, want: 0},
		{num: 12, den: -3, want: 0},
		{num: 10, den: 10, want: 100},
		{num: 5, den: 7, want: 71},
		{num: 1, den: 3, want: 33},
	}

	for _, tt := range tests {
		if got := Ratio(tt.num, tt.den); got != tt.want {
			t.Fatalf("Ratio(%v, %v)=%d want=%d", tt.num, tt.den, got, tt.want)
		}
	}
}

func TestAverage(t *testing.T) {
	tests := []struct {
		sum   float64
		count int
		want  int
	}{
		{sum: 0, count: 0, want: 0},
		{sum: 120, count: 0, want: 0},
		{sum: 110, count: 2, want: 55},
		{sum: 165, count: 2, want: 83},
	}

	for _, tt := range tests {
		if got := Average(tt.sum, tt.count); got != tt.want {
			t.Fatalf("Average(%v, %d)=%d want=%d", tt.sum, tt.count, got, tt.want)
		}
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 0, want: "0%"},
		{in: 71, want: "71%"},
		{in: 66.7, want: "66.7%"},
		{in: 140, want: "140%"},
		{in: -5, want: "-5%"},
		{in: math.NaN(), want: "0%"},
	}

	for _, tt := range tests {
		if got := Percent(tt.in); got != tt.want {
			t.Fatalf("Percent(%v)=%q want=%q", tt.in, got, tt.want)
		}
	}
}

func TestRatioPercent(t *testing.T) {
	if got := RatioPercent(5, 7); got != "71%" {
		t.Fatalf("RatioPercent(5, 7)=%q want=71%%", got)
	}
	if got := RatioPercent(0, 0); got != "0%" {
		t.Fatalf("RatioPercent(0, 0)=%q want=0%%", got)
	}
}
