package calc

import (
	"math"
	"testing"
)

func TestTip(t *testing.T) {
	tests := []struct {
		name       string
		amount     float64
		tipPercent float64
		roundUp    bool
		want       float64
	}{
		{
			name:       "zero bill yields zero tip",
			amount:     0,
			tipPercent: 15,
			roundUp:    false,
			want:       0,
		},
		{
			name:       "fifteen percent of one hundred",
			amount:     100,
			tipPercent: 15,
			roundUp:    false,
			want:       15.0,
		},
		{
			name:       "round up leaves whole tip unchanged",
			amount:     100,
			tipPercent: 15,
			roundUp:    true,
			want:       15.0,
		},
		{
			name:       "fractional tip preserved without round up",
			amount:     33,
			tipPercent: 10,
			roundUp:    false,
			want:       3.3,
		},
		{
			name:       "fractional tip raised to next unit",
			amount:     33,
			tipPercent: 10,
			roundUp:    true,
			want:       4.0,
		},
		{
			name:       "default percentage constant",
			amount:     20,
			tipPercent: DefaultTipPercent,
			roundUp:    false,
			want:       3.0,
		},
		{
			name:       "negative percent produces negative tip",
			amount:     50,
			tipPercent: -10,
			roundUp:    false,
			want:       -5.0,
		},
		{
			name:       "zero percent yields zero tip",
			amount:     72.45,
			tipPercent: 0,
			roundUp:    false,
			want:       0,
		},
		{
			name:       "round up on exact cents",
			amount:     10.50,
			tipPercent: 20,
			roundUp:    true,
			want:       3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tip(tt.amount, tt.tipPercent, tt.roundUp)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Tip(%v, %v, %v) = %v, want %v",
					tt.amount, tt.tipPercent, tt.roundUp, got, tt.want)
			}
		})
	}
}

// Rounding up can only raise the tip, never lower it, for any non-negative
// bill and percentage.
func TestTipRoundUpNeverDecreases(t *testing.T) {
	amounts := []float64{0, 0.01, 1, 9.99, 33, 100, 250.75, 1234.56}
	percents := []float64{0, 5, 10, 12.5, 15, 18, 20, 33.3, 100}

	for _, amount := range amounts {
		for _, percent := range percents {
			plain := Tip(amount, percent, false)
			rounded := Tip(amount, percent, true)
			if rounded < plain {
				t.Errorf("Tip(%v, %v, true) = %v is below Tip(%v, %v, false) = %v",
					amount, percent, rounded, amount, percent, plain)
			}
			if rounded-plain >= 1.0 {
				t.Errorf("Tip(%v, %v, true) = %v raised tip by a full unit or more over %v",
					amount, percent, rounded, plain)
			}
		}
	}
}

// Tip holds no hidden state, so identical inputs must yield identical
// results on repeated calls.
func TestTipIdempotent(t *testing.T) {
	inputs := []struct {
		amount  float64
		percent float64
		roundUp bool
	}{
		{100, 15, false},
		{33, 10, true},
		{0, 15, false},
		{87.12, 18, true},
	}

	for _, in := range inputs {
		first := Tip(in.amount, in.percent, in.roundUp)
		second := Tip(in.amount, in.percent, in.roundUp)
		if first != second {
			t.Errorf("Tip(%v, %v, %v) returned %v then %v on identical calls",
				in.amount, in.percent, in.roundUp, first, second)
		}
	}
}

func TestTotal(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		tip    float64
		want   float64
	}{
		{name: "bill plus tip", amount: 100, tip: 15, want: 115},
		{name: "zero bill", amount: 0, tip: 0, want: 0},
		{name: "fractional cents", amount: 33, tip: 3.3, want: 36.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Total(tt.amount, tt.tip)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Total(%v, %v) = %v, want %v", tt.amount, tt.tip, got, tt.want)
			}
		})
	}
}
