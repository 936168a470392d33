package helper

import (
	"math"
	"testing"
)

var defaultRates = BillRates{TaxRate: 0.08, ServiceFeeRate: 0.05}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.004, 1},
		{1.005, 1.01},
		{2.675, 2.68},
		{10.999, 11},
		{-1.005, -1.01},
		{123.456, 123.46},
	}

	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCalculateBill_KnownValues(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		want     Bill
	}{
		{
			name:     "zero",
			subtotal: 0,
			want:     Bill{TaxRate: 0.08, ServiceFeeRate: 0.05},
		},
		{
			name:     "round hundred",
			subtotal: 100,
			want:     Bill{Subtotal: 100, Tax: 8, TaxRate: 0.08, ServiceFee: 5, ServiceFeeRate: 0.05, Total: 113},
		},
		{
			name:     "two mains",
			subtotal: 24,
			want:     Bill{Subtotal: 24, Tax: 1.92, TaxRate: 0.08, ServiceFee: 1.2, ServiceFeeRate: 0.05, Total: 27.12},
		},
		{
			name:     "tax rounds up",
			subtotal: 10.2,
			want:     Bill{Subtotal: 10.2, Tax: 0.82, TaxRate: 0.08, ServiceFee: 0.51, ServiceFeeRate: 0.05, Total: 11.53},
		},
		{
			// 1.04 * 1.13 = 1.1752 would round to 1.18 in one step.
			name:     "rounding per stage",
			subtotal: 1.04,
			want:     Bill{Subtotal: 1.04, Tax: 0.08, TaxRate: 0.08, ServiceFee: 0.05, ServiceFeeRate: 0.05, Total: 1.17},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateBill(tt.subtotal, defaultRates); got != tt.want {
				t.Errorf("CalculateBill(%v) = %+v, want %+v", tt.subtotal, got, tt.want)
			}
		})
	}
}

func TestCalculateBill_TotalMatchesStagedRounding(t *testing.T) {
	rates := []BillRates{
		defaultRates,
		{TaxRate: 0.0725, ServiceFeeRate: 0.1},
		{TaxRate: 0, ServiceFeeRate: 0},
	}

	for _, r := range rates {
		for cents := 0; cents <= 20000; cents += 7 {
			subtotal := float64(cents) / 100
			bill := CalculateBill(subtotal, r)

			want := Round2(subtotal + Round2(subtotal*r.TaxRate) + Round2(subtotal*r.ServiceFeeRate))
			if bill.Total != want {
				t.Fatalf("rates %+v subtotal %v: total = %v, want %v", r, subtotal, bill.Total, want)
			}
			if math.Abs(bill.Total-(bill.Subtotal+bill.Tax+bill.ServiceFee)) > 0.005 {
				t.Fatalf("subtotal %v: parts %+v do not add up to total", subtotal, bill)
			}
		}
	}
}

func TestFormatRate(t *testing.T) {
	tests := map[float64]string{
		0.08: "8%",
		0.05: "5%",
		0:    "0%",
		0.1:  "10%",
	}
	for rate, want := range tests {
		if got := FormatRate(rate); got != want {
			t.Errorf("FormatRate(%v) = %q, want %q", rate, got, want)
		}
	}
}
