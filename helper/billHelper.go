package helper

import (
	"github.com/shopspring/decimal"
)

type BillRates struct {
	TaxRate        float64
	ServiceFeeRate float64
}

type Bill struct {
	Subtotal       float64 `json:"subtotal"`
	Tax            float64 `json:"tax"`
	TaxRate        float64 `json:"taxRate"`
	ServiceFee     float64 `json:"serviceFee"`
	ServiceFeeRate float64 `json:"serviceFeeRate"`
	Total          float64 `json:"total"`
}

// Round2 rounds half away from zero to two decimal places.
func Round2(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

// CalculateBill derives tax, service fee and total from a subtotal.
// Tax and fee are rounded before they are summed into the total.
func CalculateBill(subtotal float64, rates BillRates) Bill {
	tax := Round2(subtotal * rates.TaxRate)
	serviceFee := Round2(subtotal * rates.ServiceFeeRate)
	total := Round2(subtotal + tax + serviceFee)

	return Bill{
		Subtotal:       Round2(subtotal),
		Tax:            tax,
		TaxRate:        rates.TaxRate,
		ServiceFee:     serviceFee,
		ServiceFeeRate: rates.ServiceFeeRate,
		Total:          total,
	}
}

// FormatRate renders a rate such as 0.08 as "8%".
func FormatRate(rate float64) string {
	return decimal.NewFromFloat(rate).Mul(decimal.NewFromInt(100)).StringFixed(0) + "%"
}
