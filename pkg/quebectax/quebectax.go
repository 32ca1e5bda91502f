// Package quebectax computes the Canadian federal (GST) and Quebec
// provincial (TVQ) sales taxes applied to a service subtotal.
package quebectax

import "math"

const (
	// GSTRate is the federal goods and services tax rate.
	GSTRate = 0.05
	// TVQRate is the Quebec provincial sales tax rate.
	TVQRate = 0.09975
)

// Taxes is the tax breakdown for one subtotal. GST and TVQ are each rounded
// independently at the cent, and Total is rounded from the unrounded parts,
// so Total may differ by one cent from Subtotal+GST+TVQ recomputed after
// rounding. That drift is part of the contract, not a defect.
type Taxes struct {
	GST   float64 `json:"gst"`
	TVQ   float64 `json:"tvq"`
	Total float64 `json:"total"`
}

// Calculate returns the GST/TVQ breakdown for a subtotal in decimal dollars.
// Negative subtotals are not rejected; they produce negative tax lines,
// which callers use for credit notes.
func Calculate(subtotal float64) Taxes {
	gst := subtotal * GSTRate
	tvq := subtotal * TVQRate
	return Taxes{
		GST:   Round2(gst),
		TVQ:   Round2(tvq),
		Total: Round2(subtotal + gst + tvq),
	}
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Trunc(v*100+math.Copysign(0.5, v)) / 100
}
