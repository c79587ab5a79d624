package freight

import (
	"fmt"
)

// Service tiers supported across providers. Upstream options outside
// this set are filtered out.
const (
	ServicePAC   = "PAC"
	ServiceSEDEX = "SEDEX"
)

// QuoteRequest describes the package and endpoints of a rate query.
type QuoteRequest struct {
	WeightKg       float64
	HeightCm       float64
	WidthCm        float64
	LengthCm       float64
	OriginCEP      string
	DestinationCEP string
}

// VolumeCm3 returns the package volume used for volumetric surcharges.
func (r *QuoteRequest) VolumeCm3() float64 {
	return r.HeightCm * r.WidthCm * r.LengthCm
}

// Quote is a normalized shipping option.
type Quote struct {
	Service string
	Price   float64
	Days    int
}

// Deadline returns the lead time in the label form used by responses.
func (q Quote) Deadline() string {
	return fmt.Sprintf("%d dias úteis", q.Days)
}
