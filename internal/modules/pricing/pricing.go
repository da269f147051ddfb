// Package pricing computes the delivery charge for a parcel. It is a pure
// leaf: no I/O, no error path, deterministic for the same inputs.
package pricing

import "mirpur-express/internal/models"

// Tariff table. Amounts are in taka; extras scale per kg above the included
// weight, so fractional weights produce fractional extras. Callers format
// for display.
const (
	documentBaseSame     = 60
	documentBaseCross    = 80
	nonDocumentBaseSame  = 110
	nonDocumentBaseCross = 150
	includedWeightKg     = 3
	ratePerExtraKg       = 40
	crossDistrictExtra   = 40
)

// Breakdown is the immutable result of a quote.
type Breakdown struct {
	Base         float64 `json:"base"`
	Extra        float64 `json:"extra"`
	Total        float64 `json:"total"`
	SameDistrict bool    `json:"isSameDistrict"`
}

// Quote prices a parcel. Districts are compared as raw strings, exactly as
// selected from the service-center list. Weight is ignored for documents.
func Quote(parcelType string, weightKg float64, senderDistrict, receiverDistrict string) Breakdown {
	same := senderDistrict == receiverDistrict

	var base, extra float64
	if parcelType == models.ParcelTypeDocument {
		base = documentBaseCross
		if same {
			base = documentBaseSame
		}
	} else {
		base = nonDocumentBaseCross
		if same {
			base = nonDocumentBaseSame
		}
		if weightKg > includedWeightKg {
			extra = (weightKg - includedWeightKg) * ratePerExtraKg
			if !same {
				extra += crossDistrictExtra
			}
		}
	}

	return Breakdown{
		Base:         base,
		Extra:        extra,
		Total:        base + extra,
		SameDistrict: same,
	}
}
